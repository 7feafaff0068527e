package geometry

import "fmt"

// Axis identifies the direction a scrollable region moves its content.
//
// Formulas that differ only by which dimension they read are written once
// against the Axis accessors below instead of being duplicated per direction.
type Axis int

const (
	// Horizontal scrolls content along the X axis.
	Horizontal Axis = iota

	// Vertical scrolls content along the Y axis.
	Vertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// MainExtent returns the size's extent along the axis.
func (a Axis) MainExtent(s Size) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// CrossExtent returns the size's extent perpendicular to the axis.
func (a Axis) CrossExtent(s Size) float64 {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

// Component returns the offset's coordinate along the axis.
func (a Axis) Component(o Offset) float64 {
	if a == Horizontal {
		return o.X
	}
	return o.Y
}

// WithComponent returns o with the axis coordinate replaced by v.
func (a Axis) WithComponent(o Offset, v float64) Offset {
	if a == Horizontal {
		o.X = v
	} else {
		o.Y = v
	}
	return o
}

// MainInsets returns the summed edge widths at both ends of the axis.
func (a Axis) MainInsets(in Insets) float64 {
	if a == Horizontal {
		return in.Horizontal()
	}
	return in.Vertical()
}

// CrossInsets returns the summed edge widths perpendicular to the axis.
func (a Axis) CrossInsets(in Insets) float64 {
	if a == Horizontal {
		return in.Vertical()
	}
	return in.Horizontal()
}

// MainStart returns the rect's starting coordinate along the axis.
func (a Axis) MainStart(r Rect) float64 {
	if a == Horizontal {
		return r.Left
	}
	return r.Top
}

// MainStartInset returns the edge width at the axis's starting side.
func (a Axis) MainStartInset(in Insets) float64 {
	if a == Horizontal {
		return in.Left
	}
	return in.Top
}

// CrossStartInset returns the edge width at the perpendicular starting
// side.
func (a Axis) CrossStartInset(in Insets) float64 {
	if a == Horizontal {
		return in.Top
	}
	return in.Left
}

// SizeWith builds a size from extents along and across the axis.
func (a Axis) SizeWith(main, cross float64) Size {
	if a == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}
