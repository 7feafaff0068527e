package scene

import "github.com/go-sled/sled/pkg/geometry"

// GeometrySnapshot is the per-node output of the host's layout pass,
// written once per frame for nodes whose geometry changed. All raw
// fields are in device pixels; the Logical accessors divide out the
// device scale.
type GeometrySnapshot struct {
	// Origin is the node's top-left corner in surface coordinates.
	Origin geometry.Offset

	// Size is the node's computed size.
	Size geometry.Size

	// ContentSize is the full extent of the node's content, including
	// any portion scrolled out of view.
	ContentSize geometry.Size

	// Border holds the node's border widths per edge.
	Border geometry.Insets

	// InverseScale is 1 / device scale factor. Logical lengths are
	// device lengths multiplied by it. Zero is treated as 1 so an
	// unset snapshot still resolves.
	InverseScale float64
}

func (s GeometrySnapshot) inverseScale() float64 {
	if s.InverseScale == 0 {
		return 1
	}
	return s.InverseScale
}

// LogicalSize returns the node size in logical pixels.
func (s GeometrySnapshot) LogicalSize() geometry.Size {
	return s.Size.Scale(s.inverseScale())
}

// LogicalContentSize returns the content size in logical pixels.
func (s GeometrySnapshot) LogicalContentSize() geometry.Size {
	return s.ContentSize.Scale(s.inverseScale())
}

// LogicalBorder returns the border insets in logical pixels.
func (s GeometrySnapshot) LogicalBorder() geometry.Insets {
	return s.Border.Scale(s.inverseScale())
}

// LogicalRect returns the node's bounds in logical surface coordinates.
func (s GeometrySnapshot) LogicalRect() geometry.Rect {
	inv := s.inverseScale()
	return geometry.RectFromLTWH(
		s.Origin.X*inv,
		s.Origin.Y*inv,
		s.Size.Width*inv,
		s.Size.Height*inv,
	)
}
