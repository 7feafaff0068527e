package geometry

import "fmt"

// Overflow controls how a node treats content that exceeds its bounds
// along one axis.
type Overflow int

const (
	// OverflowVisible lets overflowing content spill outside the node.
	// This is the default behavior.
	OverflowVisible Overflow = iota

	// OverflowHidden clips overflowing content without exposing a
	// scroll offset for it.
	OverflowHidden

	// OverflowScroll clips overflowing content and allows the node's
	// scroll offset to bring the hidden portion into view.
	OverflowScroll
)

// String returns a human-readable representation of the overflow mode.
func (o Overflow) String() string {
	switch o {
	case OverflowVisible:
		return "visible"
	case OverflowHidden:
		return "hidden"
	case OverflowScroll:
		return "scroll"
	default:
		return fmt.Sprintf("Overflow(%d)", int(o))
	}
}

// OverflowAxes holds a node's overflow mode per axis.
type OverflowAxes struct {
	X Overflow
	Y Overflow
}

// Allows reports whether the given axis is configured for scrolling.
func (oa OverflowAxes) Allows(axis Axis) bool {
	if axis == Horizontal {
		return oa.X == OverflowScroll
	}
	return oa.Y == OverflowScroll
}
