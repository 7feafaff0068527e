package scroll

import (
	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/graphics"
	"github.com/go-sled/sled/pkg/scene"
	"github.com/go-sled/sled/pkg/text"
)

const (
	// DefaultWheelScale is the multiplier applied to raw wheel deltas
	// when a region configures none.
	DefaultWheelScale = 1.0

	// DefaultDragScale is how many offset pixels one dragged thumb
	// pixel is worth when a scrollbar configures none.
	DefaultDragScale = 4.0

	// DefaultThumbColor is used when a scrollbar configures none.
	DefaultThumbColor = graphics.ColorWhite
)

// Scrollable marks a node whose content overflows and is scrolled by a
// paired scrollbar. The manager fills Axis and Metrics during scrollbar
// setup; hosts configure WheelScale and may pre-set Metrics.
type Scrollable struct {
	// Axis is the scrolled direction, fixed once resolved.
	Axis geometry.Axis

	// Offset is the current scroll offset into content space, in
	// logical pixels. Only ApplyDelta mutates it on behalf of input;
	// hosts writing it directly are reconciled on the next frame.
	Offset geometry.Offset

	// WheelScale multiplies raw wheel deltas. Values <= 0 mean
	// DefaultWheelScale.
	WheelScale float64

	// Metrics converts line wheel units to pixels. Setup installs
	// defaults on vertical regions that have none; regions still
	// without metrics pass line deltas through as raw pixels.
	Metrics *text.LineMetrics
}

// Scrollbar is the track node component. Attaching it to an entity
// performs the full pair setup at the next command flush: relationship
// bind, axis resolution, thumb spawn, and handler registration.
type Scrollbar struct {
	// Target is the scrollable region this bar controls. Immutable
	// after setup.
	Target scene.Entity

	// ThumbColor is read once when the thumb spawns. Zero means
	// DefaultThumbColor; recolor the spawned thumb to change it later.
	ThumbColor graphics.Color

	// DragScale is how many offset pixels one dragged thumb pixel is
	// worth. Values <= 0 mean DefaultDragScale.
	DragScale float64
}

// Thumb is the draggable indicator, spawned by the manager as the
// first child of its scrollbar. Both fields are derived; hosts read
// them to draw and never write them.
type Thumb struct {
	// LengthFraction is viewport extent over content extent along the
	// active axis. Deliberately unclamped: values above 1 mean the
	// content fits and no scrolling is needed.
	LengthFraction float64

	// TrackOffset is the thumb's position along the track in logical
	// pixels, within [0, draggable track length].
	TrackOffset float64

	// Color is the thumb's fill, copied from the scrollbar config at
	// spawn.
	Color graphics.Color
}

func (s Scrollable) wheelScale() float64 {
	if s.WheelScale <= 0 {
		return DefaultWheelScale
	}
	return s.WheelScale
}

func (b Scrollbar) dragScale() float64 {
	if b.DragScale <= 0 {
		return DefaultDragScale
	}
	return b.DragScale
}

func (b Scrollbar) thumbColor() graphics.Color {
	if b.ThumbColor == graphics.ColorTransparent {
		return DefaultThumbColor
	}
	return b.ThumbColor
}
