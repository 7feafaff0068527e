// Package input routes pointer and wheel events to per-entity handlers
// using hit tests over the scene's geometry snapshots.
package input

import "github.com/go-sled/sled/pkg/geometry"

// PointerPhase identifies the stage of a pointer interaction.
type PointerPhase int

const (
	// PointerPhaseDown marks initial contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove marks movement while down.
	PointerPhaseMove
	// PointerPhaseUp marks release.
	PointerPhaseUp
	// PointerPhaseCancel marks an aborted interaction.
	PointerPhaseCancel
)

// DefaultTouchSlop is the movement, in logical pixels, past which a
// pointer interaction counts as a drag rather than a click.
const DefaultTouchSlop = 18.0

// PointerEvent is one pointer state change in logical pixels.
type PointerEvent struct {
	// PointerID distinguishes concurrent pointers.
	PointerID int

	// Phase is the stage of the interaction.
	Phase PointerPhase

	// Position is the pointer location in surface coordinates.
	Position geometry.Offset

	// Delta is the movement since the previous event of this pointer.
	Delta geometry.Offset
}

// WheelUnit identifies how a wheel delta is measured.
type WheelUnit int

const (
	// WheelUnitPixel measures wheel deltas directly in pixels.
	WheelUnitPixel WheelUnit = iota
	// WheelUnitLine measures wheel deltas in text lines; consumers
	// convert using the target's line metrics.
	WheelUnitLine
)

// WheelEvent is one wheel tick, in logical coordinates.
//
// Delta follows the hardware convention: positive Y means the wheel
// rolled up (away from the user), which scrolls content backward.
type WheelEvent struct {
	// Delta is the raw wheel movement in Unit units.
	Delta geometry.Offset

	// Unit is how Delta is measured.
	Unit WheelUnit

	// Position is the pointer location when the wheel moved.
	Position geometry.Offset
}

// ClickEvent is a completed press-and-release over an entity.
type ClickEvent struct {
	// Position is the release location in surface coordinates.
	Position geometry.Offset

	// HasPosition is false when the event carries no hit-test
	// geometry. Handlers that need the position must treat that as
	// unusable input, not as position zero.
	HasPosition bool

	stopped bool
}

// StopPropagation prevents entities deeper in the hit chain from
// seeing this click.
func (e *ClickEvent) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether propagation was stopped.
func (e *ClickEvent) Stopped() bool {
	return e.stopped
}
