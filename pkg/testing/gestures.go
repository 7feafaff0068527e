package testing

import (
	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/input"
)

// allocPointer hands out a fresh pointer ID per interaction so
// overlapping gestures never collide in the router's tracking maps.
func (h *Harness) allocPointer() int {
	h.nextPointer++
	return h.nextPointer
}

// PointerDown begins a pointer interaction at position and returns the
// pointer ID for subsequent moves.
func (h *Harness) PointerDown(position geometry.Offset) int {
	id := h.allocPointer()
	h.pointers[id] = position
	h.router.DispatchPointer(input.PointerEvent{
		PointerID: id,
		Phase:     input.PointerPhaseDown,
		Position:  position,
	})
	return id
}

// PointerMove moves an active pointer to position. The event's Delta
// is derived from the pointer's previous position, so callers specify
// destinations and never compute deltas by hand.
func (h *Harness) PointerMove(id int, position geometry.Offset) {
	prev, ok := h.pointers[id]
	if !ok {
		prev = position
	}
	h.pointers[id] = position
	h.router.DispatchPointer(input.PointerEvent{
		PointerID: id,
		Phase:     input.PointerPhaseMove,
		Position:  position,
		Delta:     position.Sub(prev),
	})
}

// PointerUp releases an active pointer at its last position.
func (h *Harness) PointerUp(id int) {
	position := h.pointers[id]
	delete(h.pointers, id)
	h.router.DispatchPointer(input.PointerEvent{
		PointerID: id,
		Phase:     input.PointerPhaseUp,
		Position:  position,
	})
}

// PointerCancel aborts an active pointer interaction.
func (h *Harness) PointerCancel(id int) {
	position := h.pointers[id]
	delete(h.pointers, id)
	h.router.DispatchPointer(input.PointerEvent{
		PointerID: id,
		Phase:     input.PointerPhaseCancel,
		Position:  position,
	})
}

// TapAt presses and releases at position without moving, which the
// router synthesizes into a click along the hit chain.
func (h *Harness) TapAt(position geometry.Offset) {
	id := h.PointerDown(position)
	h.PointerUp(id)
}

// DragFrom presses at start, moves by delta in one step, and releases.
func (h *Harness) DragFrom(start, delta geometry.Offset) {
	id := h.PointerDown(start)
	h.PointerMove(id, start.Add(delta))
	h.PointerUp(id)
}

// WheelAt delivers a pixel-unit wheel event at position.
func (h *Harness) WheelAt(position, delta geometry.Offset) {
	h.router.DispatchWheel(input.WheelEvent{
		Delta:    delta,
		Unit:     input.WheelUnitPixel,
		Position: position,
	})
}

// WheelLinesAt delivers a line-unit wheel event at position. Targets
// with line metrics convert lines to pixels; targets without any pass
// the raw value through.
func (h *Harness) WheelLinesAt(position, delta geometry.Offset) {
	h.router.DispatchWheel(input.WheelEvent{
		Delta:    delta,
		Unit:     input.WheelUnitLine,
		Position: position,
	})
}
