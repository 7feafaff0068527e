package input

import (
	stderrors "errors"
	"math"

	"github.com/go-sled/sled/pkg/errors"
	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/scene"
)

// WheelHandler consumes a wheel event delivered to an entity.
type WheelHandler func(ev WheelEvent) error

// DragHandler consumes pointer movement while its entity is the armed
// drag target.
type DragHandler func(ev PointerEvent) error

// ClickHandler consumes a click delivered to an entity. Handlers run
// front to back along the hit chain until one stops propagation.
type ClickHandler func(ev *ClickEvent) error

// Router delivers wheel, drag, and click events to per-entity handlers.
//
// Handlers run synchronously and to completion, one event at a time, so
// no handler ever observes another handler's half-applied mutations.
// Handler errors are reported and the event is dropped; they never
// escape a dispatch call.
type Router struct {
	world     *scene.World
	snapshots *scene.Table[scene.GeometrySnapshot]

	wheel map[scene.Entity]WheelHandler
	drag  map[scene.Entity]DragHandler
	click map[scene.Entity]ClickHandler

	dragTargets map[int]scene.Entity
	travel      map[int]float64
}

// NewRouter creates a router over the world's geometry snapshots.
func NewRouter(w *scene.World, snapshots *scene.Table[scene.GeometrySnapshot]) *Router {
	return &Router{
		world:       w,
		snapshots:   snapshots,
		wheel:       make(map[scene.Entity]WheelHandler),
		drag:        make(map[scene.Entity]DragHandler),
		click:       make(map[scene.Entity]ClickHandler),
		dragTargets: make(map[int]scene.Entity),
		travel:      make(map[int]float64),
	}
}

// OnWheel registers the entity's wheel handler, replacing any previous one.
func (r *Router) OnWheel(e scene.Entity, h WheelHandler) {
	r.wheel[e] = h
}

// OnDrag registers the entity's drag handler, replacing any previous one.
func (r *Router) OnDrag(e scene.Entity, h DragHandler) {
	r.drag[e] = h
}

// OnClick registers the entity's click handler, replacing any previous one.
func (r *Router) OnClick(e scene.Entity, h ClickHandler) {
	r.click[e] = h
}

// Forget drops all handlers registered for the entity. Dispatch also
// prunes handlers of despawned entities lazily.
func (r *Router) Forget(e scene.Entity) {
	delete(r.wheel, e)
	delete(r.drag, e)
	delete(r.click, e)
}

// DispatchWheel hit-tests the event position and delivers the event to
// the frontmost hit entity that has a wheel handler.
func (r *Router) DispatchWheel(ev WheelEvent) {
	for _, e := range r.hits(ev.Position) {
		h, ok := r.wheel[e]
		if !ok {
			continue
		}
		if err := h(ev); err != nil {
			r.report("input.DispatchWheel", e, err)
		}
		return
	}
}

// DispatchPointer feeds one pointer state change through drag tracking
// and click synthesis.
//
// Down arms the frontmost hit entity that has a drag handler. Move
// events route to the armed entity. Up synthesizes a click along the
// current hit chain unless the pointer travelled past DefaultTouchSlop,
// then disarms. Cancel just disarms.
func (r *Router) DispatchPointer(ev PointerEvent) {
	switch ev.Phase {
	case PointerPhaseDown:
		r.travel[ev.PointerID] = 0
		for _, e := range r.hits(ev.Position) {
			if _, ok := r.drag[e]; ok {
				r.dragTargets[ev.PointerID] = e
				break
			}
		}

	case PointerPhaseMove:
		if _, tracking := r.travel[ev.PointerID]; tracking {
			r.travel[ev.PointerID] += math.Abs(ev.Delta.X) + math.Abs(ev.Delta.Y)
		}
		target, armed := r.dragTargets[ev.PointerID]
		if !armed {
			return
		}
		if !r.world.Alive(target) {
			r.disarm(ev.PointerID, target)
			return
		}
		if h, ok := r.drag[target]; ok {
			if err := h(ev); err != nil {
				r.report("input.DispatchPointer", target, err)
			}
		}

	case PointerPhaseUp:
		target, armed := r.dragTargets[ev.PointerID]
		if travelled, tracking := r.travel[ev.PointerID]; tracking && travelled <= DefaultTouchSlop {
			r.dispatchClick(ev.Position)
		}
		if armed {
			r.disarm(ev.PointerID, target)
		}
		delete(r.travel, ev.PointerID)

	case PointerPhaseCancel:
		if target, armed := r.dragTargets[ev.PointerID]; armed {
			r.disarm(ev.PointerID, target)
		}
		delete(r.travel, ev.PointerID)
	}
}

// dispatchClick walks the hit chain front to back until a handler stops
// propagation.
func (r *Router) dispatchClick(position geometry.Offset) {
	ev := &ClickEvent{Position: position, HasPosition: true}
	for _, e := range r.hits(position) {
		h, ok := r.click[e]
		if !ok {
			continue
		}
		if err := h(ev); err != nil {
			r.report("input.dispatchClick", e, err)
		}
		if ev.Stopped() {
			return
		}
	}
}

// hits returns live hit entries, pruning handlers of dead entities.
func (r *Router) hits(position geometry.Offset) []scene.Entity {
	entries := HitTest(r.world, r.snapshots, position).Entries
	live := entries[:0]
	for _, e := range entries {
		if r.world.Alive(e) {
			live = append(live, e)
		} else {
			r.Forget(e)
		}
	}
	return live
}

func (r *Router) disarm(pointerID int, target scene.Entity) {
	delete(r.dragTargets, pointerID)
	if !r.world.Alive(target) {
		r.Forget(target)
	}
}

// report forwards a handler error to the global error handler,
// preserving structured errors as-is.
func (r *Router) report(op string, e scene.Entity, err error) {
	var structured *errors.SledError
	if stderrors.As(err, &structured) {
		errors.Report(structured)
		return
	}
	errors.Report(&errors.SledError{
		Op:     op,
		Kind:   errors.KindLookup,
		Err:    err,
		Entity: e.String(),
	})
}
