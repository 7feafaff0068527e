package input

import (
	stderrors "errors"
	"testing"

	"github.com/go-sled/sled/pkg/errors"
	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/scene"
)

type routerFixture struct {
	world     *scene.World
	snapshots *scene.Table[scene.GeometrySnapshot]
	router    *Router

	root  scene.Entity
	bar   scene.Entity
	thumb scene.Entity
}

// newRouterFixture builds a 200x200 root with a 20px-wide scrollbar on
// the right edge whose thumb covers the top quarter of the track.
func newRouterFixture() *routerFixture {
	w := scene.NewWorld()
	snapshots := scene.NewTable[scene.GeometrySnapshot](w, "GeometrySnapshot")

	f := &routerFixture{
		world:     w,
		snapshots: snapshots,
		router:    NewRouter(w, snapshots),
		root:      w.Spawn(),
		bar:       w.Spawn(),
		thumb:     w.Spawn(),
	}
	w.SetParent(f.bar, f.root)
	w.SetParent(f.thumb, f.bar)

	snapshots.Set(f.root, snapshotAt(0, 0, 200, 200))
	snapshots.Set(f.bar, snapshotAt(180, 0, 20, 200))
	snapshots.Set(f.thumb, snapshotAt(180, 0, 20, 50))
	return f
}

func TestDispatchWheelReachesFrontmostHandler(t *testing.T) {
	f := newRouterFixture()

	var rootGot, barGot int
	f.router.OnWheel(f.root, func(WheelEvent) error { rootGot++; return nil })
	f.router.OnWheel(f.bar, func(WheelEvent) error { barGot++; return nil })

	// Over the bar: the bar handler wins, the root never sees it.
	f.router.DispatchWheel(WheelEvent{Position: geometry.Offset{X: 190, Y: 100}})
	if barGot != 1 || rootGot != 0 {
		t.Errorf("bar=%d root=%d, want bar=1 root=0", barGot, rootGot)
	}

	// Off the bar: falls through to the root.
	f.router.DispatchWheel(WheelEvent{Position: geometry.Offset{X: 50, Y: 100}})
	if rootGot != 1 {
		t.Errorf("root=%d, want 1", rootGot)
	}
}

func TestDragArmsOnDownAndTracksOffTarget(t *testing.T) {
	f := newRouterFixture()

	var deltas []float64
	f.router.OnDrag(f.thumb, func(ev PointerEvent) error {
		deltas = append(deltas, ev.Delta.Y)
		return nil
	})

	f.router.DispatchPointer(PointerEvent{
		PointerID: 1,
		Phase:     PointerPhaseDown,
		Position:  geometry.Offset{X: 190, Y: 25},
	})
	// Drag far enough to leave the thumb's bounds; events keep routing
	// to the armed target.
	f.router.DispatchPointer(PointerEvent{
		PointerID: 1,
		Phase:     PointerPhaseMove,
		Position:  geometry.Offset{X: 190, Y: 125},
		Delta:     geometry.Offset{Y: 100},
	})
	f.router.DispatchPointer(PointerEvent{
		PointerID: 1,
		Phase:     PointerPhaseMove,
		Position:  geometry.Offset{X: 50, Y: 150},
		Delta:     geometry.Offset{X: -140, Y: 25},
	})
	f.router.DispatchPointer(PointerEvent{
		PointerID: 1,
		Phase:     PointerPhaseUp,
		Position:  geometry.Offset{X: 50, Y: 150},
	})

	if len(deltas) != 2 || deltas[0] != 100 || deltas[1] != 25 {
		t.Errorf("deltas = %v, want [100 25]", deltas)
	}

	// Disarmed: further moves deliver nothing.
	f.router.DispatchPointer(PointerEvent{
		PointerID: 1,
		Phase:     PointerPhaseMove,
		Position:  geometry.Offset{X: 190, Y: 40},
		Delta:     geometry.Offset{Y: 5},
	})
	if len(deltas) != 2 {
		t.Errorf("drag handler ran after release, deltas = %v", deltas)
	}
}

func TestDragSuppressesClick(t *testing.T) {
	f := newRouterFixture()

	clicks := 0
	f.router.OnDrag(f.thumb, func(PointerEvent) error { return nil })
	f.router.OnClick(f.bar, func(*ClickEvent) error { clicks++; return nil })

	f.router.DispatchPointer(PointerEvent{
		PointerID: 2,
		Phase:     PointerPhaseDown,
		Position:  geometry.Offset{X: 190, Y: 25},
	})
	f.router.DispatchPointer(PointerEvent{
		PointerID: 2,
		Phase:     PointerPhaseMove,
		Position:  geometry.Offset{X: 190, Y: 25 + DefaultTouchSlop + 30},
		Delta:     geometry.Offset{Y: DefaultTouchSlop + 30},
	})
	f.router.DispatchPointer(PointerEvent{
		PointerID: 2,
		Phase:     PointerPhaseUp,
		Position:  geometry.Offset{X: 190, Y: 100},
	})

	if clicks != 0 {
		t.Errorf("drag past slop should suppress the click, got %d", clicks)
	}
}

func TestClickStopPropagation(t *testing.T) {
	f := newRouterFixture()

	var thumbClicks, barClicks int
	f.router.OnClick(f.thumb, func(ev *ClickEvent) error {
		thumbClicks++
		ev.StopPropagation()
		return nil
	})
	f.router.OnClick(f.bar, func(*ClickEvent) error { barClicks++; return nil })

	press := func(pos geometry.Offset, id int) {
		f.router.DispatchPointer(PointerEvent{PointerID: id, Phase: PointerPhaseDown, Position: pos})
		f.router.DispatchPointer(PointerEvent{PointerID: id, Phase: PointerPhaseUp, Position: pos})
	}

	// On the thumb: the thumb handler stops the chain.
	press(geometry.Offset{X: 190, Y: 25}, 3)
	if thumbClicks != 1 || barClicks != 0 {
		t.Errorf("thumb=%d bar=%d, want thumb=1 bar=0", thumbClicks, barClicks)
	}

	// On the trough below the thumb: only the bar handler runs.
	press(geometry.Offset{X: 190, Y: 150}, 4)
	if thumbClicks != 1 || barClicks != 1 {
		t.Errorf("thumb=%d bar=%d, want thumb=1 bar=1", thumbClicks, barClicks)
	}
}

func TestUpWithoutDownDoesNotClick(t *testing.T) {
	f := newRouterFixture()

	clicks := 0
	f.router.OnClick(f.bar, func(*ClickEvent) error { clicks++; return nil })

	f.router.DispatchPointer(PointerEvent{
		PointerID: 5,
		Phase:     PointerPhaseUp,
		Position:  geometry.Offset{X: 190, Y: 150},
	})

	if clicks != 0 {
		t.Errorf("up without down should not synthesize a click, got %d", clicks)
	}
}

func TestHandlerErrorIsReportedAndDropped(t *testing.T) {
	f := newRouterFixture()

	var reported []*errors.SledError
	errors.SetHandler(&captureHandler{onError: func(err *errors.SledError) {
		reported = append(reported, err)
	}})
	defer errors.SetHandler(nil)

	f.router.OnWheel(f.bar, func(WheelEvent) error {
		return stderrors.New("component vanished")
	})

	f.router.DispatchWheel(WheelEvent{Position: geometry.Offset{X: 190, Y: 100}})

	if len(reported) != 1 {
		t.Fatalf("reported %d errors, want 1", len(reported))
	}
	if reported[0].Kind != errors.KindLookup {
		t.Errorf("Kind = %v, want KindLookup", reported[0].Kind)
	}
}

func TestStructuredHandlerErrorKeepsItsKind(t *testing.T) {
	f := newRouterFixture()

	var reported []*errors.SledError
	errors.SetHandler(&captureHandler{onError: func(err *errors.SledError) {
		reported = append(reported, err)
	}})
	defer errors.SetHandler(nil)

	f.router.OnClick(f.bar, func(*ClickEvent) error {
		return &errors.SledError{
			Op:   "scroll.pageJump",
			Kind: errors.KindInvariant,
			Err:  stderrors.New("click without position"),
		}
	})

	f.router.DispatchPointer(PointerEvent{PointerID: 6, Phase: PointerPhaseDown, Position: geometry.Offset{X: 190, Y: 150}})
	f.router.DispatchPointer(PointerEvent{PointerID: 6, Phase: PointerPhaseUp, Position: geometry.Offset{X: 190, Y: 150}})

	if len(reported) != 1 {
		t.Fatalf("reported %d errors, want 1", len(reported))
	}
	if reported[0].Kind != errors.KindInvariant {
		t.Errorf("Kind = %v, want KindInvariant preserved", reported[0].Kind)
	}
}

func TestDispatchPrunesDespawnedEntities(t *testing.T) {
	f := newRouterFixture()

	f.router.OnDrag(f.thumb, func(PointerEvent) error { return nil })
	f.router.OnClick(f.thumb, func(*ClickEvent) error { return nil })

	f.world.Despawn(f.thumb)

	// Must not panic; stale thumb entries are pruned.
	f.router.DispatchPointer(PointerEvent{PointerID: 7, Phase: PointerPhaseDown, Position: geometry.Offset{X: 190, Y: 25}})
	f.router.DispatchPointer(PointerEvent{PointerID: 7, Phase: PointerPhaseUp, Position: geometry.Offset{X: 190, Y: 25}})
}

type captureHandler struct {
	onError func(*errors.SledError)
}

func (h *captureHandler) HandleError(err *errors.SledError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *captureHandler) HandlePanic(*errors.PanicError) {}
