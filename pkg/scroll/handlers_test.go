package scroll

import (
	stderrors "errors"
	"testing"

	"github.com/go-sled/sled/pkg/errors"
	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/input"
)

func (f *fixture) wheel(delta float64, unit input.WheelUnit) {
	f.router.DispatchWheel(input.WheelEvent{
		Delta:    geometry.Offset{Y: delta},
		Unit:     unit,
		Position: geometry.Offset{X: 50, Y: 50},
	})
}

func TestWheelScrollsContent(t *testing.T) {
	f := scenarioA(t)

	// Wheel down: negative raw delta scrolls forward.
	f.wheel(-3, input.WheelUnitPixel)
	if got := f.offset(t); !geometry.FloatEqual(got, 3) {
		t.Errorf("offset = %v after wheel down, want 3", got)
	}

	// Wheel up scrolls back.
	f.wheel(2, input.WheelUnitPixel)
	if got := f.offset(t); !geometry.FloatEqual(got, 1) {
		t.Errorf("offset = %v after wheel up, want 1", got)
	}
}

func TestWheelUpAtTopStaysPut(t *testing.T) {
	f := scenarioA(t)

	f.wheel(5, input.WheelUnitPixel)
	if got := f.offset(t); got != 0 {
		t.Errorf("offset = %v, want 0", got)
	}
	if _, thumb := f.thumb(t); thumb.TrackOffset != 0 {
		t.Errorf("track offset = %v, want 0", thumb.TrackOffset)
	}
}

func TestWheelLineUnitUsesLineMetrics(t *testing.T) {
	f := scenarioA(t)

	// Default metrics: 20px font x 1.2 line scale = 24px per line.
	f.wheel(-2, input.WheelUnitLine)
	if got := f.offset(t); !geometry.FloatEqual(got, 48) {
		t.Errorf("offset = %v after 2-line wheel, want 48", got)
	}
}

func TestWheelLineUnitWithoutMetricsPassesRaw(t *testing.T) {
	f := newFixture(t)
	f.sched.Snapshots().Set(f.region, geometrySnapshotH(100, 400))
	f.sched.Snapshots().Set(f.bar, barSnapshotH(400))
	f.manager.Overflow().Set(f.region, geometry.OverflowAxes{X: geometry.OverflowScroll})
	f.manager.Attach(f.bar, Scrollbar{Target: f.region})
	f.sched.RunFrame()

	// Horizontal setup installs no line metrics; line deltas fall
	// through as raw pixels.
	f.router.DispatchWheel(input.WheelEvent{
		Delta:    geometry.Offset{X: -10},
		Unit:     input.WheelUnitLine,
		Position: geometry.Offset{X: 50, Y: 50},
	})
	s, _ := f.manager.Scrollables().Get(f.region)
	if !geometry.FloatEqual(s.Offset.X, 10) {
		t.Errorf("offset.X = %v, want raw 10", s.Offset.X)
	}
}

func TestWheelScaleMultiplies(t *testing.T) {
	f := newFixture(t)
	f.layOutVertical(100, 400, 400)
	f.manager.Scrollables().Set(f.region, Scrollable{WheelScale: 2})
	f.manager.Attach(f.bar, Scrollbar{Target: f.region})
	f.sched.RunFrame()

	f.wheel(-3, input.WheelUnitPixel)
	if got := f.offset(t); !geometry.FloatEqual(got, 6) {
		t.Errorf("offset = %v with wheel scale 2, want 6", got)
	}
}

func TestWheelOverTrackDoesNothing(t *testing.T) {
	f := scenarioA(t)

	f.router.DispatchWheel(input.WheelEvent{
		Delta:    geometry.Offset{Y: -3},
		Unit:     input.WheelUnitPixel,
		Position: geometry.Offset{X: 190, Y: 250},
	})
	if got := f.offset(t); got != 0 {
		t.Errorf("offset = %v, want 0: only the region listens for wheel", got)
	}
}

func TestThumbDragScrollsContent(t *testing.T) {
	f := scenarioA(t)

	f.router.DispatchPointer(input.PointerEvent{
		PointerID: 1,
		Phase:     input.PointerPhaseDown,
		Position:  geometry.Offset{X: 190, Y: 30},
	})
	f.router.DispatchPointer(input.PointerEvent{
		PointerID: 1,
		Phase:     input.PointerPhaseMove,
		Position:  geometry.Offset{X: 190, Y: 40},
		Delta:     geometry.Offset{Y: 10},
	})

	// One dragged pixel is worth DefaultDragScale offset pixels.
	if got := f.offset(t); !geometry.FloatEqual(got, 40) {
		t.Errorf("offset = %v after 10px drag, want 40", got)
	}
	if _, thumb := f.thumb(t); !geometry.FloatEqual(thumb.TrackOffset, 40) {
		t.Errorf("track offset = %v, want 40", thumb.TrackOffset)
	}

	f.router.DispatchPointer(input.PointerEvent{
		PointerID: 1,
		Phase:     input.PointerPhaseUp,
		Position:  geometry.Offset{X: 190, Y: 40},
	})
	if got := f.offset(t); !geometry.FloatEqual(got, 40) {
		t.Errorf("offset = %v after release, want 40 unchanged", got)
	}
}

func TestThumbDragHonorsDragScale(t *testing.T) {
	f := newFixture(t)
	f.layOutVertical(100, 400, 400)
	f.manager.Attach(f.bar, Scrollbar{Target: f.region, DragScale: 2})
	f.sched.RunFrame()

	f.router.DispatchPointer(input.PointerEvent{
		PointerID: 1,
		Phase:     input.PointerPhaseDown,
		Position:  geometry.Offset{X: 190, Y: 30},
	})
	f.router.DispatchPointer(input.PointerEvent{
		PointerID: 1,
		Phase:     input.PointerPhaseMove,
		Position:  geometry.Offset{X: 190, Y: 45},
		Delta:     geometry.Offset{Y: 15},
	})

	if got := f.offset(t); !geometry.FloatEqual(got, 30) {
		t.Errorf("offset = %v with drag scale 2, want 30", got)
	}
}

func TestDragBackwardClampsAtTop(t *testing.T) {
	f := scenarioA(t)

	f.router.DispatchPointer(input.PointerEvent{
		PointerID: 1,
		Phase:     input.PointerPhaseDown,
		Position:  geometry.Offset{X: 190, Y: 30},
	})
	f.router.DispatchPointer(input.PointerEvent{
		PointerID: 1,
		Phase:     input.PointerPhaseMove,
		Position:  geometry.Offset{X: 190, Y: 10},
		Delta:     geometry.Offset{Y: -20},
	})

	if got := f.offset(t); got != 0 {
		t.Errorf("offset = %v, want clamped 0", got)
	}
	if _, thumb := f.thumb(t); thumb.TrackOffset != 0 {
		t.Errorf("track offset = %v, want clamped 0", thumb.TrackOffset)
	}
}

func TestTroughClickPagesForward(t *testing.T) {
	f := scenarioA(t)

	clickAt(f, geometry.Offset{X: 190, Y: 350})

	// One viewport forward.
	if got := f.offset(t); !geometry.FloatEqual(got, 100) {
		t.Errorf("offset = %v after trough click below thumb, want 100", got)
	}
	if _, thumb := f.thumb(t); !geometry.FloatEqual(thumb.TrackOffset, 100) {
		t.Errorf("track offset = %v, want 100", thumb.TrackOffset)
	}
}

func TestTroughClickPagesBackward(t *testing.T) {
	f := scenarioA(t)
	if err := f.manager.ApplyDelta(f.region, 200); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	clickAt(f, geometry.Offset{X: 190, Y: 20})

	if got := f.offset(t); !geometry.FloatEqual(got, 100) {
		t.Errorf("offset = %v after trough click above thumb, want 100", got)
	}
}

func TestThumbClickNeverPageJumps(t *testing.T) {
	f := scenarioA(t)
	if err := f.manager.ApplyDelta(f.region, 100); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	// The thumb now spans track 100..200; click inside it.
	clickAt(f, geometry.Offset{X: 190, Y: 150})

	if got := f.offset(t); !geometry.FloatEqual(got, 100) {
		t.Errorf("offset = %v, want 100: thumb clicks must not page-jump", got)
	}
}

func TestDragPastSlopSuppressesTroughClick(t *testing.T) {
	f := scenarioA(t)

	f.router.DispatchPointer(input.PointerEvent{
		PointerID: 1,
		Phase:     input.PointerPhaseDown,
		Position:  geometry.Offset{X: 190, Y: 30},
	})
	f.router.DispatchPointer(input.PointerEvent{
		PointerID: 1,
		Phase:     input.PointerPhaseMove,
		Position:  geometry.Offset{X: 190, Y: 60},
		Delta:     geometry.Offset{Y: 30},
	})
	f.router.DispatchPointer(input.PointerEvent{
		PointerID: 1,
		Phase:     input.PointerPhaseUp,
		Position:  geometry.Offset{X: 190, Y: 60},
	})

	// The drag scrolled 30 x 4 = 120; a synthesized click would have
	// paged by another viewport.
	if got := f.offset(t); !geometry.FloatEqual(got, 120) {
		t.Errorf("offset = %v, want 120 from drag alone", got)
	}
}

func TestTroughClickWithoutPositionReportsInvariant(t *testing.T) {
	f := scenarioA(t)

	err := f.manager.troughClickHandler(f.bar)(&input.ClickEvent{})
	if err == nil {
		t.Fatal("expected an invariant error for a click with no position")
	}
	var structured *errors.SledError
	if !stderrors.As(err, &structured) {
		t.Fatalf("error = %T, want *errors.SledError", err)
	}
	if structured.Kind != errors.KindInvariant {
		t.Errorf("kind = %v, want invariant", structured.Kind)
	}
	if got := f.offset(t); got != 0 {
		t.Errorf("offset = %v, want 0: malformed clicks must never scroll", got)
	}
}

// clickAt synthesizes a press-and-release at the position.
func clickAt(f *fixture, position geometry.Offset) {
	f.router.DispatchPointer(input.PointerEvent{
		PointerID: 1,
		Phase:     input.PointerPhaseDown,
		Position:  position,
	})
	f.router.DispatchPointer(input.PointerEvent{
		PointerID: 1,
		Phase:     input.PointerPhaseUp,
		Position:  position,
	})
}
