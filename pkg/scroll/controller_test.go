package scroll

import (
	"testing"

	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/scene"
)

func TestApplyDeltaScenarioA(t *testing.T) {
	f := scenarioA(t)

	if err := f.manager.ApplyDelta(f.region, 50); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	if got := f.offset(t); !geometry.FloatEqual(got, 50) {
		t.Errorf("offset = %v, want 50", got)
	}
	_, thumb := f.thumb(t)
	if !geometry.FloatEqual(thumb.LengthFraction, 0.25) {
		t.Errorf("length fraction = %v, want 0.25", thumb.LengthFraction)
	}
	// ratio = draggable / scroll range = 300/300, so the thumb moves
	// pixel for pixel with the offset here.
	if !geometry.FloatEqual(thumb.TrackOffset, 50) {
		t.Errorf("track offset = %v, want 50", thumb.TrackOffset)
	}
}

func TestApplyDeltaClamping(t *testing.T) {
	tests := []struct {
		name       string
		deltas     []float64
		wantOffset float64
		wantTrack  float64
	}{
		{"negative from zero stays at zero", []float64{-80}, 0, 0},
		{"forward within range", []float64{120}, 120, 120},
		{"forward past the end clamps", []float64{900}, 300, 300},
		{"sequence clamps at both bounds", []float64{200, 200, -700, 30}, 30, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := scenarioA(t)
			for _, d := range tt.deltas {
				if err := f.manager.ApplyDelta(f.region, d); err != nil {
					t.Fatalf("ApplyDelta(%v): %v", d, err)
				}
			}
			if got := f.offset(t); !geometry.FloatEqual(got, tt.wantOffset) {
				t.Errorf("offset = %v, want %v", got, tt.wantOffset)
			}
			if _, thumb := f.thumb(t); !geometry.FloatEqual(thumb.TrackOffset, tt.wantTrack) {
				t.Errorf("track offset = %v, want %v", thumb.TrackOffset, tt.wantTrack)
			}
		})
	}
}

func TestApplyDeltaRoundTrip(t *testing.T) {
	f := scenarioA(t)

	// Move to the interior first so neither leg engages a clamp.
	if err := f.manager.ApplyDelta(f.region, 100); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	_, before := f.thumb(t)

	if err := f.manager.ApplyDelta(f.region, 70); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	if err := f.manager.ApplyDelta(f.region, -70); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	if got := f.offset(t); !geometry.FloatEqual(got, 100) {
		t.Errorf("offset = %v, want 100 restored", got)
	}
	if _, after := f.thumb(t); !geometry.FloatEqual(after.TrackOffset, before.TrackOffset) {
		t.Errorf("track offset = %v, want %v restored", after.TrackOffset, before.TrackOffset)
	}
}

func TestApplyDeltaIdempotentAtLowerBound(t *testing.T) {
	f := scenarioA(t)

	for i := 0; i < 3; i++ {
		if err := f.manager.ApplyDelta(f.region, -40); err != nil {
			t.Fatalf("ApplyDelta: %v", err)
		}
		if got := f.offset(t); got != 0 {
			t.Fatalf("offset = %v after backward delta %d, want 0", got, i+1)
		}
		if _, thumb := f.thumb(t); thumb.TrackOffset != 0 {
			t.Fatalf("track offset = %v after backward delta %d, want 0", thumb.TrackOffset, i+1)
		}
	}
}

func TestApplyDeltaNoOverflowIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.layOutVertical(100, 80, 400) // content fits the viewport
	f.manager.Attach(f.bar, Scrollbar{Target: f.region})
	f.sched.RunFrame()

	for _, d := range []float64{50, -50, 1000} {
		if err := f.manager.ApplyDelta(f.region, d); err != nil {
			t.Fatalf("ApplyDelta(%v): %v", d, err)
		}
		if got := f.offset(t); got != 0 {
			t.Errorf("offset = %v after delta %v, want 0", got, d)
		}
	}

	// The fraction stays honest above 1 so hosts can hide the thumb.
	if _, thumb := f.thumb(t); !geometry.FloatEqual(thumb.LengthFraction, 1.25) {
		t.Errorf("length fraction = %v, want unclamped 1.25", thumb.LengthFraction)
	}
}

func TestApplyDeltaMissingScrollableFails(t *testing.T) {
	f := newFixture(t)
	f.layOutVertical(100, 400, 400)

	if err := f.manager.ApplyDelta(f.region, 10); err == nil {
		t.Fatal("expected a lookup error before setup installs the Scrollable")
	}
}

func TestApplyDeltaMovesThumbSnapshot(t *testing.T) {
	f := scenarioA(t)
	thumbEnt, _ := f.thumb(t)

	if err := f.manager.ApplyDelta(f.region, 50); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	snap, ok := f.sched.Snapshots().Get(thumbEnt)
	if !ok {
		t.Fatal("thumb snapshot missing")
	}
	if !geometry.FloatEqual(snap.Origin.Y, 50) {
		t.Errorf("thumb snapshot origin Y = %v, want 50", snap.Origin.Y)
	}
}

func TestHorizontalPairScrollsX(t *testing.T) {
	f := newFixture(t)
	f.sched.Snapshots().Set(f.region, geometrySnapshotH(100, 400))
	f.sched.Snapshots().Set(f.bar, barSnapshotH(400))
	f.manager.Overflow().Set(f.region, geometry.OverflowAxes{X: geometry.OverflowScroll})
	f.manager.Attach(f.bar, Scrollbar{Target: f.region})
	f.sched.RunFrame()

	if err := f.manager.ApplyDelta(f.region, 50); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	s, _ := f.manager.Scrollables().Get(f.region)
	if !geometry.FloatEqual(s.Offset.X, 50) {
		t.Errorf("offset.X = %v, want 50", s.Offset.X)
	}
	if s.Offset.Y != 0 {
		t.Errorf("offset.Y = %v, want untouched 0", s.Offset.Y)
	}
	if _, thumb := f.thumb(t); !geometry.FloatEqual(thumb.TrackOffset, 50) {
		t.Errorf("track offset = %v, want 50", thumb.TrackOffset)
	}
}

func TestSyncReclampsAfterContentShrink(t *testing.T) {
	f := scenarioA(t)
	if err := f.manager.ApplyDelta(f.region, 250); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	// Content shrinks to 200: the scroll range drops to 100 and the
	// old offset of 250 is out of bounds.
	f.layOutVertical(100, 200, 400)
	f.sched.RunFrame()

	if got := f.offset(t); !geometry.FloatEqual(got, 100) {
		t.Errorf("offset = %v, want reclamped 100", got)
	}
	_, thumb := f.thumb(t)
	if !geometry.FloatEqual(thumb.LengthFraction, 0.5) {
		t.Errorf("length fraction = %v, want 0.5", thumb.LengthFraction)
	}
	// draggable = 400 - 200 = 200; offset at the end of a 100 range.
	if !geometry.FloatEqual(thumb.TrackOffset, 200) {
		t.Errorf("track offset = %v, want 200", thumb.TrackOffset)
	}
}

func TestSyncAppliesHostOffsetWrites(t *testing.T) {
	f := scenarioA(t)

	// A host writing the offset directly gets reconciled on the next
	// frame rather than immediately.
	f.manager.Scrollables().Update(f.region, func(s *Scrollable) {
		s.Offset.Y = 150
	})
	f.sched.RunFrame()

	if _, thumb := f.thumb(t); !geometry.FloatEqual(thumb.TrackOffset, 150) {
		t.Errorf("track offset = %v, want 150 after sync", thumb.TrackOffset)
	}
}

// geometrySnapshotH scripts a horizontal region: viewport px wide over
// content px of content.
func geometrySnapshotH(viewport, content float64) scene.GeometrySnapshot {
	return scene.GeometrySnapshot{
		Size:         geometry.Size{Width: viewport, Height: 180},
		ContentSize:  geometry.Size{Width: content, Height: 180},
		InverseScale: 1,
	}
}

// barSnapshotH scripts a horizontal track beneath the region.
func barSnapshotH(track float64) scene.GeometrySnapshot {
	return scene.GeometrySnapshot{
		Origin:       geometry.Offset{Y: 180},
		Size:         geometry.Size{Width: track, Height: 20},
		ContentSize:  geometry.Size{Width: track, Height: 20},
		InverseScale: 1,
	}
}
