package testing

import (
	"testing"
	"time"

	"github.com/go-sled/sled/pkg/errors"
	"github.com/go-sled/sled/pkg/frame"
	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/input"
	"github.com/go-sled/sled/pkg/scene"
	"github.com/go-sled/sled/pkg/scroll"
)

// DefaultFrameInterval is how far Pump advances the fake clock before
// each frame, approximating a 60 Hz host.
const DefaultFrameInterval = 16 * time.Millisecond

// Recorder is an errors.ErrorHandler that retains every report it
// receives, so tests assert on failures instead of scraping stderr.
type Recorder struct {
	Errors []*errors.SledError
	Panics []*errors.PanicError
}

// HandleError retains err.
func (r *Recorder) HandleError(err *errors.SledError) {
	r.Errors = append(r.Errors, err)
}

// HandlePanic retains err.
func (r *Recorder) HandlePanic(err *errors.PanicError) {
	r.Panics = append(r.Panics, err)
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.Errors = nil
	r.Panics = nil
}

// Harness owns a fully wired kernel: world, frame scheduler, input
// router, and scroll manager, with a fake clock installed and the
// global error handler swapped for a Recorder. Construct one per test.
//
// The harness plays the host's role. Geometry queued with LayOut is
// written through the scheduler's layout intake on the next Pump, and
// the pointer methods synthesize the event stream a platform would
// deliver between frames.
//
// Installing the harness swaps process-global state (the frame clock
// and the error handler), so harness tests must not run in parallel.
type Harness struct {
	world  *scene.World
	sched  *frame.Scheduler
	router *input.Router
	scroll *scroll.Manager
	clock  *FakeClock

	prevClock frame.Clock
	recorder  *Recorder

	pending map[scene.Entity]scene.GeometrySnapshot

	pointers    map[int]geometry.Offset
	nextPointer int
}

// NewHarness builds a harness. The caller must call Restore when done;
// prefer NewHarnessWithT, which registers the cleanup automatically.
func NewHarness() *Harness {
	world := scene.NewWorld()
	sched := frame.NewScheduler(world)
	router := input.NewRouter(world, sched.Snapshots())

	h := &Harness{
		world:    world,
		sched:    sched,
		router:   router,
		scroll:   scroll.NewManager(sched, router),
		clock:    NewFakeClock(),
		recorder: &Recorder{},
		pending:  make(map[scene.Entity]scene.GeometrySnapshot),
		pointers: make(map[int]geometry.Offset),
	}

	sched.SetLayoutIntake(h.applyPending)
	h.prevClock = frame.SetClock(h.clock)
	errors.SetHandler(h.recorder)
	return h
}

// NewHarnessWithT builds a harness and restores the displaced globals
// when the test finishes.
func NewHarnessWithT(t *testing.T) *Harness {
	t.Helper()
	h := NewHarness()
	t.Cleanup(h.Restore)
	return h
}

// Restore puts back the frame clock and the default error handler.
func (h *Harness) Restore() {
	frame.SetClock(h.prevClock)
	errors.SetHandler(nil)
}

// World returns the scene the harness drives.
func (h *Harness) World() *scene.World { return h.world }

// Scheduler returns the frame scheduler.
func (h *Harness) Scheduler() *frame.Scheduler { return h.sched }

// Router returns the input router events are synthesized through.
func (h *Harness) Router() *input.Router { return h.router }

// Scroll returns the scroll manager.
func (h *Harness) Scroll() *scroll.Manager { return h.scroll }

// Clock returns the fake clock Pump advances.
func (h *Harness) Clock() *FakeClock { return h.clock }

// Errors returns the structured errors reported since the last reset.
func (h *Harness) Errors() []*errors.SledError { return h.recorder.Errors }

// Panics returns the recovered panics reported since the last reset.
func (h *Harness) Panics() []*errors.PanicError { return h.recorder.Panics }

// ResetReports drops recorded errors and panics.
func (h *Harness) ResetReports() { h.recorder.Reset() }

// Snapshot builds a borderless geometry snapshot at device scale 1,
// the common case in tests.
func Snapshot(origin geometry.Offset, size, content geometry.Size) scene.GeometrySnapshot {
	return scene.GeometrySnapshot{
		Origin:       origin,
		Size:         size,
		ContentSize:  content,
		InverseScale: 1,
	}
}

// LayOut queues a geometry snapshot for the entity. The snapshot lands
// during the next Pump's layout intake, not immediately, matching the
// ordering a real layout pass produces. Queuing again before that Pump
// replaces the earlier value.
func (h *Harness) LayOut(e scene.Entity, snap scene.GeometrySnapshot) {
	h.pending[e] = snap
}

// applyPending is the scheduler's layout intake. Entities despawned
// after queuing are skipped.
func (h *Harness) applyPending(w *scene.World, snapshots *scene.Table[scene.GeometrySnapshot]) {
	for e, snap := range h.pending {
		if w.Alive(e) {
			snapshots.Set(e, snap)
		}
	}
	clear(h.pending)
}

// Pump advances the clock by DefaultFrameInterval and runs one frame.
func (h *Harness) Pump() {
	h.PumpFor(DefaultFrameInterval)
}

// PumpFor advances the clock by d and runs one frame.
func (h *Harness) PumpFor(d time.Duration) {
	h.clock.Advance(d)
	h.sched.RunFrame()
}

// PumpFrames runs n frames at the default interval.
func (h *Harness) PumpFrames(n int) {
	for i := 0; i < n; i++ {
		h.Pump()
	}
}

// EntitiesAt returns the hit chain at position, frontmost first.
func (h *Harness) EntitiesAt(position geometry.Offset) []scene.Entity {
	return input.HitTest(h.world, h.sched.Snapshots(), position).Entries
}
