// Package frame drives the per-frame phase order: deferred commands,
// layout intake, another command flush for setups the intake triggered,
// then the post-layout systems.
package frame

import (
	"time"

	"github.com/go-sled/sled/pkg/errors"
	"github.com/go-sled/sled/pkg/scene"
)

// LayoutIntake is the host callback that writes geometry snapshots for
// nodes whose layout changed. It runs once per frame, before the
// post-layout systems.
type LayoutIntake func(w *scene.World, snapshots *scene.Table[scene.GeometrySnapshot])

// System is a post-layout pass. sinceTick is the change tick at the end
// of the previous frame; components whose ChangedSince(sinceTick) is
// false were not touched since the system last ran.
type System func(w *scene.World, sinceTick uint64)

// Scheduler owns the world and runs its frames.
//
// Input handlers run between frames; their writes land on the tick the
// next frame's systems observe. Everything here is single-threaded.
type Scheduler struct {
	world     *scene.World
	snapshots *scene.Table[scene.GeometrySnapshot]

	intake  LayoutIntake
	systems []System

	sinceTick  uint64
	frameCount uint64
	frameTime  time.Time
}

// NewScheduler creates a scheduler owning a fresh snapshot table on the
// given world.
func NewScheduler(w *scene.World) *Scheduler {
	return &Scheduler{
		world:     w,
		snapshots: scene.NewTable[scene.GeometrySnapshot](w, "GeometrySnapshot"),
	}
}

// World returns the world the scheduler drives.
func (s *Scheduler) World() *scene.World {
	return s.world
}

// Snapshots returns the geometry snapshot table the layout intake
// writes and the systems read.
func (s *Scheduler) Snapshots() *scene.Table[scene.GeometrySnapshot] {
	return s.snapshots
}

// SetLayoutIntake installs the host's layout callback.
func (s *Scheduler) SetLayoutIntake(intake LayoutIntake) {
	s.intake = intake
}

// AddSystem appends a post-layout system. Systems run every frame in
// registration order.
func (s *Scheduler) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
}

// RunFrame executes one frame: flush deferred commands, run the layout
// intake, flush commands the intake queued, run the systems, then
// advance the change tick. A panic anywhere in the frame is reported
// and the frame abandoned; the scheduler stays usable.
func (s *Scheduler) RunFrame() {
	defer errors.Recover("frame.RunFrame")

	s.frameTime = Now()
	s.frameCount++

	s.world.Flush()
	if s.intake != nil {
		s.intake(s.world, s.snapshots)
	}
	s.world.Flush()

	for _, sys := range s.systems {
		sys(s.world, s.sinceTick)
	}

	s.sinceTick = s.world.AdvanceTick()
}

// FrameCount returns the number of frames run so far.
func (s *Scheduler) FrameCount() uint64 {
	return s.frameCount
}

// FrameTime returns the clock reading at the start of the latest frame.
func (s *Scheduler) FrameTime() time.Time {
	return s.frameTime
}
