// Package scroll synchronizes scrollable regions with their scrollbars.
//
// A pair is created by attaching a Scrollbar component to a track node,
// naming the region it controls. Setup runs at the next command flush:
// it binds the pair exclusively, resolves the scrolled axis from the
// region's overflow configuration, spawns a draggable thumb as the
// track's child, and registers wheel, drag, and click handlers with the
// input router. From then on every input path funnels through
// Manager.ApplyDelta, which clamps the scroll offset and moves the
// thumb in a single write so the two can never disagree.
//
// Thumb length follows region geometry one step behind: a per-frame
// system watches for geometry and offset changes and rederives the
// thumb's size and position from the latest layout snapshots. That
// tradeoff avoids measuring content inside the input path.
package scroll

import (
	stderrors "errors"
	"fmt"

	"github.com/go-sled/sled/pkg/errors"
	"github.com/go-sled/sled/pkg/frame"
	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/input"
	"github.com/go-sled/sled/pkg/scene"
	"github.com/go-sled/sled/pkg/text"
)

const opSetup = "scroll.setup"

// Manager owns the scroll component tables, the scrollbar pair
// registry, and the per-frame sync system. Create one per scheduler
// and attach scrollbars through it.
type Manager struct {
	world     *scene.World
	snapshots *scene.Table[scene.GeometrySnapshot]
	router    *input.Router

	scrollables *scene.Table[Scrollable]
	scrollbars  *scene.Table[Scrollbar]
	thumbs      *scene.Table[Thumb]
	overflow    *scene.Table[geometry.OverflowAxes]
	pairs       *scene.Registry
}

// NewManager wires the scroll tables into the scheduler's world and
// schedules the sync system after layout intake.
func NewManager(sched *frame.Scheduler, router *input.Router) *Manager {
	w := sched.World()
	m := &Manager{
		world:       w,
		snapshots:   sched.Snapshots(),
		router:      router,
		scrollables: scene.NewTable[Scrollable](w, "Scrollable"),
		scrollbars:  scene.NewTable[Scrollbar](w, "Scrollbar"),
		thumbs:      scene.NewTable[Thumb](w, "Thumb"),
		overflow:    scene.NewTable[geometry.OverflowAxes](w, "Overflow"),
		pairs:       scene.NewRegistry(w, "scrollbar"),
	}
	m.scrollbars.OnAdd(func(w *scene.World, bar scene.Entity) {
		w.Defer(func(*scene.World) { m.setup(bar) })
	})
	sched.AddSystem(m.sync)
	return m
}

// Scrollables returns the region component table.
func (m *Manager) Scrollables() *scene.Table[Scrollable] {
	return m.scrollables
}

// Scrollbars returns the track component table.
func (m *Manager) Scrollbars() *scene.Table[Scrollbar] {
	return m.scrollbars
}

// Thumbs returns the thumb component table. Hosts read it to draw.
func (m *Manager) Thumbs() *scene.Table[Thumb] {
	return m.thumbs
}

// Overflow returns the per-node overflow table. Configure a region's
// overflow before attaching its scrollbar to pick the scrolled axis.
func (m *Manager) Overflow() *scene.Table[geometry.OverflowAxes] {
	return m.overflow
}

// PartnerOf returns the other half of a scrollbar pair: the region for
// a track, the track for a region.
func (m *Manager) PartnerOf(e scene.Entity) (scene.Entity, bool) {
	return m.pairs.PartnerOf(e)
}

// ThumbOf returns the thumb spawned for a track.
func (m *Manager) ThumbOf(bar scene.Entity) (scene.Entity, bool) {
	for _, child := range m.world.ChildrenOf(bar) {
		if m.thumbs.Has(child) {
			return child, true
		}
	}
	return scene.NoEntity, false
}

// Attach turns e into a scrollbar for config.Target. Setup completes at
// the next command flush; until then the bar is inert.
func (m *Manager) Attach(e scene.Entity, config Scrollbar) {
	m.scrollbars.Set(e, config)
}

// setup runs deferred after Attach. A missing or dead target aborts
// with a warning, leaving the bar inert. Pairing an entity that is
// already half of another pair panics as API misuse.
func (m *Manager) setup(bar scene.Entity) {
	if !m.world.Alive(bar) {
		return // despawned before the command ran
	}
	config, ok := m.scrollbars.Get(bar)
	if !ok {
		return
	}
	target := config.Target
	if !m.world.Alive(target) {
		m.warnSetup(bar, fmt.Errorf("scrollable entity %s does not exist", target))
		return
	}
	if target == bar {
		m.warnSetup(bar, fmt.Errorf("scrollbar cannot scroll itself"))
		return
	}
	if err := m.pairs.Bind(bar, target); err != nil {
		if stderrors.Is(err, scene.ErrAlreadyBound) {
			errors.Misusef(opSetup, "cannot pair scrollbar %s with %s: %v", bar, target, err)
		}
		m.warnSetup(bar, err)
		return
	}

	m.resolveAxis(target)

	thumb := m.world.Spawn()
	m.world.SetParent(thumb, bar)
	m.thumbs.Set(thumb, Thumb{Color: config.thumbColor()})

	m.router.OnWheel(target, m.wheelHandler(target))
	m.router.OnDrag(thumb, m.dragHandler(thumb))
	m.router.OnClick(thumb, consumeThumbClick)
	m.router.OnClick(bar, m.troughClickHandler(bar))
}

// resolveAxis fixes the region's scrolled axis from its overflow
// configuration. An axis already set to scroll wins, vertical before
// horizontal; with neither set the region defaults to vertical and its
// overflow is upgraded so the host clips and scrolls it. Vertical
// regions without line metrics get the defaults so line wheel deltas
// resolve to pixels.
func (m *Manager) resolveAxis(region scene.Entity) {
	axes, _ := m.overflow.Get(region)
	axis := geometry.Vertical
	switch {
	case axes.Allows(geometry.Vertical):
	case axes.Allows(geometry.Horizontal):
		axis = geometry.Horizontal
	default:
		axes.Y = geometry.OverflowScroll
		m.overflow.Set(region, axes)
	}

	s, _ := m.scrollables.Get(region)
	s.Axis = axis
	if axis == geometry.Vertical && s.Metrics == nil {
		metrics := text.DefaultLineMetrics()
		s.Metrics = &metrics
	}
	m.scrollables.Set(region, s)
}

func (m *Manager) warnSetup(bar scene.Entity, err error) {
	errors.Report(&errors.SledError{
		Op:     opSetup,
		Kind:   errors.KindSetup,
		Err:    fmt.Errorf("scrollbar setup aborted: %w", err),
		Entity: bar.String(),
	})
}
