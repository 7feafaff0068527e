// Package scene provides the entity store the sled kernel runs against:
// an arena of generational entities, typed component tables with change
// ticks, parent/child links, 1:1 relationship registries with cascade
// delete, and a deferred command queue flushed at frame sync points.
//
// The store is single-threaded by contract. All access happens on the
// frame goroutine: input handlers run to completion one at a time and the
// per-frame systems run between them, so no locking is needed for
// exclusive mutable access during a handler's execution.
package scene

import (
	"sort"

	"github.com/go-sled/sled/pkg/errors"
)

// componentDropper is the non-generic view of a component table used by
// the world to clear storage when an entity despawns.
type componentDropper interface {
	drop(Entity)
}

// World owns all entities and their links.
type World struct {
	generations []uint32
	alive       []bool
	freeList    []uint32

	parents  map[Entity]Entity
	children map[Entity][]Entity

	tables     []componentDropper
	registries []*Registry

	tick     uint64
	deferred []func(*World)
	flushing bool
}

// NewWorld creates an empty world. The tick counter starts at 1 so that
// a "changed since 0" query sees every component ever written.
func NewWorld() *World {
	return &World{
		parents:  make(map[Entity]Entity),
		children: make(map[Entity][]Entity),
		tick:     1,
	}
}

// Tick returns the current change tick.
func (w *World) Tick() uint64 {
	return w.tick
}

// AdvanceTick increments the change tick and returns the previous value.
// The frame scheduler calls this once per frame; systems remember the
// returned value to gate their next run on components changed since.
func (w *World) AdvanceTick() uint64 {
	prev := w.tick
	w.tick++
	return prev
}

// Spawn allocates a new live entity.
func (w *World) Spawn() Entity {
	if n := len(w.freeList); n > 0 {
		index := w.freeList[n-1]
		w.freeList = w.freeList[:n-1]
		w.generations[index]++
		w.alive[index] = true
		return makeEntity(index, w.generations[index])
	}
	index := uint32(len(w.generations))
	w.generations = append(w.generations, 1)
	w.alive = append(w.alive, true)
	return makeEntity(index, 1)
}

// Alive reports whether the entity refers to a live node.
func (w *World) Alive(e Entity) bool {
	index := e.index()
	return e != NoEntity &&
		index < uint32(len(w.generations)) &&
		w.alive[index] &&
		w.generations[index] == e.generation()
}

// Despawn destroys the entity, its descendants, and any relationship
// partners (recursively, so a partner's own children go too). Component
// storage for every destroyed entity is dropped. Despawning a dead
// entity is a no-op.
func (w *World) Despawn(e Entity) {
	if !w.Alive(e) {
		return
	}
	doomed := map[Entity]struct{}{}
	w.collectDoomed(e, doomed)
	for victim := range doomed {
		w.destroy(victim)
	}
}

// collectDoomed walks children and relationship partners transitively.
func (w *World) collectDoomed(e Entity, doomed map[Entity]struct{}) {
	if _, seen := doomed[e]; seen || !w.Alive(e) {
		return
	}
	doomed[e] = struct{}{}
	for _, child := range w.children[e] {
		w.collectDoomed(child, doomed)
	}
	for _, r := range w.registries {
		if partner, ok := r.PartnerOf(e); ok {
			w.collectDoomed(partner, doomed)
		}
	}
}

// destroy tears down a single entity without cascading.
func (w *World) destroy(e Entity) {
	for _, t := range w.tables {
		t.drop(e)
	}
	for _, r := range w.registries {
		r.unbind(e)
	}
	if parent, ok := w.parents[e]; ok {
		w.detachFromParent(e, parent)
	}
	for _, child := range w.children[e] {
		delete(w.parents, child)
	}
	delete(w.children, e)

	index := e.index()
	w.alive[index] = false
	w.freeList = append(w.freeList, index)
}

func (w *World) detachFromParent(child, parent Entity) {
	delete(w.parents, child)
	siblings := w.children[parent]
	for i, c := range siblings {
		if c == child {
			w.children[parent] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
}

// SetParent makes child a child of parent, appended after any existing
// children. Both entities must be alive; violating that is a wiring
// error and fails loudly.
func (w *World) SetParent(child, parent Entity) {
	if !w.Alive(child) || !w.Alive(parent) {
		errors.Misusef("scene.SetParent", "dead entity in link %s -> %s", child, parent)
	}
	if prev, ok := w.parents[child]; ok {
		w.detachFromParent(child, prev)
	}
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
}

// ParentOf returns the entity's parent, if it has one.
func (w *World) ParentOf(e Entity) (Entity, bool) {
	parent, ok := w.parents[e]
	return parent, ok
}

// ChildrenOf returns the entity's children in attachment order.
func (w *World) ChildrenOf(e Entity) []Entity {
	kids := w.children[e]
	out := make([]Entity, len(kids))
	copy(out, kids)
	return out
}

// Defer queues a command to run at the next Flush. Structural mutations
// triggered mid-iteration (spawning, binding, handler registration) go
// through here so in-flight reads of the store stay valid.
func (w *World) Defer(cmd func(*World)) {
	w.deferred = append(w.deferred, cmd)
}

// Flush runs all queued commands in order. Commands queued by commands
// run within the same flush. Nested Flush calls are no-ops.
func (w *World) Flush() {
	if w.flushing {
		return
	}
	w.flushing = true
	defer func() { w.flushing = false }()
	for len(w.deferred) > 0 {
		batch := w.deferred
		w.deferred = nil
		for _, cmd := range batch {
			cmd(w)
		}
	}
}

// sortEntities orders entities by slot index for deterministic iteration.
func sortEntities(entities []Entity) {
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].index() < entities[j].index()
	})
}
