package scene

import "github.com/go-sled/sled/pkg/errors"

// Table stores one component type keyed by entity.
//
// Every write records the world's current change tick, so systems can
// cheaply skip entities whose component has not changed since their last
// run. OnAdd hooks fire when a component first lands on an entity; hooks
// that need structural changes should queue them via World.Defer rather
// than mutating the store mid-notification.
type Table[T any] struct {
	world    *World
	name     string
	data     map[Entity]T
	modified map[Entity]uint64
	onAdd    []func(*World, Entity)
}

// NewTable registers a component table with the world. The name appears
// in lookup errors.
func NewTable[T any](w *World, name string) *Table[T] {
	t := &Table[T]{
		world:    w,
		name:     name,
		data:     make(map[Entity]T),
		modified: make(map[Entity]uint64),
	}
	w.tables = append(w.tables, t)
	return t
}

// Name returns the component name used in error messages.
func (t *Table[T]) Name() string {
	return t.name
}

// Set writes the component on a live entity, recording the current
// change tick. The first write to an entity fires OnAdd hooks.
func (t *Table[T]) Set(e Entity, value T) {
	if !t.world.Alive(e) {
		errors.Misusef("scene.Table.Set", "%s written to dead entity %s", t.name, e)
	}
	_, existed := t.data[e]
	t.data[e] = value
	t.modified[e] = t.world.tick
	if !existed {
		for _, hook := range t.onAdd {
			hook(t.world, e)
		}
	}
}

// Get returns the component, if present.
func (t *Table[T]) Get(e Entity) (T, bool) {
	v, ok := t.data[e]
	return v, ok
}

// Has reports whether the entity carries this component.
func (t *Table[T]) Has(e Entity) bool {
	_, ok := t.data[e]
	return ok
}

// Update mutates the component in place through fn and records the
// change tick once. It returns false without calling fn when the
// component is absent.
func (t *Table[T]) Update(e Entity, fn func(*T)) bool {
	v, ok := t.data[e]
	if !ok {
		return false
	}
	fn(&v)
	t.data[e] = v
	t.modified[e] = t.world.tick
	return true
}

// Remove deletes the component without despawning the entity.
func (t *Table[T]) Remove(e Entity) {
	delete(t.data, e)
	delete(t.modified, e)
}

// Entities returns all entities carrying this component, ordered by
// slot index for deterministic iteration.
func (t *Table[T]) Entities() []Entity {
	out := make([]Entity, 0, len(t.data))
	for e := range t.data {
		out = append(out, e)
	}
	sortEntities(out)
	return out
}

// ChangedSince reports whether the entity's component was written after
// the given tick. Absent components report false.
func (t *Table[T]) ChangedSince(e Entity, tick uint64) bool {
	mod, ok := t.modified[e]
	return ok && mod > tick
}

// OnAdd registers a hook fired the first time the component lands on an
// entity.
func (t *Table[T]) OnAdd(hook func(*World, Entity)) {
	t.onAdd = append(t.onAdd, hook)
}

// drop implements componentDropper for despawn cleanup.
func (t *Table[T]) drop(e Entity) {
	delete(t.data, e)
	delete(t.modified, e)
}
