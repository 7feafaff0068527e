package scene

import stderrors "errors"

// ErrAlreadyBound is returned by Registry.Bind when either entity
// already participates in a different pair of the same kind.
var ErrAlreadyBound = stderrors.New("entity already bound")

// Registry maintains an exclusive 1:1 bidirectional relationship between
// entities, such as a scrollbar and the region it controls.
//
// There is no public unbind. The relationship dissolves only through
// despawn, which cascades: destroying either endpoint destroys the other
// (and the other's children with it).
type Registry struct {
	world    *World
	name     string
	partners map[Entity]Entity
}

// NewRegistry registers a relationship kind with the world so despawn
// cascade can see its pairs.
func NewRegistry(w *World, name string) *Registry {
	r := &Registry{
		world:    w,
		name:     name,
		partners: make(map[Entity]Entity),
	}
	w.registries = append(w.registries, r)
	return r
}

// Name returns the relationship kind's name.
func (r *Registry) Name() string {
	return r.name
}

// Bind links a and b exclusively. Re-binding an existing pair is a
// no-op; binding an entity that already has a different partner returns
// ErrAlreadyBound. Callers that cannot tolerate the error should treat
// it as a precondition violation.
func (r *Registry) Bind(a, b Entity) error {
	if !r.world.Alive(a) || !r.world.Alive(b) {
		return stderrors.New("cannot bind dead entity")
	}
	existingA, boundA := r.partners[a]
	existingB, boundB := r.partners[b]
	if boundA && existingA == b && boundB && existingB == a {
		return nil
	}
	if boundA || boundB {
		return ErrAlreadyBound
	}
	r.partners[a] = b
	r.partners[b] = a
	return nil
}

// PartnerOf returns the entity's relationship partner, if bound.
func (r *Registry) PartnerOf(e Entity) (Entity, bool) {
	partner, ok := r.partners[e]
	return partner, ok
}

// Bound reports whether the entity participates in a pair.
func (r *Registry) Bound(e Entity) bool {
	_, ok := r.partners[e]
	return ok
}

// unbind clears the pair containing e during despawn teardown.
func (r *Registry) unbind(e Entity) {
	if partner, ok := r.partners[e]; ok {
		delete(r.partners, partner)
		delete(r.partners, e)
	}
}
