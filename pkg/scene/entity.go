package scene

import "fmt"

// Entity identifies a node in the scene graph.
//
// An Entity packs a slot index and a generation counter. Slots are reused
// after despawn with a bumped generation, so a stale handle held across a
// despawn never resolves to the new occupant. The zero Entity is never
// returned by Spawn and always reads as dead.
type Entity uint64

const entityIndexBits = 32

// NoEntity is the zero Entity. It never refers to a live node.
const NoEntity Entity = 0

func makeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<entityIndexBits | uint64(index))
}

func (e Entity) index() uint32 {
	return uint32(e)
}

func (e Entity) generation() uint32 {
	return uint32(e >> entityIndexBits)
}

// String returns the entity as "<index>v<generation>".
func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.index(), e.generation())
}
