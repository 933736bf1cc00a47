// Package ecs provides a small sparse-set entity component store.
// Entities are generational ids, components live in typed stores,
// and queries intersect stores with optional predicate filters.
package ecs

// Entity encodes a 32-bit slot index in the lower bits and a 32-bit
// generation in the upper bits. The generation is bumped on destroy so
// stale handles never alias a later entity in the same slot.
type Entity uint64

// NoEntity is the zero handle. It is never returned by Pool.Create.
const NoEntity Entity = 0

func newEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index of the entity.
func (e Entity) Index() uint32 { return uint32(e) }

// Generation returns the generation of the entity.
func (e Entity) Generation() uint32 { return uint32(e >> 32) }

// Pool allocates entity ids with generational indices and a free list.
type Pool struct {
	generations []uint32
	freeList    []uint32
	alive       int
}

// NewPool creates an empty entity pool.
func NewPool() *Pool {
	return &Pool{
		generations: make([]uint32, 0, 256),
		freeList:    make([]uint32, 0, 64),
	}
}

// Create returns a fresh entity, reusing a free slot when one exists.
func (p *Pool) Create() Entity {
	p.alive++
	if n := len(p.freeList); n > 0 {
		idx := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		return newEntity(idx, p.generations[idx])
	}
	idx := uint32(len(p.generations))
	// Generations start at 1 so that no live entity equals NoEntity.
	p.generations = append(p.generations, 1)
	return newEntity(idx, 1)
}

// Alive reports whether e refers to a live entity.
func (p *Pool) Alive(e Entity) bool {
	idx := e.Index()
	if int(idx) >= len(p.generations) {
		return false
	}
	return p.generations[idx] == e.Generation()
}

// Destroy releases the slot of e. Stale or unknown handles are ignored.
func (p *Pool) Destroy(e Entity) bool {
	if !p.Alive(e) {
		return false
	}
	idx := e.Index()
	p.generations[idx]++
	p.freeList = append(p.freeList, idx)
	p.alive--
	return true
}

// Len returns the number of live entities.
func (p *Pool) Len() int {
	return p.alive
}

// Reset forgets every entity. Handles issued before Reset stay invalid
// because generations are kept.
func (p *Pool) Reset() {
	p.freeList = p.freeList[:0]
	for i := range p.generations {
		p.generations[i]++
		p.freeList = append(p.freeList, uint32(i))
	}
	p.alive = 0
}
