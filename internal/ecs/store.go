package ecs

// Storage is the type-erased view of a component store used by queries
// and by entity removal.
type Storage interface {
	Has(e Entity) bool
	Remove(e Entity)
	Len() int
	Entities() []Entity
	Clear()
}

// Store is a sparse set holding one component type.
// Iteration follows insertion order and removal keeps that order stable.
type Store[T any] struct {
	index    map[Entity]int
	entities []Entity
	values   []T
}

// NewStore creates an empty component store for T.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[Entity]int),
		entities: make([]Entity, 0, 64),
		values:   make([]T, 0, 64),
	}
}

// Set inserts or replaces the component of e.
func (s *Store[T]) Set(e Entity, v T) {
	if i, ok := s.index[e]; ok {
		s.values[i] = v
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, v)
}

// Get returns a copy of the component of e.
func (s *Store[T]) Get(e Entity) (T, bool) {
	i, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

// Ptr returns a pointer to the stored component for in-place mutation.
// The pointer is invalidated by the next Set or Remove on this store.
func (s *Store[T]) Ptr(e Entity) *T {
	i, ok := s.index[e]
	if !ok {
		return nil
	}
	return &s.values[i]
}

// Has reports whether e has this component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Remove detaches the component from e. Missing entries are ignored.
func (s *Store[T]) Remove(e Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	delete(s.index, e)
	copy(s.entities[i:], s.entities[i+1:])
	copy(s.values[i:], s.values[i+1:])
	last := len(s.entities) - 1
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j]] = j
	}
}

// Len returns the number of entities holding this component.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Entities returns a snapshot of the entities holding this component.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Each calls fn for every entry in insertion order.
// fn must not add or remove entries of this store.
func (s *Store[T]) Each(fn func(e Entity, v *T)) {
	for i := range s.entities {
		fn(s.entities[i], &s.values[i])
	}
}

// Clear removes every entry.
func (s *Store[T]) Clear() {
	clear(s.index)
	clear(s.values)
	s.entities = s.entities[:0]
	s.values = s.values[:0]
}
