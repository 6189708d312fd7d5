package ecs

import "reflect"

// Store is implemented by all component stores. Beyond bulk removal it
// exposes just enough to let debug tooling enumerate components without
// knowing their concrete types.
type Store interface {
	ComponentName() string
	Remove(id EntityID)
	Has(id EntityID) bool
	Len() int
	// Value returns the component as *T wrapped in any, for reflective
	// inspection. The pointer aliases live data.
	Value(id EntityID) (any, bool)
	EachEntity(fn func(EntityID))
}

// PtrComponentStore is a generic typed map store for ECS components.
// Hot-path access (Set/Get/Each) is pure generics; reflect is used once at
// construction to resolve the component name for inspection.
type PtrComponentStore[T any] struct {
	name string
	data map[EntityID]*T
}

func NewPtrComponentStore[T any]() *PtrComponentStore[T] {
	return &PtrComponentStore[T]{
		name: reflect.TypeOf((*T)(nil)).Elem().Name(),
		data: make(map[EntityID]*T, 256),
	}
}

func (s *PtrComponentStore[T]) ComponentName() string {
	return s.name
}

func (s *PtrComponentStore[T]) Set(id EntityID, c *T) {
	s.data[id] = c
}

func (s *PtrComponentStore[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *PtrComponentStore[T]) Remove(id EntityID) {
	delete(s.data, id)
}

func (s *PtrComponentStore[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *PtrComponentStore[T]) Len() int {
	return len(s.data)
}

func (s *PtrComponentStore[T]) Value(id EntityID) (any, bool) {
	c, ok := s.data[id]
	if !ok {
		return nil, false
	}
	return c, true
}

func (s *PtrComponentStore[T]) EachEntity(fn func(EntityID)) {
	for id := range s.data {
		fn(id)
	}
}

func (s *PtrComponentStore[T]) Each(fn func(EntityID, *T)) {
	for id, c := range s.data {
		fn(id, c)
	}
}
