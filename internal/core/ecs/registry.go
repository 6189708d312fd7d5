package ecs

// Registry tracks all component stores. It supports bulk cleanup on entity
// destroy and store enumeration for debug tooling.
type Registry struct {
	stores []Store
	byName map[string]Store
}

func NewRegistry() *Registry {
	return &Registry{
		stores: make([]Store, 0, 16),
		byName: make(map[string]Store, 16),
	}
}

// Register adds a component store to the registry. Registering a second
// store under the same component name replaces the lookup entry but keeps
// both for cleanup; callers are expected to register each type once.
func (r *Registry) Register(store Store) {
	r.stores = append(r.stores, store)
	r.byName[store.ComponentName()] = store
}

// RemoveAll clears the given entity from every registered component store.
func (r *Registry) RemoveAll(id EntityID) {
	for _, s := range r.stores {
		s.Remove(id)
	}
}

// Stores returns all registered stores in registration order.
func (r *Registry) Stores() []Store {
	return r.stores
}

// Lookup finds a store by component name.
func (r *Registry) Lookup(name string) (Store, bool) {
	s, ok := r.byName[name]
	return s, ok
}
