package ecs

import "reflect"

// Resources is a typed singleton container for world-level state that does
// not belong to any entity (tables, clocks, bounds). One value per type.
type Resources struct {
	byType map[reflect.Type]any
}

func NewResources() *Resources {
	return &Resources{byType: make(map[reflect.Type]any, 8)}
}

// SetResource stores the resource, replacing any previous value of the same type.
func SetResource[T any](r *Resources, v *T) {
	r.byType[reflect.TypeOf((*T)(nil)).Elem()] = v
}

// GetResource fetches the resource of type T, or nil if absent.
func GetResource[T any](r *Resources) *T {
	v, ok := r.byType[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil
	}
	return v.(*T)
}

// RemoveResource drops the resource of type T.
func RemoveResource[T any](r *Resources) {
	delete(r.byType, reflect.TypeOf((*T)(nil)).Elem())
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.byType)
}

// Each visits every resource with its type name. Pointers alias live data.
func (r *Resources) Each(fn func(name string, value any)) {
	for t, v := range r.byType {
		fn(t.Name(), v)
	}
}
