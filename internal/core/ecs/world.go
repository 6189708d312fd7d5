package ecs

// World is the top-level ECS container. It owns the entity pool, the component
// registry, world resources, and a deferred destruction queue flushed by the
// cleanup system each tick.
type World struct {
	pool         *EntityPool
	registry     *Registry
	resources    *Resources
	destroyQueue []EntityID
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		resources:    NewResources(),
		destroyQueue: make([]EntityID, 0, 64),
	}
}

func (w *World) Pool() *EntityPool     { return w.pool }
func (w *World) Registry() *Registry   { return w.registry }
func (w *World) Resources() *Resources { return w.resources }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// MarkForDestruction queues an entity for end-of-tick cleanup.
func (w *World) MarkForDestruction(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// FlushDestroyQueue destroys all queued entities and clears their components.
// Called by the cleanup system at the end of each tick.
func (w *World) FlushDestroyQueue() int {
	n := 0
	for _, id := range w.destroyQueue {
		if !w.pool.Alive(id) {
			continue // double-queued or stale
		}
		w.registry.RemoveAll(id)
		w.pool.Destroy(id)
		n++
	}
	w.destroyQueue = w.destroyQueue[:0]
	return n
}

// RegisterStore creates a component store for T and registers it with the
// world registry so destroys and debug enumeration see it.
func RegisterStore[T any](w *World) *PtrComponentStore[T] {
	s := NewPtrComponentStore[T]()
	w.registry.Register(s)
	return s
}
