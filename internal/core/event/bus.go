package event

import (
	"reflect"
	"sort"
	"sync"
)

// Bus is a double-buffered event bus. Events emitted in tick N are readable
// in tick N+1. SwapBuffers() is called at tick start by the host loop.
// The bus also keeps per-type emit counters so debug tooling can show what
// the world is publishing without subscribing to everything.
type Bus struct {
	mu       sync.Mutex // only protects handler registration
	front    map[reflect.Type][]any
	back     map[reflect.Type][]any
	handlers map[reflect.Type][]any

	lastTick map[reflect.Type]uint64
	totals   map[reflect.Type]uint64
}

func NewBus() *Bus {
	return &Bus{
		front:    make(map[reflect.Type][]any),
		back:     make(map[reflect.Type][]any),
		handlers: make(map[reflect.Type][]any),
		lastTick: make(map[reflect.Type]uint64),
		totals:   make(map[reflect.Type]uint64),
	}
}

// Emit queues an event into the back buffer (will be readable next tick).
func Emit[T any](b *Bus, event T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.back[t] = append(b.back[t], event)
	b.totals[t]++
}

// Subscribe registers a typed handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], fn)
}

// SwapBuffers rotates the back buffer to the front, clears the new back
// buffer, and snapshots
// the per-type counts of the tick that just became readable.
// Called once at tick start.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front
	for k := range b.back {
		b.back[k] = b.back[k][:0]
	}
	for t := range b.lastTick {
		b.lastTick[t] = 0
	}
	for t, events := range b.front {
		b.lastTick[t] = uint64(len(events))
	}
}

// DispatchAll delivers all front-buffer events to their subscribed handlers.
func (b *Bus) DispatchAll() {
	for t, events := range b.front {
		handlers := b.handlers[t]
		for _, ev := range events {
			for _, h := range handlers {
				callHandler(h, ev)
			}
		}
	}
}

func callHandler(handler any, event any) {
	reflect.ValueOf(handler).Call([]reflect.Value{reflect.ValueOf(event)})
}

// Stat describes emit activity for one event type.
type Stat struct {
	Name     string
	LastTick uint64
	Total    uint64
}

// Stats reports per-type emit counts, sorted by name.
func (b *Bus) Stats() []Stat {
	out := make([]Stat, 0, len(b.totals))
	for t, total := range b.totals {
		out = append(out, Stat{
			Name:     t.Name(),
			LastTick: b.lastTick[t],
			Total:    total,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
