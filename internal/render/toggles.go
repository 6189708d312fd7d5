package render

import (
	"fmt"
	"sync/atomic"
)

// Toggles are debug draw switches read by the render path every frame and
// flipped from the console, hence atomics.
type Toggles struct {
	wireframe atomic.Bool
	overdraw  atomic.Bool
	bounds    atomic.Bool
}

func NewToggles() *Toggles {
	return &Toggles{}
}

func (t *Toggles) Wireframe() bool { return t.wireframe.Load() }
func (t *Toggles) Overdraw() bool  { return t.overdraw.Load() }
func (t *Toggles) Bounds() bool    { return t.bounds.Load() }

// Set flips one named toggle. Returns the new state.
func (t *Toggles) Set(name string, on bool) (bool, error) {
	switch name {
	case "wireframe":
		t.wireframe.Store(on)
	case "overdraw":
		t.overdraw.Store(on)
	case "bounds":
		t.bounds.Store(on)
	default:
		return false, fmt.Errorf("unknown render toggle %q (wireframe|overdraw|bounds)", name)
	}
	return on, nil
}

// Flip toggles one named switch and returns the new state.
func (t *Toggles) Flip(name string) (bool, error) {
	switch name {
	case "wireframe":
		return t.flip(&t.wireframe), nil
	case "overdraw":
		return t.flip(&t.overdraw), nil
	case "bounds":
		return t.flip(&t.bounds), nil
	}
	return false, fmt.Errorf("unknown render toggle %q (wireframe|overdraw|bounds)", name)
}

func (t *Toggles) flip(b *atomic.Bool) bool {
	for {
		old := b.Load()
		if b.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// States lists all toggles and their current state.
func (t *Toggles) States() map[string]bool {
	return map[string]bool{
		"wireframe": t.wireframe.Load(),
		"overdraw":  t.overdraw.Load(),
		"bounds":    t.bounds.Load(),
	}
}
