package overlay

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Context owns the registered debug modules. Registration happens at
// startup; the module list is read from packet handlers on the game loop.
type Context struct {
	mu      sync.Mutex
	modules map[string]Module
}

func NewContext() *Context {
	return &Context{modules: make(map[string]Module, 8)}
}

// Register adds a module. Duplicate IDs are a startup bug.
func (c *Context) Register(m Module) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.modules[m.ID()]; exists {
		return fmt.Errorf("overlay module %q already registered", m.ID())
	}
	c.modules[m.ID()] = m
	return nil
}

// Modules returns registered modules sorted by ID.
func (c *Context) Modules() []Module {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Module, 0, len(c.modules))
	for _, m := range c.modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Lookup finds a module by ID.
func (c *Context) Lookup(id string) (Module, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.modules[id]
	return m, ok
}

// Update ticks every module in ID order.
func (c *Context) Update(dt time.Duration) {
	for _, m := range c.Modules() {
		m.Update(dt)
	}
}
