package overlay

import (
	"strings"
	"testing"
	"time"
)

type fakeModule struct {
	id      string
	updates int
}

func (m *fakeModule) ID() string              { return m.id }
func (m *fakeModule) Title() string           { return m.id }
func (m *fakeModule) Description() string     { return "" }
func (m *fakeModule) Update(dt time.Duration) { m.updates++ }

func TestContextRegisterAndLookup(t *testing.T) {
	c := NewContext()
	if err := c.Register(&fakeModule{id: "b"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := c.Register(&fakeModule{id: "a"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := c.Register(&fakeModule{id: "a"}); err == nil {
		t.Error("expected duplicate ID error")
	}

	mods := c.Modules()
	if len(mods) != 2 || mods[0].ID() != "a" || mods[1].ID() != "b" {
		t.Errorf("modules not sorted: %v", mods)
	}

	if _, ok := c.Lookup("a"); !ok {
		t.Error("Lookup missed registered module")
	}
	if _, ok := c.Lookup("zzz"); ok {
		t.Error("Lookup invented a module")
	}
}

func TestContextUpdate(t *testing.T) {
	c := NewContext()
	m := &fakeModule{id: "x"}
	c.Register(m)
	c.Update(time.Millisecond)
	c.Update(time.Millisecond)
	if m.updates != 2 {
		t.Errorf("updates = %d, want 2", m.updates)
	}
}

func TestAbout(t *testing.T) {
	a := NewAbout("corvid", "dev", time.Now().Add(-90*time.Second))
	a.Update(0)
	desc := a.Description()
	if !strings.Contains(desc, "corvid") || !strings.Contains(desc, "dev") {
		t.Errorf("description = %q", desc)
	}
	if !strings.Contains(desc, "1m30s") {
		t.Errorf("uptime missing from %q", desc)
	}
}
