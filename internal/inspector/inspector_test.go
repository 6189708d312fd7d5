package inspector

import (
	"strings"
	"testing"

	"github.com/corvid/corvid/internal/core/ecs"
	"github.com/corvid/corvid/internal/core/event"
)

type Position struct {
	X, Y float64
}

type Health struct {
	Current int32
	Max     int32
}

type Tag struct {
	Label string
}

type WorldClock struct {
	Tick uint64
}

func buildWorld(t *testing.T) (*Inspector, *ecs.World, *ecs.PtrComponentStore[Position], *ecs.PtrComponentStore[Health]) {
	t.Helper()
	w := ecs.NewWorld()
	positions := ecs.RegisterStore[Position](w)
	healths := ecs.RegisterStore[Health](w)
	bus := event.NewBus()
	return New(w, bus), w, positions, healths
}

func TestEntitiesListingAndFilter(t *testing.T) {
	in, w, positions, healths := buildWorld(t)

	a := w.CreateEntity()
	positions.Set(a, &Position{X: 1})
	healths.Set(a, &Health{Current: 10, Max: 10})

	b := w.CreateEntity()
	positions.Set(b, &Position{X: 2})

	rows, total, err := in.Entities("", 0)
	if err != nil {
		t.Fatalf("Entities: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("total = %d, rows = %d, want 2/2", total, len(rows))
	}
	if len(rows[0].Components) != 2 || rows[0].Components[0] != "Health" {
		t.Errorf("components = %v, want sorted [Health Position]", rows[0].Components)
	}

	rows, total, err = in.Entities("Health", 0)
	if err != nil {
		t.Fatalf("filtered Entities: %v", err)
	}
	if total != 1 || rows[0].ID != a {
		t.Errorf("filter by Health: total = %d, id = %v", total, rows[0].ID)
	}

	rows, total, _ = in.Entities("", 1)
	if total != 2 || len(rows) != 1 {
		t.Errorf("limit 1: total = %d, rows = %d", total, len(rows))
	}

	if _, _, err := in.Entities("Ghost", 0); err == nil {
		t.Error("expected error for unknown filter component")
	}
}

func TestDetail(t *testing.T) {
	in, w, positions, _ := buildWorld(t)
	id := w.CreateEntity()
	positions.Set(id, &Position{X: 3.5, Y: -1})

	d, err := in.Detail(id)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if len(d.Components) != 1 || d.Components[0].Name != "Position" {
		t.Fatalf("components = %+v", d.Components)
	}
	fields := d.Components[0].Fields
	if len(fields) != 2 {
		t.Fatalf("fields = %+v", fields)
	}
	if fields[0].Name != "X" || fields[0].Type != "float64" || fields[0].Value != "3.5" {
		t.Errorf("field X = %+v", fields[0])
	}

	w.MarkForDestruction(id)
	w.FlushDestroyQueue()
	if _, err := in.Detail(id); err == nil {
		t.Error("expected error for dead entity")
	}
}

func TestComponentTypes(t *testing.T) {
	in, w, positions, _ := buildWorld(t)
	positions.Set(w.CreateEntity(), &Position{})
	positions.Set(w.CreateEntity(), &Position{})

	types := in.ComponentTypes()
	if len(types) != 2 {
		t.Fatalf("types = %+v", types)
	}
	// Sorted by name: Health then Position.
	if types[0].Name != "Health" || types[0].Count != 0 {
		t.Errorf("types[0] = %+v", types[0])
	}
	if types[1].Name != "Position" || types[1].Count != 2 {
		t.Errorf("types[1] = %+v", types[1])
	}
}

func TestResourceList(t *testing.T) {
	in, w, _, _ := buildWorld(t)
	ecs.SetResource(w.Resources(), &WorldClock{Tick: 42})

	list := in.ResourceList()
	if len(list) != 1 || list[0].Name != "WorldClock" {
		t.Fatalf("resources = %+v", list)
	}
	if !strings.Contains(list[0].Value, "42") {
		t.Errorf("value = %q", list[0].Value)
	}
}

func TestEventStats(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.NewBus()
	in := New(w, bus)

	event.Emit(bus, Tag{Label: "x"})
	bus.SwapBuffers()

	stats := in.EventStats()
	if len(stats) != 1 || stats[0].Name != "Tag" || stats[0].LastTick != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSetField(t *testing.T) {
	in, w, positions, healths := buildWorld(t)
	id := w.CreateEntity()
	positions.Set(id, &Position{})
	healths.Set(id, &Health{Current: 10, Max: 10})

	if err := in.SetField(id, "Position", "X", "7.25"); err != nil {
		t.Fatalf("SetField float: %v", err)
	}
	if p, _ := positions.Get(id); p.X != 7.25 {
		t.Errorf("X = %v, want 7.25", p.X)
	}

	if err := in.SetField(id, "Health", "Current", "3"); err != nil {
		t.Fatalf("SetField int: %v", err)
	}
	if h, _ := healths.Get(id); h.Current != 3 {
		t.Errorf("Current = %d, want 3", h.Current)
	}

	if err := in.SetField(id, "Health", "Current", "not-a-number"); err == nil {
		t.Error("expected parse error")
	}
	if err := in.SetField(id, "Health", "Ghost", "1"); err == nil {
		t.Error("expected unknown field error")
	}
	if err := in.SetField(id, "Ghost", "X", "1"); err == nil {
		t.Error("expected unknown component error")
	}
	if err := in.SetField(id, "Health", "Current", "99999999999999999999"); err == nil {
		t.Error("expected overflow error")
	}
}
