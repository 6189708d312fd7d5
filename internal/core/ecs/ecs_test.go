package ecs

import "testing"

type position struct{ X, Y float64 }
type velocity struct{ VX, VY float64 }
type health struct{ Current, Max int }

func TestEntityIDEncoding(t *testing.T) {
	id := NewEntityID(42, 7)
	if id.Index() != 42 {
		t.Errorf("index = %d, want 42", id.Index())
	}
	if id.Generation() != 7 {
		t.Errorf("generation = %d, want 7", id.Generation())
	}
	if id.IsZero() {
		t.Error("non-zero id reported zero")
	}
}

func TestEntityPoolLifecycle(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	b := p.Create()
	if a.Index() == b.Index() {
		t.Fatal("two live entities share an index")
	}
	if !p.Alive(a) || !p.Alive(b) {
		t.Fatal("fresh entities should be alive")
	}
	if p.Count() != 2 {
		t.Errorf("count = %d, want 2", p.Count())
	}

	p.Destroy(a)
	if p.Alive(a) {
		t.Error("destroyed entity still alive")
	}
	if p.Count() != 1 {
		t.Errorf("count after destroy = %d, want 1", p.Count())
	}

	// Index is recycled with a bumped generation; the stale id stays dead.
	c := p.Create()
	if c.Index() != a.Index() {
		t.Errorf("expected index %d to be recycled, got %d", a.Index(), c.Index())
	}
	if c.Generation() != a.Generation()+1 {
		t.Errorf("generation = %d, want %d", c.Generation(), a.Generation()+1)
	}
	if p.Alive(a) {
		t.Error("stale reference revived by recycling")
	}

	// Destroying a stale reference must not kill the new occupant.
	p.Destroy(a)
	if !p.Alive(c) {
		t.Error("stale destroy killed the recycled entity")
	}
}

func TestEachAlive(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	b := p.Create()
	p.Create()
	p.Destroy(b)

	seen := make(map[EntityID]bool)
	p.EachAlive(func(id EntityID) { seen[id] = true })
	if len(seen) != 2 {
		t.Fatalf("visited %d entities, want 2", len(seen))
	}
	if !seen[a] {
		t.Error("live entity not visited")
	}
	if seen[b] {
		t.Error("dead entity visited")
	}
}

func TestComponentStore(t *testing.T) {
	w := NewWorld()
	positions := RegisterStore[position](w)

	if positions.ComponentName() != "position" {
		t.Errorf("component name = %q", positions.ComponentName())
	}

	e := w.CreateEntity()
	positions.Set(e, &position{X: 1, Y: 2})

	got, ok := positions.Get(e)
	if !ok || got.X != 1 || got.Y != 2 {
		t.Fatalf("Get = %+v, %v", got, ok)
	}
	if !positions.Has(e) || positions.Len() != 1 {
		t.Error("store bookkeeping wrong after Set")
	}

	v, ok := positions.Value(e)
	if !ok {
		t.Fatal("Value should find the component")
	}
	if p, ok := v.(*position); !ok || p.X != 1 {
		t.Errorf("Value = %#v", v)
	}

	positions.Remove(e)
	if positions.Has(e) {
		t.Error("component survived Remove")
	}
}

func TestRegistryRemoveAllAndLookup(t *testing.T) {
	w := NewWorld()
	positions := RegisterStore[position](w)
	healths := RegisterStore[health](w)

	e := w.CreateEntity()
	positions.Set(e, &position{})
	healths.Set(e, &health{Current: 10, Max: 10})

	w.Registry().RemoveAll(e)
	if positions.Has(e) || healths.Has(e) {
		t.Error("RemoveAll left components behind")
	}

	if _, ok := w.Registry().Lookup("health"); !ok {
		t.Error("Lookup failed for registered store")
	}
	if _, ok := w.Registry().Lookup("nope"); ok {
		t.Error("Lookup found unregistered store")
	}
	if len(w.Registry().Stores()) != 2 {
		t.Errorf("store count = %d, want 2", len(w.Registry().Stores()))
	}
}

func TestDeferredDestroy(t *testing.T) {
	w := NewWorld()
	positions := RegisterStore[position](w)

	e := w.CreateEntity()
	positions.Set(e, &position{})

	w.MarkForDestruction(e)
	if !w.Alive(e) {
		t.Fatal("entity destroyed before flush")
	}

	// Double-queue: must only count once.
	w.MarkForDestruction(e)
	if n := w.FlushDestroyQueue(); n != 1 {
		t.Errorf("flush destroyed %d, want 1", n)
	}
	if w.Alive(e) {
		t.Error("entity alive after flush")
	}
	if positions.Has(e) {
		t.Error("components not cleared on flush")
	}
	if n := w.FlushDestroyQueue(); n != 0 {
		t.Errorf("second flush destroyed %d, want 0", n)
	}
}

func TestEach2(t *testing.T) {
	w := NewWorld()
	positions := RegisterStore[position](w)
	velocities := RegisterStore[velocity](w)

	both := w.CreateEntity()
	positions.Set(both, &position{X: 1})
	velocities.Set(both, &velocity{VX: 2})

	posOnly := w.CreateEntity()
	positions.Set(posOnly, &position{X: 9})

	visited := 0
	Each2(positions, velocities, func(id EntityID, p *position, v *velocity) {
		visited++
		if id != both {
			t.Errorf("visited wrong entity %v", id)
		}
		p.X += v.VX
	})
	if visited != 1 {
		t.Fatalf("visited %d entities, want 1", visited)
	}
	if p, _ := positions.Get(both); p.X != 3 {
		t.Errorf("mutation through Each2 lost, X = %v", p.X)
	}
}

func TestEach3PicksAnyOrder(t *testing.T) {
	w := NewWorld()
	positions := RegisterStore[position](w)
	velocities := RegisterStore[velocity](w)
	healths := RegisterStore[health](w)

	e := w.CreateEntity()
	positions.Set(e, &position{})
	velocities.Set(e, &velocity{})
	healths.Set(e, &health{})

	// Pad one store so the smallest-store heuristic exercises a branch.
	pad := w.CreateEntity()
	positions.Set(pad, &position{})

	visited := 0
	Each3(positions, velocities, healths, func(id EntityID, _ *position, _ *velocity, _ *health) {
		visited++
		if id != e {
			t.Errorf("visited wrong entity %v", id)
		}
	})
	if visited != 1 {
		t.Errorf("visited %d entities, want 1", visited)
	}
}

func TestResources(t *testing.T) {
	type clock struct{ Frame uint64 }
	type bounds struct{ W, H float64 }

	r := NewResources()
	SetResource(r, &clock{Frame: 5})
	SetResource(r, &bounds{W: 100, H: 50})

	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
	if c := GetResource[clock](r); c == nil || c.Frame != 5 {
		t.Errorf("clock = %+v", c)
	}

	// Replace keeps one value per type.
	SetResource(r, &clock{Frame: 6})
	if r.Len() != 2 {
		t.Errorf("len after replace = %d, want 2", r.Len())
	}
	if c := GetResource[clock](r); c.Frame != 6 {
		t.Errorf("frame = %d, want 6", c.Frame)
	}

	names := make(map[string]bool)
	r.Each(func(name string, _ any) { names[name] = true })
	if !names["clock"] || !names["bounds"] {
		t.Errorf("Each names = %v", names)
	}

	RemoveResource[clock](r)
	if GetResource[clock](r) != nil {
		t.Error("resource survived remove")
	}
}
