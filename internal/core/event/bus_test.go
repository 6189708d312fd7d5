package event

import "testing"

type damageEvent struct {
	Target uint64
	Amount int
}

type spawnEvent struct {
	Proto string
}

func TestBusDoubleBuffering(t *testing.T) {
	b := NewBus()
	var got []damageEvent
	Subscribe(b, func(ev damageEvent) {
		got = append(got, ev)
	})

	Emit(b, damageEvent{Target: 1, Amount: 5})
	b.DispatchAll()
	if len(got) != 0 {
		t.Fatal("events should not be visible before SwapBuffers")
	}

	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 1 {
		t.Fatalf("delivered = %d, want 1", len(got))
	}
	if got[0].Amount != 5 {
		t.Errorf("amount = %d, want 5", got[0].Amount)
	}

	// Next swap clears the front; nothing new was emitted.
	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 1 {
		t.Errorf("stale events redelivered, total = %d", len(got))
	}
}

func TestBusMultipleHandlers(t *testing.T) {
	b := NewBus()
	calls := 0
	Subscribe(b, func(damageEvent) { calls++ })
	Subscribe(b, func(damageEvent) { calls++ })

	Emit(b, damageEvent{})
	b.SwapBuffers()
	b.DispatchAll()
	if calls != 2 {
		t.Errorf("handler calls = %d, want 2", calls)
	}
}

func TestBusStats(t *testing.T) {
	b := NewBus()
	Emit(b, damageEvent{})
	Emit(b, damageEvent{})
	Emit(b, spawnEvent{Proto: "orc"})
	b.SwapBuffers()

	stats := b.Stats()
	if len(stats) != 2 {
		t.Fatalf("stat entries = %d, want 2", len(stats))
	}
	// Sorted by type name.
	if stats[0].Name != "damageEvent" || stats[1].Name != "spawnEvent" {
		t.Fatalf("unexpected order: %s, %s", stats[0].Name, stats[1].Name)
	}
	if stats[0].LastTick != 2 || stats[0].Total != 2 {
		t.Errorf("damage stats = %+v", stats[0])
	}

	// A quiet tick zeroes LastTick but keeps totals.
	b.SwapBuffers()
	Emit(b, damageEvent{})
	stats = b.Stats()
	if stats[0].LastTick != 0 {
		t.Errorf("last tick = %d, want 0", stats[0].LastTick)
	}
	if stats[0].Total != 3 {
		t.Errorf("total = %d, want 3", stats[0].Total)
	}
}
