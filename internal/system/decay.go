package system

import (
	"time"

	"github.com/corvid/corvid/internal/component"
	"github.com/corvid/corvid/internal/core/ecs"
	"github.com/corvid/corvid/internal/core/event"
	coresys "github.com/corvid/corvid/internal/core/system"
)

// DecaySystem drains health from decaying entities once per second and
// queues drained entities for destruction. Phase 3 (PostUpdate).
type DecaySystem struct {
	world   *ecs.World
	healths *ecs.PtrComponentStore[component.Health]
	bus     *event.Bus
	elapsed time.Duration
}

func NewDecaySystem(world *ecs.World, healths *ecs.PtrComponentStore[component.Health], bus *event.Bus) *DecaySystem {
	return &DecaySystem{world: world, healths: healths, bus: bus}
}

func (s *DecaySystem) Name() string         { return "decay" }
func (s *DecaySystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *DecaySystem) Update(dt time.Duration) {
	s.elapsed += dt
	if s.elapsed < time.Second {
		return
	}
	s.elapsed -= time.Second

	s.healths.Each(func(id ecs.EntityID, h *component.Health) {
		if h.Decay <= 0 || h.Current <= 0 {
			return
		}
		h.Current -= h.Decay
		if h.Current <= 0 {
			h.Current = 0
			event.Emit(s.bus, HealthDepleted{ID: id})
			s.world.MarkForDestruction(id)
		}
	})
}
