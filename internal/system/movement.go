package system

import (
	"time"

	"github.com/corvid/corvid/internal/component"
	"github.com/corvid/corvid/internal/core/ecs"
	"github.com/corvid/corvid/internal/core/event"
	coresys "github.com/corvid/corvid/internal/core/system"
	"github.com/corvid/corvid/internal/data"
)

// MovementSystem integrates velocities and bounces entities off the scene
// bounds. Phase 2 (Update).
type MovementSystem struct {
	positions  *ecs.PtrComponentStore[component.Position]
	velocities *ecs.PtrComponentStore[component.Velocity]
	bounds     data.Bounds
	bus        *event.Bus
}

func NewMovementSystem(
	positions *ecs.PtrComponentStore[component.Position],
	velocities *ecs.PtrComponentStore[component.Velocity],
	bounds data.Bounds,
	bus *event.Bus,
) *MovementSystem {
	return &MovementSystem{
		positions:  positions,
		velocities: velocities,
		bounds:     bounds,
		bus:        bus,
	}
}

func (s *MovementSystem) Name() string         { return "movement" }
func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MovementSystem) Update(dt time.Duration) {
	step := dt.Seconds()
	ecs.Each2(s.positions, s.velocities, func(id ecs.EntityID, pos *component.Position, vel *component.Velocity) {
		pos.X += vel.DX * step
		pos.Y += vel.DY * step

		bounced := false
		if pos.X < 0 {
			pos.X = -pos.X
			vel.DX = -vel.DX
			bounced = true
		} else if pos.X > s.bounds.Width {
			pos.X = 2*s.bounds.Width - pos.X
			vel.DX = -vel.DX
			bounced = true
		}
		if pos.Y < 0 {
			pos.Y = -pos.Y
			vel.DY = -vel.DY
			bounced = true
		} else if pos.Y > s.bounds.Height {
			pos.Y = 2*s.bounds.Height - pos.Y
			vel.DY = -vel.DY
			bounced = true
		}
		if bounced {
			event.Emit(s.bus, WallBounce{ID: id})
		}
	})
}
