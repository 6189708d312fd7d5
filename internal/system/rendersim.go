package system

import (
	"time"

	"github.com/corvid/corvid/internal/component"
	"github.com/corvid/corvid/internal/core/ecs"
	coresys "github.com/corvid/corvid/internal/core/system"
	"github.com/corvid/corvid/internal/render"
)

// RenderSimSystem walks visible sprites and feeds the render stats the way
// a draw submission pass would: one draw call per sprite, a texture bind on
// texture change, a shader switch on material change, plus a health-bar
// overlay quad for damaged entities. Phase 3 (PostUpdate).
type RenderSimSystem struct {
	sprites   *ecs.PtrComponentStore[component.Sprite]
	positions *ecs.PtrComponentStore[component.Position]
	healths   *ecs.PtrComponentStore[component.Health]
	stats     *render.StatsCollector
	toggles   *render.Toggles
}

func NewRenderSimSystem(
	sprites *ecs.PtrComponentStore[component.Sprite],
	positions *ecs.PtrComponentStore[component.Position],
	healths *ecs.PtrComponentStore[component.Health],
	stats *render.StatsCollector,
	toggles *render.Toggles,
) *RenderSimSystem {
	return &RenderSimSystem{
		sprites:   sprites,
		positions: positions,
		healths:   healths,
		stats:     stats,
		toggles:   toggles,
	}
}

func (s *RenderSimSystem) Name() string         { return "rendersim" }
func (s *RenderSimSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *RenderSimSystem) Update(_ time.Duration) {
	s.stats.BeginFrame()

	wireframe := s.toggles.Wireframe()
	lastTexture := ""
	lastMaterial := ""

	s.sprites.Each(func(id ecs.EntityID, sp *component.Sprite) {
		if !sp.Visible {
			s.stats.Add(render.FrameStats{EntitiesCulled: 1})
			return
		}

		frame := render.FrameStats{
			DrawCalls:       1,
			Triangles:       int(sp.Triangles),
			EntitiesVisible: 1,
		}
		if wireframe {
			// Wireframe adds a second pass per sprite.
			frame.DrawCalls++
		}
		if sp.Texture != lastTexture {
			frame.TextureBinds = 1
			lastTexture = sp.Texture
		}
		if sp.Material != lastMaterial {
			frame.ShaderSwitches = 1
			lastMaterial = sp.Material
		}
		s.stats.Add(frame)
	})

	// Overlay pass: damaged on-screen entities draw a health-bar quad at
	// their position.
	ecs.Each3(s.sprites, s.positions, s.healths,
		func(id ecs.EntityID, sp *component.Sprite, _ *component.Position, h *component.Health) {
			if !sp.Visible || h.Current >= h.Max {
				return
			}
			s.stats.Add(render.FrameStats{DrawCalls: 1, Triangles: 2})
		})
}
