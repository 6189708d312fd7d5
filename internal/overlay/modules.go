package overlay

import (
	"fmt"
	"time"

	"github.com/corvid/corvid/internal/core/ecs"
	"github.com/corvid/corvid/internal/profiler"
	"github.com/corvid/corvid/internal/render"
)

// ProfilerModule surfaces the frame profiler in the module list.
type ProfilerModule struct {
	prof *profiler.Profiler
}

func NewProfilerModule(p *profiler.Profiler) *ProfilerModule {
	return &ProfilerModule{prof: p}
}

func (m *ProfilerModule) ID() string    { return "profiler" }
func (m *ProfilerModule) Title() string { return "Profiler" }

func (m *ProfilerModule) Description() string {
	return fmt.Sprintf("frame %d, %d monitors", m.prof.Frame(), len(m.prof.Summary(0.99)))
}

func (m *ProfilerModule) Update(dt time.Duration) {}

// InspectorModule surfaces the world inspector in the module list.
type InspectorModule struct {
	world *ecs.World
}

func NewInspectorModule(w *ecs.World) *InspectorModule {
	return &InspectorModule{world: w}
}

func (m *InspectorModule) ID() string    { return "inspector" }
func (m *InspectorModule) Title() string { return "World Inspector" }

func (m *InspectorModule) Description() string {
	return fmt.Sprintf("%d entities, %d component types",
		m.world.Pool().Count(), len(m.world.Registry().Stores()))
}

func (m *InspectorModule) Update(dt time.Duration) {}

// RenderModule surfaces render debugging in the module list.
type RenderModule struct {
	assets  *render.AssetRegistry
	stats   *render.StatsCollector
	toggles *render.Toggles
}

func NewRenderModule(assets *render.AssetRegistry, stats *render.StatsCollector, toggles *render.Toggles) *RenderModule {
	return &RenderModule{assets: assets, stats: stats, toggles: toggles}
}

func (m *RenderModule) ID() string    { return "render" }
func (m *RenderModule) Title() string { return "Render Debug" }

func (m *RenderModule) Description() string {
	last, _ := m.stats.Snapshot()
	return fmt.Sprintf("%d draw calls, %d assets, %d KiB",
		last.DrawCalls, len(m.assets.List("")), m.assets.TotalBytes()/1024)
}

func (m *RenderModule) Update(dt time.Duration) {}
