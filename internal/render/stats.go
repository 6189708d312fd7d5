package render

import "sync"

// FrameStats counts render work submitted during one frame.
type FrameStats struct {
	DrawCalls       int
	Triangles       int
	TextureBinds    int
	ShaderSwitches  int
	EntitiesVisible int
	EntitiesCulled  int
}

// StatsCollector accumulates frame stats. The render path adds to the
// current frame; BeginFrame publishes the finished frame for readers.
type StatsCollector struct {
	mu      sync.Mutex
	current FrameStats
	last    FrameStats
	frames  uint64
}

func NewStatsCollector() *StatsCollector {
	return &StatsCollector{}
}

// BeginFrame closes the current frame and starts a new one.
func (c *StatsCollector) BeginFrame() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = c.current
	c.current = FrameStats{}
	c.frames++
}

// Add accumulates into the current frame.
func (c *StatsCollector) Add(s FrameStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current.DrawCalls += s.DrawCalls
	c.current.Triangles += s.Triangles
	c.current.TextureBinds += s.TextureBinds
	c.current.ShaderSwitches += s.ShaderSwitches
	c.current.EntitiesVisible += s.EntitiesVisible
	c.current.EntitiesCulled += s.EntitiesCulled
}

// Snapshot returns the last completed frame and its number.
func (c *StatsCollector) Snapshot() (FrameStats, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.frames
}
