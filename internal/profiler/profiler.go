package profiler

import (
	"sort"
	"sync"
	"time"
)

// Profiler owns the set of named monitors and the frame counter.
// Monitor lookup happens on the game loop; stats queries may come from
// handler code on the same goroutine or from telemetry flushes.
type Profiler struct {
	mu       sync.RWMutex
	monitors map[string]*Monitor
	maxSnaps int
	frame    uint64
}

func New(maxSnaps int) *Profiler {
	if maxSnaps <= 0 {
		maxSnaps = DefaultMaxSnaps
	}
	return &Profiler{
		monitors: make(map[string]*Monitor, 16),
		maxSnaps: maxSnaps,
	}
}

// Monitor returns the named monitor, creating it on first use.
func (p *Profiler) Monitor(name string) *Monitor {
	p.mu.RLock()
	m, ok := p.monitors[name]
	p.mu.RUnlock()
	if ok {
		return m
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if m, ok := p.monitors[name]; ok {
		return m
	}
	m = NewMonitor(name, p.maxSnaps)
	p.monitors[name] = m
	return m
}

// Lookup finds an existing monitor without creating it.
func (p *Profiler) Lookup(name string) (*Monitor, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	m, ok := p.monitors[name]
	return m, ok
}

// NewFrame advances the frame counter and rotates every monitor.
func (p *Profiler) NewFrame() {
	p.mu.RLock()
	defer p.mu.RUnlock()
	p.frame++
	for _, m := range p.monitors {
		m.NewFrame()
	}
}

// Frame returns the current frame number.
func (p *Profiler) Frame() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.frame
}

// Clear drops the history of every monitor, keeping the monitors themselves.
func (p *Profiler) Clear() {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, m := range p.monitors {
		m.Clear()
	}
}

// MonitorStats is a point-in-time summary of one monitor.
type MonitorStats struct {
	Name    string
	Snaps   int
	Latest  time.Duration
	Average time.Duration
	Tail    time.Duration // at the configured percentile
	Max     time.Duration
}

// Summary reports stats for every monitor, sorted by name, with the tail
// taken at percentile p.
func (p *Profiler) Summary(pct float64) []MonitorStats {
	p.mu.RLock()
	monitors := make([]*Monitor, 0, len(p.monitors))
	for _, m := range p.monitors {
		monitors = append(monitors, m)
	}
	p.mu.RUnlock()

	out := make([]MonitorStats, 0, len(monitors))
	for _, m := range monitors {
		latest, _ := m.Latest()
		out = append(out, MonitorStats{
			Name:    m.Name(),
			Snaps:   m.Len(),
			Latest:  latest.Duration,
			Average: m.Average(),
			Tail:    m.Percentile(pct),
			Max:     m.Max(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
