package profiler

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Snap is one recorded duration for a monitored section of code.
type Snap struct {
	Duration time.Duration
}

// DefaultMaxSnaps bounds per-monitor history when no config override is given.
const DefaultMaxSnaps = 100

// Monitor tracks the performance of one named section across frames.
// The first Record of a frame appends a new snap; further Records within the
// same frame accumulate into it, so re-entrant or repeated sections report
// their combined time per frame. NewFrame rotates to the next snap.
type Monitor struct {
	name string

	mu       sync.Mutex
	snaps    []Snap
	open     bool // a snap has been started this frame
	maxSnaps int
}

func NewMonitor(name string, maxSnaps int) *Monitor {
	if maxSnaps <= 0 {
		maxSnaps = DefaultMaxSnaps
	}
	return &Monitor{
		name:     name,
		snaps:    make([]Snap, 0, maxSnaps),
		maxSnaps: maxSnaps,
	}
}

func (m *Monitor) Name() string { return m.name }

// Record starts timing a section. The returned stop func submits the elapsed
// time; it must be called exactly once (typically via defer).
func (m *Monitor) Record() func() {
	start := time.Now()
	return func() {
		m.submit(time.Since(start))
	}
}

// Observe adds an externally measured duration to the current frame's snap.
func (m *Monitor) Observe(d time.Duration) {
	m.submit(d)
}

func (m *Monitor) submit(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.open {
		m.snaps[len(m.snaps)-1].Duration += d
		return
	}
	m.open = true
	m.snaps = append(m.snaps, Snap{Duration: d})
}

// NewFrame closes the current frame's snap and trims history to the bound.
func (m *Monitor) NewFrame() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
	if over := len(m.snaps) - m.maxSnaps; over > 0 {
		m.snaps = append(m.snaps[:0], m.snaps[over:]...)
	}
}

// Len returns the number of retained snaps.
func (m *Monitor) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.snaps)
}

// Latest returns the most recent snap, if any.
func (m *Monitor) Latest() (Snap, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.snaps) == 0 {
		return Snap{}, false
	}
	return m.snaps[len(m.snaps)-1], true
}

// Average returns the mean duration across retained snaps.
func (m *Monitor) Average() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.snaps) == 0 {
		return 0
	}
	var total time.Duration
	for _, s := range m.snaps {
		total += s.Duration
	}
	return total / time.Duration(len(m.snaps))
}

// Max returns the slowest retained snap.
func (m *Monitor) Max() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	var max time.Duration
	for _, s := range m.snaps {
		if s.Duration > max {
			max = s.Duration
		}
	}
	return max
}

// Percentile returns the duration at rank p (0-1) of the ascending-sorted
// history, so p=0.99 is the slow tail.
func (m *Monitor) Percentile(p float64) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.snaps) == 0 {
		return 0
	}
	sorted := make([]time.Duration, len(m.snaps))
	for i, s := range m.snaps {
		sorted[i] = s.Duration
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := int(p * float64(len(sorted)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Cull trims history to at most n snaps, dropping the oldest.
func (m *Monitor) Cull(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if over := len(m.snaps) - n; over > 0 {
		m.snaps = append(m.snaps[:0], m.snaps[over:]...)
	}
}

// Clear drops all history.
func (m *Monitor) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps = m.snaps[:0]
	m.open = false
}

// Snaps returns a copy of the retained history, oldest first.
func (m *Monitor) Snaps() []Snap {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Snap, len(m.snaps))
	copy(out, m.snaps)
	return out
}

func (m *Monitor) String() string {
	return fmt.Sprintf("%s: %d snaps, avg %.2fms, p99 %.2fms",
		m.name, m.Len(),
		float64(m.Average().Microseconds())/1000.0,
		float64(m.Percentile(0.99).Microseconds())/1000.0,
	)
}
