package system

import (
	"sort"
	"time"

	"github.com/corvid/corvid/internal/profiler"
)

// Runner executes systems in phase order each tick. With a profiler attached
// every system's update is timed into a "sys.<name>" monitor.
type Runner struct {
	systems []System
	sorted  bool
	prof    *profiler.Profiler
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 16),
	}
}

// AttachProfiler enables per-system timing. Safe to leave nil for tests.
func (r *Runner) AttachProfiler(p *profiler.Profiler) {
	r.prof = p
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Systems returns the registered systems in phase order.
func (r *Runner) Systems() []System {
	r.ensureSorted()
	out := make([]System, len(r.systems))
	copy(out, r.systems)
	return out
}

func (r *Runner) Tick(dt time.Duration) {
	r.ensureSorted()
	for _, s := range r.systems {
		r.run(s, dt)
	}
}

// TickPhase runs only the systems of one phase. Used for high-frequency
// input polling between full ticks.
func (r *Runner) TickPhase(phase Phase, dt time.Duration) {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.Phase() == phase {
			r.run(s, dt)
		}
	}
}

func (r *Runner) run(s System, dt time.Duration) {
	if r.prof != nil {
		defer r.prof.Monitor("sys." + s.Name()).Record()()
	}
	s.Update(dt)
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
