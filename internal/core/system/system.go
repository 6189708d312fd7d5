package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: drain session queues
	PhasePreUpdate               // 1: process last tick's events
	PhaseUpdate                  // 2: simulation logic
	PhasePostUpdate              // 3: derived state, render stats
	PhaseOutput                  // 4: build + send packets
	PhasePersist                 // 5: telemetry flush
	PhaseCleanup                 // 6: destroy queued entities
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePreUpdate:
		return "preupdate"
	case PhaseUpdate:
		return "update"
	case PhasePostUpdate:
		return "postupdate"
	case PhaseOutput:
		return "output"
	case PhasePersist:
		return "persist"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// System is the interface every ECS system implements. Name identifies the
// system in profiler output and the console.
type System interface {
	Name() string
	Phase() Phase
	Update(dt time.Duration)
}
