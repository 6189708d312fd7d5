package system

import (
	"testing"
	"time"

	"github.com/corvid/corvid/internal/profiler"
)

type recordingSystem struct {
	name  string
	phase Phase
	log   *[]string
}

func (s *recordingSystem) Name() string { return s.name }
func (s *recordingSystem) Phase() Phase { return s.phase }
func (s *recordingSystem) Update(dt time.Duration) {
	*s.log = append(*s.log, s.name)
}

func TestRunnerPhaseOrder(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(&recordingSystem{name: "cleanup", phase: PhaseCleanup, log: &log})
	r.Register(&recordingSystem{name: "input", phase: PhaseInput, log: &log})
	r.Register(&recordingSystem{name: "move", phase: PhaseUpdate, log: &log})

	r.Tick(time.Millisecond)
	want := []string{"input", "move", "cleanup"}
	if len(log) != len(want) {
		t.Fatalf("ran %d systems, want %d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("position %d = %s, want %s", i, log[i], want[i])
		}
	}
}

func TestRunnerStableWithinPhase(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(&recordingSystem{name: "a", phase: PhaseUpdate, log: &log})
	r.Register(&recordingSystem{name: "b", phase: PhaseUpdate, log: &log})
	r.Tick(time.Millisecond)
	if log[0] != "a" || log[1] != "b" {
		t.Errorf("registration order not preserved within phase: %v", log)
	}
}

func TestRunnerTickPhase(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(&recordingSystem{name: "input", phase: PhaseInput, log: &log})
	r.Register(&recordingSystem{name: "move", phase: PhaseUpdate, log: &log})

	r.TickPhase(PhaseInput, time.Millisecond)
	if len(log) != 1 || log[0] != "input" {
		t.Errorf("TickPhase ran %v, want only input", log)
	}
}

func TestRunnerProfilesSystems(t *testing.T) {
	var log []string
	p := profiler.New(10)
	r := NewRunner()
	r.AttachProfiler(p)
	r.Register(&recordingSystem{name: "move", phase: PhaseUpdate, log: &log})

	r.Tick(time.Millisecond)
	m, ok := p.Lookup("sys.move")
	if !ok {
		t.Fatal("no monitor created for system")
	}
	if m.Len() != 1 {
		t.Errorf("snaps = %d, want 1", m.Len())
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseInput.String() != "input" || PhaseCleanup.String() != "cleanup" {
		t.Error("phase names wrong")
	}
	if Phase(99).String() != "unknown" {
		t.Error("out-of-range phase should be unknown")
	}
}
