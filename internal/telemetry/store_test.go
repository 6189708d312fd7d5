package telemetry

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/corvid/corvid/internal/profiler"
)

func TestRecordSummarySkipsEmptyMonitors(t *testing.T) {
	s := NewStore(nil, zap.NewNop())
	now := time.Now()
	s.RecordSummary(9, now, []profiler.MonitorStats{
		{Name: "sys.movement", Snaps: 3, Latest: 2 * time.Millisecond, Average: time.Millisecond},
		{Name: "sys.idle", Snaps: 0},
		{Name: "frame.total", Snaps: 3, Latest: 5 * time.Millisecond},
	})

	if s.Pending() != 2 {
		t.Fatalf("pending = %d, want 2", s.Pending())
	}
	if s.buf[0].Monitor != "sys.movement" || s.buf[0].Frame != 9 {
		t.Errorf("sample = %+v", s.buf[0])
	}
	if s.buf[0].Average != time.Millisecond {
		t.Errorf("average = %s", s.buf[0].Average)
	}
	if s.buf[1].Duration != 5*time.Millisecond {
		t.Errorf("duration = %s", s.buf[1].Duration)
	}
}

func TestRecordAccumulates(t *testing.T) {
	s := NewStore(nil, zap.NewNop())
	s.Record(FrameSample{Frame: 1, Monitor: "frame.total"})
	s.Record(FrameSample{Frame: 2, Monitor: "frame.total"})
	if s.Pending() != 2 {
		t.Errorf("pending = %d, want 2", s.Pending())
	}
}

func TestRetainedBatchIsBounded(t *testing.T) {
	s := NewStore(nil, zap.NewNop())
	for i := 0; i < maxRetained+100; i++ {
		s.Record(FrameSample{Frame: uint64(i), Monitor: "frame.total"})
	}

	s.trimRetained()
	if s.Pending() != maxRetained {
		t.Fatalf("pending = %d, want %d", s.Pending(), maxRetained)
	}
	// The oldest samples go first.
	if s.buf[0].Frame != 100 {
		t.Errorf("oldest retained frame = %d, want 100", s.buf[0].Frame)
	}

	s.trimRetained()
	if s.Pending() != maxRetained {
		t.Errorf("trim under the cap should be a no-op, pending = %d", s.Pending())
	}
}
