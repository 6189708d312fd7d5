package system

import (
	"context"
	"time"

	"go.uber.org/zap"

	coresys "github.com/corvid/corvid/internal/core/system"
	"github.com/corvid/corvid/internal/profiler"
	"github.com/corvid/corvid/internal/telemetry"
)

// TelemetrySystem samples the profiler into the telemetry store and flushes
// it on an interval. Phase 5 (Persist). A nil store disables the system.
// Flush failures are logged and dropped; telemetry never takes the loop down.
type TelemetrySystem struct {
	store    *telemetry.Store
	prof     *profiler.Profiler
	interval time.Duration
	pct      float64
	elapsed  time.Duration
	log      *zap.Logger
}

func NewTelemetrySystem(
	store *telemetry.Store,
	prof *profiler.Profiler,
	interval time.Duration,
	pct float64,
	log *zap.Logger,
) *TelemetrySystem {
	return &TelemetrySystem{
		store:    store,
		prof:     prof,
		interval: interval,
		pct:      pct,
		log:      log,
	}
}

func (s *TelemetrySystem) Name() string         { return "telemetry" }
func (s *TelemetrySystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *TelemetrySystem) Update(dt time.Duration) {
	if s.store == nil {
		return
	}
	s.store.RecordSummary(s.prof.Frame(), time.Now(), s.prof.Summary(s.pct))

	s.elapsed += dt
	if s.elapsed < s.interval {
		return
	}
	s.elapsed = 0

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.Flush(ctx); err != nil {
		s.log.Warn("telemetry flush failed", zap.Error(err))
	}
}
