package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/corvid/corvid/internal/profiler"
)

// FrameSample is one monitor's aggregate reading for one frame.
type FrameSample struct {
	Frame    uint64
	Monitor  string
	Snaps    int
	Duration time.Duration // latest reading
	Average  time.Duration
	Tail     time.Duration
	Max      time.Duration
	At       time.Time
}

// maxRetained bounds the samples kept across failed flushes so a dead
// database cannot grow memory without bound.
const maxRetained = 4096

// Store buffers frame samples on the game loop and flushes them to Postgres
// in batched transactions. Flush failures are never fatal; the batch is
// retained for the next interval, oldest samples dropped past maxRetained.
type Store struct {
	db        *DB
	log       *zap.Logger
	sessionID int64
	buf       []FrameSample
}

func NewStore(db *DB, log *zap.Logger) *Store {
	return &Store{
		db:  db,
		log: log,
		buf: make([]FrameSample, 0, 1024),
	}
}

// StartSession opens a run session row and remembers its ID for samples.
func (s *Store) StartSession(ctx context.Context, serverName, build string, started time.Time) error {
	err := s.db.Pool.QueryRow(ctx,
		`INSERT INTO run_sessions (server_name, build, started_at)
		 VALUES ($1, $2, $3) RETURNING id`,
		serverName, build, started,
	).Scan(&s.sessionID)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

// EndSession stamps the session's end time.
func (s *Store) EndSession(ctx context.Context) error {
	if s.sessionID == 0 {
		return nil
	}
	_, err := s.db.Pool.Exec(ctx,
		`UPDATE run_sessions SET ended_at = $1 WHERE id = $2`,
		time.Now(), s.sessionID,
	)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// Record buffers one sample. Game loop only, no lock needed.
func (s *Store) Record(sample FrameSample) {
	s.buf = append(s.buf, sample)
}

// RecordSummary buffers the latest reading of every monitor for one frame.
func (s *Store) RecordSummary(frame uint64, at time.Time, stats []profiler.MonitorStats) {
	for _, m := range stats {
		if m.Snaps == 0 {
			continue
		}
		s.buf = append(s.buf, FrameSample{
			Frame:    frame,
			Monitor:  m.Name,
			Snaps:    m.Snaps,
			Duration: m.Latest,
			Average:  m.Average,
			Tail:     m.Tail,
			Max:      m.Max,
			At:       at,
		})
	}
}

// Pending returns the number of buffered samples.
func (s *Store) Pending() int {
	return len(s.buf)
}

// Flush writes all buffered samples in a single transaction. On failure the
// batch is retained for the next flush, trimmed to maxRetained.
func (s *Store) Flush(ctx context.Context) error {
	if len(s.buf) == 0 {
		return nil
	}
	if err := s.writeBatch(ctx, s.buf); err != nil {
		s.trimRetained()
		return err
	}
	s.buf = s.buf[:0]
	return nil
}

func (s *Store) writeBatch(ctx context.Context, samples []FrameSample) error {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("telemetry begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, sm := range samples {
		if _, err := tx.Exec(ctx,
			`INSERT INTO frame_stats
			   (session_id, frame, recorded_at, monitor, snaps, duration_us, avg_us, tail_us, max_us)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			s.sessionID, int64(sm.Frame), sm.At, sm.Monitor, sm.Snaps,
			sm.Duration.Microseconds(), sm.Average.Microseconds(),
			sm.Tail.Microseconds(), sm.Max.Microseconds(),
		); err != nil {
			return fmt.Errorf("telemetry insert: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("telemetry commit: %w", err)
	}
	s.log.Debug("telemetry flushed", zap.Int("samples", len(samples)))
	return nil
}

// trimRetained drops the oldest samples once the retained batch outgrows
// maxRetained.
func (s *Store) trimRetained() {
	if len(s.buf) <= maxRetained {
		return
	}
	dropped := len(s.buf) - maxRetained
	s.buf = append(s.buf[:0], s.buf[dropped:]...)
	s.log.Warn("telemetry buffer overflow, dropping oldest samples",
		zap.Int("dropped", dropped))
}
