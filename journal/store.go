// Package journal persists finished charge sessions to SQLite
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("journal closed")

// Outcome is how a session ended
type Outcome string

const (
	OutcomeFiredFull Outcome = "fired_full"
	OutcomeFiredFast Outcome = "fired_fast"
	OutcomeCancelled Outcome = "cancelled"
)

// Entry is one finished session
type Entry struct {
	SessionID  uuid.UUID
	Outcome    Outcome
	Reason     string // cancel reason, empty for shots
	Hold       time.Duration
	Cost       float64
	RecordedAt time.Time
}

// Summary aggregates all recorded sessions
type Summary struct {
	Total       int
	FiredFull   int
	FiredFast   int
	Cancelled   int
	CancelledBy map[string]int
	AvgFullHold time.Duration
	EnergySpent float64
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT    NOT NULL UNIQUE,
	outcome     TEXT    NOT NULL,
	reason      TEXT    NOT NULL DEFAULT '',
	hold_ms     INTEGER NOT NULL,
	cost        REAL    NOT NULL DEFAULT 0,
	recorded_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS sessions_outcome ON sessions(outcome);
`

// Store is a SQLite-backed session journal
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open opens or creates the journal at path
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database; further calls return ErrClosed
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Record inserts a finished session; a duplicate session id is ignored
func (s *Store) Record(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch e.Outcome {
	case OutcomeFiredFull, OutcomeFiredFast, OutcomeCancelled:
	default:
		return fmt.Errorf("unknown outcome %q", e.Outcome)
	}
	if e.SessionID == uuid.Nil {
		return fmt.Errorf("session id is required")
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return ErrClosed
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, outcome, reason, hold_ms, cost, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO NOTHING`,
		e.SessionID.String(),
		string(e.Outcome),
		e.Reason,
		e.Hold.Milliseconds(),
		e.Cost,
		e.RecordedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert session %s: %w", e.SessionID, err)
	}
	return nil
}

// Summary aggregates every recorded session
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	sum := Summary{CancelledBy: make(map[string]int)}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return sum, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT outcome, reason, COUNT(*), COALESCE(SUM(cost), 0), COALESCE(AVG(hold_ms), 0)
		 FROM sessions GROUP BY outcome, reason`)
	if err != nil {
		return sum, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			outcome, reason string
			count           int
			cost, avgHold   float64
		)
		if err := rows.Scan(&outcome, &reason, &count, &cost, &avgHold); err != nil {
			return sum, fmt.Errorf("scan summary: %w", err)
		}
		sum.Total += count
		sum.EnergySpent += cost

		switch Outcome(outcome) {
		case OutcomeFiredFull:
			sum.FiredFull += count
			sum.AvgFullHold = time.Duration(avgHold * float64(time.Millisecond))
		case OutcomeFiredFast:
			sum.FiredFast += count
		case OutcomeCancelled:
			sum.Cancelled += count
			sum.CancelledBy[reason] += count
		}
	}
	if err := rows.Err(); err != nil {
		return sum, fmt.Errorf("iterate summary: %w", err)
	}
	return sum, nil
}

// Recent returns up to n entries, newest first
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, outcome, reason, hold_ms, cost, recorded_at
		 FROM sessions ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query recent: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			id, outcome, reason string
			holdMs, recordedAt  int64
			cost                float64
		)
		if err := rows.Scan(&id, &outcome, &reason, &holdMs, &cost, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		sessionID, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse session id %q: %w", id, err)
		}
		out = append(out, Entry{
			SessionID:  sessionID,
			Outcome:    Outcome(outcome),
			Reason:     reason,
			Hold:       time.Duration(holdMs) * time.Millisecond,
			Cost:       cost,
			RecordedAt: time.UnixMilli(recordedAt).UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent: %w", err)
	}
	return out, nil
}
