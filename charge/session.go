package charge

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/sling/config"
)

// Session is the single live press-to-release attempt
// Resource level is deliberately not snapshotted; the gate is re-read at every decision
type Session struct {
	ID         uuid.UUID
	PressedAt  time.Duration
	Thresholds config.Thresholds
}

func newSession(at time.Duration, th config.Thresholds) *Session {
	return &Session{
		ID:         uuid.New(),
		PressedAt:  at,
		Thresholds: th,
	}
}
