package event

import (
	"time"

	"github.com/google/uuid"
)

// PhaseChangedPayload carries a transition; phases are names to keep event free of charge imports
type PhaseChangedPayload struct {
	SessionID uuid.UUID
	From      string
	To        string
	At        time.Duration
}

// SessionPayload identifies the session a notification belongs to
type SessionPayload struct {
	SessionID uuid.UUID
	At        time.Duration
}

// ShotKind distinguishes charged from tap shots
type ShotKind int

const (
	ShotFull ShotKind = iota
	ShotFast
)

func (k ShotKind) String() string {
	switch k {
	case ShotFull:
		return "full"
	case ShotFast:
		return "fast"
	default:
		return "unknown"
	}
}

// ShotFiredPayload describes a completed fire
type ShotFiredPayload struct {
	SessionID uuid.UUID
	Kind      ShotKind
	Cost      float64
	Held      time.Duration
	At        time.Duration
}

// ChargeCancelledPayload describes a session that ended without firing
type ChargeCancelledPayload struct {
	SessionID uuid.UUID
	Phase     string
	Reason    string
	Held      time.Duration
	At        time.Duration
}

// EnergyDrainPayload is an external energy consumption request
type EnergyDrainPayload struct {
	Amount float64
}
