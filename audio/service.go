package audio

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/sling/event"
)

// cuePlayer is the set of cues the service drives
type cuePlayer interface {
	StartHum()
	StopHum()
	PlayArm()
	PlayCommit()
	PlayFire(kind event.ShotKind)
	PlayCancel()
}

// AudioService maps charge notifications to cues
// Falls back to silent mode when muted or no backend is available
type AudioService struct {
	sm       *SoundManager
	player   cuePlayer
	disabled atomic.Bool
}

// NewService creates an audio service; humClimb should match the charge duration
func NewService(humClimb time.Duration) *AudioService {
	sm := NewSoundManager(humClimb)
	return &AudioService{sm: sm, player: sm}
}

// Name implements service.Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: bool mute; speaker failure is logged and leaves the service silent
func (s *AudioService) Init(args ...any) error {
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok && muted {
			s.disabled.Store(true)
			return nil
		}
	}
	if err := s.sm.Initialize(); err != nil {
		log.Warn().Err(err).Msg("Audio unavailable, running silent")
		s.disabled.Store(true)
	}
	return nil
}

// Start implements service.Service; the speaker runs its own goroutine
func (s *AudioService) Start() error {
	return nil
}

// Stop implements service.Service
func (s *AudioService) Stop() error {
	s.sm.Cleanup()
	return nil
}

// IsDisabled reports silent mode
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// EventTypes returns the notifications that produce sound
func (s *AudioService) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventChargeStarted,
		event.EventChargeArmed,
		event.EventCommitOpened,
		event.EventShotFired,
		event.EventChargeCancelled,
	}
}

// HandleEvent plays the cue for a charge notification
func (s *AudioService) HandleEvent(ev event.GameEvent) {
	if s.disabled.Load() {
		return
	}

	switch ev.Type {
	case event.EventChargeStarted:
		s.player.StartHum()

	case event.EventChargeArmed:
		s.player.PlayArm()

	case event.EventCommitOpened:
		s.player.PlayCommit()

	case event.EventShotFired:
		s.player.StopHum()
		if payload, ok := ev.Payload.(*event.ShotFiredPayload); ok {
			s.player.PlayFire(payload.Kind)
		}

	case event.EventChargeCancelled:
		s.player.StopHum()
		s.player.PlayCancel()
	}
}
