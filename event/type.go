package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved for timer-driven evaluation, never queued
	EventTick EventType = iota

	// === Input Event ===

	// EventPress is the trigger input going down
	// Trigger: Input goroutine | Consumer: charge.Controller | Payload: nil
	EventPress

	// EventRelease is the trigger input going up
	// Trigger: Input goroutine | Consumer: charge.Controller | Payload: nil
	EventRelease

	// === Charge Notification ===

	// EventPhaseChanged reports every phase transition
	// Trigger: charge.Controller | Consumer: status, debug log | Payload: *PhaseChangedPayload
	EventPhaseChanged EventType = iota + 100

	// EventChargeStarted reports a hold escalating from tap to charge
	// Trigger: charge.Controller | Consumer: audio | Payload: *SessionPayload
	EventChargeStarted

	// EventChargeArmed reports the charge duration completing
	// Trigger: charge.Controller | Consumer: audio | Payload: *SessionPayload
	EventChargeArmed

	// EventCommitOpened reports the commit window opening
	// Trigger: charge.Controller | Consumer: audio | Payload: *SessionPayload
	EventCommitOpened

	// EventCommitConfirmed reports the commit window elapsing with input held
	// Trigger: charge.Controller | Consumer: audio | Payload: *SessionPayload
	EventCommitConfirmed

	// EventShotFired reports a dispatched projectile
	// Trigger: charge.Controller | Consumer: audio, journal, status | Payload: *ShotFiredPayload
	EventShotFired

	// EventChargeCancelled reports a session ending without a shot
	// Trigger: charge.Controller | Consumer: audio, journal, status | Payload: *ChargeCancelledPayload
	EventChargeCancelled

	// EventRestComplete reports the rest lockout ending
	// Trigger: charge.Controller | Consumer: status | Payload: *SessionPayload
	EventRestComplete

	// === Environment Event ===

	// EventSunlightToggle flips passive energy regen
	// Trigger: Input goroutine | Consumer: energy.Pool | Payload: nil
	EventSunlightToggle EventType = iota + 200

	// EventEnergyDrain removes energy through the external consumption API
	// Trigger: Input goroutine | Consumer: energy.Pool | Payload: *EnergyDrainPayload
	EventEnergyDrain

	// EventPauseToggle flips frame clock pause
	// Trigger: Input goroutine | Consumer: frame loop | Payload: nil
	EventPauseToggle

	// EventQuit stops the frame loop
	// Trigger: Input goroutine | Consumer: frame loop | Payload: nil
	EventQuit
)

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
}

// IsInput reports whether the event is a trigger edge
func (e GameEvent) IsInput() bool {
	return e.Type == EventPress || e.Type == EventRelease
}
