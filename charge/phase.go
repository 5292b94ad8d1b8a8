package charge

// Phase is the single state of the charge controller
// Replaces independent canShoot/isAiming/isHolding/inCommit/readyToShoot flags so that
// invalid flag combinations are unrepresentable
type Phase int

const (
	// PhaseIdle accepts a new press
	PhaseIdle Phase = iota
	// PhasePendingTap waits to see a timely release (tap) or a sustained hold (charge)
	PhasePendingTap
	// PhaseCharging builds the shot; release cancels
	PhaseCharging
	// PhaseReadyWaitingCommit is armed; release fires, holding longer opens the commit window
	PhaseReadyWaitingCommit
	// PhaseCommitWindow is the confirmation period; release cancels
	PhaseCommitWindow
	// PhaseArmedToFire is committed; release fires
	PhaseArmedToFire
	// PhaseFiring is the atomic full-shot step
	PhaseFiring
	// PhaseFastFiring is the atomic tap-shot step
	PhaseFastFiring
	// PhaseResting blocks new sessions until the rest duration elapses
	PhaseResting
)

var phaseNames = [...]string{
	PhaseIdle:               "Idle",
	PhasePendingTap:         "PendingTap",
	PhaseCharging:           "Charging",
	PhaseReadyWaitingCommit: "ReadyWaitingCommit",
	PhaseCommitWindow:       "CommitWindow",
	PhaseArmedToFire:        "ArmedToFire",
	PhaseFiring:             "Firing",
	PhaseFastFiring:         "FastFiring",
	PhaseResting:            "Resting",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

// Holding reports phases that exist only while the trigger is down
func (p Phase) Holding() bool {
	switch p {
	case PhasePendingTap, PhaseCharging, PhaseReadyWaitingCommit, PhaseCommitWindow, PhaseArmedToFire:
		return true
	default:
		return false
	}
}

// Aiming reports phases with aim feedback active
func (p Phase) Aiming() bool {
	switch p {
	case PhaseCharging, PhaseReadyWaitingCommit, PhaseCommitWindow, PhaseArmedToFire:
		return true
	default:
		return false
	}
}

// CancelReason explains why a session ended without a shot
type CancelReason string

const (
	// ReasonReleasedEarly is a release while still charging
	ReasonReleasedEarly CancelReason = "released_early"
	// ReasonCommitBroken is a release inside the commit window, or the window closing without input
	ReasonCommitBroken CancelReason = "commit_broken"
	// ReasonLateTap is a release after the tap threshold but before the charge started
	ReasonLateTap CancelReason = "late_tap"
	// ReasonDepleted is the resource gate reaching zero mid-sequence
	ReasonDepleted CancelReason = "depleted"
	// ReasonInsufficient is TryConsume failing at the fire instant
	ReasonInsufficient CancelReason = "insufficient"
	// ReasonExternal is a cancel requested by the host (actor death, scene change)
	ReasonExternal CancelReason = "external"
)
