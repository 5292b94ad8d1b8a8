package parameter

import "time"

// Charge timing thresholds
const (
	// ChargeFastShotThreshold is the longest press still resolved as a tap
	ChargeFastShotThreshold = 200 * time.Millisecond

	// ChargeDuration is the time spent in Charging before the shot is armed
	ChargeDuration = 1 * time.Second

	// ChargeCommitTriggerHold is the press-relative hold after which the commit window opens
	ChargeCommitTriggerHold = 1 * time.Second

	// ChargeCommitWindowDuration is the confirmation period a held charge must survive
	ChargeCommitWindowDuration = 500 * time.Millisecond

	// ChargeRestDuration is the post-fire lockout before a new session may start
	ChargeRestDuration = 300 * time.Millisecond
)

// Shot costs and impulses
const (
	// ChargeFullShotCost is energy consumed by a fully charged shot
	ChargeFullShotCost = 5.0

	// ChargeFastShotCost is energy consumed by a tap shot
	ChargeFastShotCost = 3.0

	// ChargeFullShotImpulse is forward impulse of a charged shot
	ChargeFullShotImpulse = 40.0

	// ChargeFullShotLift is upward impulse of a charged shot
	ChargeFullShotLift = 4.0

	// ChargeFastShotImpulse is forward impulse of a tap shot, no lift
	ChargeFastShotImpulse = 20.0
)

// ChargeMaxCascade bounds timer-driven transitions evaluated in a single tick
const ChargeMaxCascade = 9
