package engine

import "time"

// Timing is the charge timing engine: an accumulated game clock plus two marks
// Press clock resets only on MarkPress; phase clock resets on every MarkPhase
// Holds no transition logic; callers compare against thresholds
type Timing struct {
	now     time.Duration
	pressAt time.Duration
	phaseAt time.Duration
}

// NewTiming creates a timing engine at game time zero
func NewTiming() *Timing {
	return &Timing{}
}

// Advance moves game time forward; negative deltas are ignored to stay monotonic
func (t *Timing) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	t.now += dt
}

// Now returns accumulated game time
func (t *Timing) Now() time.Duration {
	return t.now
}

// MarkPress records the press instant and starts the phase clock with it
func (t *Timing) MarkPress() {
	t.pressAt = t.now
	t.phaseAt = t.now
}

// MarkPhase restarts the phase clock
func (t *Timing) MarkPhase() {
	t.phaseAt = t.now
}

// PressedAt returns the game time of the last press mark
func (t *Timing) PressedAt() time.Duration {
	return t.pressAt
}

// SincePress returns time elapsed since the last press mark
func (t *Timing) SincePress() time.Duration {
	return t.now - t.pressAt
}

// SincePhase returns time elapsed since the last phase mark
func (t *Timing) SincePhase() time.Duration {
	return t.now - t.phaseAt
}

// PressExceeds reports SincePress > d (tap/charge split is strict)
func (t *Timing) PressExceeds(d time.Duration) bool {
	return t.SincePress() > d
}

// PressReached reports SincePress >= d
func (t *Timing) PressReached(d time.Duration) bool {
	return t.SincePress() >= d
}

// PhaseReached reports SincePhase >= d
func (t *Timing) PhaseReached(d time.Duration) bool {
	return t.SincePhase() >= d
}

// Reset zeroes both marks at the current game time
func (t *Timing) Reset() {
	t.pressAt = t.now
	t.phaseAt = t.now
}
