package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameClock turns wall time into per-frame game deltas with pause support
// Paused time never reaches the game: Tick returns zero while paused and
// the first Tick after Resume measures from the resume instant
type FrameClock struct {
	mu sync.Mutex

	provider TimeProvider
	lastTick time.Time
	maxDelta time.Duration
	frames   uint64

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewFrameClock creates a frame clock; maxDelta <= 0 disables clamping
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &FrameClock{
		provider: provider,
		lastTick: provider.Now(),
		maxDelta: maxDelta,
	}
}

// Tick returns game time elapsed since the previous tick
func (fc *FrameClock) Tick() time.Duration {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	fc.frames++
	if fc.isPaused.Load() {
		return 0
	}

	now := fc.provider.Now()
	dt := now.Sub(fc.lastTick)
	fc.lastTick = now

	if dt < 0 {
		return 0
	}
	// Stalls (debugger, suspended terminal) must not fast-forward timers
	if fc.maxDelta > 0 && dt > fc.maxDelta {
		dt = fc.maxDelta
	}
	return dt
}

// Pause stops game time advancement
func (fc *FrameClock) Pause() {
	if fc.isPaused.CompareAndSwap(false, true) {
		fc.mu.Lock()
		defer fc.mu.Unlock()
		fc.pauseStartTime = fc.provider.Now()
	}
}

// Resume continues game time advancement
func (fc *FrameClock) Resume() {
	if fc.isPaused.CompareAndSwap(true, false) {
		fc.mu.Lock()
		defer fc.mu.Unlock()

		now := fc.provider.Now()
		if !fc.pauseStartTime.IsZero() {
			fc.totalPausedTime += now.Sub(fc.pauseStartTime)
			fc.pauseStartTime = time.Time{}
		}
		fc.lastTick = now
	}
}

// TogglePause flips pause state, returns true if now paused
func (fc *FrameClock) TogglePause() bool {
	if fc.isPaused.Load() {
		fc.Resume()
		return false
	}
	fc.Pause()
	return true
}

// IsPaused returns current pause state
func (fc *FrameClock) IsPaused() bool {
	return fc.isPaused.Load()
}

// Frames returns the number of Tick calls
func (fc *FrameClock) Frames() uint64 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.frames
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (fc *FrameClock) TotalPauseDuration() time.Duration {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	total := fc.totalPausedTime
	if fc.isPaused.Load() && !fc.pauseStartTime.IsZero() {
		total += fc.provider.Now().Sub(fc.pauseStartTime)
	}
	return total
}
