package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestFrameClock(maxDelta time.Duration) (*FrameClock, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewFrameClock(mock, maxDelta), mock
}

func TestFrameClockTick(t *testing.T) {
	fc, mock := newTestFrameClock(0)

	mock.Advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, fc.Tick())

	mock.Advance(20 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, fc.Tick())
	assert.Equal(t, uint64(2), fc.Frames())
}

func TestFrameClockClampsStalls(t *testing.T) {
	fc, mock := newTestFrameClock(100 * time.Millisecond)
	mock.Advance(3 * time.Second)
	assert.Equal(t, 100*time.Millisecond, fc.Tick())
}

func TestFrameClockBackwardsTime(t *testing.T) {
	fc, mock := newTestFrameClock(0)
	mock.Advance(-time.Second)
	assert.Zero(t, fc.Tick())
}

func TestFrameClockPauseExcludesPausedTime(t *testing.T) {
	fc, mock := newTestFrameClock(0)

	mock.Advance(10 * time.Millisecond)
	fc.Tick()

	fc.Pause()
	assert.True(t, fc.IsPaused())
	mock.Advance(5 * time.Second)
	assert.Zero(t, fc.Tick())
	assert.Equal(t, 5*time.Second, fc.TotalPauseDuration())

	fc.Resume()
	mock.Advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, fc.Tick())
	assert.Equal(t, 5*time.Second, fc.TotalPauseDuration())
}

func TestFrameClockTogglePause(t *testing.T) {
	fc, _ := newTestFrameClock(0)
	assert.True(t, fc.TogglePause())
	assert.False(t, fc.TogglePause())
	assert.False(t, fc.IsPaused())
}
