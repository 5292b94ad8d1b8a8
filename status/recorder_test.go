package status

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/sling/event"
)

func TestRecorderFoldsNotifications(t *testing.T) {
	reg := NewRegistry()
	rec := NewRecorder(reg)
	id := uuid.New()

	assert.Equal(t, "Idle", reg.Strings.Get(KeyChargePhase).Load())

	rec.HandleEvent(event.GameEvent{Type: event.EventPhaseChanged, Payload: &event.PhaseChangedPayload{
		SessionID: id, From: "Idle", To: "PendingTap",
	}})
	assert.Equal(t, "PendingTap", reg.Strings.Get(KeyChargePhase).Load())

	rec.HandleEvent(event.GameEvent{Type: event.EventShotFired, Payload: &event.ShotFiredPayload{
		SessionID: id, Kind: event.ShotFast, Held: 120 * time.Millisecond,
	}})
	rec.HandleEvent(event.GameEvent{Type: event.EventShotFired, Payload: &event.ShotFiredPayload{
		SessionID: id, Kind: event.ShotFull, Held: 1800 * time.Millisecond,
	}})
	rec.HandleEvent(event.GameEvent{Type: event.EventChargeCancelled, Payload: &event.ChargeCancelledPayload{
		SessionID: id, Reason: "commit_broken", Held: 1400 * time.Millisecond,
	}})

	assert.Equal(t, int64(1), reg.Ints.Get(KeyFiredFast).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(KeyFiredFull).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(KeyCancelled).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(KeyCancelledPrefix+"commit_broken").Load())
	assert.Equal(t, int64(1400), reg.Ints.Get(KeyLastHold).Load())
	assert.Equal(t, 1800.0, reg.Floats.Get(KeyLongestHold).Get())
}

func TestRecorderIgnoresForeignEvents(t *testing.T) {
	reg := NewRegistry()
	rec := NewRecorder(reg)
	before := reg.TotalCount()

	rec.HandleEvent(event.GameEvent{Type: event.EventSunlightToggle})
	rec.HandleEvent(event.GameEvent{Type: event.EventShotFired, Payload: "bad"})

	assert.Equal(t, before, reg.TotalCount())
	assert.Equal(t, int64(0), reg.Ints.Get(KeyFiredFull).Load())
}
