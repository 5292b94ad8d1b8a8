package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sling/event"
)

type cueRecorder struct {
	cues []string
}

func (r *cueRecorder) StartHum() { r.cues = append(r.cues, "hum") }

func (r *cueRecorder) StopHum() { r.cues = append(r.cues, "hum-stop") }

func (r *cueRecorder) PlayArm() { r.cues = append(r.cues, "arm") }

func (r *cueRecorder) PlayCommit() { r.cues = append(r.cues, "commit") }

func (r *cueRecorder) PlayCancel() { r.cues = append(r.cues, "cancel") }

func (r *cueRecorder) PlayFire(kind event.ShotKind) {
	r.cues = append(r.cues, "fire-"+kind.String())
}

func TestServiceMapsNotifications(t *testing.T) {
	rec := &cueRecorder{}
	s := NewService(time.Second)
	s.player = rec

	for _, ev := range []event.GameEvent{
		{Type: event.EventChargeStarted},
		{Type: event.EventChargeArmed},
		{Type: event.EventCommitOpened},
		{Type: event.EventShotFired, Payload: &event.ShotFiredPayload{Kind: event.ShotFull}},
		{Type: event.EventChargeStarted},
		{Type: event.EventChargeCancelled},
		{Type: event.EventRestComplete},
	} {
		s.HandleEvent(ev)
	}

	assert.Equal(t, []string{
		"hum", "arm", "commit", "hum-stop", "fire-full",
		"hum", "hum-stop", "cancel",
	}, rec.cues)
}

func TestServiceMutedIsSilent(t *testing.T) {
	rec := &cueRecorder{}
	s := NewService(time.Second)
	s.player = rec

	require.NoError(t, s.Init(true))
	assert.True(t, s.IsDisabled())

	s.HandleEvent(event.GameEvent{Type: event.EventChargeStarted})
	assert.Empty(t, rec.cues)
	assert.NoError(t, s.Stop())
	assert.NoError(t, s.Stop())
}
