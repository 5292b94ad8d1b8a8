package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sling/event"
)

// TestSoundManagerWithoutSpeaker verifies cues are safe before Initialize
func TestSoundManagerWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(time.Second)

	assert.NotPanics(t, func() {
		sm.StartHum()
		sm.PlayArm()
		sm.PlayCommit()
		sm.PlayFire(event.ShotFull)
		sm.PlayFire(event.ShotFast)
		sm.PlayCancel()
		sm.StopHum()
		sm.Cleanup()
	})
}

func drain(t *testing.T, s beep.Streamer, limit int) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			require.Equal(t, buf[i][0], buf[i][1], "mono cue on both channels")
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestGeneratorsStayInRange(t *testing.T) {
	cases := []struct {
		name string
		s    beep.Streamer
	}{
		{"hum", NewHumGenerator(sampleRate, 500*time.Millisecond)},
		{"chirp", NewChirpGenerator(sampleRate, 440, 880, 120*time.Millisecond)},
		{"twang", NewTwangGenerator(sampleRate, 196, 8)},
		{"buzz", NewBuzzGenerator(sampleRate, 120)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, peak := drain(t, tc.s, sampleRate.N(time.Second))
			assert.Greater(t, peak, 0.0)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestChirpEnds(t *testing.T) {
	g := NewChirpGenerator(sampleRate, 440, 880, 100*time.Millisecond)
	total, _ := drain(t, g, sampleRate.N(time.Second))
	assert.Equal(t, sampleRate.N(100*time.Millisecond), total)

	n, ok := g.Stream(make([][2]float64, 16))
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestTwangDecays(t *testing.T) {
	g := NewTwangGenerator(sampleRate, 196, 8)
	_, early := drain(t, g, sampleRate.N(50*time.Millisecond))
	drain(t, g, sampleRate.N(500*time.Millisecond))
	_, late := drain(t, g, sampleRate.N(50*time.Millisecond))
	assert.Less(t, late, early/10)
}
