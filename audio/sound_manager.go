// Package audio plays charge cues through beep; without an output device it stays silent
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sling/event"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager owns the mixer and the looping hum
// Every cue is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	hum         *beep.Ctrl
	humClimb    time.Duration
	initialized bool
}

// NewSoundManager creates a manager; humClimb is how long the hum takes to reach top pitch
func NewSoundManager(humClimb time.Duration) *SoundManager {
	return &SoundManager{
		mixer:    &beep.Mixer{},
		humClimb: humClimb,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything; beep has no speaker close so the mixer is emptied instead
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.hum != nil {
		speaker.Lock()
		sm.hum.Paused = true
		speaker.Unlock()
		sm.hum = nil
	}
	speaker.Clear()
	sm.initialized = false
}

// StartHum begins the charge loop unless it is already playing
func (sm *SoundManager) StartHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.hum != nil {
		return
	}
	sm.hum = &beep.Ctrl{Streamer: NewHumGenerator(sampleRate, sm.humClimb)}
	sm.add(sm.hum)
}

// StopHum ends the charge loop
func (sm *SoundManager) StopHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.hum == nil {
		return
	}
	speaker.Lock()
	sm.hum.Streamer = nil
	speaker.Unlock()
	sm.hum = nil
}

// PlayArm plays the rising chirp when the charge completes
func (sm *SoundManager) PlayArm() {
	sm.play(NewChirpGenerator(sampleRate, 440, 880, 120*time.Millisecond))
}

// PlayCommit plays a short high chirp when the commit window opens
func (sm *SoundManager) PlayCommit() {
	sm.play(NewChirpGenerator(sampleRate, 880, 1320, 60*time.Millisecond))
}

// PlayFire plays the release twang; tap shots are higher and shorter
func (sm *SoundManager) PlayFire(kind event.ShotKind) {
	if kind == event.ShotFast {
		sm.play(beep.Take(sampleRate.N(150*time.Millisecond), NewTwangGenerator(sampleRate, 330, 18)))
		return
	}
	sm.play(beep.Take(sampleRate.N(400*time.Millisecond), NewTwangGenerator(sampleRate, 196, 8)))
}

// PlayCancel plays the buzz for an aborted charge
func (sm *SoundManager) PlayCancel() {
	sm.play(beep.Take(sampleRate.N(150*time.Millisecond), NewBuzzGenerator(sampleRate, 120)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.add(s)
}

// add must be called with sm.mu held
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
