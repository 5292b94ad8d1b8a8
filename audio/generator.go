package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// HumGenerator is the looping charge hum; pitch climbs while held and settles once armed
type HumGenerator struct {
	sr    beep.SampleRate
	pos   int
	climb int // samples to reach top pitch
	phase float64
}

// NewHumGenerator creates a hum that reaches its top pitch after climb
func NewHumGenerator(sr beep.SampleRate, climb time.Duration) *HumGenerator {
	return &HumGenerator{sr: sr, climb: max(sr.N(climb), 1)}
}

func (g *HumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.climb), 1)
		freq := 90 + 90*progress

		// Slow tremolo so a long hold does not sound static
		t := float64(g.pos) / float64(g.sr)
		tremolo := 0.8 + 0.2*math.Sin(2*math.Pi*6*t)

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}
		sample := 0.12 * tremolo * (math.Sin(g.phase) + 0.3*math.Sin(2*g.phase))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HumGenerator) Err() error {
	return nil
}

// ChirpGenerator sweeps upward between two frequencies, used for arm and commit cues
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewChirpGenerator creates a sweep from..to over d
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, from: from, to: to, length: max(sr.N(d), 1)}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		progress := float64(g.pos) / float64(g.length)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Short attack, linear release
		env := math.Min(progress/0.05, 1) * (1 - progress)
		sample := 0.25 * env * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// TwangGenerator is a plucked string: exponential decay over a few harmonics
type TwangGenerator struct {
	sr    beep.SampleRate
	freq  float64
	decay float64
	pos   int
}

// NewTwangGenerator creates a pluck at freq; higher decay is shorter
func NewTwangGenerator(sr beep.SampleRate, freq, decay float64) *TwangGenerator {
	return &TwangGenerator{sr: sr, freq: freq, decay: decay}
}

func (g *TwangGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * g.decay)

		sample := 0.5 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.25 * math.Sin(2*math.Pi*g.freq*2*t) * math.Exp(-t*g.decay)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*3*t) * math.Exp(-t*g.decay*2)
		sample *= 0.4 * env

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TwangGenerator) Err() error {
	return nil
}

// BuzzGenerator is a harsh low tone for cancelled charges
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz at freq
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade-in avoids a click
		sample *= math.Min(t/0.02, 1) * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
