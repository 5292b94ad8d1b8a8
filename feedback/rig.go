// Package feedback turns charge intents into blended presentation values
// Camera, reticle and shake are tweens advanced by the frame loop; renderers read Snapshot
package feedback

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/sling/charge"
	"github.com/lixenwraith/sling/config"
	"github.com/lixenwraith/sling/parameter"
	"github.com/lixenwraith/sling/vmath"
)

// Snapshot is the presentation state for one frame
type Snapshot struct {
	ReticleAlpha   float64
	ReticleScale   float64
	Fov            float64
	CameraOffset   vmath.Vec3F
	ShakeAmplitude float64
	ShakeFrequency float64
	// ShakeOffset is the current displacement, amplitude-scaled
	ShakeX, ShakeY float64
	Particles      charge.ParticleStage
}

// Rig implements charge.Feedback
type Rig struct {
	shakeCfg config.Shake

	reticleAlpha tween
	reticleScale tween
	fov          tween
	camera       vecTween

	shaking    bool
	shakeGain  float64
	shakePhase float64

	particles charge.ParticleStage
}

var _ charge.Feedback = (*Rig)(nil)

// NewRig creates a rig at the rest pose
func NewRig(cfg *config.Config) *Rig {
	return &Rig{
		shakeCfg:     cfg.Shake,
		reticleAlpha: newTween(0, vmath.EaseOutQuad),
		reticleScale: newTween(1, vmath.EaseOutQuad),
		fov:          newTween(cfg.Camera.RestFov, vmath.EaseOutQuad),
		camera:       vecTween{ease: vmath.EaseOutQuad},
	}
}

// SetAimVisual fades the reticle in or out; the size tween runs slower than the fade
func (r *Rig) SetAimVisual(active bool, blend time.Duration) {
	alpha, scale := 0.0, 1.0
	if active {
		alpha, scale = 1.0, parameter.ReticleAimScale
	}
	r.reticleAlpha.retarget(alpha, blend)
	r.reticleScale.retarget(scale, blend*parameter.ReticleSizeBlendFactor)
}

// SetCameraTarget blends field of view and camera offset
func (r *Rig) SetCameraTarget(fov float64, position vmath.Vec3F, blend time.Duration) {
	r.fov.retarget(fov, blend)
	r.camera.retarget(position, blend)
}

// SetShakeBuildup starts the shake ramp, or stops it and zeroes shake at once
func (r *Rig) SetShakeBuildup(active bool) {
	r.shaking = active
	if !active {
		r.shakeGain = 0
		r.shakePhase = 0
	}
}

// SetParticleStage switches charge particles
func (r *Rig) SetParticleStage(stage charge.ParticleStage) {
	if stage != r.particles {
		log.Debug().Int("stage", int(stage)).Msg("Particle stage")
	}
	r.particles = stage
}

// Update advances tweens and the shake ramp
func (r *Rig) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	r.reticleAlpha.advance(dt)
	r.reticleScale.advance(dt)
	r.fov.advance(dt)
	r.camera.advance(dt)

	if r.shaking {
		r.shakeGain += dt.Seconds() * r.shakeCfg.BuildUpSpeed
		r.shakePhase += 2 * math.Pi * r.frequency() * dt.Seconds()
		r.shakePhase = math.Mod(r.shakePhase, 2*math.Pi)
	}
}

// Snapshot returns the current blended values
func (r *Rig) Snapshot() Snapshot {
	amp := r.amplitude()
	return Snapshot{
		ReticleAlpha:   r.reticleAlpha.value(),
		ReticleScale:   r.reticleScale.value(),
		Fov:            r.fov.value(),
		CameraOffset:   r.camera.value(),
		ShakeAmplitude: amp,
		ShakeFrequency: r.frequency(),
		ShakeX:         amp * math.Sin(r.shakePhase),
		ShakeY:         amp * math.Cos(r.shakePhase*parameter.ShakeFrequencyRatio),
		Particles:      r.particles,
	}
}

// Settled reports that every blend has finished
func (r *Rig) Settled() bool {
	return r.reticleAlpha.done() && r.reticleScale.done() && r.fov.done()
}

func (r *Rig) amplitude() float64 {
	return math.Min(r.shakeGain, r.shakeCfg.MaxAmplitude)
}

func (r *Rig) frequency() float64 {
	return math.Min(r.shakeGain*parameter.ShakeFrequencyRatio, r.shakeCfg.MaxFrequency)
}
