package charge

import (
	"time"

	"github.com/lixenwraith/sling/event"
	"github.com/lixenwraith/sling/vmath"
)

// ResourceGate is the energy pool consulted before charging and at the fire instant
// TryConsume must fail rather than go negative
type ResourceGate interface {
	CurrentLevel() float64
	TryConsume(amount float64) bool
}

// ParticleStage selects charge particle feedback
type ParticleStage int

const (
	ParticlesOff ParticleStage = iota
	ParticlesPrepare
	ParticlesAim
)

// Feedback receives presentation intents; a new intent supersedes any blend in flight
type Feedback interface {
	SetAimVisual(active bool, blend time.Duration)
	SetCameraTarget(fov float64, position vmath.Vec3F, blend time.Duration)
	SetShakeBuildup(active bool)
	SetParticleStage(stage ParticleStage)
}

// Dispatcher spawns a projectile; fire-and-forget
type Dispatcher interface {
	Dispatch(origin vmath.Pose, impulse vmath.Vec3F, kind event.ShotKind)
}

// AimSource supplies the launch pose at the fire instant
type AimSource interface {
	AimPose() vmath.Pose
}

// AimFunc adapts a function to AimSource
type AimFunc func() vmath.Pose

func (f AimFunc) AimPose() vmath.Pose { return f() }

// NopFeedback discards intents, for headless hosts
type NopFeedback struct{}

func (NopFeedback) SetAimVisual(bool, time.Duration) {}
func (NopFeedback) SetCameraTarget(float64, vmath.Vec3F, time.Duration) {}
func (NopFeedback) SetShakeBuildup(bool) {}
func (NopFeedback) SetParticleStage(ParticleStage) {}
