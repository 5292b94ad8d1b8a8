// Package config loads and validates the charge controller configuration
// Sources, lowest to highest precedence: parameter defaults, TOML file, SLING_* environment
package config

import (
	"time"

	"github.com/lixenwraith/sling/parameter"
	"github.com/lixenwraith/sling/vmath"
)

// Thresholds is the ThresholdSet copied into every charge session at press
type Thresholds struct {
	FastShotThreshold    time.Duration `toml:"fast_shot_threshold" env:"FAST_SHOT_THRESHOLD"`
	ChargeDuration       time.Duration `toml:"charge_duration" env:"CHARGE_DURATION"`
	CommitTriggerHold    time.Duration `toml:"commit_trigger_hold" env:"COMMIT_TRIGGER_HOLD"`
	CommitWindowDuration time.Duration `toml:"commit_window_duration" env:"COMMIT_WINDOW_DURATION"`
	RestDuration         time.Duration `toml:"rest_duration" env:"REST_DURATION"`

	FullShotCost    float64 `toml:"full_shot_cost" env:"FULL_SHOT_COST"`
	FastShotCost    float64 `toml:"fast_shot_cost" env:"FAST_SHOT_COST"`
	FullShotImpulse float64 `toml:"full_shot_impulse" env:"FULL_SHOT_IMPULSE"`
	FullShotLift    float64 `toml:"full_shot_lift" env:"FULL_SHOT_LIFT"`
	FastShotImpulse float64 `toml:"fast_shot_impulse" env:"FAST_SHOT_IMPULSE"`
}

// Camera holds rest and aim poses issued as feedback intents
type Camera struct {
	RestFov     float64       `toml:"rest_fov" env:"REST_FOV"`
	ZoomFov     float64       `toml:"zoom_fov" env:"ZOOM_FOV"`
	ZoomOffsetX float64       `toml:"zoom_offset_x" env:"ZOOM_OFFSET_X"`
	ZoomOffsetY float64       `toml:"zoom_offset_y" env:"ZOOM_OFFSET_Y"`
	ZoomOffsetZ float64       `toml:"zoom_offset_z" env:"ZOOM_OFFSET_Z"`
	ZoomIn      time.Duration `toml:"zoom_in" env:"ZOOM_IN"`
	ZoomOut     time.Duration `toml:"zoom_out" env:"ZOOM_OUT"`
}

// ZoomOffset returns the aim position offset as a vector
func (c Camera) ZoomOffset() vmath.Vec3F {
	return vmath.Vec3F{X: c.ZoomOffsetX, Y: c.ZoomOffsetY, Z: c.ZoomOffsetZ}
}

// Shake configures the screen shake ramp
type Shake struct {
	MaxAmplitude float64 `toml:"max_amplitude" env:"MAX_AMPLITUDE"`
	MaxFrequency float64 `toml:"max_frequency" env:"MAX_FREQUENCY"`
	BuildUpSpeed float64 `toml:"build_up_speed" env:"BUILD_UP_SPEED"`
}

// Energy configures the sunlight pool
type Energy struct {
	Max          float64 `toml:"max" env:"MAX"`
	Initial      float64 `toml:"initial" env:"INITIAL"`
	RegenRate    float64 `toml:"regen_rate" env:"REGEN_RATE"`
	RegenAtStart bool    `toml:"regen_at_start" env:"REGEN_AT_START"`
}

// Projectile configures arrow ballistics
type Projectile struct {
	Mass      float64       `toml:"mass" env:"MASS"`
	Gravity   float64       `toml:"gravity" env:"GRAVITY"`
	Lifetime  time.Duration `toml:"lifetime" env:"LIFETIME"`
	MaxActive int           `toml:"max_active" env:"MAX_ACTIVE"`
}

// Engine configures the frame loop
type Engine struct {
	FrameRate int           `toml:"frame_rate" env:"FRAME_RATE"`
	MaxDelta  time.Duration `toml:"max_delta" env:"MAX_DELTA"`
}

// FrameInterval returns the ticker period for the configured frame rate
func (e Engine) FrameInterval() time.Duration {
	if e.FrameRate <= 0 {
		return time.Second / parameter.FrameRate
	}
	return time.Second / time.Duration(e.FrameRate)
}

// Config is the full static configuration surface
type Config struct {
	Thresholds Thresholds `toml:"charge" envPrefix:"CHARGE_"`
	Camera     Camera     `toml:"camera" envPrefix:"CAMERA_"`
	Shake      Shake      `toml:"shake" envPrefix:"SHAKE_"`
	Energy     Energy     `toml:"energy" envPrefix:"ENERGY_"`
	Projectile Projectile `toml:"projectile" envPrefix:"PROJECTILE_"`
	Engine     Engine     `toml:"engine" envPrefix:"ENGINE_"`
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		Thresholds: DefaultThresholds(),
		Camera: Camera{
			RestFov:     parameter.CameraRestFov,
			ZoomFov:     parameter.CameraZoomFov,
			ZoomOffsetX: parameter.CameraZoomOffsetX,
			ZoomOffsetY: parameter.CameraZoomOffsetY,
			ZoomOffsetZ: parameter.CameraZoomOffsetZ,
			ZoomIn:      parameter.CameraZoomInDuration,
			ZoomOut:     parameter.CameraZoomOutDuration,
		},
		Shake: Shake{
			MaxAmplitude: parameter.ShakeMaxAmplitude,
			MaxFrequency: parameter.ShakeMaxFrequency,
			BuildUpSpeed: parameter.ShakeBuildUpSpeed,
		},
		Energy: Energy{
			Max:       parameter.EnergyMax,
			Initial:   parameter.EnergyInitial,
			RegenRate: parameter.EnergyRegenRate,
		},
		Projectile: Projectile{
			Mass:      parameter.ProjectileMass,
			Gravity:   parameter.ProjectileGravity,
			Lifetime:  parameter.ProjectileLifetime,
			MaxActive: parameter.ProjectileMaxActive,
		},
		Engine: Engine{
			FrameRate: parameter.FrameRate,
			MaxDelta:  parameter.FrameMaxDelta,
		},
	}
}

// DefaultThresholds returns the built-in ThresholdSet
func DefaultThresholds() Thresholds {
	return Thresholds{
		FastShotThreshold:    parameter.ChargeFastShotThreshold,
		ChargeDuration:       parameter.ChargeDuration,
		CommitTriggerHold:    parameter.ChargeCommitTriggerHold,
		CommitWindowDuration: parameter.ChargeCommitWindowDuration,
		RestDuration:         parameter.ChargeRestDuration,
		FullShotCost:         parameter.ChargeFullShotCost,
		FastShotCost:         parameter.ChargeFastShotCost,
		FullShotImpulse:      parameter.ChargeFullShotImpulse,
		FullShotLift:         parameter.ChargeFullShotLift,
		FastShotImpulse:      parameter.ChargeFastShotImpulse,
	}
}
