package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the controller cannot run with and reports sanity warnings
// An inverted commit/charge ordering is a warning: the commit window then opens the tick the shot arms
func Validate(cfg *Config) ([]string, error) {
	var errs []error
	var warnings []string

	t := cfg.Thresholds
	durations := []struct {
		name string
		val  time.Duration
	}{
		{"charge.fast_shot_threshold", t.FastShotThreshold},
		{"charge.charge_duration", t.ChargeDuration},
		{"charge.commit_trigger_hold", t.CommitTriggerHold},
		{"charge.commit_window_duration", t.CommitWindowDuration},
		{"charge.rest_duration", t.RestDuration},
		{"camera.zoom_in", cfg.Camera.ZoomIn},
		{"camera.zoom_out", cfg.Camera.ZoomOut},
		{"projectile.lifetime", cfg.Projectile.Lifetime},
		{"engine.max_delta", cfg.Engine.MaxDelta},
	}
	for _, d := range durations {
		if d.val < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be >= 0, got %s", ErrInvalidConfig, d.name, d.val))
		}
	}

	numbers := []struct {
		name string
		val  float64
	}{
		{"charge.full_shot_cost", t.FullShotCost},
		{"charge.fast_shot_cost", t.FastShotCost},
		{"charge.full_shot_impulse", t.FullShotImpulse},
		{"charge.full_shot_lift", t.FullShotLift},
		{"charge.fast_shot_impulse", t.FastShotImpulse},
		{"camera.rest_fov", cfg.Camera.RestFov},
		{"camera.zoom_fov", cfg.Camera.ZoomFov},
		{"shake.max_amplitude", cfg.Shake.MaxAmplitude},
		{"shake.max_frequency", cfg.Shake.MaxFrequency},
		{"shake.build_up_speed", cfg.Shake.BuildUpSpeed},
		{"energy.max", cfg.Energy.Max},
		{"energy.initial", cfg.Energy.Initial},
		{"energy.regen_rate", cfg.Energy.RegenRate},
		{"projectile.gravity", cfg.Projectile.Gravity},
	}
	for _, n := range numbers {
		if math.IsNaN(n.val) || math.IsInf(n.val, 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, n.name))
			continue
		}
		if n.val < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be >= 0, got %g", ErrInvalidConfig, n.name, n.val))
		}
	}

	for _, n := range []struct {
		name string
		val  float64
	}{
		{"camera.zoom_offset_x", cfg.Camera.ZoomOffsetX},
		{"camera.zoom_offset_y", cfg.Camera.ZoomOffsetY},
		{"camera.zoom_offset_z", cfg.Camera.ZoomOffsetZ},
	} {
		if math.IsNaN(n.val) || math.IsInf(n.val, 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, n.name))
		}
	}

	if !(cfg.Projectile.Mass > 0) {
		errs = append(errs, fmt.Errorf("%w: projectile.mass must be > 0", ErrInvalidConfig))
	}
	if cfg.Projectile.MaxActive <= 0 {
		errs = append(errs, fmt.Errorf("%w: projectile.max_active must be > 0", ErrInvalidConfig))
	}
	if cfg.Engine.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: engine.frame_rate must be > 0", ErrInvalidConfig))
	}
	if cfg.Energy.Initial > cfg.Energy.Max {
		errs = append(errs, fmt.Errorf("%w: energy.initial %g exceeds energy.max %g", ErrInvalidConfig, cfg.Energy.Initial, cfg.Energy.Max))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	warnings = append(warnings, thresholdWarnings(t)...)
	if cfg.Energy.Max > 0 && t.FullShotCost > cfg.Energy.Max {
		warnings = append(warnings, fmt.Sprintf("charge.full_shot_cost %g exceeds energy.max %g: full shots can never fire", t.FullShotCost, cfg.Energy.Max))
	}
	return warnings, nil
}

// ValidateThresholds checks a ThresholdSet alone, used on hot reload
func ValidateThresholds(t Thresholds) ([]string, error) {
	cfg := Default()
	cfg.Thresholds = t
	return Validate(cfg)
}

func thresholdWarnings(t Thresholds) []string {
	var warnings []string
	if t.CommitTriggerHold < t.ChargeDuration {
		warnings = append(warnings, fmt.Sprintf(
			"charge.commit_trigger_hold %s < charge.charge_duration %s: commit window opens as soon as the shot arms",
			t.CommitTriggerHold, t.ChargeDuration))
	}
	if t.CommitWindowDuration == 0 {
		warnings = append(warnings, "charge.commit_window_duration is 0: held charges commit on the tick the window opens")
	}
	return warnings
}
