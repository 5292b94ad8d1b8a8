package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sling.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	warnings, err := Validate(Default())
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[charge]
fast_shot_threshold = "150ms"
charge_duration = "800ms"
commit_trigger_hold = "1.2s"
full_shot_cost = 7.5

[energy]
max = 50.0
initial = 40.0
`)
	cfg, warnings, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, 150*time.Millisecond, cfg.Thresholds.FastShotThreshold)
	assert.Equal(t, 800*time.Millisecond, cfg.Thresholds.ChargeDuration)
	assert.Equal(t, 1200*time.Millisecond, cfg.Thresholds.CommitTriggerHold)
	assert.Equal(t, 7.5, cfg.Thresholds.FullShotCost)
	assert.Equal(t, 50.0, cfg.Energy.Max)

	// Untouched keys keep defaults
	assert.Equal(t, DefaultThresholds().RestDuration, cfg.Thresholds.RestDuration)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[charge]
rest_duration = "1s"
`)
	t.Setenv("SLING_CHARGE_REST_DURATION", "450ms")
	t.Setenv("SLING_ENGINE_FRAME_RATE", "30")

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 450*time.Millisecond, cfg.Thresholds.RestDuration)
	assert.Equal(t, 30, cfg.Engine.FrameRate)
	assert.Equal(t, time.Second/30, cfg.Engine.FrameInterval())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, _, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultThresholds(), cfg.Thresholds)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadUnknownKeyWarns(t *testing.T) {
	path := writeConfig(t, `
[charge]
mini_shot_hold = "500ms"
`)
	_, warnings, err := Load(path)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "mini_shot_hold")
}

func TestLoadRejectsNegative(t *testing.T) {
	path := writeConfig(t, `
[charge]
charge_duration = "-1s"
fast_shot_cost = -3.0
`)
	_, _, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "charge.charge_duration")
	assert.Contains(t, err.Error(), "charge.fast_shot_cost")
}

func TestValidateStructural(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"nan cost", func(c *Config) { c.Thresholds.FullShotCost = math.NaN() }, "charge.full_shot_cost"},
		{"inf impulse", func(c *Config) { c.Thresholds.FullShotImpulse = math.Inf(1) }, "charge.full_shot_impulse"},
		{"nan offset", func(c *Config) { c.Camera.ZoomOffsetY = math.NaN() }, "camera.zoom_offset_y"},
		{"zero mass", func(c *Config) { c.Projectile.Mass = 0 }, "projectile.mass"},
		{"zero max active", func(c *Config) { c.Projectile.MaxActive = 0 }, "projectile.max_active"},
		{"zero frame rate", func(c *Config) { c.Engine.FrameRate = 0 }, "engine.frame_rate"},
		{"initial above max", func(c *Config) { c.Energy.Initial = c.Energy.Max + 1 }, "energy.initial"},
		{"negative rest", func(c *Config) { c.Thresholds.RestDuration = -time.Millisecond }, "charge.rest_duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			_, err := Validate(cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateInvertedCommitIsWarning(t *testing.T) {
	th := DefaultThresholds()
	th.ChargeDuration = 2 * time.Second
	th.CommitTriggerHold = time.Second

	warnings, err := ValidateThresholds(th)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "commit_trigger_hold")
}

func TestValidateUnaffordableFullShotWarns(t *testing.T) {
	cfg := Default()
	cfg.Thresholds.FullShotCost = cfg.Energy.Max + 10
	warnings, err := Validate(cfg)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "never fire")
}

func TestDecode(t *testing.T) {
	cfg, err := Decode([]byte(`
[camera]
zoom_fov = 30.0
zoom_offset_z = 1.0
`))
	require.NoError(t, err)
	assert.Equal(t, 30.0, cfg.Camera.ZoomFov)
	assert.Equal(t, 1.0, cfg.Camera.ZoomOffset().Z)

	_, err = Decode([]byte(`[camera`))
	assert.Error(t, err)
}

func TestWatcherReloadsValidChanges(t *testing.T) {
	path := writeConfig(t, `
[charge]
rest_duration = "300ms"
`)
	var latest atomic.Pointer[Config]
	w := NewWatcher(path, func(c *Config) { latest.Store(c) })
	w.debounce = 10 * time.Millisecond
	require.NoError(t, w.Init())
	require.NoError(t, w.Start())
	defer w.Stop()

	// Invalid edit is dropped
	require.NoError(t, os.WriteFile(path, []byte("[charge]\nrest_duration = \"-1s\"\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Nil(t, latest.Load())

	require.NoError(t, os.WriteFile(path, []byte("[charge]\nrest_duration = \"900ms\"\n"), 0o644))
	require.Eventually(t, func() bool {
		c := latest.Load()
		return c != nil && c.Thresholds.RestDuration == 900*time.Millisecond
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, warnings, err := Load(filepath.Join("..", "sling.example.toml"))
	require.NoError(t, err)
	assert.Empty(t, warnings, "example must not carry unknown keys")
	assert.Equal(t, Default(), cfg)
}
