package vmath

import "time"

// EaseFunc maps normalized progress [0,1] to eased progress
type EaseFunc func(t float64) float64

func EaseLinear(t float64) float64 { return t }

func EaseOutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// EaseOutBack overshoots slightly before settling, used for bow recoil
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// Lerp interpolates scalars, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 clamps to [0,1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Progress returns elapsed/total clamped to [0,1]; zero total is complete
func Progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp01(float64(elapsed) / float64(total))
}
