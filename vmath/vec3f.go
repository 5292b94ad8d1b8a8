package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for camera, aim and ballistic math
type Vec3F struct {
	X, Y, Z float64
}

// Axis vectors used as defaults for aim poses
var (
	V3FForward = Vec3F{Z: 1}
	V3FUp      = Vec3F{Y: 1}
)

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FLerp interpolates component-wise, t is not clamped
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// V3FNearEqual compares within an absolute epsilon per component
func V3FNearEqual(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// Pose is an origin with an orthogonal forward/up basis
type Pose struct {
	Origin  Vec3F
	Forward Vec3F
	Up      Vec3F
}

// DefaultPose looks down +Z from the origin
func DefaultPose() Pose {
	return Pose{Forward: V3FForward, Up: V3FUp}
}
