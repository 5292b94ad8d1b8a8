package parameter

import "time"

// Arrow ballistics
const (
	// ProjectileMass divides impulse into initial velocity
	ProjectileMass = 1.0

	// ProjectileGravity is downward acceleration in units/s^2
	ProjectileGravity = 9.81

	// ProjectileLifetime is the age after which an arrow is removed
	ProjectileLifetime = 10 * time.Second

	// ProjectileMaxActive caps live arrows, oldest evicted first
	ProjectileMaxActive = 64

	// ProjectileGroundY is the ground plane height relative to the launch origin
	ProjectileGroundY = -1.5
)
