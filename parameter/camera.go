package parameter

import "time"

// Camera rest and zoom pose
const (
	// CameraRestFov is the field of view outside of a charge
	CameraRestFov = 60.0

	// CameraZoomFov is the field of view while aiming
	CameraZoomFov = 40.0

	// CameraZoomOffsetX/Y/Z is the local position offset applied while aiming
	CameraZoomOffsetX = 0.35
	CameraZoomOffsetY = -0.1
	CameraZoomOffsetZ = 0.6

	// CameraZoomInDuration is the blend time into the aim pose
	CameraZoomInDuration = 400 * time.Millisecond

	// CameraZoomOutDuration is the blend time back to rest
	CameraZoomOutDuration = 250 * time.Millisecond
)

// Reticle
const (
	// ReticleAimScale is reticle size relative to rest while aiming
	ReticleAimScale = 0.5

	// ReticleSizeBlendFactor stretches the size tween relative to the fade tween
	ReticleSizeBlendFactor = 4
)

// Screen shake buildup
const (
	// ShakeMaxAmplitude caps shake amplitude gain
	ShakeMaxAmplitude = 2.0

	// ShakeMaxFrequency caps shake frequency gain
	ShakeMaxFrequency = 2.0

	// ShakeBuildUpSpeed is shake gain added per second while building
	ShakeBuildUpSpeed = 1.5

	// ShakeFrequencyRatio relates frequency gain to amplitude gain
	ShakeFrequencyRatio = 1.5
)
