package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameRate is the default frame loop rate
	FrameRate = 60

	// FrameMaxDelta clamps a single frame delta after stalls or resume
	FrameMaxDelta = 100 * time.Millisecond
)

// Event queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Config reload
const (
	// ConfigReloadDebounce coalesces editor write bursts
	ConfigReloadDebounce = 150 * time.Millisecond

	// ConfigEnvPrefix prefixes environment overrides
	ConfigEnvPrefix = "SLING_"
)

// Logging
const (
	// LogDir is the debug log directory relative to working dir
	LogDir = "logs"

	// LogFileName is the debug log file name
	LogFileName = "sling.log"

	// LogMaxSize rotates the log file when exceeded
	LogMaxSize = 10 * 1024 * 1024
)
