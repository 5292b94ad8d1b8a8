// Package status keeps lock-free runtime counters and exports them through OpenTelemetry
package status

import (
	"sync/atomic"
)

// Metric names written by the frame loop
const (
	KeyChargePhase     = "charge.phase"
	KeyFiredFull       = "charge.fired_full"
	KeyFiredFast       = "charge.fired_fast"
	KeyCancelled       = "charge.cancelled"
	KeyCancelledPrefix = "charge.cancelled."
	KeyLastHold        = "charge.last_hold_ms"
	KeyLongestHold     = "charge.longest_hold_ms"
	KeyEnergyLevel     = "energy.level"
	KeyRegenerating    = "energy.regenerating"
	KeyArrowsActive    = "projectile.active"
	KeyEventsDropped   = "events.dropped"
	KeyPaused          = "engine.paused"
	KeyFrames          = "engine.frames"
)

// Registry groups the typed metric maps
// Writers cache cell pointers once; readers (HUD, exporter) load atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all maps
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
