package status

import (
	"sync/atomic"

	"github.com/lixenwraith/sling/event"
)

// Recorder folds charge notifications into registry cells
type Recorder struct {
	reg *Registry

	phase       *AtomicString
	firedFull   *atomic.Int64
	firedFast   *atomic.Int64
	cancelled   *atomic.Int64
	lastHold    *atomic.Int64
	longestHold *AtomicFloat
}

// NewRecorder caches the cells it writes
func NewRecorder(reg *Registry) *Recorder {
	r := &Recorder{
		reg:         reg,
		phase:       reg.Strings.Get(KeyChargePhase),
		firedFull:   reg.Ints.Get(KeyFiredFull),
		firedFast:   reg.Ints.Get(KeyFiredFast),
		cancelled:   reg.Ints.Get(KeyCancelled),
		lastHold:    reg.Ints.Get(KeyLastHold),
		longestHold: reg.Floats.Get(KeyLongestHold),
	}
	r.phase.Store("Idle")
	return r
}

// Name returns the consumer's name
func (r *Recorder) Name() string {
	return "status"
}

// EventTypes returns the notifications the recorder consumes
func (r *Recorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPhaseChanged,
		event.EventShotFired,
		event.EventChargeCancelled,
	}
}

// HandleEvent updates counters from a charge notification
func (r *Recorder) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPhaseChanged:
		if payload, ok := ev.Payload.(*event.PhaseChangedPayload); ok {
			r.phase.Store(payload.To)
		}

	case event.EventShotFired:
		if payload, ok := ev.Payload.(*event.ShotFiredPayload); ok {
			switch payload.Kind {
			case event.ShotFull:
				r.firedFull.Add(1)
			case event.ShotFast:
				r.firedFast.Add(1)
			}
			r.hold(payload.Held.Milliseconds())
		}

	case event.EventChargeCancelled:
		if payload, ok := ev.Payload.(*event.ChargeCancelledPayload); ok {
			r.cancelled.Add(1)
			r.reg.Ints.Get(KeyCancelledPrefix + payload.Reason).Add(1)
			r.hold(payload.Held.Milliseconds())
		}
	}
}

func (r *Recorder) hold(ms int64) {
	r.lastHold.Store(ms)
	r.longestHold.Max(float64(ms))
}
