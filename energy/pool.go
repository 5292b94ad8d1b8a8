// Package energy implements the sunlight pool that gates charge start and shot cost
package energy

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/sling/config"
	"github.com/lixenwraith/sling/event"
)

// Pool is a bounded float resource with passive regeneration
// Owned by the frame loop goroutine, like the controller it gates
type Pool struct {
	level        float64
	max          float64
	regenRate    float64
	regenerating bool
}

// NewPool creates a pool from cfg, initial level clamped into [0, max]
func NewPool(cfg config.Energy) *Pool {
	p := &Pool{
		max:          cfg.Max,
		regenRate:    cfg.RegenRate,
		regenerating: cfg.RegenAtStart,
	}
	p.level = p.clamp(cfg.Initial)
	return p
}

// CurrentLevel returns the current amount
func (p *Pool) CurrentLevel() float64 {
	return p.level
}

// Max returns the capacity
func (p *Pool) Max() float64 {
	return p.max
}

// Ratio returns level/max in [0, 1] for bars
func (p *Pool) Ratio() float64 {
	if p.max <= 0 {
		return 0
	}
	return p.level / p.max
}

// TryConsume removes amount if the pool covers it; the level never goes negative
func (p *Pool) TryConsume(amount float64) bool {
	if amount < 0 || math.IsNaN(amount) || amount > p.level {
		return false
	}
	p.level -= amount
	return true
}

// Drain removes up to amount regardless of sufficiency, clamping at zero
// Used by external consumers outside the charge sequence
func (p *Pool) Drain(amount float64) {
	if amount <= 0 {
		return
	}
	p.level = p.clamp(p.level - amount)
}

// Add credits amount, clamped to capacity
func (p *Pool) Add(amount float64) {
	if amount <= 0 {
		return
	}
	p.level = p.clamp(p.level + amount)
}

// SetRegenerating switches passive regen (standing in sunlight)
func (p *Pool) SetRegenerating(on bool) {
	p.regenerating = on
}

// Regenerating reports whether passive regen is active
func (p *Pool) Regenerating() bool {
	return p.regenerating
}

// Name returns the system's name
func (p *Pool) Name() string {
	return "energy"
}

// EventTypes returns the environment events the pool handles
func (p *Pool) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSunlightToggle,
		event.EventEnergyDrain,
	}
}

// HandleEvent applies sunlight toggles and external drains
func (p *Pool) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSunlightToggle:
		p.SetRegenerating(!p.regenerating)
		log.Debug().Bool("regenerating", p.regenerating).Msg("Sunlight toggled")

	case event.EventEnergyDrain:
		if payload, ok := ev.Payload.(*event.EnergyDrainPayload); ok {
			p.Drain(payload.Amount)
			log.Debug().Float64("amount", payload.Amount).Float64("level", p.level).Msg("Energy drained")
		}
	}
}

// Update applies passive regen for dt
func (p *Pool) Update(dt time.Duration) {
	if !p.regenerating || dt <= 0 || p.level >= p.max {
		return
	}
	p.level = p.clamp(p.level + p.regenRate*dt.Seconds())
}

func (p *Pool) clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > p.max {
		return p.max
	}
	return v
}
