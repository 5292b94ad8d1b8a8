// Package projectile spawns and integrates ballistic arrows
package projectile

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/sling/charge"
	"github.com/lixenwraith/sling/config"
	"github.com/lixenwraith/sling/event"
	"github.com/lixenwraith/sling/parameter"
	"github.com/lixenwraith/sling/vmath"
)

// Arrow is one live projectile
type Arrow struct {
	ID       uint64
	Kind     event.ShotKind
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Age      time.Duration
}

// Launcher implements charge.Dispatcher with simple gravity integration
type Launcher struct {
	mass      float64
	gravity   float64
	lifetime  time.Duration
	maxActive int

	arrows []Arrow
	nextID uint64
	total  uint64
}

var _ charge.Dispatcher = (*Launcher)(nil)

// NewLauncher creates a launcher from cfg
func NewLauncher(cfg config.Projectile) *Launcher {
	return &Launcher{
		mass:      cfg.Mass,
		gravity:   cfg.Gravity,
		lifetime:  cfg.Lifetime,
		maxActive: cfg.MaxActive,
		arrows:    make([]Arrow, 0, cfg.MaxActive),
	}
}

// Dispatch spawns an arrow at origin with velocity impulse/mass
// At capacity the oldest arrow is evicted
func (l *Launcher) Dispatch(origin vmath.Pose, impulse vmath.Vec3F, kind event.ShotKind) {
	if l.maxActive > 0 && len(l.arrows) >= l.maxActive {
		l.arrows = append(l.arrows[:0], l.arrows[1:]...)
	}

	mass := l.mass
	if mass <= 0 {
		mass = parameter.ProjectileMass
	}

	l.nextID++
	l.total++
	a := Arrow{
		ID:       l.nextID,
		Kind:     kind,
		Position: origin.Origin,
		Velocity: vmath.V3FScale(impulse, 1/mass),
	}
	l.arrows = append(l.arrows, a)

	log.Debug().
		Uint64("arrow", a.ID).
		Stringer("kind", kind).
		Float64("speed", vmath.V3FMag(a.Velocity)).
		Msg("Arrow launched")
}

// Update integrates velocity and position, then drops expired or grounded arrows
func (l *Launcher) Update(dt time.Duration) {
	if dt <= 0 || len(l.arrows) == 0 {
		return
	}
	sec := dt.Seconds()

	kept := l.arrows[:0]
	for _, a := range l.arrows {
		a.Velocity.Y -= l.gravity * sec
		a.Position = vmath.V3FAdd(a.Position, vmath.V3FScale(a.Velocity, sec))
		a.Age += dt

		if a.Age >= l.lifetime || a.Position.Y < parameter.ProjectileGroundY {
			continue
		}
		kept = append(kept, a)
	}
	l.arrows = kept
}

// Arrows returns a copy of the live arrows, oldest first
func (l *Launcher) Arrows() []Arrow {
	out := make([]Arrow, len(l.arrows))
	copy(out, l.arrows)
	return out
}

// Active returns the live arrow count
func (l *Launcher) Active() int {
	return len(l.arrows)
}

// Total returns the number of arrows ever dispatched
func (l *Launcher) Total() uint64 {
	return l.total
}
