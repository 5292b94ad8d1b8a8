package main

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/sling/charge"
	"github.com/lixenwraith/sling/config"
	"github.com/lixenwraith/sling/energy"
	"github.com/lixenwraith/sling/engine"
	"github.com/lixenwraith/sling/event"
	"github.com/lixenwraith/sling/feedback"
	"github.com/lixenwraith/sling/projectile"
	"github.com/lixenwraith/sling/render"
	"github.com/lixenwraith/sling/status"
)

// game owns the per-frame pipeline; every method runs on the frame loop goroutine
// except the input queue, which the input goroutine pushes into
type game struct {
	controller *charge.Controller
	pool       *energy.Pool
	rig        *feedback.Rig
	launcher   *projectile.Launcher
	clock      *engine.FrameClock

	input  *event.EventQueue
	notify *event.EventQueue
	router *event.Router
	reg    *status.Registry

	// Derived from drained edges, never from the input goroutine directly
	held bool
	quit bool

	energyLevel  *status.AtomicFloat
	regenerating *atomic.Bool
	arrows       *atomic.Int64
	dropped      *atomic.Int64
	paused       *atomic.Bool
	frames       *atomic.Int64
}

// newGame wires the controller to its concrete collaborators
// handlers receive notifications after each step, in registration order
func newGame(cfg *config.Config, provider engine.TimeProvider, reg *status.Registry, handlers ...event.Handler) *game {
	g := &game{
		pool:     energy.NewPool(cfg.Energy),
		rig:      feedback.NewRig(cfg),
		launcher: projectile.NewLauncher(cfg.Projectile),
		clock:    engine.NewFrameClock(provider, cfg.Engine.MaxDelta),
		input:    event.NewEventQueue(),
		notify:   event.NewEventQueue(),
		router:   event.NewRouter(),
		reg:      reg,

		energyLevel:  reg.Floats.Get(status.KeyEnergyLevel),
		regenerating: reg.Bools.Get(status.KeyRegenerating),
		arrows:       reg.Ints.Get(status.KeyArrowsActive),
		dropped:      reg.Ints.Get(status.KeyEventsDropped),
		paused:       reg.Bools.Get(status.KeyPaused),
		frames:       reg.Ints.Get(status.KeyFrames),
	}

	g.controller = charge.NewController(cfg, charge.Deps{
		Gate:       g.pool,
		Feedback:   g.rig,
		Dispatcher: g.launcher,
		Events:     g.notify,
	})

	g.router.Register(g.pool)
	g.router.Register(status.NewRecorder(reg))
	for _, h := range handlers {
		g.router.Register(h)
	}

	g.publishStatus()
	return g
}

// Input returns the queue the input goroutine pushes into
func (g *game) Input() event.Publisher {
	return g.input
}

// step runs one frame: drain input, tick the clock, step the controller and
// collaborators, then route notifications
func (g *game) step() {
	var edges []event.GameEvent
	for _, ev := range g.input.Consume() {
		switch ev.Type {
		case event.EventPress:
			g.held = true
			edges = append(edges, ev)
		case event.EventRelease:
			g.held = false
			edges = append(edges, ev)
		case event.EventPauseToggle:
			paused := g.clock.TogglePause()
			log.Info().Bool("paused", paused).Msg("Pause toggled")
		case event.EventQuit:
			g.quit = true
		default:
			g.router.Dispatch(ev)
		}
	}

	dt := g.clock.Tick()
	if !g.clock.IsPaused() {
		// Edges seen while paused are dropped; the held sample reconciles them on resume
		g.controller.Step(dt, g.held, edges)
		g.pool.Update(dt)
		g.rig.Update(dt)
		g.launcher.Update(dt)
	}

	g.router.DispatchAll(g.notify)
	g.publishStatus()
}

// publishStatus writes the cells the recorder does not own
func (g *game) publishStatus() {
	g.energyLevel.Set(g.pool.CurrentLevel())
	g.regenerating.Store(g.pool.Regenerating())
	g.arrows.Store(int64(g.launcher.Active()))
	g.dropped.Store(int64(g.input.Dropped() + g.notify.Dropped()))
	g.paused.Store(g.clock.IsPaused())
	g.frames.Store(int64(g.clock.Frames()))
}

// frame snapshots everything the HUD draws
func (g *game) frame() render.Frame {
	chargeFill, commitFill := render.ChargeProgress(g.controller)
	return render.Frame{
		Phase:          g.controller.Phase(),
		ChargeProgress: chargeFill,
		CommitProgress: commitFill,
		Energy:         g.pool.CurrentLevel(),
		EnergyMax:      g.pool.Max(),
		Regenerating:   g.pool.Regenerating(),
		Feedback:       g.rig.Snapshot(),
		Arrows:         g.launcher.Arrows(),
		FiredFull:      g.reg.Ints.Get(status.KeyFiredFull).Load(),
		FiredFast:      g.reg.Ints.Get(status.KeyFiredFast).Load(),
		Cancelled:      g.reg.Ints.Get(status.KeyCancelled).Load(),
		Paused:         g.clock.IsPaused(),
	}
}

// Quit reports whether a quit request was drained
func (g *game) Quit() bool {
	return g.quit
}

// SetThresholds forwards a reloaded ThresholdSet; safe from the watcher goroutine
func (g *game) SetThresholds(th config.Thresholds) {
	g.controller.SetThresholds(th)
}

// shutdown cancels a held session so its outcome reaches the journal before services stop
func (g *game) shutdown() {
	g.controller.Cancel()
	g.router.DispatchAll(g.notify)
	g.publishStatus()
}
