package charge

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/sling/config"
	"github.com/lixenwraith/sling/engine"
	"github.com/lixenwraith/sling/event"
	"github.com/lixenwraith/sling/parameter"
	"github.com/lixenwraith/sling/vmath"
)

// Deps are the external collaborators driven by the controller
// Feedback, Aim and Events are optional
type Deps struct {
	Gate       ResourceGate
	Feedback   Feedback
	Dispatcher Dispatcher
	Aim        AimSource
	Events     event.Publisher
}

// Controller is the charge-and-release state machine
// Not safe for concurrent use: input edges and ticks must come from the frame loop goroutine
// SetThresholds is the only method safe to call from other goroutines
type Controller struct {
	gate       ResourceGate
	fx         Feedback
	dispatcher Dispatcher
	aim        AimSource
	events     event.Publisher
	camera     config.Camera

	timing  *engine.Timing
	phase   Phase
	session *Session

	// Applied at the next press, never to a live session
	next atomic.Pointer[config.Thresholds]
}

// NewController creates an idle controller using cfg thresholds and camera poses
func NewController(cfg *config.Config, deps Deps) *Controller {
	c := &Controller{
		gate:       deps.Gate,
		fx:         deps.Feedback,
		dispatcher: deps.Dispatcher,
		aim:        deps.Aim,
		events:     deps.Events,
		camera:     cfg.Camera,
		timing:     engine.NewTiming(),
		phase:      PhaseIdle,
	}
	if c.fx == nil {
		c.fx = NopFeedback{}
	}
	th := cfg.Thresholds
	c.next.Store(&th)
	return c
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	return c.phase
}

// Session returns the live session, nil when idle
func (c *Controller) Session() *Session {
	return c.session
}

// Timing exposes the clocks for presentation (charge progress bars)
func (c *Controller) Timing() *engine.Timing {
	return c.timing
}

// Thresholds returns the set the next session will use
func (c *Controller) Thresholds() config.Thresholds {
	return *c.next.Load()
}

// SetThresholds replaces the ThresholdSet for sessions started after this call
func (c *Controller) SetThresholds(th config.Thresholds) {
	c.next.Store(&th)
}

// Step runs one frame: advance clocks, apply input edges in order, then timer-driven transitions
// Edges before timers means a release landing on the same frame as a threshold wins
func (c *Controller) Step(dt time.Duration, held bool, edges []event.GameEvent) {
	c.timing.Advance(dt)
	for _, ev := range edges {
		c.HandleEvent(ev)
	}
	c.advance(held)
}

// Update is a tick without input edges
func (c *Controller) Update(dt time.Duration, held bool) {
	c.timing.Advance(dt)
	c.advance(held)
}

// HandleEvent applies a press or release edge; other events are ignored
func (c *Controller) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPress:
		c.Press()
	case event.EventRelease:
		c.Release()
	}
}

// Press starts a session from Idle when the gate has resource; otherwise a no-op
func (c *Controller) Press() {
	if c.phase != PhaseIdle {
		log.Debug().Str("phase", c.phase.String()).Msg("Press ignored")
		return
	}
	if c.gate.CurrentLevel() <= 0 {
		log.Debug().Msg("Press ignored, resource empty")
		return
	}

	c.session = newSession(c.timing.Now(), c.Thresholds())
	c.timing.MarkPress()
	c.enter(PhasePendingTap)
}

// Release resolves the live session according to its phase
func (c *Controller) Release() {
	if !c.phase.Holding() {
		return
	}
	if c.gate.CurrentLevel() <= 0 {
		c.cancel(ReasonDepleted)
		return
	}

	th := c.session.Thresholds
	switch c.phase {
	case PhasePendingTap:
		if c.timing.PressExceeds(th.FastShotThreshold) {
			// Threshold passed but the charge tick has not run yet
			c.cancel(ReasonLateTap)
			return
		}
		c.fireFast()

	case PhaseCharging:
		c.cancel(ReasonReleasedEarly)

	case PhaseReadyWaitingCommit:
		c.enter(PhaseArmedToFire)
		c.fireFull()

	case PhaseCommitWindow:
		c.cancel(ReasonCommitBroken)

	case PhaseArmedToFire:
		c.fireFull()
	}
}

// Cancel aborts a held session on behalf of the host; rest and idle are unaffected
func (c *Controller) Cancel() {
	if c.phase.Holding() {
		c.cancel(ReasonExternal)
	}
}

// Reset forces Idle, cancelling a held session and cutting any rest short
func (c *Controller) Reset() {
	if c.phase.Holding() {
		c.cancel(ReasonExternal)
		return
	}
	if c.phase != PhaseIdle {
		c.enter(PhaseIdle)
		c.session = nil
		c.timing.Reset()
	}
}

// advance evaluates timer-driven transitions until none applies
func (c *Controller) advance(held bool) {
	// A held sample of false while holding means the release edge was lost
	if !held && c.phase.Holding() {
		c.Release()
	}

	for i := 0; i < parameter.ChargeMaxCascade; i++ {
		if !c.tick(held) {
			return
		}
	}
}

// tick applies at most one timer-driven transition, returns true if one happened
func (c *Controller) tick(held bool) bool {
	if c.session == nil {
		return false
	}
	if c.phase.Holding() && c.gate.CurrentLevel() <= 0 {
		c.cancel(ReasonDepleted)
		return true
	}

	th := c.session.Thresholds
	switch c.phase {
	case PhasePendingTap:
		if c.timing.PressExceeds(th.FastShotThreshold) {
			c.startCharge()
			return true
		}

	case PhaseCharging:
		if c.timing.PhaseReached(th.ChargeDuration) {
			c.enter(PhaseReadyWaitingCommit)
			c.fx.SetParticleStage(ParticlesAim)
			c.notify(event.EventChargeArmed)
			return true
		}

	case PhaseReadyWaitingCommit:
		if c.timing.PressReached(th.CommitTriggerHold) {
			c.enter(PhaseCommitWindow)
			c.notify(event.EventCommitOpened)
			return true
		}

	case PhaseCommitWindow:
		if c.timing.PhaseReached(th.CommitWindowDuration) {
			if !held {
				c.cancel(ReasonCommitBroken)
				return true
			}
			c.enter(PhaseArmedToFire)
			c.notify(event.EventCommitConfirmed)
			return true
		}

	case PhaseResting:
		if c.timing.PhaseReached(th.RestDuration) {
			c.notify(event.EventRestComplete)
			c.enter(PhaseIdle)
			c.session = nil
			return true
		}
	}
	return false
}

func (c *Controller) startCharge() {
	c.enter(PhaseCharging)
	c.fx.SetAimVisual(true, c.camera.ZoomIn/2)
	c.fx.SetCameraTarget(c.camera.ZoomFov, c.camera.ZoomOffset(), c.camera.ZoomIn)
	c.fx.SetShakeBuildup(true)
	c.fx.SetParticleStage(ParticlesPrepare)
	c.notify(event.EventChargeStarted)
}

// fireFull consumes the full cost and dispatches; consume failure cancels without dispatch
func (c *Controller) fireFull() {
	th := c.session.Thresholds
	c.enter(PhaseFiring)
	if !c.gate.TryConsume(th.FullShotCost) {
		c.cancel(ReasonInsufficient)
		return
	}

	pose := c.aimPose()
	impulse := vmath.V3FAdd(
		vmath.V3FScale(pose.Forward, th.FullShotImpulse),
		vmath.V3FScale(pose.Up, th.FullShotLift),
	)
	c.dispatcher.Dispatch(pose, impulse, event.ShotFull)
	c.retractFeedback()
	c.shotFired(event.ShotFull, th.FullShotCost)
	c.enter(PhaseResting)
}

// fireFast consumes the tap cost and dispatches a forward-only shot
func (c *Controller) fireFast() {
	th := c.session.Thresholds
	c.enter(PhaseFastFiring)
	if !c.gate.TryConsume(th.FastShotCost) {
		c.cancel(ReasonInsufficient)
		return
	}

	pose := c.aimPose()
	impulse := vmath.V3FScale(pose.Forward, th.FastShotImpulse)
	c.dispatcher.Dispatch(pose, impulse, event.ShotFast)
	c.shotFired(event.ShotFast, th.FastShotCost)
	c.enter(PhaseResting)
}

// cancel ends the session synchronously: feedback reverts, timers zero, no resource touched
func (c *Controller) cancel(reason CancelReason) {
	from := c.phase
	held := c.timing.SincePress()
	c.retractFeedback()

	log.Info().
		Str("session", c.session.ID.String()).
		Str("phase", from.String()).
		Str("reason", string(reason)).
		Dur("held", held).
		Msg("Charge cancelled")

	c.publish(event.EventChargeCancelled, &event.ChargeCancelledPayload{
		SessionID: c.session.ID,
		Phase:     from.String(),
		Reason:    string(reason),
		Held:      held,
		At:        c.timing.Now(),
	})

	c.enter(PhaseIdle)
	c.session = nil
	c.timing.Reset()
}

func (c *Controller) retractFeedback() {
	c.fx.SetAimVisual(false, c.camera.ZoomOut)
	c.fx.SetCameraTarget(c.camera.RestFov, vmath.Vec3F{}, c.camera.ZoomOut)
	c.fx.SetShakeBuildup(false)
	c.fx.SetParticleStage(ParticlesOff)
}

func (c *Controller) shotFired(kind event.ShotKind, cost float64) {
	held := c.timing.SincePress()
	log.Info().
		Str("session", c.session.ID.String()).
		Stringer("kind", kind).
		Float64("cost", cost).
		Dur("held", held).
		Msg("Shot fired")

	c.publish(event.EventShotFired, &event.ShotFiredPayload{
		SessionID: c.session.ID,
		Kind:      kind,
		Cost:      cost,
		Held:      held,
		At:        c.timing.Now(),
	})
}

func (c *Controller) aimPose() vmath.Pose {
	if c.aim == nil {
		return vmath.DefaultPose()
	}
	return c.aim.AimPose()
}

// enter performs the phase switch and restarts the phase clock
func (c *Controller) enter(to Phase) {
	from := c.phase
	c.phase = to
	c.timing.MarkPhase()

	if c.session == nil {
		return
	}
	log.Debug().
		Str("session", c.session.ID.String()).
		Str("from", from.String()).
		Str("to", to.String()).
		Dur("at", c.timing.Now()).
		Msg("Charge phase")

	c.publish(event.EventPhaseChanged, &event.PhaseChangedPayload{
		SessionID: c.session.ID,
		From:      from.String(),
		To:        to.String(),
		At:        c.timing.Now(),
	})
}

func (c *Controller) notify(et event.EventType) {
	c.publish(et, &event.SessionPayload{
		SessionID: c.session.ID,
		At:        c.timing.Now(),
	})
}

func (c *Controller) publish(et event.EventType, payload any) {
	if c.events == nil {
		return
	}
	c.events.Push(event.GameEvent{Type: et, Payload: payload})
}
