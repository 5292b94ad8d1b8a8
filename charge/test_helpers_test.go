package charge

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sling/config"
	"github.com/lixenwraith/sling/event"
	"github.com/lixenwraith/sling/vmath"
)

const frame = 10 * time.Millisecond

type fakeGate struct {
	level    float64
	consumed []float64
}

func (g *fakeGate) CurrentLevel() float64 { return g.level }

func (g *fakeGate) TryConsume(amount float64) bool {
	if amount > g.level {
		return false
	}
	g.level -= amount
	g.consumed = append(g.consumed, amount)
	return true
}

type fakeFeedback struct {
	calls []string
}

func (f *fakeFeedback) SetAimVisual(active bool, blend time.Duration) {
	f.calls = append(f.calls, fmt.Sprintf("aim:%t:%s", active, blend))
}

func (f *fakeFeedback) SetCameraTarget(fov float64, _ vmath.Vec3F, blend time.Duration) {
	f.calls = append(f.calls, fmt.Sprintf("camera:%g:%s", fov, blend))
}

func (f *fakeFeedback) SetShakeBuildup(active bool) {
	f.calls = append(f.calls, fmt.Sprintf("shake:%t", active))
}

func (f *fakeFeedback) SetParticleStage(stage ParticleStage) {
	f.calls = append(f.calls, fmt.Sprintf("particles:%d", stage))
}

func (f *fakeFeedback) reset() { f.calls = nil }

type shot struct {
	origin  vmath.Pose
	impulse vmath.Vec3F
	kind    event.ShotKind
	at      time.Duration
}

type fakeDispatcher struct {
	now   func() time.Duration
	shots []shot
}

func (d *fakeDispatcher) Dispatch(origin vmath.Pose, impulse vmath.Vec3F, kind event.ShotKind) {
	d.shots = append(d.shots, shot{origin: origin, impulse: impulse, kind: kind, at: d.now()})
}

type recorder struct {
	events []event.GameEvent
}

func (r *recorder) Push(ev event.GameEvent) { r.events = append(r.events, ev) }

func (r *recorder) ofType(et event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range r.events {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}

// harness drives the controller in fixed frames, tracking the held sample from the edges it sends
type harness struct {
	t    *testing.T
	c    *Controller
	gate *fakeGate
	fx   *fakeFeedback
	disp *fakeDispatcher
	rec  *recorder
	held bool
	now  time.Duration
}

// scenarioThresholds is fastShot 0.2s, charge 1.0s, commit trigger 1.0s, window 0.5s, rest 0.3s
func scenarioThresholds() config.Thresholds {
	th := config.DefaultThresholds()
	th.FastShotThreshold = 200 * time.Millisecond
	th.ChargeDuration = time.Second
	th.CommitTriggerHold = time.Second
	th.CommitWindowDuration = 500 * time.Millisecond
	th.RestDuration = 300 * time.Millisecond
	th.FullShotCost = 5
	th.FastShotCost = 3
	return th
}

func newHarness(t *testing.T, th config.Thresholds) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Thresholds = th

	h := &harness{
		t:    t,
		gate: &fakeGate{level: 100},
		fx:   &fakeFeedback{},
		rec:  &recorder{},
	}
	h.disp = &fakeDispatcher{now: func() time.Duration { return h.now }}
	h.c = NewController(cfg, Deps{
		Gate:       h.gate,
		Feedback:   h.fx,
		Dispatcher: h.disp,
		Events:     h.rec,
	})
	return h
}

// step runs one frame of length dt with the given edges
func (h *harness) step(dt time.Duration, edges ...event.EventType) {
	evs := make([]event.GameEvent, 0, len(edges))
	for _, et := range edges {
		switch et {
		case event.EventPress:
			h.held = true
		case event.EventRelease:
			h.held = false
		}
		evs = append(evs, event.GameEvent{Type: et})
	}
	h.now += dt
	h.c.Step(dt, h.held, evs)
}

// at runs empty frames up to t, delivering edges on the frame that lands on t
func (h *harness) at(t time.Duration, edges ...event.EventType) {
	require.GreaterOrEqual(h.t, t, h.now, "harness cannot go back in time")
	for h.now+frame < t {
		h.step(frame)
	}
	h.step(t-h.now, edges...)
}

func (h *harness) press(t time.Duration) { h.at(t, event.EventPress) }
func (h *harness) release(t time.Duration) { h.at(t, event.EventRelease) }

// phaseAt advances to t and returns the phase observed
func (h *harness) phaseAt(t time.Duration) Phase {
	h.at(t)
	return h.c.Phase()
}

func (h *harness) transitions() []string {
	var out []string
	for _, ev := range h.rec.ofType(event.EventPhaseChanged) {
		p := ev.Payload.(*event.PhaseChangedPayload)
		out = append(out, p.From+">"+p.To)
	}
	return out
}

func (h *harness) cancelReasons() []string {
	var out []string
	for _, ev := range h.rec.ofType(event.EventChargeCancelled) {
		out = append(out, ev.Payload.(*event.ChargeCancelledPayload).Reason)
	}
	return out
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
