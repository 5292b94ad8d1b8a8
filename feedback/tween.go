package feedback

import (
	"time"

	"github.com/lixenwraith/sling/vmath"
)

// tween blends a scalar toward a target; retargeting starts from the current value
type tween struct {
	from, to float64
	elapsed  time.Duration
	duration time.Duration
	ease     vmath.EaseFunc
}

func newTween(v float64, ease vmath.EaseFunc) tween {
	return tween{from: v, to: v, ease: ease}
}

func (t *tween) value() float64 {
	return vmath.Lerp(t.from, t.to, t.ease(vmath.Progress(t.elapsed, t.duration)))
}

// retarget supersedes any blend in flight
func (t *tween) retarget(to float64, d time.Duration) {
	t.from = t.value()
	t.to = to
	t.elapsed = 0
	t.duration = d
}

func (t *tween) advance(dt time.Duration) {
	if t.elapsed < t.duration {
		t.elapsed += dt
	}
}

func (t *tween) done() bool {
	return t.elapsed >= t.duration
}

type vecTween struct {
	from, to vmath.Vec3F
	elapsed  time.Duration
	duration time.Duration
	ease     vmath.EaseFunc
}

func (t *vecTween) value() vmath.Vec3F {
	return vmath.V3FLerp(t.from, t.to, t.ease(vmath.Progress(t.elapsed, t.duration)))
}

func (t *vecTween) retarget(to vmath.Vec3F, d time.Duration) {
	t.from = t.value()
	t.to = to
	t.elapsed = 0
	t.duration = d
}

func (t *vecTween) advance(dt time.Duration) {
	if t.elapsed < t.duration {
		t.elapsed += dt
	}
}
