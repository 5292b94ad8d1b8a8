package energy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/sling/config"
	"github.com/lixenwraith/sling/event"
)

func newTestPool() *Pool {
	return NewPool(config.Energy{Max: 100, Initial: 100, RegenRate: 5})
}

func TestTryConsume(t *testing.T) {
	p := newTestPool()

	assert.True(t, p.TryConsume(5))
	assert.Equal(t, 95.0, p.CurrentLevel())

	assert.False(t, p.TryConsume(96), "insufficient consume must fail")
	assert.Equal(t, 95.0, p.CurrentLevel(), "failed consume must not change level")

	assert.True(t, p.TryConsume(95))
	assert.Equal(t, 0.0, p.CurrentLevel())
	assert.False(t, p.TryConsume(0.1))

	assert.False(t, p.TryConsume(-1))
}

func TestDrainClampsAtZero(t *testing.T) {
	p := newTestPool()
	p.Drain(30)
	assert.Equal(t, 70.0, p.CurrentLevel())
	p.Drain(1000)
	assert.Equal(t, 0.0, p.CurrentLevel())
	p.Drain(-5)
	assert.Equal(t, 0.0, p.CurrentLevel())
}

func TestRegen(t *testing.T) {
	p := NewPool(config.Energy{Max: 100, Initial: 90, RegenRate: 5})

	p.Update(time.Second)
	assert.Equal(t, 90.0, p.CurrentLevel(), "no regen out of sunlight")

	p.SetRegenerating(true)
	p.Update(time.Second)
	assert.InDelta(t, 95.0, p.CurrentLevel(), 1e-9)

	p.Update(10 * time.Second)
	assert.Equal(t, 100.0, p.CurrentLevel(), "regen clamps to max")
	assert.Equal(t, 1.0, p.Ratio())
}

func TestInitialClamped(t *testing.T) {
	p := NewPool(config.Energy{Max: 50, Initial: 80})
	assert.Equal(t, 50.0, p.CurrentLevel())
	assert.Equal(t, 50.0, p.Max())
}

func TestHandleEvent(t *testing.T) {
	p := newTestPool()

	p.HandleEvent(event.GameEvent{Type: event.EventEnergyDrain, Payload: &event.EnergyDrainPayload{Amount: 20}})
	assert.Equal(t, 80.0, p.CurrentLevel())

	p.HandleEvent(event.GameEvent{Type: event.EventSunlightToggle})
	assert.True(t, p.Regenerating())
	p.HandleEvent(event.GameEvent{Type: event.EventSunlightToggle})
	assert.False(t, p.Regenerating())

	// Wrong payload type is ignored
	p.HandleEvent(event.GameEvent{Type: event.EventEnergyDrain, Payload: 20.0})
	assert.Equal(t, 80.0, p.CurrentLevel())
}
