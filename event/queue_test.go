package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sling/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventPress})
	q.Push(GameEvent{Type: EventRelease})
	q.Push(GameEvent{Type: EventEnergyDrain, Payload: &EnergyDrainPayload{Amount: 5}})
	assert.Equal(t, 3, q.Len())

	events := q.Consume()
	require.Len(t, events, 3)
	assert.Equal(t, EventPress, events[0].Type)
	assert.Equal(t, EventRelease, events[1].Type)
	assert.Equal(t, 5.0, events[2].Payload.(*EnergyDrainPayload).Amount)

	assert.Nil(t, q.Consume())
	assert.Zero(t, q.Len())
}

func TestEventQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventEnergyDrain, Payload: &EnergyDrainPayload{Amount: float64(i)}})
	}

	events := q.Consume()
	require.Len(t, events, parameter.EventQueueSize)
	assert.Equal(t, 10.0, events[0].Payload.(*EnergyDrainPayload).Amount)
	assert.Equal(t, float64(total-1), events[len(events)-1].Payload.(*EnergyDrainPayload).Amount)
	assert.Equal(t, uint64(10), q.Dropped())
}

func TestEventQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 32; i++ {
				q.Push(GameEvent{Type: EventPress})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.Consume(), 128)
}

func TestEventNames(t *testing.T) {
	assert.Equal(t, "Tick", EventTick.String())
	assert.Equal(t, "ShotFired", EventShotFired.String())
	assert.Equal(t, "Unknown", EventType(9999).String())

	et, ok := GetEventType("ChargeCancelled")
	require.True(t, ok)
	assert.Equal(t, EventChargeCancelled, et)

	p, ok := NewPayloadStruct(EventShotFired).(*ShotFiredPayload)
	require.True(t, ok)
	assert.NotNil(t, p)
	assert.Nil(t, NewPayloadStruct(EventPress))
}

func TestShotKindString(t *testing.T) {
	assert.Equal(t, "full", ShotFull.String())
	assert.Equal(t, "fast", ShotFast.String())
}
