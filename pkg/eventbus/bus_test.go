package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeAndPublish(t *testing.T) {
	bus := New(nil)
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(Event{Type: EventCollection, Key: "a", Version: 3})

	select {
	case got := <-ch:
		assert.Equal(t, EventCollection, got.Type)
		assert.Equal(t, "a", got.Key)
		assert.Equal(t, uint64(3), got.Version)
	case <-time.After(time.Second):
		t.Fatal("expected event")
	}
}

func TestCancelClosesChannel(t *testing.T) {
	bus := New(nil)
	ch, cancel := bus.Subscribe()
	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok, "channel should be closed after cancel")

	// Publishing after cancel must not panic on the closed channel
	bus.Publish(Event{Type: EventSession})
}

func TestPublishDropsWhenFull(t *testing.T) {
	bus := New(nil)
	ch, cancel := bus.Subscribe()
	defer cancel()

	for i := 0; i < bus.depth+10; i++ {
		bus.Publish(Event{Type: EventGate, Version: uint64(i)})
	}
	require.Len(t, ch, bus.depth)
}

func TestNilBusIsInert(t *testing.T) {
	var bus *Bus
	ch, cancel := bus.Subscribe()
	assert.Nil(t, ch)
	cancel()
	bus.Publish(Event{Type: EventCollection})
}
