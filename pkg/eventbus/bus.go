// Package eventbus fans change notifications out to presentation subscribers.
// Events carry no state; a subscriber reacts by pulling a fresh snapshot
package eventbus

import (
	"context"
	"sync"

	"pkt.systems/pslog"
)

// EventType identifies what changed
type EventType string

const (
	// EventCollection means the schema collection or entitlement changed
	EventCollection EventType = "collection"
	// EventSession means the editor session changed
	EventSession EventType = "session"
	// EventGate means a delete confirmation was armed or disarmed
	EventGate EventType = "gate"
)

// Event is a change notification
type Event struct {
	Type    EventType
	Key     string
	Version uint64
}

// Bus fans events out to subscribers
type Bus struct {
	mu    sync.Mutex
	subs  map[chan Event]struct{}
	log   pslog.Logger
	depth int
}

// New constructs a Bus
func New(logger pslog.Logger) *Bus {
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Bus{
		subs:  make(map[chan Event]struct{}),
		log:   logger,
		depth: 64,
	}
}

// Subscribe registers a subscriber and returns its channel and a cancel func
func (b *Bus) Subscribe() (<-chan Event, func()) {
	if b == nil {
		return nil, func() {}
	}
	ch := make(chan Event, b.depth)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	count := len(b.subs)
	b.mu.Unlock()
	b.log.Debug("eventbus subscribe", "subs", count)

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
			b.log.Debug("eventbus unsubscribe")
		})
	}
}

// Publish delivers event to every subscriber without blocking. A subscriber
// whose buffer is full misses the event
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.subs) == 0 {
		return
	}
	dropped := 0
	for sub := range b.subs {
		select {
		case sub <- event:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		b.log.Trace("eventbus dropped", "type", event.Type, "count", dropped)
	}
}
