// Package events carries messages between the command layer and the UI
// components so neither needs a reference to the other.
package events

import "sync"

// Broker fans events out to subscribers. Publishing never blocks: a
// subscriber that falls behind misses events rather than stalling the
// command loop.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[EventType][]chan Event
	bufferSize  int
}

// NewBroker creates an event broker.
func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[EventType][]chan Event),
		bufferSize:  16,
	}
}

// Subscribe returns a channel receiving the given event types, or every
// event when none are named.
func (b *Broker) Subscribe(eventTypes ...EventType) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)
	if len(eventTypes) == 0 {
		eventTypes = []EventType{"*"}
	}
	for _, et := range eventTypes {
		b.subscribers[et] = append(b.subscribers[et], ch)
	}
	return ch
}

// Publish sends an event to matching and wildcard subscribers.
func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, et := range []EventType{event.Type, "*"} {
		for _, ch := range b.subscribers[et] {
			select {
			case ch <- event:
			default:
				// Subscriber buffer full, drop.
			}
		}
	}
}

// Unsubscribe removes a channel from the given event types, or from all
// types when none are named, closing it once fully removed.
func (b *Broker) Unsubscribe(ch <-chan Event, eventTypes ...EventType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(eventTypes) == 0 {
		eventTypes = make([]EventType, 0, len(b.subscribers))
		for et := range b.subscribers {
			eventTypes = append(eventTypes, et)
		}
	}
	var removed chan Event
	for _, et := range eventTypes {
		if found := b.removeChannel(et, ch); found != nil {
			removed = found
		}
	}
	if removed != nil {
		close(removed)
	}
}

func (b *Broker) removeChannel(eventType EventType, target <-chan Event) chan Event {
	subs := b.subscribers[eventType]
	for i, ch := range subs {
		if ch == target {
			b.subscribers[eventType] = append(subs[:i], subs[i+1:]...)
			if len(b.subscribers[eventType]) == 0 {
				delete(b.subscribers, eventType)
			}
			return ch
		}
	}
	return nil
}
