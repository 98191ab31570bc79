// Package events is a typed, synchronous publish/subscribe bus used by the gameplay systems.
package events

import (
	"reflect"
	"sync"
)

// Bus routes events to handlers by the event's Go type. Emit calls every handler of the
// event type in subscription order before returning.
type Bus struct {
	mu       sync.RWMutex // protects handler registration
	handlers map[reflect.Type][]any
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[reflect.Type][]any)}
}

// Subscribe registers fn for events of type T. Handlers receive a pointer to the emitted
// value and may modify it; later handlers see the modification.
func Subscribe[T any](b *Bus, fn func(*T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := reflect.TypeFor[T]()
	b.handlers[t] = append(b.handlers[t], fn)
}

// Emit delivers event to all handlers subscribed to T. Handlers subscribed while the event
// is being delivered receive only later events.
func Emit[T any](b *Bus, event T) {
	b.mu.RLock()
	hs := b.handlers[reflect.TypeFor[T]()]
	b.mu.RUnlock()
	for _, h := range hs {
		h.(func(*T))(&event)
	}
}

// Subscribers reports how many handlers are registered for T.
func Subscribers[T any](b *Bus) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[reflect.TypeFor[T]()])
}

// Reset drops every subscription.
func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.handlers)
}
