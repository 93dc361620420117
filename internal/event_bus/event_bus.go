// Package event_bus provides a small synchronous in-process event
// dispatcher. Handlers run sequentially during Publish; there is no
// queueing and no delivery across process boundaries.
package event_bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// EventType is an identifier for events.
type EventType string

// Event is the envelope handed to subscribers. Data is kept as any so
// different payload types can share one bus; use SubscribeTyped to get a
// typed payload.
type Event struct {
	ctx       context.Context
	Type      EventType
	Timestamp time.Time
	Data      any
}

// NewEvent creates an Event carrying the publisher's context, so handlers
// can honor cancellation and read context values such as the current user.
func NewEvent(ctx context.Context, eventType EventType, data any) Event {
	return Event{ctx: ctx, Type: eventType, Timestamp: time.Now(), Data: data}
}

// Context returns the context associated with this event.
func (e Event) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

// EventT is the typed envelope delivered by SubscribeTyped.
type EventT[T any] struct {
	ctx       context.Context
	Type      EventType
	Timestamp time.Time
	Data      T
}

// Context returns the context associated with this typed event.
func (e EventT[T]) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

type handler func(Event) error

// EventBus is a concurrency-safe synchronous event dispatcher.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[EventType]map[uint64]handler
	nextId      uint64
}

func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[EventType]map[uint64]handler)}
}

// Subscribe registers a handler for eventType and returns an unsubscribe
// function.
func (eb *EventBus) Subscribe(eventType EventType, h func(Event) error) (unsubscribe func()) {
	eb.mu.Lock()
	eb.nextId++
	id := eb.nextId
	if eb.subscribers[eventType] == nil {
		eb.subscribers[eventType] = make(map[uint64]handler)
	}
	eb.subscribers[eventType][id] = h
	eb.mu.Unlock()

	return func() {
		eb.mu.Lock()
		defer eb.mu.Unlock()
		if handlers := eb.subscribers[eventType]; handlers != nil {
			delete(handlers, id)
			if len(handlers) == 0 {
				delete(eb.subscribers, eventType)
			}
		}
	}
}

// SubscribeTyped registers a handler expecting payload type T. Events whose
// payload is not a T are skipped. It is a free function because Go methods
// cannot introduce type parameters.
func SubscribeTyped[T any](eb *EventBus, eventType EventType, h func(EventT[T]) error) (unsubscribe func()) {
	return eb.Subscribe(eventType, func(e Event) error {
		payload, ok := e.Data.(T)
		if !ok {
			log.Debugf("event bus: payload of %s is %T, typed handler skipped", eventType, e.Data)
			return nil
		}
		return h(EventT[T]{ctx: e.ctx, Type: e.Type, Timestamp: e.Timestamp, Data: payload})
	})
}

// Publish delivers the event to all handlers registered for its type, in
// registration order. Handler errors and recovered panics are collected;
// publishing continues past a failing handler.
func (eb *EventBus) Publish(e Event) error {
	if err := e.Context().Err(); err != nil {
		return fmt.Errorf("event %s: context cancelled before publish: %w", e.Type, err)
	}

	eb.mu.RLock()
	handlers := make([]handler, 0, len(eb.subscribers[e.Type]))
	for id := uint64(1); id <= eb.nextId; id++ {
		if h, ok := eb.subscribers[e.Type][id]; ok {
			handlers = append(handlers, h)
		}
	}
	eb.mu.RUnlock()

	var failures []error
	for _, h := range handlers {
		if err := e.Context().Err(); err != nil {
			failures = append(failures, fmt.Errorf("context cancelled during event processing: %w", err))
			break
		}
		if err := safeInvoke(h, e); err != nil {
			log.Errorf("event bus: handler error for event %s: %v", e.Type, err)
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("event %s: %d handler(s) failed: %v", e.Type, len(failures), failures)
	}
	return nil
}

func safeInvoke(h handler, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic for event %s: %v", e.Type, r)
		}
	}()
	return h(e)
}
