// Package events is the in-process event bus the feature modules use to
// announce things to each other without importing each other. Event
// definitions live with the domains; only the plumbing lives here.
package events

import (
	"context"
	"time"
)

// Event is implemented by every domain event.
type Event interface {
	// EventName identifies the event type for subscription routing.
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent carries the fields shared by all events. Embed it.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps a fresh event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler consumes events of one type.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function into a Handler.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus publishes domain events to subscribed handlers.
type Bus interface {
	// Publish delivers the event to its handlers asynchronously. A
	// publisher never blocks on its subscribers.
	Publish(ctx context.Context, event Event)

	// PublishSync delivers the event and waits for every handler,
	// returning the first handler error.
	PublishSync(ctx context.Context, event Event) error

	// Subscribe registers a handler for the named event type. The name
	// must match the event's EventName.
	Subscribe(eventName string, handler Handler)
}
