package events

import (
	"time"
)

// DomainEvent is the contract every aggregate event satisfies.
type DomainEvent interface {
	// GetAggregateID identifies the aggregate the event belongs to; tickets
	// use the protocol, conversations the telegram user ID.
	GetAggregateID() string

	GetEventType() string

	GetOccurredAt() time.Time

	// GetVersion is the event schema version, not the aggregate version.
	GetVersion() int
}

// BaseEvent carries the common fields; concrete events embed it and add
// their payload.
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string {
	return e.AggregateID
}

func (e BaseEvent) GetEventType() string {
	return e.EventType
}

func (e BaseEvent) GetOccurredAt() time.Time {
	return e.OccurredAt
}

func (e BaseEvent) GetVersion() int {
	return e.Version
}

// EventHandler consumes dispatched events.
type EventHandler interface {
	Handle(event DomainEvent) error

	// CanHandle reports whether the handler wants the given event type.
	CanHandle(eventType string) bool
}

// EventPublisher is the side the use cases see.
type EventPublisher interface {
	Publish(event DomainEvent) error

	PublishAll(events []DomainEvent) error
}

// EventSubscriber is the side the wiring code sees.
type EventSubscriber interface {
	Subscribe(eventType string, handler EventHandler) error

	Unsubscribe(eventType string, handler EventHandler) error
}

// EventDispatcher combines both sides plus lifecycle control.
type EventDispatcher interface {
	EventPublisher
	EventSubscriber

	Start() error

	Stop() error
}
