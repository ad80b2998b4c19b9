// Package ddd holds the small contracts shared by aggregates that emit
// domain events and the outbox that persists them.
package ddd

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact recorded by an aggregate during a state change.
// Implementations are plain structs with exported fields so they can be
// serialized into the outbox as JSON.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	AggregateID() uuid.UUID
	PartitionKey() uuid.UUID
	OccurredAt() time.Time
}

// Aggregate is implemented by every aggregate root the unit of work tracks.
type Aggregate interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseEvent carries the identity fields common to all events.
type BaseEvent struct {
	ID          uuid.UUID `json:"eventId"`
	Name        string    `json:"eventName"`
	AggregateOf uuid.UUID `json:"aggregateId"`
	At          time.Time `json:"occurredAt"`
	Key         uuid.UUID `json:"-"`
}

// NewBaseEvent stamps a fresh event ID. The partition key defaults to the
// aggregate ID.
func NewBaseEvent(name string, aggregateID uuid.UUID, at time.Time) BaseEvent {
	return BaseEvent{ID: uuid.New(), Name: name, AggregateOf: aggregateID, At: at.UTC(), Key: aggregateID}
}

// WithPartitionKey publishes the event under another aggregate's key.
func (e BaseEvent) WithPartitionKey(key uuid.UUID) BaseEvent {
	e.Key = key
	return e
}

func (e BaseEvent) EventID() uuid.UUID      { return e.ID }
func (e BaseEvent) EventName() string       { return e.Name }
func (e BaseEvent) AggregateID() uuid.UUID  { return e.AggregateOf }
func (e BaseEvent) PartitionKey() uuid.UUID { return e.Key }
func (e BaseEvent) OccurredAt() time.Time   { return e.At }

// EventRecorder is embedded by aggregate roots to buffer events until the
// unit of work drains them.
type EventRecorder struct {
	events []DomainEvent
}

// Record appends an event.
func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns the buffered events in the order they were recorded.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	return r.events
}

// ClearDomainEvents drops the buffer.
func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
