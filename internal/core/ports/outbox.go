package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event persisted in the same transaction as the
// aggregate change that produced it. PartitionKey is the order the event
// belongs to.
type OutboxMessage struct {
	ID           kernel.UUID
	AggregateID  kernel.UUID
	PartitionKey kernel.UUID
	EventName    string
	Payload      []byte
	OccurredAt   time.Time
}

// OutboxRepository reads and acknowledges stored domain events.
type OutboxRepository interface {
	// GetUnpublished returns up to limit messages, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
