// Package outboxrepo stores domain events in outbox_messages, written in the
// same transaction as the aggregate change, and serves them to the relay.
package outboxrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/ddd"

	"github.com/google/uuid"
)

type OutboxMessageDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	PartitionKey uuid.UUID  `gorm:"type:uuid;not null"`
	EventName    string     `gorm:"type:varchar(128);not null"`
	Payload      []byte     `gorm:"type:jsonb;not null"`
	OccurredAt   time.Time  `gorm:"not null;index"`
	PublishedAt  *time.Time `gorm:"index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

// FromEvent serializes a domain event into an outbox row.
func FromEvent(event ddd.DomainEvent) (OutboxMessageDTO, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxMessageDTO{}, fmt.Errorf("marshal %s: %w", event.EventName(), err)
	}

	key := event.PartitionKey()
	if key == uuid.Nil {
		key = event.AggregateID()
	}

	return OutboxMessageDTO{
		ID:           event.EventID(),
		AggregateID:  event.AggregateID(),
		PartitionKey: key,
		EventName:    event.EventName(),
		Payload:      payload,
		OccurredAt:   event.OccurredAt(),
	}, nil
}

func toMessage(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromGoogle(dto.AggregateID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	key, err := kernel.UUIDFromGoogle(dto.PartitionKey)
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:           id,
		AggregateID:  aggregateID,
		PartitionKey: key,
		EventName:    dto.EventName,
		Payload:      dto.Payload,
		OccurredAt:   dto.OccurredAt,
	}, nil
}
