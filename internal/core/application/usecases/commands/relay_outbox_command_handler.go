package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// RelayOutboxCommandHandler moves stored events to the broker. Messages are
// marked published only after the broker acknowledged them, so a failure
// leads to redelivery on the next run rather than loss.
type RelayOutboxCommandHandler struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
}

func NewRelayOutboxCommandHandler(outbox ports.OutboxRepository, publisher ports.EventPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{outbox: outbox, publisher: publisher}
}

// Handle returns the number of messages published.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, command RelayOutboxCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	messages, err := h.outbox.GetUnpublished(ctx, command.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, messages...); err != nil {
		return 0, err
	}

	ids := make([]kernel.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	if err = h.outbox.MarkPublished(ctx, ids, time.Now()); err != nil {
		return 0, err
	}

	return len(messages), nil
}
