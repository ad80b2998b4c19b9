package outboxrepo

import (
	"testing"
	"time"

	"marketplace/internal/pkg/ddd"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEvent_PartitionKey(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	aggregateID := uuid.New()

	t.Run("keyed event", func(t *testing.T) {
		orderID := uuid.New()
		dto, err := FromEvent(ddd.NewBaseEvent("delivery_request.accepted", aggregateID, at).WithPartitionKey(orderID))

		require.NoError(t, err)
		assert.Equal(t, aggregateID, dto.AggregateID)
		assert.Equal(t, orderID, dto.PartitionKey)
	})

	t.Run("missing key falls back to the aggregate", func(t *testing.T) {
		dto, err := FromEvent(ddd.BaseEvent{ID: uuid.New(), Name: "order.created", AggregateOf: aggregateID, At: at})

		require.NoError(t, err)
		assert.Equal(t, aggregateID, dto.PartitionKey)
	})
}
