package ports

import (
	"context"

	"marketplace/internal/core/domain/model/deliveryrequest"
	"marketplace/internal/core/domain/model/kernel"
)

// DeliveryRequestRepository defines the persistence contract for delivery
// requests. There is at most one record per order.
type DeliveryRequestRepository interface {
	// Add inserts a new request. A second record for the same order fails
	// with a Conflict error.
	Add(ctx context.Context, aggregate *deliveryrequest.DeliveryRequest) error

	// Update is guarded by the aggregate's version like OrderRepository.Update.
	Update(ctx context.Context, aggregate *deliveryrequest.DeliveryRequest) error

	// GetByOrderID returns the request record of an order or an ObjectNotFound error.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*deliveryrequest.DeliveryRequest, error)
}
