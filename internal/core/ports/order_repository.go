// Package ports defines the contracts between the core and its adapters:
// repositories for the order, delivery request and delivery person
// aggregates, the unit of work, the product catalog, and the outbox with its
// event publisher.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// List methods return newest first.
type OrderRepository interface {
	// Add persists a new order with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and assignment changes. The write is guarded by
	// the aggregate's version; a stale version fails with a Conflict error.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an ObjectNotFound error.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	ListForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	ListForShop(ctx context.Context, shopID kernel.UUID) ([]*order.Order, error)

	// ListUnassignedByCity returns Processing orders without a delivery
	// person whose shipping city equals city, ignoring case and surrounding
	// whitespace.
	ListUnassignedByCity(ctx context.Context, city string) ([]*order.Order, error)

	// ListForDeliveryPerson returns orders assigned to deliveryPersonID in
	// Accepted, Shifted, OutForDelivery or Delivered status.
	ListForDeliveryPerson(ctx context.Context, deliveryPersonID kernel.UUID) ([]*order.Order, error)

	// ListAll returns every order on the platform.
	ListAll(ctx context.Context) ([]*order.Order, error)
}
