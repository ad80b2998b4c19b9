package queries

import (
	"context"

	"marketplace/internal/core/domain/model/deliveryperson"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// OrderReader is the read side of ports.OrderRepository.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	ListForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
	ListForShop(ctx context.Context, shopID kernel.UUID) ([]*order.Order, error)
	ListUnassignedByCity(ctx context.Context, city string) ([]*order.Order, error)
	ListForDeliveryPerson(ctx context.Context, deliveryPersonID kernel.UUID) ([]*order.Order, error)
	ListAll(ctx context.Context) ([]*order.Order, error)
}

// DeliveryPersonReader looks up delivery person profiles.
type DeliveryPersonReader interface {
	Get(ctx context.Context, id kernel.UUID) (*deliveryperson.DeliveryPerson, error)
}

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
