package ports

import (
	"context"

	"marketplace/internal/core/domain/model/deliveryperson"
	"marketplace/internal/core/domain/model/kernel"
)

// DeliveryPersonRepository stores delivery person profiles.
type DeliveryPersonRepository interface {
	Add(ctx context.Context, aggregate *deliveryperson.DeliveryPerson) error
	Update(ctx context.Context, aggregate *deliveryperson.DeliveryPerson) error
	// Get returns the profile or an ObjectNotFound error.
	Get(ctx context.Context, id kernel.UUID) (*deliveryperson.DeliveryPerson, error)
}
