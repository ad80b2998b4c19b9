package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpsertDeliveryPersonCommandIsNotConstructed = errors.New(
	"UpsertDeliveryPersonCommand must be created via NewUpsertDeliveryPersonCommand constructor",
)

// UpsertDeliveryPersonCommand registers or updates the profile of the
// authenticated delivery person. Field validation happens in the aggregate.
type UpsertDeliveryPersonCommand struct {
	deliveryPersonID kernel.UUID
	name             string
	mobileNumber     string
	city             string
	isAvailable      bool

	guard guard.ConstructorGuard
}

func NewUpsertDeliveryPersonCommand(
	deliveryPersonID kernel.UUID,
	name, mobileNumber, city string,
	isAvailable bool,
) (UpsertDeliveryPersonCommand, error) {
	if err := requireID("deliveryPersonId", deliveryPersonID); err != nil {
		return UpsertDeliveryPersonCommand{}, err
	}

	return UpsertDeliveryPersonCommand{
		deliveryPersonID: deliveryPersonID,
		name:             name,
		mobileNumber:     mobileNumber,
		city:             city,
		isAvailable:      isAvailable,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c UpsertDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrUpsertDeliveryPersonCommandIsNotConstructed)
}

func (c UpsertDeliveryPersonCommand) DeliveryPersonID() kernel.UUID { return c.deliveryPersonID }
func (c UpsertDeliveryPersonCommand) Name() string                  { return c.name }
func (c UpsertDeliveryPersonCommand) MobileNumber() string          { return c.mobileNumber }
func (c UpsertDeliveryPersonCommand) City() string                  { return c.city }
func (c UpsertDeliveryPersonCommand) IsAvailable() bool             { return c.isAvailable }
