package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSubmitDeliveryRequestCommandIsNotConstructed = errors.New(
	"SubmitDeliveryRequestCommand must be created via NewSubmitDeliveryRequestCommand constructor",
)

// SubmitDeliveryRequestCommand is a delivery person's bid for an order.
type SubmitDeliveryRequestCommand struct {
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubmitDeliveryRequestCommand(orderID, deliveryPersonID kernel.UUID) (SubmitDeliveryRequestCommand, error) {
	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("deliveryPersonId", deliveryPersonID),
	); err != nil {
		return SubmitDeliveryRequestCommand{}, err
	}

	return SubmitDeliveryRequestCommand{
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryRequestCommandIsNotConstructed)
}

func (c SubmitDeliveryRequestCommand) OrderID() kernel.UUID          { return c.orderID }
func (c SubmitDeliveryRequestCommand) DeliveryPersonID() kernel.UUID { return c.deliveryPersonID }

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
