package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAcceptDeliveryRequestCommandIsNotConstructed = errors.New(
	"AcceptDeliveryRequestCommand must be created via NewAcceptDeliveryRequestCommand constructor",
)

// AcceptDeliveryRequestCommand is a seller accepting a delivery person's bid.
type AcceptDeliveryRequestCommand struct {
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID
	actingShopID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptDeliveryRequestCommand(
	orderID, deliveryPersonID, actingShopID kernel.UUID,
) (AcceptDeliveryRequestCommand, error) {
	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("deliveryPersonId", deliveryPersonID),
		requireID("shopId", actingShopID),
	); err != nil {
		return AcceptDeliveryRequestCommand{}, err
	}

	return AcceptDeliveryRequestCommand{
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		actingShopID:     actingShopID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryRequestCommandIsNotConstructed)
}

func (c AcceptDeliveryRequestCommand) OrderID() kernel.UUID          { return c.orderID }
func (c AcceptDeliveryRequestCommand) DeliveryPersonID() kernel.UUID { return c.deliveryPersonID }
func (c AcceptDeliveryRequestCommand) ActingShopID() kernel.UUID     { return c.actingShopID }
