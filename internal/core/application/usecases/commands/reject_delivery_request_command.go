package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRejectDeliveryRequestCommandIsNotConstructed = errors.New(
	"RejectDeliveryRequestCommand must be created via NewRejectDeliveryRequestCommand constructor",
)

// RejectDeliveryRequestCommand is a seller declining a delivery person's bid.
type RejectDeliveryRequestCommand struct {
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID
	actingShopID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewRejectDeliveryRequestCommand(
	orderID, deliveryPersonID, actingShopID kernel.UUID,
) (RejectDeliveryRequestCommand, error) {
	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("deliveryPersonId", deliveryPersonID),
		requireID("shopId", actingShopID),
	); err != nil {
		return RejectDeliveryRequestCommand{}, err
	}

	return RejectDeliveryRequestCommand{
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		actingShopID:     actingShopID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c RejectDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectDeliveryRequestCommandIsNotConstructed)
}

func (c RejectDeliveryRequestCommand) OrderID() kernel.UUID          { return c.orderID }
func (c RejectDeliveryRequestCommand) DeliveryPersonID() kernel.UUID { return c.deliveryPersonID }
func (c RejectDeliveryRequestCommand) ActingShopID() kernel.UUID     { return c.actingShopID }
