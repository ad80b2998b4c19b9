package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand moves an order one step along its delivery
// sequence on behalf of the assigned delivery person. newStatus is kept as
// given so that an unknown value is reported back verbatim.
type AdvanceOrderStatusCommand struct {
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID
	newStatus        string

	guard guard.ConstructorGuard
}

func NewAdvanceOrderStatusCommand(
	orderID, deliveryPersonID kernel.UUID,
	newStatus string,
) (AdvanceOrderStatusCommand, error) {
	var statusErr error
	if strings.TrimSpace(newStatus) == "" {
		statusErr = errs.NewValueIsRequiredError("newStatus")
	}
	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("deliveryPersonId", deliveryPersonID),
		statusErr,
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return AdvanceOrderStatusCommand{
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		newStatus:        newStatus,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID          { return c.orderID }
func (c AdvanceOrderStatusCommand) DeliveryPersonID() kernel.UUID { return c.deliveryPersonID }
func (c AdvanceOrderStatusCommand) NewStatus() string             { return c.newStatus }
