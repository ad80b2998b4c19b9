package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order for a customer's basket.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor.SubjectID, []order.ItemRequest{
//	    {ProductID: kettleID, Quantity: 2},
//	}, address)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	items           []order.ItemRequest
	shippingAddress kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	customerID kernel.UUID,
	items []order.ItemRequest,
	shippingAddress kernel.Address,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setShippingAddress(shippingAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

func (c CreateOrderCommand) ShippingAddress() kernel.Address { return c.shippingAddress }

// Items returns a copy of the requested line items.
func (c CreateOrderCommand) Items() []order.ItemRequest {
	items := make([]order.ItemRequest, len(c.items))
	copy(items, c.items)
	return items
}

// ProductIDs returns the distinct product IDs in request order.
func (c CreateOrderCommand) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.items))
	ids := make([]kernel.UUID, 0, len(c.items))
	for _, item := range c.items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.ItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	var itemErrs []error
	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("lineItems[%d].productId: %w", i, err))
		}
		if item.Quantity < 1 || item.Quantity > order.MaxQuantity {
			itemErrs = append(itemErrs, fmt.Errorf("lineItems[%d]: %w", i,
				errs.NewValueIsOutOfRangeError("quantity", item.Quantity, 1, order.MaxQuantity)))
		}
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.items = make([]order.ItemRequest, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.shippingAddress = address
	return nil
}
