package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CreateOrderCommandHandler resolves the basket against the product catalog,
// builds the order snapshot and stores it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, fee, time.Now)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Order %s total %s", created.ID(), created.TotalAmount())
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	catalog     ports.ProductCatalog
	deliveryFee kernel.Money
	now         func() time.Time
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	deliveryFee kernel.Money,
	now func() time.Time,
) CreateOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		catalog:     catalog,
		deliveryFee: deliveryFee,
		now:         now,
	}
}

// Handle fails with a NotFound error for unknown products and a validation
// error for mixed sellers; nothing is stored in either case.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	products, err := h.catalog.ResolveProducts(ctx, command.ProductIDs())
	if err != nil {
		return nil, err
	}

	items, err := order.BuildLineItems(command.Items(), products)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		command.CustomerID(),
		items,
		command.ShippingAddress(),
		h.deliveryFee,
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
