package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// AdvanceOrderStatusCommandHandler applies a forward status step. A failed
// step leaves the stored order untouched.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h AdvanceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command AdvanceOrderStatusCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	o, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Advance(command.DeliveryPersonID(), command.NewStatus(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
