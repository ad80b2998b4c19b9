package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// AcceptDeliveryRequestCommandHandler accepts the bid and assigns the order
// in one transaction. Both updates are version-guarded, so a concurrent
// accept or advance on the same order makes one of them fail with Conflict
// and the transaction rolls back as a whole.
//
// Example:
//
//	cmd, _ := NewAcceptDeliveryRequestCommand(orderID, deliveryPersonID, actor.SubjectID)
//	assigned, err := handler.Handle(ctx, cmd)
//	switch errs.KindOf(err) {
//	case errs.KindNotAuthorized:
//	    // another shop's order
//	case errs.KindConflict:
//	    // already assigned
//	}
type AcceptDeliveryRequestCommandHandler struct {
	uowFactory  UoWFactory
	coordinator services.AssignmentCoordinator
}

func NewAcceptDeliveryRequestCommandHandler(uowFactory UoWFactory) AcceptDeliveryRequestCommandHandler {
	return AcceptDeliveryRequestCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewAssignmentCoordinator(),
	}
}

func (h AcceptDeliveryRequestCommandHandler) Handle(
	ctx context.Context,
	command AcceptDeliveryRequestCommand,
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

	orderRepo := uow.OrderRepository()
	requestRepo := uow.DeliveryRequestRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	request, err := requestRepo.GetByOrderID(ctx, command.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err = h.coordinator.Accept(o, request, command.DeliveryPersonID(), command.ActingShopID(), time.Now()); err != nil {
		return nil, err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
