package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/deliveryrequest"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// RejectDeliveryRequestCommandHandler declines a bid after checking that the
// acting shop owns the order. The order itself is not modified.
type RejectDeliveryRequestCommandHandler struct {
	uowFactory  UoWFactory
	coordinator services.AssignmentCoordinator
}

func NewRejectDeliveryRequestCommandHandler(uowFactory UoWFactory) RejectDeliveryRequestCommandHandler {
	return RejectDeliveryRequestCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewAssignmentCoordinator(),
	}
}

func (h RejectDeliveryRequestCommandHandler) Handle(
	ctx context.Context,
	command RejectDeliveryRequestCommand,
) (*deliveryrequest.DeliveryRequest, error) {
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

	requestRepo := uow.DeliveryRequestRepository()

	o, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	request, err := requestRepo.GetByOrderID(ctx, command.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err = h.coordinator.Reject(o, request, command.DeliveryPersonID(), command.ActingShopID(), time.Now()); err != nil {
		return nil, err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return request, nil
}
