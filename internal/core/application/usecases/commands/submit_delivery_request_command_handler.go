package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/deliveryrequest"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// SubmitDeliveryRequestCommandHandler records a bid. The order must still be
// Processing and unassigned (NotEligible otherwise). A pending bid from
// another delivery person wins (Conflict); a concurrent first bid for the
// same order loses on the unique order key, also as Conflict.
type SubmitDeliveryRequestCommandHandler struct {
	uowFactory  UoWFactory
	coordinator services.AssignmentCoordinator
}

func NewSubmitDeliveryRequestCommandHandler(uowFactory UoWFactory) SubmitDeliveryRequestCommandHandler {
	return SubmitDeliveryRequestCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewAssignmentCoordinator(),
	}
}

func (h SubmitDeliveryRequestCommandHandler) Handle(
	ctx context.Context,
	command SubmitDeliveryRequestCommand,
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

	orderRepo := uow.OrderRepository()
	requestRepo := uow.DeliveryRequestRepository()
	personRepo := uow.DeliveryPersonRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	dp, err := personRepo.Get(ctx, command.DeliveryPersonID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewNotEligibleError("deliveryPerson", command.DeliveryPersonID(), "profile is not registered")
	}
	if err != nil {
		return nil, err
	}

	existing, err := requestRepo.GetByOrderID(ctx, command.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	request, created, changed, err := h.coordinator.Submit(o, existing, dp, time.Now())
	if err != nil {
		return nil, err
	}

	switch {
	case created:
		err = requestRepo.Add(ctx, request)
	case changed:
		err = requestRepo.Update(ctx, request)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return request, nil
}
