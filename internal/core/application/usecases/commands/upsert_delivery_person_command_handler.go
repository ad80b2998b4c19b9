package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/deliveryperson"
	"marketplace/internal/pkg/errs"
)

type UpsertDeliveryPersonCommandHandler struct {
	uowFactory DeliveryPersonUoWFactory
}

func NewUpsertDeliveryPersonCommandHandler(uowFactory DeliveryPersonUoWFactory) UpsertDeliveryPersonCommandHandler {
	return UpsertDeliveryPersonCommandHandler{uowFactory: uowFactory}
}

func (h UpsertDeliveryPersonCommandHandler) Handle(
	ctx context.Context,
	command UpsertDeliveryPersonCommand,
) (*deliveryperson.DeliveryPerson, error) {
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

	repo := uow.DeliveryPersonRepository()
	now := time.Now()

	dp, err := repo.Get(ctx, command.DeliveryPersonID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		dp, err = deliveryperson.NewDeliveryPerson(
			command.DeliveryPersonID(), command.Name(), command.MobileNumber(), command.City(), now)
		if err != nil {
			return nil, err
		}
		if err = dp.UpdateProfile(dp.Name(), dp.MobileNumber(), dp.City(), command.IsAvailable(), now); err != nil {
			return nil, err
		}
		err = repo.Add(ctx, dp)
	case err != nil:
		return nil, err
	default:
		if err = dp.UpdateProfile(command.Name(), command.MobileNumber(), command.City(), command.IsAvailable(), now); err != nil {
			return nil, err
		}
		err = repo.Update(ctx, dp)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return dp, nil
}
