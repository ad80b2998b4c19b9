package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

type ListAvailableOrdersQueryHandler struct {
	orders   OrderReader
	profiles DeliveryPersonReader
}

func NewListAvailableOrdersQueryHandler(
	orders OrderReader,
	profiles DeliveryPersonReader,
) ListAvailableOrdersQueryHandler {
	return ListAvailableOrdersQueryHandler{orders: orders, profiles: profiles}
}

func (h ListAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	city := query.City()
	if city == "" {
		profile, err := h.profiles.Get(ctx, query.DeliveryPersonID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewNotEligibleError("deliveryPersonId", query.DeliveryPersonID(),
				"profile is not registered, pass a city")
		}
		if err != nil {
			return nil, err
		}
		city = profile.City()
	}

	return h.orders.ListUnassignedByCity(ctx, city)
}
