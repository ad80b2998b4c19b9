package queries

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrListAvailableOrdersQueryIsNotConstructed = errors.New(
	"ListAvailableOrdersQuery must be created via NewListAvailableOrdersQuery constructor",
)

// ListAvailableOrdersQuery is a delivery person's discovery feed: unassigned
// Processing orders shipping to a city. An empty city means the city on the
// delivery person's profile.
type ListAvailableOrdersQuery struct {
	deliveryPersonID kernel.UUID
	city             string

	guard guard.ConstructorGuard
}

func NewListAvailableOrdersQuery(deliveryPersonID kernel.UUID, city string) (ListAvailableOrdersQuery, error) {
	if err := requireID("deliveryPersonId", deliveryPersonID); err != nil {
		return ListAvailableOrdersQuery{}, err
	}
	return ListAvailableOrdersQuery{
		deliveryPersonID: deliveryPersonID,
		city:             strings.TrimSpace(city),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (q ListAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableOrdersQueryIsNotConstructed)
}

func (q ListAvailableOrdersQuery) DeliveryPersonID() kernel.UUID { return q.deliveryPersonID }
func (q ListAvailableOrdersQuery) City() string                  { return q.city }
