package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrListPendingDeliveryRequestsQueryIsNotConstructed = errors.New(
	"ListPendingDeliveryRequestsQuery must be created via NewListPendingDeliveryRequestsQuery constructor",
)

// ListPendingDeliveryRequestsQuery is the seller's inbox of delivery bids.
type ListPendingDeliveryRequestsQuery struct {
	shopID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListPendingDeliveryRequestsQuery(shopID kernel.UUID) (ListPendingDeliveryRequestsQuery, error) {
	if err := requireID("shopId", shopID); err != nil {
		return ListPendingDeliveryRequestsQuery{}, err
	}
	return ListPendingDeliveryRequestsQuery{shopID: shopID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPendingDeliveryRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListPendingDeliveryRequestsQueryIsNotConstructed)
}

func (q ListPendingDeliveryRequestsQuery) ShopID() kernel.UUID { return q.shopID }

// PendingDeliveryRequestResponse is a pending bid joined with its order and
// the delivery person's display fields. Name and mobile are empty when the
// delivery person has no stored profile.
type PendingDeliveryRequestResponse struct {
	RequestID             kernel.UUID
	OrderID               kernel.UUID
	DeliveryPersonID      kernel.UUID
	DeliveryPersonName    string
	DeliveryPersonMobile  string
	OrderStatus           order.Status
	OrderTotalAmount      kernel.Money
	ShippingCity          string
	EstimatedDeliveryDate time.Time
	RequestedAt           time.Time
}
