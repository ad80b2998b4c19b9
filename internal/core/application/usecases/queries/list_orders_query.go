package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via one of the NewList...OrdersQuery constructors",
)

// OrderScope selects whose orders a ListOrdersQuery returns.
type OrderScope int

const (
	ScopeCustomer OrderScope = iota + 1
	ScopeShop
	ScopeDeliveryPerson
)

// ListOrdersQuery lists the orders of a customer, a shop or a delivery
// person, newest first. For a delivery person only assigned orders count.
type ListOrdersQuery struct {
	scope   OrderScope
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(customerID kernel.UUID) (ListOrdersQuery, error) {
	return newListOrdersQuery(ScopeCustomer, "customerId", customerID)
}

func NewListShopOrdersQuery(shopID kernel.UUID) (ListOrdersQuery, error) {
	return newListOrdersQuery(ScopeShop, "shopId", shopID)
}

func NewListDeliveryPersonOrdersQuery(deliveryPersonID kernel.UUID) (ListOrdersQuery, error) {
	return newListOrdersQuery(ScopeDeliveryPerson, "deliveryPersonId", deliveryPersonID)
}

func newListOrdersQuery(scope OrderScope, name string, id kernel.UUID) (ListOrdersQuery, error) {
	if err := requireID(name, id); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{scope: scope, ownerID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Scope() OrderScope    { return q.scope }
func (q ListOrdersQuery) OwnerID() kernel.UUID { return q.ownerID }
