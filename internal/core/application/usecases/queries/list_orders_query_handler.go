package queries

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/order"
)

type ListOrdersQueryHandler struct {
	orders OrderReader
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	switch query.Scope() {
	case ScopeCustomer:
		return h.orders.ListForCustomer(ctx, query.OwnerID())
	case ScopeShop:
		return h.orders.ListForShop(ctx, query.OwnerID())
	case ScopeDeliveryPerson:
		return h.orders.ListForDeliveryPerson(ctx, query.OwnerID())
	default:
		return nil, fmt.Errorf("unknown order scope %d", query.Scope())
	}
}
