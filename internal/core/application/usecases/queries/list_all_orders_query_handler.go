package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

type ListAllOrdersQueryHandler struct {
	orders OrderReader
}

func NewListAllOrdersQueryHandler(orders OrderReader) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{orders: orders}
}

func (h ListAllOrdersQueryHandler) Handle(ctx context.Context, query ListAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.ListAll(ctx)
}
