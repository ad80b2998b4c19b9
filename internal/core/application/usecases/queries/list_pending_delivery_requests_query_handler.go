package queries

import (
	"context"

	"marketplace/internal/core/domain/model/deliveryrequest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListPendingDeliveryRequestsQueryHandler reads the seller's pending bids
// straight from the database. Orders that already left Processing are
// skipped, so a bid that lost a race never shows up as actionable.
type ListPendingDeliveryRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListPendingDeliveryRequestsQueryHandler(db *gorm.DB) ListPendingDeliveryRequestsQueryHandler {
	return ListPendingDeliveryRequestsQueryHandler{db: db}
}

func (h ListPendingDeliveryRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListPendingDeliveryRequestsQuery,
) ([]PendingDeliveryRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]PendingDeliveryRequestResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.order_id,
			r.delivery_person_id,
			COALESCE(p.name, ''),
			COALESCE(p.mobile_number, ''),
			o.status,
			o.total_amount,
			o.shipping_city,
			o.estimated_delivery_date,
			r.updated_at
		FROM delivery_requests r
		JOIN orders o ON o.id = r.order_id
		LEFT JOIN delivery_persons p ON p.id = r.delivery_person_id
		WHERE o.shop_id = ?
			AND r.status = ?
			AND o.status = ?
			AND o.delivery_person_id IS NULL
		ORDER BY r.updated_at DESC
	`, query.ShopID().Bytes(), int(deliveryrequest.Pending), int(order.Processing)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			r                        PendingDeliveryRequestResponse
			requestID, orderID, dpID uuid.UUID
			status                   int
			total                    decimal.Decimal
		)

		err = rows.Scan(
			&requestID,
			&orderID,
			&dpID,
			&r.DeliveryPersonName,
			&r.DeliveryPersonMobile,
			&status,
			&total,
			&r.ShippingCity,
			&r.EstimatedDeliveryDate,
			&r.RequestedAt,
		)
		if err != nil {
			return nil, err
		}

		if r.RequestID, err = kernel.UUIDFromGoogle(requestID); err != nil {
			return nil, err
		}
		if r.OrderID, err = kernel.UUIDFromGoogle(orderID); err != nil {
			return nil, err
		}
		if r.DeliveryPersonID, err = kernel.UUIDFromGoogle(dpID); err != nil {
			return nil, err
		}
		if r.OrderTotalAmount, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		r.OrderStatus = order.Status(status)

		requests = append(requests, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
