package deliveryrequest

import (
	"time"

	"marketplace/internal/pkg/ddd"
)

const (
	EventRequestSubmitted = "delivery_request.submitted"
	EventRequestAccepted  = "delivery_request.accepted"
	EventRequestRejected  = "delivery_request.rejected"
)

// ChangedEvent is recorded on every request mutation. It is keyed by order so
// that it shares a partition with the order's own events.
type ChangedEvent struct {
	ddd.BaseEvent
	OrderID          string `json:"orderId"`
	DeliveryPersonID string `json:"deliveryPersonId"`
	Status           string `json:"status"`
}

func newChangedEvent(name string, r *DeliveryRequest, at time.Time) ChangedEvent {
	return ChangedEvent{
		BaseEvent:        ddd.NewBaseEvent(name, r.id.Bytes(), at).WithPartitionKey(r.orderID.Bytes()),
		OrderID:          r.orderID.String(),
		DeliveryPersonID: r.deliveryPersonID.String(),
		Status:           r.status.String(),
	}
}
