package order

import (
	"time"

	"marketplace/internal/pkg/ddd"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderAssigned      = "order.assigned"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderCancelled     = "order.cancelled"
)

// CreatedEvent is recorded when a customer places an order.
type CreatedEvent struct {
	ddd.BaseEvent
	CustomerID  string `json:"customerId"`
	ShopID      string `json:"shopId"`
	City        string `json:"city"`
	TotalAmount string `json:"totalAmount"`
}

// AssignedEvent is recorded when a seller accepts a delivery request.
type AssignedEvent struct {
	ddd.BaseEvent
	DeliveryPersonID string `json:"deliveryPersonId"`
}

// StatusChangedEvent is recorded on every forward step and on cancellation.
type StatusChangedEvent struct {
	ddd.BaseEvent
	From string `json:"from"`
	To   string `json:"to"`
}

func newCreatedEvent(o *Order) CreatedEvent {
	return CreatedEvent{
		BaseEvent:   ddd.NewBaseEvent(EventOrderCreated, o.id.Bytes(), o.createdAt),
		CustomerID:  o.customerID.String(),
		ShopID:      o.shopID.String(),
		City:        o.shippingAddress.City(),
		TotalAmount: o.totalAmount.String(),
	}
}

func newAssignedEvent(o *Order, at time.Time) AssignedEvent {
	return AssignedEvent{
		BaseEvent:        ddd.NewBaseEvent(EventOrderAssigned, o.id.Bytes(), at),
		DeliveryPersonID: o.deliveryPersonID.String(),
	}
}

func newStatusChangedEvent(name string, o *Order, from Status, at time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent: ddd.NewBaseEvent(name, o.id.Bytes(), at),
		From:      from.String(),
		To:        o.status.String(),
	}
}
