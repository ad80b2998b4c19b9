package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/deliveryperson"
	"marketplace/internal/core/domain/model/deliveryrequest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type NewLineItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type NewOrder struct {
	LineItems       []NewLineItem        `json:"lineItems"`
	ShippingAddress kernel.AddressFields `json:"shippingAddress"`
}

type DeliveryDecision struct {
	DeliveryPersonID uuid.UUID `json:"deliveryPersonId"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type DeliveryProfileInput struct {
	Name         string `json:"name"`
	MobileNumber string `json:"mobileNumber"`
	City         string `json:"city"`
	IsAvailable  *bool  `json:"isAvailable,omitempty"`
}

type LineItem struct {
	ProductID   uuid.UUID    `json:"productId"`
	Name        string       `json:"name"`
	ProductType string       `json:"productType"`
	Category    string       `json:"category"`
	Quantity    int          `json:"quantity"`
	UnitPrice   kernel.Money `json:"unitPrice"`
	ImageRef    string       `json:"imageRef"`
}

type Order struct {
	ID                    uuid.UUID            `json:"id"`
	CustomerID            uuid.UUID            `json:"customerId"`
	ShopID                uuid.UUID            `json:"shopId"`
	LineItems             []LineItem           `json:"lineItems"`
	TotalAmount           kernel.Money         `json:"totalAmount"`
	ShippingAddress       kernel.AddressFields `json:"shippingAddress"`
	DeliveryPersonID      *uuid.UUID           `json:"deliveryPersonId"`
	Status                string               `json:"status"`
	EstimatedDeliveryDate time.Time            `json:"estimatedDeliveryDate"`
	CreatedAt             time.Time            `json:"createdAt"`
	UpdatedAt             time.Time            `json:"updatedAt"`
}

type DeliveryRequest struct {
	ID               uuid.UUID `json:"id"`
	OrderID          uuid.UUID `json:"orderId"`
	DeliveryPersonID uuid.UUID `json:"deliveryPersonId"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type PendingDeliveryRequest struct {
	RequestID             uuid.UUID    `json:"requestId"`
	OrderID               uuid.UUID    `json:"orderId"`
	DeliveryPersonID      uuid.UUID    `json:"deliveryPersonId"`
	DeliveryPersonName    string       `json:"deliveryPersonName"`
	DeliveryPersonMobile  string       `json:"deliveryPersonMobile"`
	OrderStatus           string       `json:"orderStatus"`
	OrderTotalAmount      kernel.Money `json:"orderTotalAmount"`
	ShippingCity          string       `json:"shippingCity"`
	EstimatedDeliveryDate time.Time    `json:"estimatedDeliveryDate"`
	RequestedAt           time.Time    `json:"requestedAt"`
}

type DeliveryProfile struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	MobileNumber string    `json:"mobileNumber"`
	City         string    `json:"city"`
	IsAvailable  bool      `json:"isAvailable"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toOrder(o *order.Order) Order {
	items := make([]LineItem, 0, len(o.LineItems()))
	for _, li := range o.LineItems() {
		items = append(items, LineItem{
			ProductID:   li.ProductID().Bytes(),
			Name:        li.Name(),
			ProductType: li.ProductType(),
			Category:    li.Category(),
			Quantity:    li.Quantity(),
			UnitPrice:   li.UnitPrice(),
			ImageRef:    li.ImageRef(),
		})
	}

	var deliveryPersonID *uuid.UUID
	if id := o.DeliveryPersonID(); id != nil {
		b := id.Bytes()
		deliveryPersonID = &b
	}

	return Order{
		ID:                    o.ID().Bytes(),
		CustomerID:            o.CustomerID().Bytes(),
		ShopID:                o.ShopID().Bytes(),
		LineItems:             items,
		TotalAmount:           o.TotalAmount(),
		ShippingAddress:       o.ShippingAddress().Fields(),
		DeliveryPersonID:      deliveryPersonID,
		Status:                o.Status().String(),
		EstimatedDeliveryDate: o.EstimatedDeliveryDate(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}

func toOrders(orders []*order.Order) []Order {
	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrder(o))
	}
	return response
}

func toDeliveryRequest(r *deliveryrequest.DeliveryRequest) DeliveryRequest {
	return DeliveryRequest{
		ID:               r.ID().Bytes(),
		OrderID:          r.OrderID().Bytes(),
		DeliveryPersonID: r.DeliveryPersonID().Bytes(),
		Status:           r.Status().String(),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
	}
}

func toPendingDeliveryRequests(requests []queries.PendingDeliveryRequestResponse) []PendingDeliveryRequest {
	response := make([]PendingDeliveryRequest, 0, len(requests))
	for _, r := range requests {
		response = append(response, PendingDeliveryRequest{
			RequestID:             r.RequestID.Bytes(),
			OrderID:               r.OrderID.Bytes(),
			DeliveryPersonID:      r.DeliveryPersonID.Bytes(),
			DeliveryPersonName:    r.DeliveryPersonName,
			DeliveryPersonMobile:  r.DeliveryPersonMobile,
			OrderStatus:           r.OrderStatus.String(),
			OrderTotalAmount:      r.OrderTotalAmount,
			ShippingCity:          r.ShippingCity,
			EstimatedDeliveryDate: r.EstimatedDeliveryDate,
			RequestedAt:           r.RequestedAt,
		})
	}
	return response
}

func toDeliveryProfile(d *deliveryperson.DeliveryPerson) DeliveryProfile {
	return DeliveryProfile{
		ID:           d.ID().Bytes(),
		Name:         d.Name(),
		MobileNumber: d.MobileNumber(),
		City:         d.City(),
		IsAvailable:  d.IsAvailable(),
		UpdatedAt:    d.UpdatedAt(),
	}
}
