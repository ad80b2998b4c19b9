// Package orderrepo persists order aggregates. An order is stored as one
// row in orders plus its line item snapshot in order_line_items.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShopID                uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Shipping              AddressDTO      `gorm:"embedded;embeddedPrefix:shipping_"`
	DeliveryPersonID      *uuid.UUID      `gorm:"type:uuid;index"`
	Status                int             `gorm:"type:smallint;not null;index"`
	EstimatedDeliveryDate time.Time       `gorm:"not null"`
	CreatedAt             time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt             time.Time       `gorm:"not null;autoUpdateTime:false"`
	Version               int             `gorm:"not null;default:0"`
	LineItems             []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the shipping address embedded into the orders table.
type AddressDTO struct {
	FullName   string `gorm:"type:varchar(255)"`
	Phone      string `gorm:"type:varchar(64)"`
	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(128);not null;index"`
	State      string `gorm:"type:varchar(128)"`
	PostalCode string `gorm:"type:varchar(32)"`
	Country    string `gorm:"type:varchar(128)"`
}

// LineItemDTO is one immutable line of an order.
type LineItemDTO struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	SellerID    uuid.UUID       `gorm:"type:uuid;not null"`
	Name        string          `gorm:"type:varchar(255);not null"`
	ProductType string          `gorm:"type:varchar(128)"`
	Category    string          `gorm:"type:varchar(128)"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageRef    string          `gorm:"type:varchar(512)"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.LineItems()
	lineItems := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		lineItems = append(lineItems, LineItemDTO{
			OrderID:     o.ID().Bytes(),
			Position:    i,
			ProductID:   item.ProductID().Bytes(),
			SellerID:    item.SellerID().Bytes(),
			Name:        item.Name(),
			ProductType: item.ProductType(),
			Category:    item.Category(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			ImageRef:    item.ImageRef(),
		})
	}

	address := o.ShippingAddress().Fields()

	return OrderDTO{
		ID:          o.ID().Bytes(),
		CustomerID:  o.CustomerID().Bytes(),
		ShopID:      o.ShopID().Bytes(),
		TotalAmount: o.TotalAmount().Amount(),
		Shipping: AddressDTO{
			FullName:   address.FullName,
			Phone:      address.Phone,
			Street:     address.Street,
			City:       address.City,
			State:      address.State,
			PostalCode: address.PostalCode,
			Country:    address.Country,
		},
		DeliveryPersonID:      deliveryPersonID(o),
		Status:                int(o.Status()),
		EstimatedDeliveryDate: o.EstimatedDeliveryDate(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
		Version:               o.Version(),
		LineItems:             lineItems,
	}
}

func deliveryPersonID(o *order.Order) *uuid.UUID {
	id := o.DeliveryPersonID()
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromGoogle(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromGoogle(dto.ShopID)
	if err != nil {
		return nil, err
	}

	var dpID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		parsed, dpErr := kernel.UUIDFromGoogle(*dto.DeliveryPersonID)
		if dpErr != nil {
			return nil, dpErr
		}
		dpID = &parsed
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(kernel.AddressFields{
		FullName:   dto.Shipping.FullName,
		Phone:      dto.Shipping.Phone,
		Street:     dto.Shipping.Street,
		City:       dto.Shipping.City,
		State:      dto.Shipping.State,
		PostalCode: dto.Shipping.PostalCode,
		Country:    dto.Shipping.Country,
	})
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		item, itemErr := lineItemToDomain(li)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                    id,
		CustomerID:            customerID,
		ShopID:                shopID,
		LineItems:             items,
		TotalAmount:           total,
		ShippingAddress:       address,
		DeliveryPersonID:      dpID,
		Status:                order.Status(dto.Status),
		EstimatedDeliveryDate: dto.EstimatedDeliveryDate,
		CreatedAt:             dto.CreatedAt,
		UpdatedAt:             dto.UpdatedAt,
		Version:               dto.Version,
	})
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromGoogle(dto.ProductID)
	if err != nil {
		return order.LineItem{}, err
	}
	sellerID, err := kernel.UUIDFromGoogle(dto.SellerID)
	if err != nil {
		return order.LineItem{}, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.RestoreLineItem(productID, sellerID, dto.Name, dto.ProductType, dto.Category,
		dto.Quantity, price, dto.ImageRef)
}
