// Package deliveryrequestrepo persists delivery requests. The unique index
// on order_id enforces one request record per order.
package deliveryrequestrepo

import (
	"time"

	"marketplace/internal/core/domain/model/deliveryrequest"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryRequestDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DeliveryPersonID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status           int       `gorm:"type:smallint;not null;index"`
	CreatedAt        time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt        time.Time `gorm:"not null;autoUpdateTime:false"`
	Version          int       `gorm:"not null;default:0"`
}

func (DeliveryRequestDTO) TableName() string {
	return "delivery_requests"
}

func fromDomain(r *deliveryrequest.DeliveryRequest) DeliveryRequestDTO {
	return DeliveryRequestDTO{
		ID:               r.ID().Bytes(),
		OrderID:          r.OrderID().Bytes(),
		DeliveryPersonID: r.DeliveryPersonID().Bytes(),
		Status:           int(r.Status()),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
		Version:          r.Version(),
	}
}

func toDomain(dto DeliveryRequestDTO) (*deliveryrequest.DeliveryRequest, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}
	dpID, err := kernel.UUIDFromGoogle(dto.DeliveryPersonID)
	if err != nil {
		return nil, err
	}

	return deliveryrequest.RestoreDeliveryRequest(id, orderID, dpID,
		deliveryrequest.Status(dto.Status), dto.CreatedAt, dto.UpdatedAt, dto.Version)
}
