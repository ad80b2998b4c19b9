// Package deliverypersonrepo persists delivery person profiles.
package deliverypersonrepo

import (
	"time"

	"marketplace/internal/core/domain/model/deliveryperson"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryPersonDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	MobileNumber string    `gorm:"type:varchar(32);not null"`
	City         string    `gorm:"type:varchar(128);not null;index"`
	IsAvailable  bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (DeliveryPersonDTO) TableName() string {
	return "delivery_persons"
}

func fromDomain(dp *deliveryperson.DeliveryPerson) DeliveryPersonDTO {
	return DeliveryPersonDTO{
		ID:           dp.ID().Bytes(),
		Name:         dp.Name(),
		MobileNumber: dp.MobileNumber(),
		City:         dp.City(),
		IsAvailable:  dp.IsAvailable(),
		CreatedAt:    dp.CreatedAt(),
		UpdatedAt:    dp.UpdatedAt(),
	}
}

func toDomain(dto DeliveryPersonDTO) (*deliveryperson.DeliveryPerson, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	return deliveryperson.RestoreDeliveryPerson(id, dto.Name, dto.MobileNumber, dto.City,
		dto.IsAvailable, dto.CreatedAt, dto.UpdatedAt)
}
