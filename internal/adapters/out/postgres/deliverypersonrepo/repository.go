package deliverypersonrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/deliveryperson"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryPersonRepository implements ports.DeliveryPersonRepository.
// Profiles record no domain events, so nothing is tracked.
type GormDeliveryPersonRepository struct {
	db *gorm.DB
}

func NewGormDeliveryPersonRepository(db *gorm.DB) *GormDeliveryPersonRepository {
	return &GormDeliveryPersonRepository{db: db}
}

func (r *GormDeliveryPersonRepository) Add(ctx context.Context, aggregate *deliveryperson.DeliveryPerson) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("delivery person", "profile already registered", err)
		}
		return err
	}
	return nil
}

func (r *GormDeliveryPersonRepository) Update(ctx context.Context, aggregate *deliveryperson.DeliveryPerson) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryPersonDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":          dto.Name,
			"mobile_number": dto.MobileNumber,
			"city":          dto.City,
			"is_available":  dto.IsAvailable,
			"updated_at":    dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliveryPersonId", aggregate.ID().String())
	}
	return nil
}

func (r *GormDeliveryPersonRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryperson.DeliveryPerson, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryPersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryPersonId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
