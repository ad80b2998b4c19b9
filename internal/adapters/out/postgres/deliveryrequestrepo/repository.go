package deliveryrequestrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/deliveryrequest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/ddd"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRequestRepository implements ports.DeliveryRequestRepository.
type GormDeliveryRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate ddd.Aggregate)
}

func NewGormDeliveryRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRequestRepository {
	return &GormDeliveryRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the first request for an order. Losing an insert race on the
// order_id index is reported as a conflict; this needs the gorm connection to
// be opened with TranslateError.
func (r *GormDeliveryRequestRepository) Add(ctx context.Context, aggregate *deliveryrequest.DeliveryRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("delivery request",
				"a request for this order was submitted concurrently", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update rewrites the request guarded by its version.
func (r *GormDeliveryRequestRepository) Update(ctx context.Context, aggregate *deliveryrequest.DeliveryRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryRequestDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"delivery_person_id": dto.DeliveryPersonID,
			"status":             dto.Status,
			"updated_at":         dto.UpdatedAt,
			"version":            dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("delivery request", "modified concurrently, reload and retry")
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormDeliveryRequestRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) (*deliveryrequest.DeliveryRequest, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
