package orderrepo

import (
	"context"
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/ddd"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects aggregates whose events go to the outbox on commit.
type aggregateTracker interface {
	TrackAggregate(aggregate ddd.Aggregate)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order", "already exists", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update writes status and assignment. Line items and totals never change
// after creation. The row is matched on the version the aggregate was read
// with; a mismatch means someone else wrote first.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	var assignee any
	if dto.DeliveryPersonID != nil {
		assignee = *dto.DeliveryPersonID
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":             dto.Status,
			"delivery_person_id": assignee,
			"updated_at":         dto.UpdatedAt,
			"version":            dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.staleOrMissing(ctx, aggregate.ID())
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormOrderRepository) staleOrMissing(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}
	return errs.NewConflictError("order", "modified concurrently, reload and retry")
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withLineItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) ListForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	return r.find(ctx, "customer_id = ?", customerID.Bytes())
}

func (r *GormOrderRepository) ListForShop(ctx context.Context, shopID kernel.UUID) ([]*order.Order, error) {
	return r.find(ctx, "shop_id = ?", shopID.Bytes())
}

// ListUnassignedByCity compares cities case-insensitively. Addresses are
// stored trimmed, so only the argument needs trimming.
func (r *GormOrderRepository) ListUnassignedByCity(ctx context.Context, city string) ([]*order.Order, error) {
	return r.find(ctx,
		"status = ? AND delivery_person_id IS NULL AND LOWER(shipping_city) = LOWER(?)",
		int(order.Processing), strings.TrimSpace(city))
}

func (r *GormOrderRepository) ListForDeliveryPerson(
	ctx context.Context,
	deliveryPersonID kernel.UUID,
) ([]*order.Order, error) {
	return r.find(ctx, "delivery_person_id = ? AND status IN ?", deliveryPersonID.Bytes(), []int{
		int(order.Accepted),
		int(order.Shifted),
		int(order.OutForDelivery),
		int(order.Delivered),
	})
}

func (r *GormOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	return r.list(r.withLineItems(ctx))
}

func (r *GormOrderRepository) withLineItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("LineItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormOrderRepository) find(ctx context.Context, query string, args ...any) ([]*order.Order, error) {
	return r.list(r.withLineItems(ctx).Where(query, args...))
}

func (r *GormOrderRepository) list(tx *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := tx.Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
