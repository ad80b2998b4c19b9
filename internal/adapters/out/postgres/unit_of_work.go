// Package postgres provides the GORM-based Unit of Work. A unit of work wraps
// one database transaction shared by the order, delivery request and delivery
// person repositories.
//
// Repositories report every aggregate they write. On Commit the unit of work
// drains the domain events of those aggregates into the outbox inside the
// same transaction, so an event is stored if and only if its state change is.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.DeliveryRequestRepository().Update(ctx, request); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance belongs to one operation; concurrent operations
// must use separate instances.
package postgres

import (
	"context"

	"marketplace/internal/adapters/out/postgres/deliverypersonrepo"
	"marketplace/internal/adapters/out/postgres/deliveryrequestrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/ddd"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory expects db to be opened with TranslateError so
// that unique violations surface as conflicts.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// tracking list.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction and the aggregates
// written through it.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracked []ddd.Aggregate
}

// Begin starts the transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.tracked = nil
	return nil
}

// Commit appends pending events to the outbox and commits. If anything fails
// the transaction is rolled back and the events stay on their aggregates.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	var events []ddd.DomainEvent
	for _, aggregate := range uow.tracked {
		events = append(events, aggregate.DomainEvents()...)
	}

	if err := outboxrepo.NewGormOutboxRepository(uow.tx).Append(ctx, events...); err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.tracked = nil
		return err
	}

	for _, aggregate := range uow.tracked {
		aggregate.ClearDomainEvents()
	}
	uow.tracked = nil
	return nil
}

// Rollback discards the transaction and the tracking list. It returns
// gorm.ErrInvalidTransaction when nothing is open, which the deferred
// rollback in handlers ignores after a successful commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = nil
	return err
}

// OrderRepository runs on the open transaction, or on the plain connection
// when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryRequestRepository() ports.DeliveryRequestRepository {
	return deliveryrequestrepo.NewGormDeliveryRequestRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryPersonRepository() ports.DeliveryPersonRepository {
	return deliverypersonrepo.NewGormDeliveryPersonRepository(uow.conn())
}

// TrackAggregate registers an aggregate written in this unit of work. The
// same aggregate is tracked once no matter how often it is written.
func (uow *GormUnitOfWork) TrackAggregate(aggregate ddd.Aggregate) {
	for _, tracked := range uow.tracked {
		if tracked == aggregate {
			return
		}
	}
	uow.tracked = append(uow.tracked, aggregate)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
