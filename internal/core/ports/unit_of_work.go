package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Domain events
// recorded by aggregates passed to its repositories are written to the
// outbox when the transaction commits.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit writes pending domain events and commits the transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and drops pending events.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	DeliveryRequestRepository() DeliveryRequestRepository

	DeliveryPersonRepository() DeliveryPersonRepository
}
