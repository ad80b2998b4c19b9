package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/deliveryperson"
	"marketplace/internal/core/domain/model/deliveryrequest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) list(args mock.Arguments) ([]*order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListForCustomer(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	return m.list(m.Called(ctx, id))
}

func (m *MockOrderRepository) ListForShop(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	return m.list(m.Called(ctx, id))
}

func (m *MockOrderRepository) ListUnassignedByCity(ctx context.Context, city string) ([]*order.Order, error) {
	return m.list(m.Called(ctx, city))
}

func (m *MockOrderRepository) ListForDeliveryPerson(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	return m.list(m.Called(ctx, id))
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	return m.list(m.Called(ctx))
}

type MockDeliveryRequestRepository struct{ mock.Mock }

func (m *MockDeliveryRequestRepository) Add(ctx context.Context, r *deliveryrequest.DeliveryRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRequestRepository) Update(ctx context.Context, r *deliveryrequest.DeliveryRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRequestRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) (*deliveryrequest.DeliveryRequest, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryrequest.DeliveryRequest), args.Error(1)
}

type MockDeliveryPersonRepository struct{ mock.Mock }

func (m *MockDeliveryPersonRepository) Add(ctx context.Context, dp *deliveryperson.DeliveryPerson) error {
	args := m.Called(ctx, dp)
	return args.Error(0)
}

func (m *MockDeliveryPersonRepository) Update(ctx context.Context, dp *deliveryperson.DeliveryPerson) error {
	args := m.Called(ctx, dp)
	return args.Error(0)
}

func (m *MockDeliveryPersonRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryperson.DeliveryPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryperson.DeliveryPerson), args.Error(1)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryRequestRepository() ports.DeliveryRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRequestRepository)
}

func (m *MockUoW) DeliveryPersonRepository() ports.DeliveryPersonRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryPersonRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDeliveryPersonUoWFactory struct{ mock.Mock }

func (m *MockDeliveryPersonUoWFactory) Create() commands.DeliveryPersonUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryPersonUoW)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) ResolveProducts(ctx context.Context, ids []kernel.UUID) ([]order.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Product), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

// Fixtures.

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func mustAddress(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(kernel.AddressFields{FullName: "Asha Verma", Street: "12 MG Road", City: "Jaipur"})
	require.NoError(t, err)
	return a
}

func newProcessingOrder(t *testing.T, shopID kernel.UUID) *order.Order {
	t.Helper()
	p := order.Product{ID: kernel.NewUUID(), SellerID: shopID, Title: "kettle", Price: mustMoney(t, 500)}
	items, err := order.BuildLineItems([]order.ItemRequest{{ProductID: p.ID, Quantity: 1}}, []order.Product{p})
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, mustAddress(t), mustMoney(t, 10), time.Now())
	require.NoError(t, err)
	return o
}

func newDeliveryPerson(t *testing.T) *deliveryperson.DeliveryPerson {
	t.Helper()
	dp, err := deliveryperson.NewDeliveryPerson(kernel.NewUUID(), "Ravi", "9876543210", "Jaipur", time.Now())
	require.NoError(t, err)
	return dp
}

func newPendingRequest(t *testing.T, o *order.Order, deliveryPersonID kernel.UUID) *deliveryrequest.DeliveryRequest {
	t.Helper()
	r, err := deliveryrequest.NewDeliveryRequest(kernel.NewUUID(), o.ID(), deliveryPersonID, time.Now())
	require.NoError(t, err)
	return r
}
