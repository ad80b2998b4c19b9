package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/deliveryperson"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) list(args mock.Arguments) ([]*order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) ListForCustomer(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	return m.list(m.Called(ctx, id))
}

func (m *MockOrderReader) ListForShop(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	return m.list(m.Called(ctx, id))
}

func (m *MockOrderReader) ListUnassignedByCity(ctx context.Context, city string) ([]*order.Order, error) {
	return m.list(m.Called(ctx, city))
}

func (m *MockOrderReader) ListForDeliveryPerson(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	return m.list(m.Called(ctx, id))
}

func (m *MockOrderReader) ListAll(ctx context.Context) ([]*order.Order, error) {
	return m.list(m.Called(ctx))
}

type MockDeliveryPersonReader struct{ mock.Mock }

func (m *MockDeliveryPersonReader) Get(ctx context.Context, id kernel.UUID) (*deliveryperson.DeliveryPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryperson.DeliveryPerson), args.Error(1)
}

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func newOrder(t *testing.T, shopID kernel.UUID, city string) *order.Order {
	t.Helper()
	address, err := kernel.NewAddress(kernel.AddressFields{FullName: "Asha Verma", City: city})
	require.NoError(t, err)
	p := order.Product{ID: kernel.NewUUID(), SellerID: shopID, Title: "kettle", Price: mustMoney(t, 500)}
	items, err := order.BuildLineItems([]order.ItemRequest{{ProductID: p.ID, Quantity: 1}}, []order.Product{p})
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, address, mustMoney(t, 10), time.Now())
	require.NoError(t, err)
	return o
}

func mustActor(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}
