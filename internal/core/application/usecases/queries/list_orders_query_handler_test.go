package queries_test

import (
	"context"

	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/deliveryperson"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListOrdersQueryHandler_Handle_DispatchesByScope(t *testing.T) {
	ctx := context.Background()
	id := kernel.NewUUID()
	orders := []*order.Order{newOrder(t, kernel.NewUUID(), "Jaipur")}

	tests := []struct {
		method string
		build  func(kernel.UUID) (queries.ListOrdersQuery, error)
	}{
		{"ListForCustomer", queries.NewListCustomerOrdersQuery},
		{"ListForShop", queries.NewListShopOrdersQuery},
		{"ListForDeliveryPerson", queries.NewListDeliveryPersonOrdersQuery},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			reader := new(MockOrderReader)
			reader.On(tt.method, ctx, id).Return(orders, nil).Once()
			query, err := tt.build(id)
			require.NoError(t, err)

			got, err := queries.NewListOrdersQueryHandler(reader).Handle(ctx, query)

			require.NoError(t, err)
			assert.Equal(t, orders, got)
			reader.AssertExpectations(t)
		})
	}
}

func TestListOrdersQuery_RequiresOwner(t *testing.T) {
	_, err := queries.NewListShopOrdersQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "shopId")

	assert.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}

func TestListAvailableOrdersQueryHandler_Handle(t *testing.T) {
	dpID := kernel.NewUUID()
	available := []*order.Order{newOrder(t, kernel.NewUUID(), "Jaipur")}

	t.Run("should use the given city", func(t *testing.T) {
		ctx := context.Background()
		reader := new(MockOrderReader)
		profiles := new(MockDeliveryPersonReader)
		reader.On("ListUnassignedByCity", ctx, "jaipur").Return(available, nil).Once()
		query, err := queries.NewListAvailableOrdersQuery(dpID, " jaipur ")
		require.NoError(t, err)

		got, err := queries.NewListAvailableOrdersQueryHandler(reader, profiles).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, available, got)
		profiles.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("should default to the profile city", func(t *testing.T) {
		ctx := context.Background()
		profile, err := deliveryperson.NewDeliveryPerson(dpID, "Ravi", "9876543210", "Jodhpur", time.Now())
		require.NoError(t, err)
		reader := new(MockOrderReader)
		profiles := new(MockDeliveryPersonReader)
		profiles.On("Get", ctx, dpID).Return(profile, nil).Once()
		reader.On("ListUnassignedByCity", ctx, "Jodhpur").Return([]*order.Order{}, nil).Once()
		query, _ := queries.NewListAvailableOrdersQuery(dpID, "")

		got, err := queries.NewListAvailableOrdersQueryHandler(reader, profiles).Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, got)
		reader.AssertExpectations(t)
	})

	t.Run("should need a city when there is no profile", func(t *testing.T) {
		ctx := context.Background()
		reader := new(MockOrderReader)
		profiles := new(MockDeliveryPersonReader)
		profiles.On("Get", ctx, dpID).Return(nil, errs.NewObjectNotFoundError("deliveryPersonId", dpID)).Once()
		query, _ := queries.NewListAvailableOrdersQuery(dpID, "")

		_, err := queries.NewListAvailableOrdersQueryHandler(reader, profiles).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrNotEligible)
	})

	t.Run("should pass through storage errors", func(t *testing.T) {
		ctx := context.Background()
		reader := new(MockOrderReader)
		profiles := new(MockDeliveryPersonReader)
		profiles.On("Get", ctx, dpID).Return(nil, errors.New("db down")).Once()
		query, _ := queries.NewListAvailableOrdersQuery(dpID, "")

		_, err := queries.NewListAvailableOrdersQueryHandler(reader, profiles).Handle(ctx, query)

		require.EqualError(t, err, "db down")
	})
}
