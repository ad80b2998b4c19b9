package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func product(t *testing.T, sellerID kernel.UUID, title string, price int64) order.Product {
	t.Helper()
	return order.Product{
		ID:          kernel.NewUUID(),
		SellerID:    sellerID,
		Title:       title,
		ProductType: "physical",
		Category:    "kitchen",
		Price:       money(t, price),
		ImageRef:    "uploads/" + title + ".png",
	}
}

func address(t *testing.T, city string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(kernel.AddressFields{FullName: "Asha Verma", Street: "12 MG Road", City: city})
	require.NoError(t, err)
	return a
}

func newProcessingOrder(t *testing.T) *order.Order {
	t.Helper()
	seller := kernel.NewUUID()
	kettle := product(t, seller, "kettle", 500)
	items, err := order.BuildLineItems([]order.ItemRequest{{ProductID: kettle.ID, Quantity: 1}}, []order.Product{kettle})
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, address(t, "Jaipur"), money(t, 10), time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	seller := kernel.NewUUID()
	customer := kernel.NewUUID()
	kettle := product(t, seller, "kettle", 500)
	toaster := product(t, seller, "toaster", 300)
	now := time.Date(2025, 3, 10, 14, 45, 12, 0, ist)

	t.Run("should compute total and estimate from a single seller basket", func(t *testing.T) {
		items, err := order.BuildLineItems([]order.ItemRequest{
			{ProductID: kettle.ID, Quantity: 2},
			{ProductID: toaster.ID, Quantity: 1},
		}, []order.Product{kettle, toaster})
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), customer, items, address(t, "Jaipur"), money(t, 10), now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Processing, o.Status())
		assert.True(t, o.TotalAmount().IsEqual(money(t, 1310)))
		assert.True(t, o.ShopID().IsEqual(seller))
		assert.True(t, o.CustomerID().IsEqual(customer))
		assert.Nil(t, o.DeliveryPersonID())
		assert.True(t, o.IsUnassigned())
		assert.Equal(t, time.Date(2025, 3, 12, 21, 0, 0, 0, ist), o.EstimatedDeliveryDate())
		assert.Len(t, o.LineItems(), 2)
		assert.Equal(t, "kettle", o.LineItems()[0].Name())
		assert.Equal(t, 2, o.LineItems()[0].Quantity())

		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventOrderCreated, events[0].EventName())
	})

	t.Run("should reject mixed sellers", func(t *testing.T) {
		other := product(t, kernel.NewUUID(), "blender", 900)
		items, err := order.BuildLineItems([]order.ItemRequest{
			{ProductID: kettle.ID, Quantity: 1},
			{ProductID: other.ID, Quantity: 1},
		}, []order.Product{kettle, other})
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), customer, items, address(t, "Jaipur"), money(t, 10), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, order.ErrMixedSellers, invalid.Cause)
		assert.Contains(t, err.Error(), "mixed sellers")
		assert.Nil(t, o)
	})

	t.Run("should reject a total beyond storage bounds", func(t *testing.T) {
		expensive := product(t, seller, "generator", 1)
		var err error
		expensive.Price, err = kernel.NewMoney(kernel.MaxMoneyAmount)
		require.NoError(t, err)
		items, err := order.BuildLineItems(
			[]order.ItemRequest{{ProductID: expensive.ID, Quantity: 2}},
			[]order.Product{expensive},
		)
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), customer, items, address(t, "Jaipur"), money(t, 10), now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "totalAmount")
		assert.Nil(t, o)
	})

	t.Run("should reject an empty basket", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), customer, nil, address(t, "Jaipur"), money(t, 10), now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "lineItems")
		assert.Nil(t, o)
	})

	t.Run("should join several validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, nil, kernel.Address{}, money(t, 10), now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customerId")
		assert.Contains(t, err.Error(), "lineItems")
		assert.Contains(t, err.Error(), "address must be created")
	})
}

func TestBuildLineItems(t *testing.T) {
	seller := kernel.NewUUID()
	kettle := product(t, seller, "kettle", 500)

	t.Run("should report unknown products as not found", func(t *testing.T) {
		missing := kernel.NewUUID()
		_, err := order.BuildLineItems([]order.ItemRequest{{ProductID: missing, Quantity: 1}}, []order.Product{kettle})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), missing.String())
	})

	t.Run("should reject quantities below one", func(t *testing.T) {
		_, err := order.BuildLineItems([]order.ItemRequest{{ProductID: kettle.ID, Quantity: 0}}, []order.Product{kettle})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "lineItems[0]")
	})

	t.Run("should reject quantities above the cap", func(t *testing.T) {
		_, err := order.BuildLineItems(
			[]order.ItemRequest{{ProductID: kettle.ID, Quantity: order.MaxQuantity + 1}},
			[]order.Product{kettle},
		)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("should snapshot product fields", func(t *testing.T) {
		items, err := order.BuildLineItems([]order.ItemRequest{{ProductID: kettle.ID, Quantity: 3}}, []order.Product{kettle})
		require.NoError(t, err)

		kettle.Title = "renamed"
		assert.Equal(t, "kettle", items[0].Name())
		assert.Equal(t, "physical", items[0].ProductType())
		assert.Equal(t, "uploads/kettle.png", items[0].ImageRef())
		assert.True(t, items[0].Subtotal().IsEqual(money(t, 1500)))
	})
}

func TestEstimateDelivery(t *testing.T) {
	t.Run("should roll over month boundaries", func(t *testing.T) {
		now := time.Date(2025, 1, 31, 23, 59, 59, 0, ist)
		assert.Equal(t, time.Date(2025, 2, 2, 21, 0, 0, 0, ist), order.EstimateDelivery(now))
	})

	t.Run("should keep the caller's location", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC)
		assert.Equal(t, time.UTC, order.EstimateDelivery(now).Location())
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())

	var zero order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
}

func TestOrder_Assign(t *testing.T) {
	t.Run("should move to Accepted with the delivery person", func(t *testing.T) {
		o := newProcessingOrder(t)
		o.ClearDomainEvents()
		dp := kernel.NewUUID()

		err := o.Assign(dp, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.IsAssignedTo(dp))
		assert.False(t, o.IsUnassigned())
		require.Len(t, o.DomainEvents(), 1)
		assert.Equal(t, order.EventOrderAssigned, o.DomainEvents()[0].EventName())
	})

	t.Run("should conflict when already assigned", func(t *testing.T) {
		o := newProcessingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), time.Now()))

		err := o.Assign(kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should conflict when cancelled", func(t *testing.T) {
		o := newProcessingOrder(t)
		require.NoError(t, o.Cancel(time.Now()))

		err := o.Assign(kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should reject an empty delivery person", func(t *testing.T) {
		o := newProcessingOrder(t)
		require.ErrorIs(t, o.Assign(kernel.UUID{}, time.Now()), errs.ErrValueIsRequired)
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should walk the whole sequence for the assignee", func(t *testing.T) {
		o := newProcessingOrder(t)
		dp := kernel.NewUUID()
		require.NoError(t, o.Assign(dp, time.Now()))

		for _, next := range []order.Status{order.Shifted, order.OutForDelivery, order.Delivered} {
			require.NoError(t, o.Advance(dp, next.String(), time.Now()))
			assert.Equal(t, next, o.Status())
		}
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("should reject a skip and leave status unchanged", func(t *testing.T) {
		o := newProcessingOrder(t)
		dp := kernel.NewUUID()
		require.NoError(t, o.Assign(dp, time.Now()))

		err := o.Advance(dp, "Delivered", time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should refuse anyone but the assignee", func(t *testing.T) {
		o := newProcessingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), time.Now()))

		err := o.Advance(kernel.NewUUID(), "Shifted", time.Now())

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should refuse advancing an unassigned order", func(t *testing.T) {
		o := newProcessingOrder(t)
		require.ErrorIs(t, o.Advance(kernel.NewUUID(), "Accepted", time.Now()), errs.ErrNotAuthorized)
	})
}

func TestOrder_Cancel(t *testing.T) {
	o := newProcessingOrder(t)
	dp := kernel.NewUUID()
	require.NoError(t, o.Assign(dp, time.Now()))
	o.ClearDomainEvents()

	require.NoError(t, o.Cancel(time.Now()))

	assert.Equal(t, order.Cancelled, o.Status())
	assert.Nil(t, o.DeliveryPersonID())
	require.Len(t, o.DomainEvents(), 1)
	assert.Equal(t, order.EventOrderCancelled, o.DomainEvents()[0].EventName())

	require.ErrorIs(t, o.Cancel(time.Now()), errs.ErrInvalidTransition)
}

func TestRestoreOrder(t *testing.T) {
	original := newProcessingOrder(t)
	dp := kernel.NewUUID()
	require.NoError(t, original.Assign(dp, time.Now()))

	snapshot := order.Snapshot{
		ID:                    original.ID(),
		CustomerID:            original.CustomerID(),
		ShopID:                original.ShopID(),
		LineItems:             original.LineItems(),
		TotalAmount:           original.TotalAmount(),
		ShippingAddress:       original.ShippingAddress(),
		DeliveryPersonID:      original.DeliveryPersonID(),
		Status:                original.Status(),
		EstimatedDeliveryDate: original.EstimatedDeliveryDate(),
		CreatedAt:             original.CreatedAt(),
		UpdatedAt:             original.UpdatedAt(),
		Version:               3,
	}

	t.Run("should restore without recording events", func(t *testing.T) {
		restored, err := order.RestoreOrder(snapshot)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
		assert.True(t, restored.IsAssignedTo(dp))
		assert.Equal(t, 3, restored.Version())
		assert.Empty(t, restored.DomainEvents())

		restored.IncrementVersion()
		assert.Equal(t, 4, restored.Version())
	})

	t.Run("should reject an assignee on a Processing order", func(t *testing.T) {
		broken := snapshot
		broken.Status = order.Processing

		_, err := order.RestoreOrder(broken)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a shop that does not match the items", func(t *testing.T) {
		broken := snapshot
		broken.ShopID = kernel.NewUUID()

		_, err := order.RestoreOrder(broken)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "shopId")
	})
}

func TestOrder_IsVisibleTo(t *testing.T) {
	o := newProcessingOrder(t)
	dp := kernel.NewUUID()
	require.NoError(t, o.Assign(dp, time.Now()))

	actor := func(id kernel.UUID, role kernel.Role) kernel.Actor {
		a, err := kernel.NewActor(id, role)
		require.NoError(t, err)
		return a
	}

	tests := []struct {
		name  string
		actor kernel.Actor
		want  bool
	}{
		{"owning customer", actor(o.CustomerID(), kernel.RoleCustomer), true},
		{"other customer", actor(kernel.NewUUID(), kernel.RoleCustomer), false},
		{"owning shop", actor(o.ShopID(), kernel.RoleAdmin), true},
		{"other shop", actor(kernel.NewUUID(), kernel.RoleAdmin), false},
		{"assignee", actor(dp, kernel.RoleDeliveryPerson), true},
		{"other delivery person", actor(kernel.NewUUID(), kernel.RoleDeliveryPerson), false},
		{"customer ID used with another role", actor(o.CustomerID(), kernel.RoleDeliveryPerson), false},
		{"platform owner", actor(kernel.NewUUID(), kernel.RoleAppOwner), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, o.IsVisibleTo(tt.actor))
		})
	}
}
