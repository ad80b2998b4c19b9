package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/ddd"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// estimatedDeliveryDays is added to the creation date.
	estimatedDeliveryDays = 2
	// estimatedDeliveryHour is the fixed hour of day the estimate is normalized to.
	estimatedDeliveryHour = 21
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created via
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrMixedSellers is the cause attached when line items come from more than one shop.
	ErrMixedSellers = errors.New("mixed sellers")
)

// Order is a customer's single-seller purchase and its fulfillment record.
//
// Invariants:
//   - at least one line item, all from the same shop
//   - totalAmount is fixed at creation
//   - a delivery person is set exactly when status is Accepted through Delivered
//   - status only moves forward, except for cancellation
type Order struct {
	ddd.EventRecorder

	id                    kernel.UUID
	customerID            kernel.UUID
	shopID                kernel.UUID
	lineItems             []LineItem
	totalAmount           kernel.Money
	shippingAddress       kernel.Address
	deliveryPersonID      *kernel.UUID
	status                Status
	estimatedDeliveryDate time.Time
	createdAt             time.Time
	updatedAt             time.Time

	// version is the optimistic concurrency token managed by the repository.
	version int

	guard guard.ConstructorGuard
}

// NewOrder places an order in Processing status. The shop is taken from the
// line items, which must all share one seller. The total is the sum of line
// subtotals plus deliveryFee.
//
// Example:
//
//	items, err := order.BuildLineItems(requests, products)
//	if err != nil {
//	    return nil, err
//	}
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, items, address, fee, time.Now())
func NewOrder(
	id, customerID kernel.UUID,
	lineItems []LineItem,
	shippingAddress kernel.Address,
	deliveryFee kernel.Money,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:    Processing,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLineItems(lineItems),
		o.setShippingAddress(shippingAddress),
		deliveryFee.Validate(),
	); err != nil {
		return nil, err
	}

	total := deliveryFee
	for _, item := range o.lineItems {
		total = total.Add(item.Subtotal())
	}
	if err := total.CheckBound("totalAmount"); err != nil {
		return nil, err
	}
	o.totalAmount = total
	o.estimatedDeliveryDate = EstimateDelivery(now)

	o.Record(newCreatedEvent(o))
	return o, nil
}

// Snapshot is the full persisted state of an order, used by RestoreOrder.
type Snapshot struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	ShopID                kernel.UUID
	LineItems             []LineItem
	TotalAmount           kernel.Money
	ShippingAddress       kernel.Address
	DeliveryPersonID      *kernel.UUID
	Status                Status
	EstimatedDeliveryDate time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Version               int
}

// RestoreOrder rebuilds an order from storage. No events are recorded.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		totalAmount:           s.TotalAmount,
		estimatedDeliveryDate: s.EstimatedDeliveryDate,
		createdAt:             s.CreatedAt,
		updatedAt:             s.UpdatedAt,
		version:               s.Version,
		guard:                 guard.NewConstructorGuard(),
	}

	var deliveryPersonErr error
	if s.DeliveryPersonID != nil {
		deliveryPersonErr = s.DeliveryPersonID.Validate()
		id := *s.DeliveryPersonID
		o.deliveryPersonID = &id
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerID(s.CustomerID),
		o.setLineItems(s.LineItems),
		o.setShippingAddress(s.ShippingAddress),
		s.TotalAmount.Validate(),
		s.Status.Validate(),
		s.Status.ValidateCanHaveDeliveryPerson(s.DeliveryPersonID != nil),
		deliveryPersonErr,
	); err != nil {
		return nil, err
	}
	if !o.shopID.IsEqual(s.ShopID) {
		return nil, errs.NewValueIsInvalidErrorWithCause("shopId",
			fmt.Errorf("%s does not match the line items seller %s", s.ShopID, o.shopID))
	}
	o.status = s.Status

	return o, nil
}

// EstimateDelivery returns now + 2 days at 21:00:00 in now's location.
func EstimateDelivery(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+estimatedDeliveryDays, estimatedDeliveryHour, 0, 0, 0, now.Location())
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                  { return o.id }
func (o *Order) CustomerID() kernel.UUID          { return o.customerID }
func (o *Order) ShopID() kernel.UUID              { return o.shopID }
func (o *Order) TotalAmount() kernel.Money        { return o.totalAmount }
func (o *Order) ShippingAddress() kernel.Address  { return o.shippingAddress }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) EstimatedDeliveryDate() time.Time { return o.estimatedDeliveryDate }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }
func (o *Order) Version() int                     { return o.version }

// LineItems returns a copy of the snapshot.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// DeliveryPersonID returns the assignee, or nil while unassigned.
func (o *Order) DeliveryPersonID() *kernel.UUID {
	if o.deliveryPersonID == nil {
		return nil
	}
	id := *o.deliveryPersonID
	return &id
}

// IsAssignedTo reports whether deliveryPersonID is the current assignee.
func (o *Order) IsAssignedTo(deliveryPersonID kernel.UUID) bool {
	return o.deliveryPersonID != nil && o.deliveryPersonID.IsEqual(deliveryPersonID)
}

// IsUnassigned reports whether the order is open for delivery requests.
func (o *Order) IsUnassigned() bool {
	return o.status == Processing && o.deliveryPersonID == nil
}

// IsVisibleTo applies the read rule: customers see their own orders, a shop
// sees orders placed with it, a delivery person sees orders assigned to them
// and the platform owner sees everything.
func (o *Order) IsVisibleTo(actor kernel.Actor) bool {
	switch actor.Role() {
	case kernel.RoleCustomer:
		return o.customerID.IsEqual(actor.SubjectID())
	case kernel.RoleAdmin:
		return o.shopID.IsEqual(actor.SubjectID())
	case kernel.RoleDeliveryPerson:
		return o.IsAssignedTo(actor.SubjectID())
	case kernel.RoleAppOwner:
		return true
	default:
		return false
	}
}

// IncrementVersion is called by the repository after a successful write.
func (o *Order) IncrementVersion() {
	o.version++
}

// Assign hands the order to a delivery person. It is legal only from
// Processing with no assignee; anything else is a conflict.
func (o *Order) Assign(deliveryPersonID kernel.UUID, now time.Time) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}
	if o.deliveryPersonID != nil {
		return errs.NewConflictError("order", "already assigned to a delivery person")
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryPersonID = &deliveryPersonID
	o.updatedAt = now
	o.Record(newAssignedEvent(o, now))
	return nil
}

// Advance moves the order one step forward on behalf of actor. Only the
// assignee may advance, and only to the single next status.
func (o *Order) Advance(actor kernel.UUID, requested string, now time.Time) error {
	if !o.IsAssignedTo(actor) {
		return errs.NewNotAuthorizedError("advance order status", "order is not assigned to this delivery person")
	}

	from := o.status
	newStatus, err := o.status.Advance(requested)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	o.Record(newStatusChangedEvent(EventOrderStatusChanged, o, from, now))
	return nil
}

// Cancel closes a non-terminal order administratively. The assignee is
// cleared so that a delivery person is only ever set on assigned statuses.
func (o *Order) Cancel(now time.Time) error {
	from := o.status
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryPersonID = nil
	o.updatedAt = now
	o.Record(newStatusChangedEvent(EventOrderCancelled, o, from, now))
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setLineItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	shopID := items[0].SellerID()
	for _, item := range items[1:] {
		if !item.SellerID().IsEqual(shopID) {
			return errs.NewValueIsInvalidErrorWithCause("lineItems", ErrMixedSellers)
		}
	}

	o.shopID = shopID
	o.lineItems = make([]LineItem, len(items))
	copy(o.lineItems, items)
	return nil
}

func (o *Order) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}
