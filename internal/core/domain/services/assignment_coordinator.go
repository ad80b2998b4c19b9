package services

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/deliveryperson"
	"marketplace/internal/core/domain/model/deliveryrequest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ErrNoPendingRequest is the cause reported when accept finds no request at all.
var ErrNoPendingRequest = errors.New("no pending delivery request for this order")

// AssignmentCoordinator keeps Order and DeliveryRequest consistent.
type AssignmentCoordinator struct{}

func NewAssignmentCoordinator() AssignmentCoordinator {
	return AssignmentCoordinator{}
}

// AuthorizeShop checks that actingShopID owns the order.
func (AssignmentCoordinator) AuthorizeShop(o *order.Order, actingShopID kernel.UUID, action string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.ShopID().IsEqual(actingShopID) {
		return errs.NewNotAuthorizedError(action, "order belongs to another shop")
	}
	return nil
}

// Submit records a bid from dp for o. existing is the order's request record,
// or nil when there is none yet. The returned request is either freshly
// created (created is true) or the existing one, possibly reset to Pending;
// changed is false only for an idempotent resubmission by the current holder.
func (AssignmentCoordinator) Submit(
	o *order.Order,
	existing *deliveryrequest.DeliveryRequest,
	dp *deliveryperson.DeliveryPerson,
	now time.Time,
) (r *deliveryrequest.DeliveryRequest, created, changed bool, err error) {
	if err := errors.Join(o.Validate(), dp.Validate()); err != nil {
		return nil, false, false, err
	}
	if !o.IsUnassigned() {
		return nil, false, false, errs.NewNotEligibleError("order", o.ID(), "status is "+o.Status().String())
	}
	if err := dp.CanRequestDelivery(); err != nil {
		return nil, false, false, err
	}

	if existing == nil {
		r, err := deliveryrequest.NewDeliveryRequest(kernel.NewUUID(), o.ID(), dp.ID(), now)
		if err != nil {
			return nil, false, false, err
		}
		return r, true, true, nil
	}

	changed, err = existing.Resubmit(dp.ID(), now)
	if err != nil {
		return nil, false, false, err
	}
	return existing, false, changed, nil
}

// Accept runs the checks in order: shop ownership, order still open, a
// matching pending request. Then it accepts the request and assigns the order.
// On error neither aggregate has been modified.
func (c AssignmentCoordinator) Accept(
	o *order.Order,
	r *deliveryrequest.DeliveryRequest,
	deliveryPersonID, actingShopID kernel.UUID,
	now time.Time,
) error {
	if err := c.AuthorizeShop(o, actingShopID, "accept delivery request"); err != nil {
		return err
	}
	if !o.IsUnassigned() {
		return errs.NewConflictError("order", "order already assigned or not eligible")
	}
	if r == nil {
		return errs.NewObjectNotFoundErrorWithCause("deliveryRequest", o.ID(), ErrNoPendingRequest)
	}
	if !r.IsHeldBy(deliveryPersonID) {
		return errs.NewObjectNotFoundErrorWithCause("deliveryRequest", o.ID(), ErrNoPendingRequest)
	}

	if err := r.Accept(deliveryPersonID, now); err != nil {
		return err
	}
	return o.Assign(deliveryPersonID, now)
}

// Reject declines the bid from deliveryPersonID. The order is left as is, so
// it stays discoverable for other delivery persons.
func (c AssignmentCoordinator) Reject(
	o *order.Order,
	r *deliveryrequest.DeliveryRequest,
	deliveryPersonID, actingShopID kernel.UUID,
	now time.Time,
) error {
	if err := c.AuthorizeShop(o, actingShopID, "reject delivery request"); err != nil {
		return err
	}
	if r == nil {
		return errs.NewObjectNotFoundError("deliveryRequest", o.ID())
	}
	return r.Reject(deliveryPersonID, now)
}
