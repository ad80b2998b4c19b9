package deliveryrequest

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/ddd"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrDeliveryRequestIsNotConstructed is returned for a zero-value request.
var ErrDeliveryRequestIsNotConstructed = errors.New("DeliveryRequest must be created via NewDeliveryRequest constructor")

// DeliveryRequest links one order to the delivery person currently bidding
// for it. The pair (orderID, deliveryPersonID) is what accept and reject match on.
type DeliveryRequest struct {
	ddd.EventRecorder

	id               kernel.UUID
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
	version          int

	guard guard.ConstructorGuard
}

// NewDeliveryRequest creates a Pending request.
func NewDeliveryRequest(id, orderID, deliveryPersonID kernel.UUID, now time.Time) (*DeliveryRequest, error) {
	r, err := RestoreDeliveryRequest(id, orderID, deliveryPersonID, Pending, now, now, 0)
	if err != nil {
		return nil, err
	}
	r.Record(newChangedEvent(EventRequestSubmitted, r, now))
	return r, nil
}

// RestoreDeliveryRequest rebuilds a request from storage.
func RestoreDeliveryRequest(
	id, orderID, deliveryPersonID kernel.UUID,
	status Status,
	createdAt, updatedAt time.Time,
	version int,
) (*DeliveryRequest, error) {
	if err := errors.Join(
		id.Validate(),
		requiredID("orderId", orderID),
		requiredID("deliveryPersonId", deliveryPersonID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &DeliveryRequest{
		id:               id,
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		version:          version,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func requiredID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func (r *DeliveryRequest) Validate() error {
	if r == nil {
		return ErrDeliveryRequestIsNotConstructed
	}
	return r.guard.Validate(ErrDeliveryRequestIsNotConstructed)
}

func (r *DeliveryRequest) ID() kernel.UUID               { return r.id }
func (r *DeliveryRequest) OrderID() kernel.UUID          { return r.orderID }
func (r *DeliveryRequest) DeliveryPersonID() kernel.UUID { return r.deliveryPersonID }
func (r *DeliveryRequest) Status() Status                { return r.status }
func (r *DeliveryRequest) CreatedAt() time.Time          { return r.createdAt }
func (r *DeliveryRequest) UpdatedAt() time.Time          { return r.updatedAt }
func (r *DeliveryRequest) Version() int                  { return r.version }

// IncrementVersion is called by the repository after a successful write.
func (r *DeliveryRequest) IncrementVersion() {
	r.version++
}

// IsHeldBy reports whether the request is Pending for deliveryPersonID.
func (r *DeliveryRequest) IsHeldBy(deliveryPersonID kernel.UUID) bool {
	return r.status == Pending && r.deliveryPersonID.IsEqual(deliveryPersonID)
}

// Resubmit reuses the record for a new bid. A Pending request belongs to
// whoever claimed it first: the same candidate gets an unchanged request
// (changed is false), anyone else gets a conflict. Rejected or Accepted
// records are reset to Pending for the new candidate.
func (r *DeliveryRequest) Resubmit(deliveryPersonID kernel.UUID, now time.Time) (changed bool, err error) {
	if err := requiredID("deliveryPersonId", deliveryPersonID); err != nil {
		return false, err
	}
	if r.status == Pending {
		if r.deliveryPersonID.IsEqual(deliveryPersonID) {
			return false, nil
		}
		return false, errs.NewConflictError("deliveryRequest", "a pending request already exists")
	}

	r.deliveryPersonID = deliveryPersonID
	r.status = Pending
	r.updatedAt = now
	r.Record(newChangedEvent(EventRequestSubmitted, r, now))
	return true, nil
}

// Accept requires a Pending request held by deliveryPersonID.
func (r *DeliveryRequest) Accept(deliveryPersonID kernel.UUID, now time.Time) error {
	if !r.IsHeldBy(deliveryPersonID) {
		return errs.NewObjectNotFoundErrorWithCause("deliveryRequest", r.orderID,
			errors.New("no pending request from this delivery person"))
	}

	r.status = Accepted
	r.updatedAt = now
	r.Record(newChangedEvent(EventRequestAccepted, r, now))
	return nil
}

// Reject requires a request from deliveryPersonID. Rejecting an already
// rejected request is a no-op; an accepted one cannot be rejected.
func (r *DeliveryRequest) Reject(deliveryPersonID kernel.UUID, now time.Time) error {
	if !r.deliveryPersonID.IsEqual(deliveryPersonID) {
		return errs.NewObjectNotFoundErrorWithCause("deliveryRequest", r.orderID,
			errors.New("no request from this delivery person"))
	}
	switch r.status {
	case Accepted:
		return errs.NewConflictError("deliveryRequest", "request was already accepted")
	case Rejected:
		return nil
	}

	r.status = Rejected
	r.updatedAt = now
	r.Record(newChangedEvent(EventRequestRejected, r, now))
	return nil
}
