package deliveryperson

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrMobileNumberIsRequired = errs.NewValueIsRequiredError("mobileNumber")
	ErrCityIsRequired         = errs.NewValueIsRequiredError("city")
	// ErrDeliveryPersonIsNotConstructed is returned when using an improperly initialized DeliveryPerson.
	ErrDeliveryPersonIsNotConstructed = errors.New("DeliveryPerson must be created via NewDeliveryPerson constructor")
)

// DeliveryPerson is the profile of someone who fulfils orders.
type DeliveryPerson struct {
	id           kernel.UUID
	name         string
	mobileNumber string
	city         string
	isAvailable  bool
	createdAt    time.Time
	updatedAt    time.Time
	guard        guard.ConstructorGuard
}

// NewDeliveryPerson registers an available delivery person.
//
// Example:
//
//	dp, err := deliveryperson.NewDeliveryPerson(actor.SubjectID, "Ravi", "9876543210", "Jaipur", time.Now())
func NewDeliveryPerson(id kernel.UUID, name, mobileNumber, city string, now time.Time) (*DeliveryPerson, error) {
	return RestoreDeliveryPerson(id, name, mobileNumber, city, true, now, now)
}

// RestoreDeliveryPerson rebuilds a profile from storage.
func RestoreDeliveryPerson(
	id kernel.UUID,
	name, mobileNumber, city string,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) (*DeliveryPerson, error) {
	dp := &DeliveryPerson{
		isAvailable: isAvailable,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dp.setID(id),
		dp.setName(name),
		dp.setMobileNumber(mobileNumber),
		dp.setCity(city),
	); err != nil {
		return nil, err
	}

	return dp, nil
}

func (d *DeliveryPerson) Validate() error {
	if d == nil {
		return ErrDeliveryPersonIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryPersonIsNotConstructed)
}

func (d *DeliveryPerson) IsEqual(other *DeliveryPerson) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *DeliveryPerson) ID() kernel.UUID      { return d.id }
func (d *DeliveryPerson) Name() string         { return d.name }
func (d *DeliveryPerson) MobileNumber() string { return d.mobileNumber }
func (d *DeliveryPerson) City() string         { return d.city }
func (d *DeliveryPerson) IsAvailable() bool    { return d.isAvailable }
func (d *DeliveryPerson) CreatedAt() time.Time { return d.createdAt }
func (d *DeliveryPerson) UpdatedAt() time.Time { return d.updatedAt }

// UpdateProfile replaces the editable fields. Nothing changes on error.
func (d *DeliveryPerson) UpdateProfile(name, mobileNumber, city string, isAvailable bool, now time.Time) error {
	updated := *d
	if err := errors.Join(
		updated.setName(name),
		updated.setMobileNumber(mobileNumber),
		updated.setCity(city),
	); err != nil {
		return err
	}

	updated.isAvailable = isAvailable
	updated.updatedAt = now
	*d = updated
	return nil
}

// CanRequestDelivery reports whether the delivery person may bid for orders.
func (d *DeliveryPerson) CanRequestDelivery() error {
	if !d.isAvailable {
		return errs.NewNotEligibleError("deliveryPerson", d.id, "marked as unavailable")
	}
	return nil
}

func (d *DeliveryPerson) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *DeliveryPerson) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *DeliveryPerson) setMobileNumber(mobileNumber string) error {
	mobileNumber = strings.TrimSpace(mobileNumber)
	if mobileNumber == "" {
		return ErrMobileNumberIsRequired
	}
	d.mobileNumber = mobileNumber
	return nil
}

func (d *DeliveryPerson) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return ErrCityIsRequired
	}
	d.city = city
	return nil
}
