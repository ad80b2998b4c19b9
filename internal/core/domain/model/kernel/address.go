package kernel

import (
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// AddressFields carries the raw shipping address supplied at checkout.
type AddressFields struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Address is the shipping address snapshot stored on an order. Apart from the
// city, which drives delivery-person discovery, the fields are free-form.
type Address struct { //nolint:recvcheck //using for validation
	fields AddressFields
	guard  guard.ConstructorGuard
}

// NewAddress trims every field and requires a city.
func NewAddress(fields AddressFields) (Address, error) {
	trimmed := AddressFields{
		FullName:   strings.TrimSpace(fields.FullName),
		Phone:      strings.TrimSpace(fields.Phone),
		Street:     strings.TrimSpace(fields.Street),
		City:       strings.TrimSpace(fields.City),
		State:      strings.TrimSpace(fields.State),
		PostalCode: strings.TrimSpace(fields.PostalCode),
		Country:    strings.TrimSpace(fields.Country),
	}
	if trimmed.City == "" {
		return Address{}, errs.NewValueIsRequiredError("shippingAddress.city")
	}
	return Address{fields: trimmed, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Fields returns a copy of the stored values.
func (a Address) Fields() AddressFields {
	return a.fields
}

// City returns the trimmed city name as entered.
func (a Address) City() string {
	return a.fields.City
}

// MatchesCity compares cities ignoring case and surrounding whitespace.
func (a Address) MatchesCity(city string) bool {
	return strings.EqualFold(a.fields.City, strings.TrimSpace(city))
}
