package kernel

import (
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Role tags an authenticated actor. The core branches on the role together
// with ownership comparisons, never on user types.
type Role string

const (
	RoleCustomer       Role = "customer"
	RoleAdmin          Role = "admin"
	RoleDeliveryPerson Role = "deliveryPerson"
	RoleAppOwner       Role = "appOwner"
)

var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("actor must be created via NewActor")

var roles = map[string]Role{
	strings.ToLower(string(RoleCustomer)):       RoleCustomer,
	strings.ToLower(string(RoleAdmin)):          RoleAdmin,
	strings.ToLower(string(RoleDeliveryPerson)): RoleDeliveryPerson,
	strings.ToLower(string(RoleAppOwner)):       RoleAppOwner,
}

// ParseRole matches raw against the known roles ignoring case.
func ParseRole(raw string) (Role, bool) {
	r, ok := roles[strings.ToLower(strings.TrimSpace(raw))]
	return r, ok
}

// Actor is the {subjectId, role} pair handed over by the identity provider.
// For an admin the subject ID is the shop ID.
type Actor struct { //nolint:recvcheck //using for validation
	subjectID UUID
	role      Role

	guard guard.ConstructorGuard
}

func NewActor(subjectID UUID, role Role) (Actor, error) {
	if err := subjectID.Validate(); err != nil {
		return Actor{}, errs.NewValueIsRequiredErrorWithCause("subjectId", err)
	}
	if _, ok := ParseRole(string(role)); !ok {
		return Actor{}, errs.NewValueIsInvalidError("role")
	}
	return Actor{subjectID: subjectID, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) SubjectID() UUID { return a.subjectID }
func (a Actor) Role() Role      { return a.role }

// Is reports whether the actor has role r.
func (a Actor) Is(r Role) bool {
	return a.role == r
}
