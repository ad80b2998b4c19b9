package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListAllOrdersQueryIsNotConstructed = errors.New(
	"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
)

// ListAllOrdersQuery lists every order, newest first. Only the platform
// owner may run it.
type ListAllOrdersQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewListAllOrdersQuery(actor kernel.Actor) (ListAllOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListAllOrdersQuery{}, err
	}
	if !actor.Is(kernel.RoleAppOwner) {
		return ListAllOrdersQuery{}, errs.NewNotAuthorizedError("list all orders", "only the platform owner may list all orders")
	}
	return ListAllOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}

func (q ListAllOrdersQuery) Actor() kernel.Actor { return q.actor }
