package queries

import (
	"errors"

	"frete/internal/core/domain/model/account"
	"frete/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves the shipments visible to an actor.
// Clients see their own shipments, drivers see their assigned ones and
// administrators see everything.
type ListShipmentsQuery struct {
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a query scoped to the given actor.
func NewListShipmentsQuery(actor account.Actor) (ListShipmentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListShipmentsQuery{}, err
	}

	return ListShipmentsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Actor returns the authenticated principal the listing is scoped to.
func (q ListShipmentsQuery) Actor() account.Actor {
	return q.actor
}
