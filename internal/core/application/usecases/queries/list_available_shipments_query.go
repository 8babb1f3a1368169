package queries

import (
	"errors"

	"frete/internal/core/domain/model/account"
	"frete/internal/pkg/guard"
)

var ErrListAvailableShipmentsQueryIsNotConstructed = errors.New(
	"ListAvailableShipmentsQuery must be created via NewListAvailableShipmentsQuery constructor",
)

// ListAvailableShipmentsQuery retrieves the shipments a driver can claim:
// pending status and no driver assigned yet.
type ListAvailableShipmentsQuery struct {
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewListAvailableShipmentsQuery creates a query for the claimable backlog.
func NewListAvailableShipmentsQuery(actor account.Actor) (ListAvailableShipmentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListAvailableShipmentsQuery{}, err
	}

	return ListAvailableShipmentsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAvailableShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableShipmentsQueryIsNotConstructed)
}

// Actor returns the authenticated principal requesting the backlog.
func (q ListAvailableShipmentsQuery) Actor() account.Actor {
	return q.actor
}
