package queries

import (
	"errors"

	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/guard"
)

var ErrResolveActorQueryIsNotConstructed = errors.New(
	"ResolveActorQuery must be created via NewResolveActorQuery constructor",
)

// ResolveActorQuery resolves an authenticated user into an actor with a
// role and profile identifier.
type ResolveActorQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveActorQuery creates a role resolution query.
func NewResolveActorQuery(userID kernel.UUID) (ResolveActorQuery, error) {
	if err := userID.Validate(); err != nil {
		return ResolveActorQuery{}, err
	}

	return ResolveActorQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolveActorQuery) Validate() error {
	return q.guard.Validate(ErrResolveActorQueryIsNotConstructed)
}

// UserID returns the identifier of the user being resolved.
func (q ResolveActorQuery) UserID() kernel.UUID {
	return q.userID
}
