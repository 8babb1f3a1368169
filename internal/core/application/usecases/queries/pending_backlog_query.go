package queries

import (
	"errors"
	"time"

	"frete/internal/pkg/guard"
)

var ErrPendingBacklogQueryIsNotConstructed = errors.New(
	"PendingBacklogQuery must be created via NewPendingBacklogQuery constructor",
)

// PendingBacklogQuery counts the shipments still waiting for a driver.
// Used by the periodic backlog report.
type PendingBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewPendingBacklogQuery creates a parameterless backlog count query.
func NewPendingBacklogQuery() PendingBacklogQuery {
	return PendingBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q PendingBacklogQuery) Validate() error {
	return q.guard.Validate(ErrPendingBacklogQueryIsNotConstructed)
}

// PendingBacklogQueryResponse reports the size of the unclaimed backlog
// and when its oldest shipment was created. OldestCreatedAt is nil when
// the backlog is empty.
type PendingBacklogQueryResponse struct {
	Count           int64
	OldestCreatedAt *time.Time
}
