package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/errs"
)

// ResolveActorQueryHandler turns an authenticated user into an actor.
// Resolution order: client profile, then driver profile, then the admin
// flag. A user with no profile and no admin flag becomes an unknown actor,
// which every guarded operation rejects.
type ResolveActorQueryHandler struct {
	db *gorm.DB
}

// NewResolveActorQueryHandler creates a handler for role resolution.
func NewResolveActorQueryHandler(db *gorm.DB) ResolveActorQueryHandler {
	return ResolveActorQueryHandler{db: db}
}

// Handle executes the resolution. An unknown user ID returns an
// errs.ObjectNotFoundError.
func (h ResolveActorQueryHandler) Handle(ctx context.Context, query ResolveActorQuery) (account.Actor, error) {
	if err := query.Validate(); err != nil {
		return account.Actor{}, err
	}

	userID := query.UserID()
	tx := h.db.WithContext(ctx)

	clientID, err := h.profileID(tx, "clients", userID)
	if err != nil {
		return account.Actor{}, err
	}
	if clientID != nil {
		return account.NewClientActor(userID, *clientID)
	}

	driverID, err := h.profileID(tx, "drivers", userID)
	if err != nil {
		return account.Actor{}, err
	}
	if driverID != nil {
		return account.NewDriverActor(userID, *driverID)
	}

	var isAdmin bool
	row := tx.Raw(`SELECT is_admin FROM users WHERE id = ?`, userID.Bytes()).Row()
	if err = row.Scan(&isAdmin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return account.Actor{}, errs.NewObjectNotFoundError("user_id", userID)
		}
		return account.Actor{}, err
	}

	if isAdmin {
		return account.NewAdminActor(userID)
	}

	return account.NewUnknownActor(userID)
}

func (h *ResolveActorQueryHandler) profileID(tx *gorm.DB, table string, userID kernel.UUID) (*kernel.UUID, error) {
	row := tx.Raw(`SELECT id FROM `+table+` WHERE user_id = ?`, userID.Bytes()).Row()

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	profileID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	return &profileID, nil
}
