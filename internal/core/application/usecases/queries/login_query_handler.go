package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"frete/internal/pkg/token"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginQueryHandler verifies credentials against the stored bcrypt hash and
// issues a signed bearer token.
type LoginQueryHandler struct {
	db     *gorm.DB
	signer token.Signer
}

// NewLoginQueryHandler creates a handler for authentication.
func NewLoginQueryHandler(db *gorm.DB, signer token.Signer) LoginQueryHandler {
	return LoginQueryHandler{db: db, signer: signer}
}

// Handle executes the authentication query.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, password_hash
		FROM users
		WHERE username = ?
	`, query.Username()).Row()

	var id uuid.UUID
	var passwordHash string
	if err := row.Scan(&id, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LoginQueryResponse{}, ErrInvalidCredentials
		}
		return LoginQueryResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())); err != nil {
		return LoginQueryResponse{}, ErrInvalidCredentials
	}

	issued, err := h.signer.Issue(id.String(), query.Username())
	if err != nil {
		return LoginQueryResponse{}, err
	}

	return LoginQueryResponse{Token: issued}, nil
}
