package queries

import (
	"errors"

	"frete/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New(
		"LoginQuery must be created via NewLoginQuery constructor",
	)
	ErrCredentialsAreRequired = errors.New("username and password are required")
)

// LoginQuery authenticates a user by username and password.
type LoginQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates an authentication query.
func NewLoginQuery(username, password string) (LoginQuery, error) {
	if username == "" || password == "" {
		return LoginQuery{}, ErrCredentialsAreRequired
	}

	return LoginQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Username returns the login name being authenticated.
func (q LoginQuery) Username() string {
	return q.username
}

// Password returns the plaintext password to verify.
func (q LoginQuery) Password() string {
	return q.password
}

// LoginQueryResponse carries the issued bearer token.
type LoginQueryResponse struct {
	Token string
}
