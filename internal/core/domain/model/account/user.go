package account

import (
	"errors"

	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/errs"
	"frete/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created via NewUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	// ErrUsernameIsRequired is returned when the username is empty.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrPasswordHashIsRequired is returned when the password hash is empty.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
)

// User is an authenticated identity. It carries credentials only; dispatch
// data lives on the Client or Driver profile wrapping it.
type User struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	isAdmin      bool

	guard guard.ConstructorGuard
}

// NewUser creates a user with an already-hashed password.
// Password hashing is the caller's concern so the domain never sees
// plaintext credentials.
func NewUser(id kernel.UUID, username, email, passwordHash string, isAdmin bool) (*User, error) {
	u := &User{
		email:   email,
		isAdmin: isAdmin,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created through NewUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// Email returns the contact email, possibly empty.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsAdmin reports whether the user is a superuser.
func (u *User) IsAdmin() bool {
	return u.isAdmin
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}
