package commands

import (
	"errors"

	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/errs"
	"frete/internal/pkg/guard"
)

// ProfileKind selects which profile a registration creates. Every account
// has exactly one profile: either a client or a driver.
type ProfileKind string

const (
	ProfileKindClient ProfileKind = "client"
	ProfileKindDriver ProfileKind = "driver"
)

// Validate checks that the profile kind is one of the known values.
func (k ProfileKind) Validate() error {
	switch k {
	case ProfileKindClient, ProfileKindDriver:
		return nil
	default:
		return errs.NewValueIsInvalidError("profile kind")
	}
}

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrPasswordIsRequired = errors.New("password is required")
	ErrLicenceIsRequired  = errors.New("driving licence is required for drivers")
)

// RegisterUserCommand represents a sign-up request. The account and its
// single profile are created together in one transaction.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	username   string
	email      string
	password   string
	kind       ProfileKind
	phone      string
	idDocument string
	address    string
	licence    string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a sign-up command.
// Username, password and a valid profile kind are required; drivers must
// also supply a driving licence. Profile-level requirements such as phone
// and identity document are enforced by the profile constructors.
func NewRegisterUserCommand(
	userID kernel.UUID,
	username, email, password string,
	kind ProfileKind,
	phone, idDocument, address, licence string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		email:      email,
		phone:      phone,
		idDocument: idDocument,
		address:    address,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setPassword(password),
		cmd.setKind(kind),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	if err := cmd.setLicence(licence); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier the new account will be created under.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the login name of the new account.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Email returns the contact email, which may be empty.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Kind returns which profile the registration creates.
func (c RegisterUserCommand) Kind() ProfileKind {
	return c.kind
}

// Phone returns the profile contact phone.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// IDDocument returns the national identity document number.
func (c RegisterUserCommand) IDDocument() string {
	return c.idDocument
}

// Address returns the client address, which may be empty.
func (c RegisterUserCommand) Address() string {
	return c.address
}

// Licence returns the driving licence number for driver registrations.
func (c RegisterUserCommand) Licence() string {
	return c.licence
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setKind(kind ProfileKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *RegisterUserCommand) setLicence(licence string) error {
	if c.kind == ProfileKindDriver && licence == "" {
		return ErrLicenceIsRequired
	}

	c.licence = licence
	return nil
}
