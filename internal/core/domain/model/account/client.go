package account

import (
	"errors"

	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/errs"
	"frete/internal/pkg/guard"
)

var (
	// ErrClientIsNotConstructed is returned when a Client was not created via NewClient.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
	// ErrPhoneIsRequired is returned when a profile is created without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrIDDocumentIsRequired is returned when a profile is created without an identity document.
	ErrIDDocumentIsRequired = errs.NewValueIsRequiredError("identity document")
)

// Client is the role profile of a user who creates and owns shipments.
type Client struct {
	id         kernel.UUID
	userID     kernel.UUID
	phone      string
	idDocument string
	address    string

	guard guard.ConstructorGuard
}

// NewClient creates a client profile for a user. The address is optional;
// phone and identity document are not.
func NewClient(id, userID kernel.UUID, phone, idDocument, address string) (*Client, error) {
	c := &Client{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setPhone(phone),
		c.setIDDocument(idDocument),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Client was created through NewClient.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// ID returns the profile identifier used as shipment ownership reference.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// UserID returns the identifier of the wrapped user.
func (c *Client) UserID() kernel.UUID {
	return c.userID
}

// Phone returns the contact phone number.
func (c *Client) Phone() string {
	return c.phone
}

// IDDocument returns the identity document number.
func (c *Client) IDDocument() string {
	return c.idDocument
}

// Address returns the registered address, possibly empty.
func (c *Client) Address() string {
	return c.address
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	c.userID = userID
	return nil
}

func (c *Client) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Client) setIDDocument(idDocument string) error {
	if idDocument == "" {
		return ErrIDDocumentIsRequired
	}
	c.idDocument = idDocument
	return nil
}
