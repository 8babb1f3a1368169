package shipment

import (
	"errors"
	"fmt"
	"time"

	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/errs"
	"frete/internal/pkg/guard"
)

// Domain errors for shipment operations.
var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")
	// ErrTitleIsRequired is returned when the shipment title is empty.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrOriginIsRequired is returned when the origin address is empty.
	ErrOriginIsRequired = errs.NewValueIsRequiredError("origin")
	// ErrDestinationIsRequired is returned when the destination address is empty.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	// ErrPriceAlreadyQuoted is returned when trying to quote a shipment that
	// already carries a price. A price, once set, is immutable.
	ErrPriceAlreadyQuoted = errors.New("shipment already has a price")
	// ErrShipmentAlreadyAssigned is the sentinel for accept attempts on a
	// shipment that another driver already claimed.
	ErrShipmentAlreadyAssigned = errors.New("shipment is already assigned to a driver")
)

// AlreadyAssignedError reports an accept attempt that lost to another driver.
// DriverID names the driver the shipment is currently assigned to, so the
// caller can see who won the claim.
type AlreadyAssignedError struct {
	DriverID kernel.UUID
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("shipment is already assigned to driver %s", e.DriverID)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrShipmentAlreadyAssigned
}

// Details groups the descriptive attributes of a shipment supplied by the
// client at creation time. Identity, status, price and driver assignment are
// managed by the aggregate itself.
type Details struct {
	Title             string
	Description       string
	WeightKg          float64
	PhotoRef          string
	Origin            string
	Destination       string
	OriginCoords      string
	DestinationCoords string
	Category          Category
	ServiceType       ServiceType
	ScheduledAt       *time.Time
	Escorted          bool
}

// Shipment is the aggregate root for a unit of cargo to be transported.
// It owns the lifecycle state machine and the pricing invariant.
//
// Invariants:
//   - id and clientID are valid UUIDs; title, origin and destination are set
//   - weight is positive
//   - Pending shipments have no driver; all other statuses have one
//   - the price, once set, is never silently overwritten
type Shipment struct {
	id        kernel.UUID
	clientID  kernel.UUID
	driverID  *kernel.UUID
	details   Details
	price     *float64
	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment for a client. The status is always forced
// to Pending regardless of anything the caller supplied, and no driver is
// assigned. A nil price means the estimator will quote it later; a non-nil
// price must be positive and is kept as-is.
func NewShipment(id, clientID kernel.UUID, details Details, price *float64, now time.Time) (*Shipment, error) {
	s := &Shipment{
		status:    StatusPending,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setClientID(clientID),
		s.setDetails(details),
		s.setPrice(price),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence, including its
// status and driver assignment. The status/driver consistency rule is
// re-checked so corrupt rows never become live aggregates.
func RestoreShipment(
	id, clientID kernel.UUID,
	details Details,
	price *float64,
	status Status,
	driverID *kernel.UUID,
	createdAt time.Time,
) (*Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return nil, err
	}

	s := &Shipment{
		status:    status,
		driverID:  driverID,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setClientID(clientID),
		s.setDetails(details),
		s.setPrice(price),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// ClientID returns the owning client's profile identifier.
func (s *Shipment) ClientID() kernel.UUID {
	return s.clientID
}

// DriverID returns the assigned driver's profile identifier, or nil while
// the shipment is unclaimed.
func (s *Shipment) DriverID() *kernel.UUID {
	return s.driverID
}

// Details returns the descriptive attributes of the shipment.
func (s *Shipment) Details() Details {
	return s.details
}

// Price returns the quoted freight price, or nil if not yet quoted.
func (s *Shipment) Price() *float64 {
	return s.price
}

// HasPrice reports whether a freight price has been set.
func (s *Shipment) HasPrice() bool {
	return s.price != nil
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// Quote sets the estimated freight price on a shipment that has none.
// Returns ErrPriceAlreadyQuoted when a price is already present: a price,
// once set, is only changed through an explicit authorized update.
func (s *Shipment) Quote(price float64) error {
	if s.price != nil {
		return ErrPriceAlreadyQuoted
	}
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%f is not greater than 0", price))
	}

	s.price = &price
	return nil
}

// Accept assigns the shipment to the accepting driver and moves it to
// InTransit.
//
// Preconditions, in order:
//   - the status must be exactly Pending (InvalidStatusError naming the
//     current status otherwise)
//   - no driver may be assigned yet (AlreadyAssignedError naming the current
//     assignee otherwise)
//
// The persistence layer must pair this with a conditional write so that two
// drivers racing for the same shipment cannot both succeed.
func (s *Shipment) Accept(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Accept()
	if err != nil {
		return err
	}

	if s.driverID != nil {
		return &AlreadyAssignedError{DriverID: *s.driverID}
	}

	s.status = newStatus
	s.driverID = &driverID
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client", err)
	}
	s.clientID = clientID
	return nil
}

func (s *Shipment) setDetails(details Details) error {
	if details.Title == "" {
		return ErrTitleIsRequired
	}
	if details.Origin == "" {
		return ErrOriginIsRequired
	}
	if details.Destination == "" {
		return ErrDestinationIsRequired
	}
	if details.WeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%f is not greater than 0", details.WeightKg))
	}

	details.Category = details.Category.OrDefault()
	details.ServiceType = details.ServiceType.OrDefault()
	if err := details.ServiceType.Validate(); err != nil {
		return err
	}

	s.details = details
	return nil
}

func (s *Shipment) setPrice(price *float64) error {
	if price == nil {
		return nil
	}
	if *price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%f is not greater than 0", *price))
	}

	p := *price
	s.price = &p
	return nil
}
