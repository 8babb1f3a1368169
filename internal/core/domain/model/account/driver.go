package account

import (
	"errors"

	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/errs"
	"frete/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver was not created via NewDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrLicenceIsRequired is returned when a driver profile has no driving licence number.
	ErrLicenceIsRequired = errs.NewValueIsRequiredError("driving licence")
)

// Driver is the role profile of a user who claims and fulfils shipments.
// A driver may hold a reference to an assigned vehicle.
type Driver struct {
	id         kernel.UUID
	userID     kernel.UUID
	phone      string
	idDocument string
	licence    string
	vehicleID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewDriver creates a driver profile for a user with no vehicle assigned.
func NewDriver(id, userID kernel.UUID, phone, idDocument, licence string) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(userID),
		d.setPhone(phone),
		d.setIDDocument(idDocument),
		d.setLicence(licence),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver profile from persistence, including
// any vehicle assignment.
func RestoreDriver(id, userID kernel.UUID, phone, idDocument, licence string, vehicleID *kernel.UUID) (*Driver, error) {
	d, err := NewDriver(id, userID, phone, idDocument, licence)
	if err != nil {
		return nil, err
	}

	if vehicleID != nil {
		if err := d.AssignVehicle(*vehicleID); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the profile identifier used as shipment assignment reference.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// UserID returns the identifier of the wrapped user.
func (d *Driver) UserID() kernel.UUID {
	return d.userID
}

// Phone returns the contact phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// IDDocument returns the identity document number.
func (d *Driver) IDDocument() string {
	return d.idDocument
}

// Licence returns the driving licence number.
func (d *Driver) Licence() string {
	return d.licence
}

// VehicleID returns the assigned vehicle reference, or nil.
func (d *Driver) VehicleID() *kernel.UUID {
	return d.vehicleID
}

// AssignVehicle attaches a vehicle reference to the driver.
func (d *Driver) AssignVehicle(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	d.vehicleID = &vehicleID
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	d.userID = userID
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}

func (d *Driver) setIDDocument(idDocument string) error {
	if idDocument == "" {
		return ErrIDDocumentIsRequired
	}
	d.idDocument = idDocument
	return nil
}

func (d *Driver) setLicence(licence string) error {
	if licence == "" {
		return ErrLicenceIsRequired
	}
	d.licence = licence
	return nil
}
