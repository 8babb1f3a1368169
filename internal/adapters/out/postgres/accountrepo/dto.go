// Package accountrepo provides the GORM-backed persistence for user
// identities and their client and driver profiles.
package accountrepo

import (
	"github.com/google/uuid"

	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/kernel"
)

// UserDTO represents the database structure for user identities.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex"`
	Email        string
	PasswordHash string
	IsAdmin      bool
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// ClientDTO represents the database structure for client profiles.
// A user has at most one client profile.
type ClientDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Phone      string
	IDDocument string    `gorm:"uniqueIndex"`
	Address    string
}

// TableName specifies the database table name for client profiles.
func (ClientDTO) TableName() string {
	return "clients"
}

// DriverDTO represents the database structure for driver profiles.
// A user has at most one driver profile.
type DriverDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	Phone      string
	IDDocument string     `gorm:"uniqueIndex"`
	Licence    string     `gorm:"uniqueIndex"`
	VehicleID  *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for driver profiles.
func (DriverDTO) TableName() string {
	return "drivers"
}

func userFromDomain(aggregate *account.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		IsAdmin:      aggregate.IsAdmin(),
	}
}

func userToDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.NewUser(id, dto.Username, dto.Email, dto.PasswordHash, dto.IsAdmin)
}

func clientFromDomain(aggregate *account.Client) ClientDTO {
	return ClientDTO{
		ID:         aggregate.ID().Bytes(),
		UserID:     aggregate.UserID().Bytes(),
		Phone:      aggregate.Phone(),
		IDDocument: aggregate.IDDocument(),
		Address:    aggregate.Address(),
	}
}

func clientToDomain(dto ClientDTO) (*account.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return account.NewClient(id, userID, dto.Phone, dto.IDDocument, dto.Address)
}

func driverFromDomain(aggregate *account.Driver) DriverDTO {
	var vehicleID *uuid.UUID
	if id := aggregate.VehicleID(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	return DriverDTO{
		ID:         aggregate.ID().Bytes(),
		UserID:     aggregate.UserID().Bytes(),
		Phone:      aggregate.Phone(),
		IDDocument: aggregate.IDDocument(),
		Licence:    aggregate.Licence(),
		VehicleID:  vehicleID,
	}
}

func driverToDomain(dto DriverDTO) (*account.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var vehicleID *kernel.UUID
	if dto.VehicleID != nil {
		vID, vehicleErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vehicleErr != nil {
			return nil, vehicleErr
		}

		vehicleID = &vID
	}

	return account.RestoreDriver(id, userID, dto.Phone, dto.IDDocument, dto.Licence, vehicleID)
}
