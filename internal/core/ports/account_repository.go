package ports

import (
	"context"

	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user identities.
type UserRepository interface {
	// Add persists a new user. Usernames are unique; adding a duplicate
	// returns an error.
	Add(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByUsername retrieves a user by login name.
	// Returns an errs.ObjectNotFoundError when no such user exists.
	GetByUsername(ctx context.Context, username string) (*account.User, error)
}

// ClientRepository defines the persistence contract for client profiles.
type ClientRepository interface {
	// Add persists a new client profile.
	Add(ctx context.Context, aggregate *account.Client) error

	// Get retrieves a client profile by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Client, error)

	// GetByUserID retrieves the client profile attached to a user.
	// Returns an errs.ObjectNotFoundError when the user has no client profile.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*account.Client, error)
}

// DriverRepository defines the persistence contract for driver profiles.
type DriverRepository interface {
	// Add persists a new driver profile.
	Add(ctx context.Context, aggregate *account.Driver) error

	// Get retrieves a driver profile by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Driver, error)

	// GetByUserID retrieves the driver profile attached to a user.
	// Returns an errs.ObjectNotFoundError when the user has no driver profile.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*account.Driver, error)
}

// VehicleRepository defines the persistence contract for vehicle reference data.
type VehicleRepository interface {
	// Add persists a new vehicle.
	Add(ctx context.Context, aggregate *account.Vehicle) error

	// Get retrieves a vehicle by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Vehicle, error)
}
