package account

import (
	"errors"

	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via a constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via a NewXxxActor constructor")

// Role is the resolved role of an authenticated caller.
// Resolution happens exactly once per request; every operation receives the
// resulting Actor instead of re-probing profiles at each branch.
type Role int

const (
	// RoleUnknown marks an authenticated user without any profile.
	RoleUnknown Role = iota

	// RoleClient marks a caller acting through a client profile.
	RoleClient

	// RoleDriver marks a caller acting through a driver profile.
	RoleDriver

	// RoleAdmin marks a superuser without a dispatch profile.
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleDriver:
		return "driver"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Actor is the caller of an operation: an authenticated user together with
// the single role it was resolved to. For clients and drivers, ProfileID
// identifies the role profile (the shipment ownership/assignment reference).
type Actor struct {
	userID    kernel.UUID
	role      Role
	profileID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClientActor creates the actor for a caller with a client profile.
func NewClientActor(userID, clientID kernel.UUID) (Actor, error) {
	return newProfileActor(userID, RoleClient, clientID)
}

// NewDriverActor creates the actor for a caller with a driver profile.
func NewDriverActor(userID, driverID kernel.UUID) (Actor, error) {
	return newProfileActor(userID, RoleDriver, driverID)
}

// NewAdminActor creates the actor for a superuser caller.
func NewAdminActor(userID kernel.UUID) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{userID: userID, role: RoleAdmin, guard: guard.NewConstructorGuard()}, nil
}

// NewUnknownActor creates the actor for an authenticated user that holds no
// profile and no admin flag. Such callers are authenticated but can pass no
// role check.
func NewUnknownActor(userID kernel.UUID) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{userID: userID, role: RoleUnknown, guard: guard.NewConstructorGuard()}, nil
}

func newProfileActor(userID kernel.UUID, role Role, profileID kernel.UUID) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	if err := profileID.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{userID: userID, role: role, profileID: profileID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the Actor was created through a constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// UserID returns the authenticated user's identifier.
func (a Actor) UserID() kernel.UUID {
	return a.userID
}

// Role returns the resolved role.
func (a Actor) Role() Role {
	return a.role
}

// ProfileID returns the client or driver profile identifier.
// Only meaningful when IsClient or IsDriver reports true.
func (a Actor) ProfileID() kernel.UUID {
	return a.profileID
}

// IsClient reports whether the caller acts as a client.
func (a Actor) IsClient() bool {
	return a.role == RoleClient
}

// IsDriver reports whether the caller acts as a driver.
func (a Actor) IsDriver() bool {
	return a.role == RoleDriver
}

// IsAdmin reports whether the caller is a superuser.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}
