package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/kernel"
)

// RegisterUserCommandHandler handles account sign-up. The user identity and
// its profile are written in a single transaction so a failure cannot leave
// a user without a profile.
type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory AccountUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sign-up command. The password is hashed with bcrypt
// before anything touches the database.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user, err := account.NewUser(cmd.UserID(), cmd.Username(), cmd.Email(), string(hash), false)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return err
	}

	if err = h.addProfile(ctx, uow, cmd); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *RegisterUserCommandHandler) addProfile(ctx context.Context, uow AccountUoW, cmd RegisterUserCommand) error {
	profileID := kernel.NewUUID()

	switch cmd.Kind() {
	case ProfileKindDriver:
		driver, err := account.NewDriver(profileID, cmd.UserID(), cmd.Phone(), cmd.IDDocument(), cmd.Licence())
		if err != nil {
			return err
		}

		return uow.DriverRepository().Add(ctx, driver)
	default:
		client, err := account.NewClient(profileID, cmd.UserID(), cmd.Phone(), cmd.IDDocument(), cmd.Address())
		if err != nil {
			return err
		}

		return uow.ClientRepository().Add(ctx, client)
	}
}
