package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"frete/internal/core/application/usecases/commands"
	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/kernel"
)

func clientRegistration(t *testing.T) commands.RegisterUserCommand {
	t.Helper()

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		"ana.mateus", "ana@example.com", "segredo123",
		commands.ProfileKindClient,
		"+244923000111", "003456789LA042", "Bairro Maianga, Luanda", "",
	)
	require.NoError(t, err)
	return cmd
}

func driverRegistration(t *testing.T) commands.RegisterUserCommand {
	t.Helper()

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		"joao.kandele", "joao@example.com", "segredo123",
		commands.ProfileKindDriver,
		"+244923000222", "004567890LA043", "", "LD-778899",
	)
	require.NoError(t, err)
	return cmd
}

func TestRegisterUserCommandHandler_Handle_ClientSuccess(t *testing.T) {
	ctx := t.Context()
	cmd := clientRegistration(t)

	userRepo := new(MockUserRepository)
	clientRepo := new(MockClientRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.Client")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
	clientRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DriverSuccess(t *testing.T) {
	ctx := t.Context()
	cmd := driverRegistration(t)

	userRepo := new(MockUserRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_HashesPassword(t *testing.T) {
	ctx := t.Context()
	cmd := clientRegistration(t)

	var storedHash string
	userRepo := new(MockUserRepository)
	userRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.User")).
		Run(func(args mock.Arguments) {
			storedHash = args.Get(1).(*account.User).PasswordHash()
		}).
		Return(nil).Once()

	clientRepo := new(MockClientRepository)
	clientRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.Client")).Return(nil).Once()

	uow := new(MockAccountUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.NotEqual(t, cmd.Password(), storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(cmd.Password())))
}

func TestRegisterUserCommandHandler_Handle_UserAddError(t *testing.T) {
	ctx := t.Context()
	cmd := clientRegistration(t)

	userRepo := new(MockUserRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.User")).
			Return(errors.New("duplicate username")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewRegisterUserCommand_DriverRequiresLicence(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		"joao.kandele", "", "segredo123",
		commands.ProfileKindDriver,
		"+244923000222", "004567890LA043", "", "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLicenceIsRequired)
}

func TestNewRegisterUserCommand_InvalidKind(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		"ana.mateus", "", "segredo123",
		commands.ProfileKind("manager"),
		"+244923000111", "003456789LA042", "", "",
	)
	require.Error(t, err)
}

func TestNewRegisterUserCommand_MissingCredentials(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		"", "", "",
		commands.ProfileKindClient,
		"+244923000111", "003456789LA042", "", "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUsernameIsRequired)
	assert.ErrorIs(t, err, commands.ErrPasswordIsRequired)
}
