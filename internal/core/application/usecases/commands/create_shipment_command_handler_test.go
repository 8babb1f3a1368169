package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"frete/internal/core/application/usecases/commands"
	"frete/internal/core/domain/model/kernel"
	"frete/internal/core/domain/services"
)

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateShipmentCommand(id, clientActor(), cargoDetails(), nil)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, services.NewPriceEstimator())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_QuotesWhenNoPriceOffered(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateShipmentCommand(id, clientActor(), cargoDetails(), nil)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, services.NewPriceEstimator())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, created.HasPrice())

	// 40 kg of furniture: 2000 + 40*100*1.2
	assert.InDelta(t, 6800.0, *created.Price(), 0.001)
}

func TestCreateShipmentCommandHandler_Handle_KeepsOfferedPrice(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	offered := 9500.0
	cmd, _ := commands.NewCreateShipmentCommand(id, clientActor(), cargoDetails(), &offered)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, services.NewPriceEstimator())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.InDelta(t, offered, *created.Price(), 0.001)
}

func TestCreateShipmentCommandHandler_Handle_ForbiddenForDrivers(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(kernel.NewUUID(), driverActor(), cargoDetails(), nil)

	factory := new(MockShipmentUoWFactory)
	h := commands.NewCreateShipmentCommandHandler(factory, services.NewPriceEstimator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOnlyClientsMayCreateShipments)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly
	factory := new(MockShipmentUoWFactory)
	h := commands.NewCreateShipmentCommandHandler(factory, services.NewPriceEstimator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(kernel.NewUUID(), clientActor(), cargoDetails(), nil)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, services.NewPriceEstimator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(kernel.NewUUID(), clientActor(), cargoDetails(), nil)

	uow := new(MockShipmentUoW)
	factory := new(MockShipmentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateShipmentCommandHandler(factory, services.NewPriceEstimator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
