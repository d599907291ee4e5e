package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateJobCommandHandler_Handle_AutoAssignSuccess(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateJobCommand(
		"Warehouse A", "Store B", []string{"Checkpoint 1"}, "", "", "Truck", "Heavy")
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	vehicles := new(MockVehicleRegistry)
	drivers := new(MockDriverRegistry)

	mock.InOrder(
		vehicles.On("GetAvailableByType", ctx, "Truck").
			Return(vehicle.Vehicle{ID: "v1", Type: "Truck", Status: vehicle.StatusAvailable}, nil).Once(),
		drivers.On("GetAvailableByLicenseClass", ctx, "Heavy").
			Return(driver.Driver{ID: "d1", Available: true}, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Add", ctx, mock.AnythingOfType("*job.Job")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		vehicles.On("SetStatus", ctx, "v1", vehicle.StatusInTransit).Return(nil).Once(),
		drivers.On("SetAvailability", ctx, "d1", false).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobCommandHandler(factory, vehicles, drivers, discardLogger())
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, job.InProgress, created.Status())
	require.NotNil(t, created.VehicleID())
	assert.Equal(t, "v1", *created.VehicleID())
	require.NotNil(t, created.DriverID())
	assert.Equal(t, "d1", *created.DriverID())

	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	vehicles.AssertExpectations(t)
	drivers.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateJobCommandHandler_Handle_ExplicitIDsSkipLookups(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateJobCommand(
		"Warehouse A", "Store B", nil, "v42", "d42", "Truck", "Heavy")
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	vehicles := new(MockVehicleRegistry)
	drivers := new(MockDriverRegistry)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Add", ctx, mock.AnythingOfType("*job.Job")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		vehicles.On("SetStatus", ctx, "v42", vehicle.StatusInTransit).Return(nil).Once(),
		drivers.On("SetAvailability", ctx, "d42", false).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobCommandHandler(factory, vehicles, drivers, discardLogger())
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created.VehicleID())
	assert.Equal(t, "v42", *created.VehicleID())

	// Supplied ids are trusted as-is, with no registry lookup.
	vehicles.AssertNotCalled(t, "GetAvailableByType", mock.Anything, mock.Anything)
	vehicles.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	drivers.AssertNotCalled(t, "GetAvailableByLicenseClass", mock.Anything, mock.Anything)
	drivers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateJobCommandHandler_Handle_NoVehicleAvailable(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateJobCommand(
		"Warehouse A", "Store B", nil, "", "d1", "Truck", "Heavy")
	require.NoError(t, err)

	vehicles := new(MockVehicleRegistry)
	drivers := new(MockDriverRegistry)
	vehicles.On("GetAvailableByType", ctx, "Truck").
		Return(vehicle.Vehicle{}, errs.NewResourceUnavailableError("vehicle", "Truck")).Once()

	factory := new(MockUoWFactory)
	handler := commands.NewCreateJobCommandHandler(factory, vehicles, drivers, discardLogger())
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceUnavailable)
	assert.Nil(t, created)

	// Nothing persisted when resolution fails.
	factory.AssertNotCalled(t, "Create")
	drivers.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateJobCommandHandler_Handle_DriverLookupFailsBeforePersist(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateJobCommand(
		"Warehouse A", "Store B", nil, "", "", "Truck", "Heavy")
	require.NoError(t, err)

	vehicles := new(MockVehicleRegistry)
	drivers := new(MockDriverRegistry)

	mock.InOrder(
		vehicles.On("GetAvailableByType", ctx, "Truck").
			Return(vehicle.Vehicle{ID: "v1"}, nil).Once(),
		drivers.On("GetAvailableByLicenseClass", ctx, "Heavy").
			Return(driver.Driver{}, errs.NewUpstreamUnavailableError("driver-service", errors.New("connection refused"))).Once(),
	)

	factory := new(MockUoWFactory)
	handler := commands.NewCreateJobCommandHandler(factory, vehicles, drivers, discardLogger())
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	assert.Nil(t, created)

	factory.AssertNotCalled(t, "Create")
	vehicles.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateJobCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateJobCommand(
		"Warehouse A", "Store B", nil, "v1", "d1", "Truck", "Heavy")
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	vehicles := new(MockVehicleRegistry)
	drivers := new(MockDriverRegistry)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Add", ctx, mock.AnythingOfType("*job.Job")).Return(errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobCommandHandler(factory, vehicles, drivers, discardLogger())
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	assert.Nil(t, created)

	// Registries are untouched when the store rejects the job.
	vehicles.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	drivers.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateJobCommandHandler_Handle_RegistryFailureQueuesReconciliation(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateJobCommand(
		"Warehouse A", "Store B", nil, "v1", "d1", "Truck", "Heavy")
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	syncRepo := new(MockSyncTaskRepository)
	uow := new(MockUoW)
	driftUoW := new(MockUoW)
	vehicles := new(MockVehicleRegistry)
	drivers := new(MockDriverRegistry)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Add", ctx, mock.AnythingOfType("*job.Job")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		vehicles.On("SetStatus", ctx, "v1", vehicle.StatusInTransit).
			Return(errors.New("fleet service down")).Once(),
		driftUoW.On("Begin", ctx).Return(nil).Once(),
		driftUoW.On("SyncTaskRepository").Return(syncRepo).Once(),
		syncRepo.On("Add", ctx, mock.AnythingOfType("*regsync.Task")).Return(nil).Once(),
		driftUoW.On("Commit", ctx).Return(nil).Once(),
		driftUoW.On("Rollback", ctx).Return(nil).Once(),
		drivers.On("SetAvailability", ctx, "d1", false).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	factory.On("Create").Return(driftUoW).Once()

	handler := commands.NewCreateJobCommandHandler(factory, vehicles, drivers, discardLogger())
	created, err := handler.Handle(ctx, cmd)

	// The job survives the registry failure; drift is queued instead.
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, job.InProgress, created.Status())

	syncRepo.AssertExpectations(t)
	driftUoW.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateJobCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateJobCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCreateJobCommandHandler(
		factory, new(MockVehicleRegistry), new(MockDriverRegistry), discardLogger())
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateJobCommandIsNotConstructed)
	assert.Nil(t, created)
	factory.AssertNotCalled(t, "Create")
}
