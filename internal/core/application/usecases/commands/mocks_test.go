package commands_test

import (
	"context"
	"io"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/regsync"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// discardLogger silences handler logging in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAll(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllByStatus(ctx context.Context, status job.Status) ([]*job.Job, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllByDriver(ctx context.Context, driverID string) ([]*job.Job, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSyncTaskRepository struct{ mock.Mock }

func (m *MockSyncTaskRepository) Add(ctx context.Context, task *regsync.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockSyncTaskRepository) Update(ctx context.Context, task *regsync.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockSyncTaskRepository) GetAllPending(ctx context.Context) ([]*regsync.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*regsync.Task), args.Error(1)
}

func (m *MockSyncTaskRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) SyncTaskRepository() ports.RegistrySyncTaskRepository {
	args := m.Called()
	return args.Get(0).(ports.RegistrySyncTaskRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockVehicleRegistry struct{ mock.Mock }

func (m *MockVehicleRegistry) Get(ctx context.Context, id string) (vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRegistry) GetAvailableByType(ctx context.Context, vehicleType string) (vehicle.Vehicle, error) {
	args := m.Called(ctx, vehicleType)
	return args.Get(0).(vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRegistry) SetStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockDriverRegistry struct{ mock.Mock }

func (m *MockDriverRegistry) Get(ctx context.Context, id string) (driver.Driver, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(driver.Driver), args.Error(1)
}

func (m *MockDriverRegistry) GetAvailableByLicenseClass(ctx context.Context, licenseClass string) (driver.Driver, error) {
	args := m.Called(ctx, licenseClass)
	return args.Get(0).(driver.Driver), args.Error(1)
}

func (m *MockDriverRegistry) SetAvailability(ctx context.Context, id string, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}
