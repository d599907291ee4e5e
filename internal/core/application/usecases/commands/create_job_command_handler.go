package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/regsync"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/ports"
)

// CreateJobCommandHandler orchestrates job creation: resolves a vehicle and a
// driver, persists the job as InProgress, then marks both resources busy in
// their registries.
//
// Ordering contract: resolution happens before anything is persisted, so a
// failed lookup leaves no partial job behind; persistence happens before the
// registry mutations, so a failed mutation leaves the job authoritative and
// queues a reconciliation task instead of rolling the job back.
type CreateJobCommandHandler struct {
	uowFactory UoWFactory
	vehicles   ports.VehicleRegistry
	drivers    ports.DriverRegistry
	logger     *slog.Logger
}

// NewCreateJobCommandHandler creates a handler for job dispatch operations.
func NewCreateJobCommandHandler(
	uowFactory UoWFactory,
	vehicles ports.VehicleRegistry,
	drivers ports.DriverRegistry,
	logger *slog.Logger,
) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		vehicles:   vehicles,
		drivers:    drivers,
		logger:     logger.With("component", "create_job"),
	}
}

// Handle processes the job creation command and returns the persisted job.
//
// An explicitly supplied resource id is trusted as-is, with no existence
// check against its registry. A missing id triggers a single-best-match
// availability lookup; any failure there (no match or registry down) aborts
// before the job store is touched.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	vehicleID := cmd.VehicleID()
	if vehicleID == "" {
		found, err := h.vehicles.GetAvailableByType(ctx, cmd.VehicleType())
		if err != nil {
			return nil, err
		}
		vehicleID = found.ID
	}

	driverID := cmd.DriverID()
	if driverID == "" {
		found, err := h.drivers.GetAvailableByLicenseClass(ctx, cmd.LicenseClass())
		if err != nil {
			return nil, err
		}
		driverID = found.ID
	}

	stops := make([]job.Stop, 0, len(cmd.Stops()))
	for _, name := range cmd.Stops() {
		stop, err := job.NewStop(name)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	newJob, err := job.NewJob(kernel.NewUUID(), cmd.Pickup(), cmd.Destination(), stops)
	if err != nil {
		return nil, err
	}

	if err = newJob.Assign(vehicleID, driverID); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobRepository().Add(ctx, newJob); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.vehicles.SetStatus(ctx, vehicleID, vehicle.StatusInTransit); err != nil {
		if task, taskErr := regsync.NewVehicleStatusTask(vehicleID, vehicle.StatusInTransit); taskErr == nil {
			recordDrift(ctx, h.uowFactory, h.logger, task, err)
		}
	}

	if err = h.drivers.SetAvailability(ctx, driverID, false); err != nil {
		if task, taskErr := regsync.NewDriverAvailabilityTask(driverID, false); taskErr == nil {
			recordDrift(ctx, h.uowFactory, h.logger, task, err)
		}
	}

	return newJob, nil
}
