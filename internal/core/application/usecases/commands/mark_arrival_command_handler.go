package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/regsync"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/joblock"
)

// MarkArrivalCommandHandler completes a job and releases its vehicle and
// driver back to their registries.
//
// The operation is idempotent: a job that is already Completed is left
// untouched and no release calls are re-issued. Release failures never roll
// the completion back; the job transition is the source of truth and drift is
// queued for reconciliation.
type MarkArrivalCommandHandler struct {
	uowFactory UoWFactory
	vehicles   ports.VehicleRegistry
	drivers    ports.DriverRegistry
	locks      *joblock.KeyedMutex
	logger     *slog.Logger
}

// NewMarkArrivalCommandHandler creates a handler for arrival events.
func NewMarkArrivalCommandHandler(
	uowFactory UoWFactory,
	vehicles ports.VehicleRegistry,
	drivers ports.DriverRegistry,
	locks *joblock.KeyedMutex,
	logger *slog.Logger,
) MarkArrivalCommandHandler {
	return MarkArrivalCommandHandler{
		uowFactory: uowFactory,
		vehicles:   vehicles,
		drivers:    drivers,
		locks:      locks,
		logger:     logger.With("component", "mark_arrival"),
	}
}

// Handle processes the arrival event.
func (h MarkArrivalCommandHandler) Handle(ctx context.Context, cmd MarkArrivalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.locks.Lock(cmd.JobID().String())
	defer h.locks.Unlock(cmd.JobID().String())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	arrived, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	changed, err := arrived.Complete()
	if err != nil {
		return err
	}
	if !changed {
		// Already completed; resources were released on the first call.
		return nil
	}

	if err = jobRepo.Update(ctx, arrived); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if vehicleID := arrived.VehicleID(); vehicleID != nil {
		if err = h.vehicles.SetStatus(ctx, *vehicleID, vehicle.StatusAvailable); err != nil {
			if task, taskErr := regsync.NewVehicleStatusTask(*vehicleID, vehicle.StatusAvailable); taskErr == nil {
				recordDrift(ctx, h.uowFactory, h.logger, task, err)
			}
		}
	}

	if driverID := arrived.DriverID(); driverID != nil {
		if err = h.drivers.SetAvailability(ctx, *driverID, true); err != nil {
			if task, taskErr := regsync.NewDriverAvailabilityTask(*driverID, true); taskErr == nil {
				recordDrift(ctx, h.uowFactory, h.logger, task, err)
			}
		}
	}

	return nil
}
