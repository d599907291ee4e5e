package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/regsync"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/joblock"
)

// RaiseEmergencyCommandHandler flags a job as needing attention and sends its
// vehicle to maintenance.
//
// The driver is intentionally not notified from this path: the driver service
// runs its own driver-initiated emergency flow and updates its own state.
// This asymmetry means a dispatcher-raised emergency leaves the driver's
// registry status untouched; it is a known inconsistency of the upstream
// contract, not a guarantee.
type RaiseEmergencyCommandHandler struct {
	uowFactory UoWFactory
	vehicles   ports.VehicleRegistry
	locks      *joblock.KeyedMutex
	logger     *slog.Logger
}

// NewRaiseEmergencyCommandHandler creates a handler for emergency events.
func NewRaiseEmergencyCommandHandler(
	uowFactory UoWFactory,
	vehicles ports.VehicleRegistry,
	locks *joblock.KeyedMutex,
	logger *slog.Logger,
) RaiseEmergencyCommandHandler {
	return RaiseEmergencyCommandHandler{
		uowFactory: uowFactory,
		vehicles:   vehicles,
		locks:      locks,
		logger:     logger.With("component", "raise_emergency"),
	}
}

// Handle processes the emergency event.
func (h RaiseEmergencyCommandHandler) Handle(ctx context.Context, cmd RaiseEmergencyCommand) error {
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
	flagged, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = flagged.FlagNeedsAttention(); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, flagged); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if vehicleID := flagged.VehicleID(); vehicleID != nil {
		if err = h.vehicles.SetStatus(ctx, *vehicleID, vehicle.StatusMaintenance); err != nil {
			if task, taskErr := regsync.NewVehicleStatusTask(*vehicleID, vehicle.StatusMaintenance); taskErr == nil {
				recordDrift(ctx, h.uowFactory, h.logger, task, err)
			}
		}
	}

	return nil
}
