package commands

import (
	"context"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/pkg/joblock"
)

// UpdateJobCommandHandler applies administrative patches to a job, bypassing
// the guarded lifecycle transitions.
type UpdateJobCommandHandler struct {
	uowFactory JobUoWFactory
	locks      *joblock.KeyedMutex
}

// NewUpdateJobCommandHandler creates a handler for administrative job updates.
func NewUpdateJobCommandHandler(uowFactory JobUoWFactory, locks *joblock.KeyedMutex) UpdateJobCommandHandler {
	return UpdateJobCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the patch and returns the updated job.
func (h UpdateJobCommandHandler) Handle(ctx context.Context, cmd UpdateJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.locks.Lock(cmd.JobID().String())
	defer h.locks.Unlock(cmd.JobID().String())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	patched, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if pickup := cmd.Pickup(); pickup != nil {
		if err = patched.UpdatePickup(*pickup); err != nil {
			return nil, err
		}
	}

	if destination := cmd.Destination(); destination != nil {
		if err = patched.UpdateDestination(*destination); err != nil {
			return nil, err
		}
	}

	if status := cmd.Status(); status != nil {
		if err = patched.ForceStatus(*status); err != nil {
			return nil, err
		}
	}

	if err = jobRepo.Update(ctx, patched); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return patched, nil
}
