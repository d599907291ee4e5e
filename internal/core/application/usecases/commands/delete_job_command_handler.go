package commands

import (
	"context"

	"dispatch/internal/pkg/joblock"
)

// DeleteJobCommandHandler removes a job record from the store.
//
// Deletion does not release the job's vehicle or driver back to the
// registries. Removing an in-flight job therefore strands its resources
// until something else touches them; this mirrors the upstream contract and
// is documented as a gap rather than silently "fixed" here.
type DeleteJobCommandHandler struct {
	uowFactory JobUoWFactory
	locks      *joblock.KeyedMutex
}

// NewDeleteJobCommandHandler creates a handler for job deletions.
func NewDeleteJobCommandHandler(uowFactory JobUoWFactory, locks *joblock.KeyedMutex) DeleteJobCommandHandler {
	return DeleteJobCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the deletion. Returns an error wrapping
// errs.ErrObjectNotFound when the job does not exist.
func (h DeleteJobCommandHandler) Handle(ctx context.Context, cmd DeleteJobCommand) error {
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

	if err := uow.JobRepository().Delete(ctx, cmd.JobID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
