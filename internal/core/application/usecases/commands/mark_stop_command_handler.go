package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/pkg/joblock"
)

// MarkStopCommandHandler stamps a reached stop with the current time.
//
// An unmatched stop name is deliberately not an error: the job is persisted
// unchanged and the mismatch is only logged. Upstream callers (driver apps)
// send free-form stop names, and rejecting them would turn a reporting hiccup
// into a failed trip update. Note the stamp is not idempotent across distinct
// physical arrivals at the same named stop: a repeat event overwrites the
// earlier timestamp.
type MarkStopCommandHandler struct {
	uowFactory JobUoWFactory
	locks      *joblock.KeyedMutex
	logger     *slog.Logger
}

// NewMarkStopCommandHandler creates a handler for stop-reached events.
func NewMarkStopCommandHandler(
	uowFactory JobUoWFactory,
	locks *joblock.KeyedMutex,
	logger *slog.Logger,
) MarkStopCommandHandler {
	return MarkStopCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		logger:     logger.With("component", "mark_stop"),
	}
}

// Handle processes the stop-reached event.
func (h MarkStopCommandHandler) Handle(ctx context.Context, cmd MarkStopCommand) error {
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
	stopped, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if !stopped.MarkStop(cmd.StopName(), time.Now().UTC()) {
		h.logger.WarnContext(ctx, "stop name not found on job, nothing stamped",
			"job_id", cmd.JobID().String(),
			"stop_name", cmd.StopName(),
		)
	}

	if err = jobRepo.Update(ctx, stopped); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
