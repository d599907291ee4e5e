package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/regsync"
)

// recordDrift persists a pending registry synchronization after a post-persist
// registry call failed. The job transition is the source of truth and has
// already been committed, so this never propagates an error to the caller:
// if even the outbox write fails, the drift is logged and lost until the
// resource is next touched.
func recordDrift(ctx context.Context, uowFactory UoWFactory, logger *slog.Logger, task *regsync.Task, cause error) {
	logger.WarnContext(ctx, "registry call failed, queueing reconciliation",
		"resource", string(task.Resource()),
		"resource_id", task.ResourceID(),
		"error", cause,
	)

	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to open transaction for sync task", "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SyncTaskRepository().Add(ctx, task); err != nil {
		logger.ErrorContext(ctx, "failed to persist sync task", "error", err)
		return
	}

	if err := uow.Commit(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to commit sync task", "error", err)
	}
}
