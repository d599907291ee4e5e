package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/regsync"
)

// RegistrySyncTaskRepository defines the persistence contract for the
// reconciliation outbox. Tasks are appended when a post-persist registry call
// fails and drained by the reconciliation job.
type RegistrySyncTaskRepository interface {
	// Add persists a new pending synchronization.
	Add(ctx context.Context, task *regsync.Task) error

	// Update persists a task's attempt counter after a failed replay.
	Update(ctx context.Context, task *regsync.Task) error

	// GetAllPending retrieves every pending synchronization, oldest first.
	GetAllPending(ctx context.Context) ([]*regsync.Task, error)

	// Delete removes a task after a successful replay.
	Delete(ctx context.Context, id kernel.UUID) error
}
