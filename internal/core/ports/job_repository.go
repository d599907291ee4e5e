// Package ports defines the contracts between the dispatch core and its
// infrastructure: the job store, the registry-sync outbox, and the two remote
// registries. Handlers depend on these interfaces only, so adapters can be
// swapped for in-memory fakes in tests.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
// The store has no optimistic concurrency control; callers serialize
// concurrent mutations of the same job id themselves.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate (full replace).
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAll retrieves every stored job.
	GetAll(ctx context.Context) ([]*job.Job, error)

	// GetAllByStatus retrieves all jobs in the given status.
	GetAllByStatus(ctx context.Context, status job.Status) ([]*job.Job, error)

	// GetAllByDriver retrieves all jobs assigned to the given driver id.
	GetAllByDriver(ctx context.Context, driverID string) ([]*job.Job, error)

	// Delete removes the job record. Deleting does not release assigned
	// resources back to the registries; that is the orchestration layer's
	// responsibility (currently a documented gap).
	// Returns an error wrapping errs.ErrObjectNotFound if absent.
	Delete(ctx context.Context, id kernel.UUID) error
}
