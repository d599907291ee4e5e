package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAllJobsQueryIsNotConstructed = errors.New(
	"GetAllJobsQuery must be created via NewGetAllJobsQuery constructor",
)

// GetAllJobsQuery retrieves every dispatch job for monitoring and management.
//
// Example:
//
//	query := NewGetAllJobsQuery()
//	handler := NewGetAllJobsQueryHandler(db)
//
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list jobs: %w", err)
//	}
//
//	fmt.Printf("Found %d jobs\n", len(jobs))
type GetAllJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllJobsQuery creates a query to retrieve all jobs.
func NewGetAllJobsQuery() GetAllJobsQuery {
	return GetAllJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllJobsQueryIsNotConstructed)
}

// JobResponse is the read model for a single job, shared by the list and
// by-id queries. Status carries the wire name ("IN_PROGRESS", "COMPLETED")
// rather than the internal enum.
type JobResponse struct {
	ID          kernel.UUID
	Pickup      string
	Destination string
	Status      string
	VehicleID   *string
	DriverID    *string
	Stops       []StopResponse
	CreatedAt   time.Time
}

// StopResponse is the read model for one waypoint on a job's route.
type StopResponse struct {
	Name      string
	ReachedAt *time.Time
}
