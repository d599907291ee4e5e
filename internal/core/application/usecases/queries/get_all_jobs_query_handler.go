package queries

import (
	"context"
	"encoding/json"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllJobsQueryHandler retrieves jobs straight from the database.
// Uses direct SQL for read performance, bypassing the aggregate layer.
type GetAllJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllJobsQueryHandler creates a handler for job list queries.
// Requires a GORM database connection for query execution.
func NewGetAllJobsQueryHandler(db *gorm.DB) GetAllJobsQueryHandler {
	return GetAllJobsQueryHandler{db: db}
}

// Handle executes the query to retrieve all jobs, oldest first.
func (h GetAllJobsQueryHandler) Handle(
	ctx context.Context,
	query GetAllJobsQuery,
) ([]JobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]JobResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			pickup,
			destination,
			status,
			vehicle_id,
			driver_id,
			stops,
			created_at
		FROM jobs
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		jobResp, scanErr := scanJobRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		jobs = append(jobs, jobResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// rowScanner abstracts *sql.Rows and *sql.Row for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// stopRow mirrors the jsonb shape of one waypoint in the stops column.
type stopRow struct {
	Name      string     `json:"name"`
	ReachedAt *time.Time `json:"reachedAt,omitempty"`
}

// scanJobRow maps the common jobs projection into a JobResponse.
func scanJobRow(scanner rowScanner) (JobResponse, error) {
	var (
		jobResp   JobResponse
		id        uuid.UUID
		status    int
		rawStops  []byte
		createdAt time.Time
	)

	if err := scanner.Scan(
		&id,
		&jobResp.Pickup,
		&jobResp.Destination,
		&status,
		&jobResp.VehicleID,
		&jobResp.DriverID,
		&rawStops,
		&createdAt,
	); err != nil {
		return JobResponse{}, err
	}

	jobID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return JobResponse{}, err
	}
	jobResp.ID = jobID
	jobResp.Status = job.Status(status).String()
	jobResp.CreatedAt = createdAt

	var stops []stopRow
	if len(rawStops) > 0 {
		if err = json.Unmarshal(rawStops, &stops); err != nil {
			return JobResponse{}, err
		}
	}

	jobResp.Stops = make([]StopResponse, 0, len(stops))
	for _, stop := range stops {
		jobResp.Stops = append(jobResp.Stops, StopResponse{
			Name:      stop.Name,
			ReachedAt: stop.ReachedAt,
		})
	}

	return jobResp, nil
}
