package queries

import (
	"context"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetJobQueryHandler retrieves one job straight from the database.
type GetJobQueryHandler struct {
	db *gorm.DB
}

// NewGetJobQueryHandler creates a handler for single-job queries.
func NewGetJobQueryHandler(db *gorm.DB) GetJobQueryHandler {
	return GetJobQueryHandler{db: db}
}

// Handle executes the query. Returns an error wrapping errs.ErrObjectNotFound
// when no job has the given id.
func (h GetJobQueryHandler) Handle(
	ctx context.Context,
	query GetJobQuery,
) (JobResponse, error) {
	if err := query.Validate(); err != nil {
		return JobResponse{}, err
	}

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
		WHERE id = ?
	`, query.JobID().Bytes()).Rows()
	if err != nil {
		return JobResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return JobResponse{}, err
		}
		return JobResponse{}, errs.NewObjectNotFoundError("jobId", query.JobID().String())
	}

	jobResp, err := scanJobRow(rows)
	if err != nil {
		return JobResponse{}, err
	}

	return jobResp, rows.Err()
}
