// Package jobrepo provides data transfer objects and mapping functions for job persistence.
// This package implements the repository pattern for the job aggregate, handling
// the conversion between domain entities and database representations.
package jobrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Indexed by status and by assigned resources for the repository's filtered
// reads; the stop list is stored denormalized as a jsonb column because stops
// are only ever read and written through their owning job.
type JobDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Pickup      string
	Destination string
	Stops       StopsDTO `gorm:"type:jsonb"`
	Status      int      `gorm:"index"`
	VehicleID   *string  `gorm:"index"`
	DriverID    *string  `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// StopDTO is one waypoint inside the jsonb stop list.
type StopDTO struct {
	Name      string     `json:"name"`
	ReachedAt *time.Time `json:"reachedAt,omitempty"`
}

// StopsDTO serializes the ordered stop list to a single jsonb column.
type StopsDTO []StopDTO

// Value implements driver.Valuer for jsonb storage.
func (s StopsDTO) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan implements sql.Scanner for jsonb retrieval.
func (s *StopsDTO) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported stops column type %T", value)
	}

	return json.Unmarshal(raw, s)
}

// fromDomain converts a job aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	stops := aggregate.Stops()
	stopDTOs := make(StopsDTO, 0, len(stops))
	for _, stop := range stops {
		stopDTOs = append(stopDTOs, StopDTO{
			Name:      stop.Name(),
			ReachedAt: stop.ReachedAt(),
		})
	}

	return JobDTO{
		ID:          aggregate.ID().Bytes(),
		Pickup:      aggregate.Pickup(),
		Destination: aggregate.Destination(),
		Stops:       stopDTOs,
		Status:      int(aggregate.Status()),
		VehicleID:   aggregate.VehicleID(),
		DriverID:    aggregate.DriverID(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a job aggregate using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	stops := make([]job.Stop, 0, len(dto.Stops))
	for _, stopDTO := range dto.Stops {
		stop, stopErr := job.RestoreStop(stopDTO.Name, stopDTO.ReachedAt)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	return job.RestoreJob(
		id,
		dto.Pickup,
		dto.Destination,
		stops,
		job.Status(dto.Status),
		dto.VehicleID,
		dto.DriverID,
		dto.CreatedAt,
	)
}
