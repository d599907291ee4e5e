// Package syncrepo persists pending registry synchronizations. Tasks are
// written when a post-commit registry call fails and drained by the
// reconciliation job; the table acts as an outbox between the job store and
// the remote registries.
package syncrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/regsync"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for pending registry syncs.
type TaskDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Resource        string    `gorm:"index"`
	ResourceID      string
	VehicleStatus   string
	DriverAvailable bool
	Attempts        int
	CreatedAt       time.Time
}

// TableName specifies the database table name for sync tasks.
func (TaskDTO) TableName() string {
	return "registry_sync_tasks"
}

// fromDomain converts a sync task to its database representation.
func fromDomain(task *regsync.Task) TaskDTO {
	return TaskDTO{
		ID:              task.ID().Bytes(),
		Resource:        string(task.Resource()),
		ResourceID:      task.ResourceID(),
		VehicleStatus:   task.VehicleStatus(),
		DriverAvailable: task.DriverAvailable(),
		Attempts:        task.Attempts(),
		CreatedAt:       task.CreatedAt(),
	}
}

// toDomain converts a database DTO to a sync task using RestoreTask.
func toDomain(dto TaskDTO) (*regsync.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return regsync.RestoreTask(
		id,
		regsync.Resource(dto.Resource),
		dto.ResourceID,
		dto.VehicleStatus,
		dto.DriverAvailable,
		dto.Attempts,
		dto.CreatedAt,
	)
}
