package syncrepo

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/regsync"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSyncTaskRepository implements RegistrySyncTaskRepository using GORM.
type GormSyncTaskRepository struct {
	db *gorm.DB
}

// NewGormSyncTaskRepository creates a new GORM sync task repository.
func NewGormSyncTaskRepository(db *gorm.DB) *GormSyncTaskRepository {
	return &GormSyncTaskRepository{db: db}
}

// Add saves a new sync task to the database.
func (r *GormSyncTaskRepository) Add(ctx context.Context, task *regsync.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	dto := fromDomain(task)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing sync task, persisting its attempt counter.
func (r *GormSyncTaskRepository) Update(ctx context.Context, task *regsync.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	dto := fromDomain(task)
	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ?", dto.ID).
		Select("attempts").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("taskId", task.ID().String())
	}

	return nil
}

// GetAllPending retrieves every pending sync task, oldest first, so the
// reconciliation job replays drift in the order it was recorded.
func (r *GormSyncTaskRepository) GetAllPending(ctx context.Context) ([]*regsync.Task, error) {
	var dtos []TaskDTO
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tasks := make([]*regsync.Task, 0, len(dtos))
	for _, dto := range dtos {
		task, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// Delete removes a replayed sync task.
func (r *GormSyncTaskRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TaskDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("taskId", id.String())
	}

	return nil
}
