package task

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository defines the interface for task persistence operations.
// Soft-deleted rows are excluded from every lookup.
type Repository interface {
	Create(ctx context.Context, t *TodoTask) error
	FindByID(ctx context.Context, id uint) (*TodoTask, error)
	FindByProject(ctx context.Context, projectID uint) ([]TodoTask, error)
	CountByProject(ctx context.Context, projectID uint) (int64, error)
	CountByProjectAndStatus(ctx context.Context, projectID uint, status Status) (int64, error)
	Update(ctx context.Context, t *TodoTask) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *TodoTask) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*TodoTask, error) {
	var t TodoTask
	result := r.db.WithContext(ctx).
		Where("id = ? AND status <> ?", id, StatusDeleted).
		First(&t)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &t, nil
}

func (r *repository) FindByProject(ctx context.Context, projectID uint) ([]TodoTask, error) {
	var tasks []TodoTask
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND status <> ?", projectID, StatusDeleted).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *repository) CountByProject(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TodoTask{}).
		Where("project_id = ? AND status <> ?", projectID, StatusDeleted).
		Count(&count).Error
	return count, err
}

func (r *repository) CountByProjectAndStatus(ctx context.Context, projectID uint, status Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TodoTask{}).
		Where("project_id = ? AND status = ?", projectID, status).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, t *TodoTask) error {
	return r.db.WithContext(ctx).Save(t).Error
}
