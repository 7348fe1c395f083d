package history

import (
	"context"

	"gorm.io/gorm"
)

// Repository defines the interface for history persistence operations
type Repository interface {
	Add(ctx context.Context, entry *History) error
	FindByTask(ctx context.Context, taskID uint) ([]History, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, entry *History) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindByTask(ctx context.Context, taskID uint) ([]History, error) {
	var entries []History
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("modified_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
