package comment

import (
	"context"

	"gorm.io/gorm"
)

// Repository defines the interface for comment persistence operations
type Repository interface {
	Add(ctx context.Context, c *Comment) error
	FindByTask(ctx context.Context, taskID uint) ([]Comment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, c *Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindByTask(ctx context.Context, taskID uint) ([]Comment, error) {
	var comments []Comment
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
