package project

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository defines the interface for project persistence operations.
// Soft-deleted rows are excluded from every lookup.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	FindByID(ctx context.Context, id uint) (*Project, error)
	FindByUser(ctx context.Context, userID uint) ([]Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Project, error) {
	var p Project
	result := r.db.WithContext(ctx).
		Where("id = ? AND status <> ?", id, StatusDeleted).
		First(&p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, result.Error
	}
	return &p, nil
}

func (r *repository) FindByUser(ctx context.Context, userID uint) ([]Project, error) {
	var projects []Project
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status <> ?", userID, StatusDeleted).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete marks the project as Deleted; the row is kept.
func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&Project{}).
		Where("id = ?", id).
		Update("status", StatusDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
