package project

import (
	"context"

	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/task"
)

// Service interface
type Service interface {
	GetByID(ctx context.Context, id uint) (*Project, error)
	ListByUser(ctx context.Context, userID uint) ([]Project, error)
	Create(ctx context.Context, p *Project) (*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo     Repository
	taskRepo task.Repository
}

func NewService(repo Repository, taskRepo task.Repository) Service {
	return &service{repo: repo, taskRepo: taskRepo}
}

func (s *service) GetByID(ctx context.Context, id uint) (*Project, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByUser treats "no projects" as a failure outcome so that callers
// cannot mistake an empty collection for success.
func (s *service) ListByUser(ctx context.Context, userID uint) ([]Project, error) {
	projects, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ErrNoProjectsForUser
	}
	return projects, nil
}

func (s *service) Create(ctx context.Context, p *Project) (*Project, error) {
	if p.Status == "" {
		p.Status = StatusActive
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, p *Project) error {
	if _, err := s.repo.FindByID(ctx, p.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

// Delete refuses to remove a project that still has pending tasks; the
// guard looks at task status only, not at soft-deleted rows.
func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	pending, err := s.taskRepo.CountByProjectAndStatus(ctx, id, task.StatusPending)
	if err != nil {
		return err
	}
	if pending > 0 {
		return ErrProjectHasPendingTasks
	}

	return s.repo.Delete(ctx, id)
}
