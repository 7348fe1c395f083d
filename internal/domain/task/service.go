package task

import (
	"context"
	"time"

	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/history"
	"go.uber.org/zap"
)

// Service interface
type Service interface {
	GetByID(ctx context.Context, id uint) (*TodoTask, error)
	ListByProject(ctx context.Context, projectID uint) ([]TodoTask, error)
	Create(ctx context.Context, t *TodoTask) (*TodoTask, error)
	Update(ctx context.Context, t *TodoTask) error
	SoftDelete(ctx context.Context, id uint) error
}

type service struct {
	repo    Repository
	history history.Service
	log     *zap.Logger
}

func NewService(repo Repository, historySvc history.Service, log *zap.Logger) Service {
	return &service{repo: repo, history: historySvc, log: log}
}

func (s *service) GetByID(ctx context.Context, id uint) (*TodoTask, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListByProject(ctx context.Context, projectID uint) ([]TodoTask, error) {
	return s.repo.FindByProject(ctx, projectID)
}

// Create enforces the per-project task cap, persists the task and logs a
// history entry describing the created row.
func (s *service) Create(ctx context.Context, t *TodoTask) (*TodoTask, error) {
	count, err := s.repo.CountByProject(ctx, t.ProjectID)
	if err != nil {
		return nil, err
	}
	if count >= MaxTasksPerProject {
		return nil, ErrTaskLimitReached
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if t.Status == "" {
		t.Status = StatusPending
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.logHistory(ctx, t.ID, "Task created", t)
	return t, nil
}

// Update persists a full-row replacement. Field values are accepted at face
// value; any status transition is permitted through this path.
func (s *service) Update(ctx context.Context, t *TodoTask) error {
	if err := s.repo.Update(ctx, t); err != nil {
		return err
	}
	s.logHistory(ctx, t.ID, "Task updated.", t)
	return nil
}

// SoftDelete flips the task status to Deleted and logs the event. The row
// is never removed.
func (s *service) SoftDelete(ctx context.Context, id uint) error {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	t.Status = StatusDeleted
	if err := s.repo.Update(ctx, t); err != nil {
		return err
	}

	s.logHistory(ctx, t.ID, "Task marked as deleted", t)
	return nil
}

// logHistory appends an audit entry for the task. History writes are
// best-effort: a failure is logged and never fails the task operation.
func (s *service) logHistory(ctx context.Context, taskID uint, description string, t *TodoTask) {
	if err := s.history.AddEntry(ctx, taskID, description, 0, t.AuditFields()); err != nil {
		s.log.Error("failed to record task history",
			zap.Uint("task_id", taskID),
			zap.String("event", description),
			zap.Error(err),
		)
	}
}
