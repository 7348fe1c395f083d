package history

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service interface
type Service interface {
	AddEntry(ctx context.Context, taskID uint, description string, userID uint, fields []Field) error
	ListByTask(ctx context.Context, taskID uint) ([]History, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddEntry appends one audit record for the task. When fields are supplied
// the stored description becomes `description | Name: Value, Name: Value`.
// Persistence faults are wrapped and returned rather than propagated raw;
// callers treat history logging as best-effort.
func (s *service) AddEntry(ctx context.Context, taskID uint, description string, userID uint, fields []Field) error {
	var sb strings.Builder
	sb.WriteString(description)

	if len(fields) > 0 {
		sb.WriteString(" | ")
		for i, f := range fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteString(": ")
			sb.WriteString(f.Value)
		}
	}

	entry := &History{
		TaskID:      taskID,
		Description: sb.String(),
		ModifiedAt:  time.Now().UTC(),
		UserID:      userID,
	}

	if err := s.repo.Add(ctx, entry); err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}
	return nil
}

func (s *service) ListByTask(ctx context.Context, taskID uint) ([]History, error) {
	return s.repo.FindByTask(ctx, taskID)
}
