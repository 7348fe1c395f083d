package report

import (
	"context"
)

// Service interface
type Service interface {
	GeneratePerformance(ctx context.Context, filter Filter) (*PerformanceReport, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GeneratePerformance recomputes the snapshot statistic on every call.
func (s *service) GeneratePerformance(ctx context.Context, filter Filter) (*PerformanceReport, error) {
	rows, err := s.repo.CompletedTasksByUser(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &PerformanceReport{Data: rows}, nil
}
