package report

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Repository defines the interface for report queries
type Repository interface {
	CompletedTasksByUser(ctx context.Context, filter Filter) ([]UserPerformance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CompletedTasksByUser counts completed tasks with a due date inside the
// window, grouped by project owner, divided by the averaging divisor. The
// default window start is computed here so the SQL stays portable across
// drivers.
func (r *repository) CompletedTasksByUser(ctx context.Context, filter Filter) ([]UserPerformance, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT p.user_id AS user_id, COUNT(*) / ? AS avg_completed_tasks_per_day
		FROM todo_tasks tt
		JOIN projects p ON tt.project_id = p.id
		WHERE tt.status = 'Completed'`)
	args := []interface{}{AveragingDivisor}

	if filter.UserID != nil {
		sb.WriteString(" AND p.user_id = ?")
		args = append(args, *filter.UserID)
	}

	start := time.Now().UTC().AddDate(0, 0, -DefaultWindowDays)
	if filter.StartDate != nil {
		start = *filter.StartDate
	}
	sb.WriteString(" AND tt.due_date >= ?")
	args = append(args, start)

	if filter.EndDate != nil {
		sb.WriteString(" AND tt.due_date <= ?")
		args = append(args, *filter.EndDate)
	}

	sb.WriteString(" GROUP BY p.user_id")

	var rows []UserPerformance
	err := r.db.WithContext(ctx).Raw(sb.String(), args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
