package report

import (
	"time"
)

// Business constants of the performance statistic. Hard-coded on purpose;
// there is no configuration surface for them.
const (
	// DefaultWindowDays is how far back the report looks when no start
	// date is given.
	DefaultWindowDays = 30
	// AveragingDivisor converts the completed-task count into a per-day
	// average.
	AveragingDivisor = 30.0
)

// UserPerformance is one row of the performance report: the average number
// of completed tasks per day for one project owner. Derived on every call,
// never persisted.
type UserPerformance struct {
	UserID                  uint    `json:"user_id"`
	AvgCompletedTasksPerDay float64 `json:"avg_completed_tasks_per_day"`
}

// PerformanceReport is the envelope returned to callers.
type PerformanceReport struct {
	Data []UserPerformance `json:"data"`
}

// Filter narrows the report to one user and/or a due-date window.
type Filter struct {
	UserID    *uint
	StartDate *time.Time
	EndDate   *time.Time
}
