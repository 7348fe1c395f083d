package dto

import (
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/report"
)

// UserPerformanceResponse is one row of the performance report
type UserPerformanceResponse struct {
	UserID                  uint    `json:"user_id"`
	AvgCompletedTasksPerDay float64 `json:"avg_completed_tasks_per_day"`
}

// PerformanceReportResponse wraps the report rows
type PerformanceReportResponse struct {
	Data []UserPerformanceResponse `json:"data"`
}

// ReportToResponse maps the report envelope to its API view
func ReportToResponse(r *report.PerformanceReport) *PerformanceReportResponse {
	rows := make([]UserPerformanceResponse, len(r.Data))
	for i, d := range r.Data {
		rows[i] = UserPerformanceResponse{
			UserID:                  d.UserID,
			AvgCompletedTasksPerDay: d.AvgCompletedTasksPerDay,
		}
	}
	return &PerformanceReportResponse{Data: rows}
}
