package task

import (
	"errors"
	"fmt"
	"time"

	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/history"
)

// Common errors. The messages are part of the API contract and are returned
// to clients verbatim.
var (
	ErrTaskNotFound     = errors.New("Task not found.")
	ErrTaskLimitReached = errors.New("The project has reached the maximum limit of 20 tasks.")
)

// MaxTasksPerProject caps the number of non-deleted tasks a project may hold.
const MaxTasksPerProject = 20

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
	StatusDeleted    Status = "Deleted"
)

// IsValid validates the task status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled, StatusDeleted:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// IsValid validates the task priority
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TodoTask belongs to exactly one project. Deletion is logical: status
// flips to Deleted and the row stays behind.
type TodoTask struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProjectID   uint      `json:"project_id" gorm:"not null;index:idx_todo_task_project"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	DueDate     time.Time `json:"due_date" gorm:"index:idx_todo_task_due"`
	Priority    Priority  `json:"priority" gorm:"type:varchar(16);not null"`
	Status      Status    `json:"status" gorm:"type:varchar(16);not null;index:idx_todo_task_status"`
}

// AuditFields renders the full task as an ordered field list for history
// entries.
func (t *TodoTask) AuditFields() []history.Field {
	return []history.Field{
		{Name: "Id", Value: fmt.Sprint(t.ID)},
		{Name: "ProjectId", Value: fmt.Sprint(t.ProjectID)},
		{Name: "Title", Value: t.Title},
		{Name: "Description", Value: t.Description},
		{Name: "CreatedAt", Value: t.CreatedAt.UTC().Format(time.RFC3339)},
		{Name: "DueDate", Value: t.DueDate.UTC().Format(time.RFC3339)},
		{Name: "Priority", Value: string(t.Priority)},
		{Name: "Status", Value: string(t.Status)},
	}
}
