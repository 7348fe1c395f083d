package dto

import (
	"time"

	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/task"
)

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	ProjectID   uint      `json:"project_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	Priority    string    `json:"priority" binding:"required"`
	Status      string    `json:"status"`
}

// UpdateTaskRequest is a full-row replacement; every field is written back
// as given.
type UpdateTaskRequest struct {
	ID          uint      `json:"id" binding:"required"`
	ProjectID   uint      `json:"project_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	Priority    string    `json:"priority" binding:"required"`
	Status      string    `json:"status" binding:"required"`
}

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	DueDate     time.Time `json:"due_date"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
}

// TaskFromCreateRequest maps a creation request to a task entity
func TaskFromCreateRequest(req *CreateTaskRequest) *task.TodoTask {
	return &task.TodoTask{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    task.Priority(req.Priority),
		Status:      task.Status(req.Status),
	}
}

// TaskFromUpdateRequest maps an update request to a task entity
func TaskFromUpdateRequest(req *UpdateTaskRequest) *task.TodoTask {
	return &task.TodoTask{
		ID:          req.ID,
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    task.Priority(req.Priority),
		Status:      task.Status(req.Status),
	}
}

// TaskToResponse maps a task entity to its API view
func TaskToResponse(t *task.TodoTask) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		DueDate:     t.DueDate,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
	}
}

// TaskListToResponse maps a slice of task entities
func TaskListToResponse(tasks []task.TodoTask) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = *TaskToResponse(&tasks[i])
	}
	return out
}
