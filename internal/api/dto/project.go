package dto

import (
	"time"

	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/project"
)

// ProjectRequest represents the request body for creating or replacing a
// project
type ProjectRequest struct {
	UserID      uint       `json:"user_id" binding:"required"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      string     `json:"status"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      string     `json:"status"`
}

// ProjectFromRequest maps a request body to a project entity
func ProjectFromRequest(req *ProjectRequest) *project.Project {
	return &project.Project{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      project.Status(req.Status),
	}
}

// ProjectToResponse maps a project entity to its API view
func ProjectToResponse(p *project.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      string(p.Status),
	}
}

// ProjectListToResponse maps a slice of project entities
func ProjectListToResponse(projects []project.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = *ProjectToResponse(&projects[i])
	}
	return out
}
