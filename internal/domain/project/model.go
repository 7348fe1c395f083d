package project

import (
	"errors"
	"time"
)

// Common errors. The messages are part of the API contract and are returned
// to clients verbatim.
var (
	ErrProjectNotFound        = errors.New("Project not found.")
	ErrNoProjectsForUser      = errors.New("Project not found by userId.")
	ErrProjectHasPendingTasks = errors.New("Cannot delete the project because there are pending tasks. " +
		"Please complete or remove all tasks associated with the project before attempting to delete it.")
)

type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
	StatusDeleted   Status = "Deleted"
)

// IsValid validates the project status
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled, StatusDeleted:
		return true
	}
	return false
}

// Project is owned by one user. Deletion is logical: status flips to
// Deleted and never transitions back out.
type Project struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;index:idx_project_user"`
	Name        string     `json:"name" gorm:"type:varchar(255);not null"`
	Description string     `json:"description" gorm:"type:text"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      Status     `json:"status" gorm:"type:varchar(16);not null;index:idx_project_status"`
}
