package migrations

import (
	"fmt"

	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/comment"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/history"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/project"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/task"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/user"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every entity. Order follows
// the ownership chain so foreign rows always have a parent table.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&user.User{},
		&project.Project{},
		&task.TodoTask{},
		&comment.Comment{},
		&history.History{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrating %T: %w", model, err)
		}
	}
	return nil
}
