package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/handlers"
)

// TaskRoutes handles the setup of todo task routes
type TaskRoutes struct {
	handler *handlers.TaskHandler
}

// NewTaskRoutes creates a new TaskRoutes instance
func NewTaskRoutes(handler *handlers.TaskHandler) *TaskRoutes {
	return &TaskRoutes{handler: handler}
}

// RegisterRoutes registers all todo task routes
func (r *TaskRoutes) RegisterRoutes(router *gin.Engine) {
	tasks := router.Group("/api/todotasks")

	tasks.GET("/:id", r.handler.GetTask)
	tasks.GET("/projects/:projectId/tasks", r.handler.ListTasksByProject)
	tasks.POST("", r.handler.CreateTask)
	tasks.PUT("/:id", r.handler.UpdateTask)
	tasks.DELETE("/:id", r.handler.DeleteTask)
}
