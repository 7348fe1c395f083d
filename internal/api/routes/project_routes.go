package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/handlers"
)

// ProjectRoutes handles the setup of project-related routes
type ProjectRoutes struct {
	handler *handlers.ProjectHandler
}

// NewProjectRoutes creates a new ProjectRoutes instance
func NewProjectRoutes(handler *handlers.ProjectHandler) *ProjectRoutes {
	return &ProjectRoutes{handler: handler}
}

// RegisterRoutes registers all project-related routes
func (r *ProjectRoutes) RegisterRoutes(router *gin.Engine) {
	projects := router.Group("/api/projects")

	projects.GET("/:id", r.handler.GetProject)
	projects.GET("/user/:userId", r.handler.ListProjectsByUser)
	projects.POST("", r.handler.CreateProject)
	projects.PUT("/:id", r.handler.UpdateProject)
	projects.DELETE("/:id", r.handler.DeleteProject)
}
