package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/handlers"
)

// UserRoutes handles the setup of user-related routes
type UserRoutes struct {
	handler *handlers.UserHandler
}

// NewUserRoutes creates a new UserRoutes instance
func NewUserRoutes(handler *handlers.UserHandler) *UserRoutes {
	return &UserRoutes{handler: handler}
}

// RegisterRoutes registers all user-related routes
func (r *UserRoutes) RegisterRoutes(router *gin.Engine) {
	users := router.Group("/api/users")

	users.GET("/:id", r.handler.GetUser)
	users.POST("", r.handler.CreateUser)
}
