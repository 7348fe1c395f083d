package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/handlers"
)

// CommentRoutes handles the setup of comment routes
type CommentRoutes struct {
	handler *handlers.CommentHandler
}

// NewCommentRoutes creates a new CommentRoutes instance
func NewCommentRoutes(handler *handlers.CommentHandler) *CommentRoutes {
	return &CommentRoutes{handler: handler}
}

// RegisterRoutes registers all comment routes
func (r *CommentRoutes) RegisterRoutes(router *gin.Engine) {
	comments := router.Group("/api/comments")

	comments.POST("", r.handler.AddComment)
}
