package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/handlers"
)

// HistoryRoutes handles the setup of audit trail routes
type HistoryRoutes struct {
	handler *handlers.HistoryHandler
}

// NewHistoryRoutes creates a new HistoryRoutes instance
func NewHistoryRoutes(handler *handlers.HistoryHandler) *HistoryRoutes {
	return &HistoryRoutes{handler: handler}
}

// RegisterRoutes registers all audit trail routes
func (r *HistoryRoutes) RegisterRoutes(router *gin.Engine) {
	history := router.Group("/api/history")

	history.GET("/task/:taskId", r.handler.ListByTask)
}
