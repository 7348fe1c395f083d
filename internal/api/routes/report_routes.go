package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/handlers"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/middleware"
)

// ManagerRole is the only role allowed to pull performance reports.
const ManagerRole = "manager"

// ReportRoutes handles the setup of report routes
type ReportRoutes struct {
	handler   *handlers.ReportHandler
	jwtSecret string
}

// NewReportRoutes creates a new ReportRoutes instance
func NewReportRoutes(handler *handlers.ReportHandler, jwtSecret string) *ReportRoutes {
	return &ReportRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers all report routes
func (r *ReportRoutes) RegisterRoutes(router *gin.Engine) {
	reports := router.Group("/api/reports")
	reports.Use(middleware.RequireRole(ManagerRole, r.jwtSecret))

	reports.GET("/performance", r.handler.PerformanceReport)
}
