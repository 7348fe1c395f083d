package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/dto"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/report"
)

var (
	errInvalidUserIDQuery = errors.New("Invalid userId parameter.")
	errInvalidDateQuery   = errors.New("Dates must use the YYYY-MM-DD format.")
)

// ReportHandler handles HTTP requests for derived reports
type ReportHandler struct {
	service report.Service
}

// NewReportHandler creates a new ReportHandler instance
func NewReportHandler(service report.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

// PerformanceReport builds the completed-tasks-per-day report. All query
// parameters are optional; the window defaults to the last 30 days.
func (h *ReportHandler) PerformanceReport(c *gin.Context) {
	var filter report.Filter

	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, errInvalidUserIDQuery)
			return
		}
		uid := uint(id)
		filter.UserID = &uid
	}

	if raw := c.Query("startdate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, errInvalidDateQuery)
			return
		}
		filter.StartDate = &t
	}

	if raw := c.Query("enddate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, errInvalidDateQuery)
			return
		}
		filter.EndDate = &t
	}

	rpt, err := h.service.GeneratePerformance(c.Request.Context(), filter)
	if err != nil {
		respondInternal(c)
		return
	}

	c.JSON(http.StatusOK, dto.ReportToResponse(rpt))
}
