package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/dto"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/history"
)

var errNoHistoryForTask = errors.New("No history found for this task.")

// HistoryHandler handles HTTP requests for the task audit trail
type HistoryHandler struct {
	service history.Service
}

// NewHistoryHandler creates a new HistoryHandler instance
func NewHistoryHandler(service history.Service) *HistoryHandler {
	return &HistoryHandler{service: service}
}

func (h *HistoryHandler) ListByTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	entries, err := h.service.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		respondInternal(c)
		return
	}
	if len(entries) == 0 {
		respondError(c, http.StatusNotFound, errNoHistoryForTask)
		return
	}

	c.JSON(http.StatusOK, dto.HistoryListToResponse(entries))
}
