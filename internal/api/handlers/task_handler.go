package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/dto"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/task"
)

var (
	errInvalidTaskStatus   = errors.New("Invalid task status.")
	errInvalidTaskPriority = errors.New("Invalid task priority.")
	errNoTasksForProject   = errors.New("No tasks found for this project.")
	errTaskIDMismatch      = errors.New("Task id in path and body do not match.")
)

// TaskHandler handles HTTP requests for todo task operations
type TaskHandler struct {
	service task.Service
}

// NewTaskHandler creates a new TaskHandler instance
func NewTaskHandler(service task.Service) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		respondInternal(c)
		return
	}

	c.JSON(http.StatusOK, dto.TaskToResponse(t))
}

func (h *TaskHandler) ListTasksByProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	tasks, err := h.service.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		respondInternal(c)
		return
	}
	if len(tasks) == 0 {
		respondError(c, http.StatusNotFound, errNoTasksForProject)
		return
	}

	c.JSON(http.StatusOK, dto.TaskListToResponse(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if !task.Priority(req.Priority).IsValid() {
		respondError(c, http.StatusBadRequest, errInvalidTaskPriority)
		return
	}
	if req.Status != "" && !task.Status(req.Status).IsValid() {
		respondError(c, http.StatusBadRequest, errInvalidTaskStatus)
		return
	}

	created, err := h.service.Create(c.Request.Context(), dto.TaskFromCreateRequest(&req))
	if err != nil {
		if errors.Is(err, task.ErrTaskLimitReached) {
			respondError(c, http.StatusBadRequest, err)
			return
		}
		respondInternal(c)
		return
	}

	c.JSON(http.StatusCreated, dto.TaskToResponse(created))
}

// UpdateTask performs a full-row replacement; field values are accepted at
// face value.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if id != req.ID {
		respondError(c, http.StatusBadRequest, errTaskIDMismatch)
		return
	}
	if !task.Priority(req.Priority).IsValid() {
		respondError(c, http.StatusBadRequest, errInvalidTaskPriority)
		return
	}
	if !task.Status(req.Status).IsValid() {
		respondError(c, http.StatusBadRequest, errInvalidTaskStatus)
		return
	}

	if err := h.service.Update(c.Request.Context(), dto.TaskFromUpdateRequest(&req)); err != nil {
		respondInternal(c)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.SoftDelete(c.Request.Context(), id); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		respondInternal(c)
		return
	}

	c.Status(http.StatusNoContent)
}
