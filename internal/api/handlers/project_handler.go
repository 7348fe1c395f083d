package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/dto"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/project"
)

var errInvalidProjectStatus = errors.New("Invalid project status.")

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	service project.Service
}

// NewProjectHandler creates a new ProjectHandler instance
func NewProjectHandler(service project.Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		respondInternal(c)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectToResponse(p))
}

// ListProjectsByUser returns the user's projects. An empty collection is a
// failure outcome, not an empty success.
func (h *ProjectHandler) ListProjectsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	projects, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, project.ErrNoProjectsForUser) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		respondInternal(c)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectListToResponse(projects))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Status != "" && !project.Status(req.Status).IsValid() {
		respondError(c, http.StatusBadRequest, errInvalidProjectStatus)
		return
	}

	created, err := h.service.Create(c.Request.Context(), dto.ProjectFromRequest(&req))
	if err != nil {
		respondInternal(c)
		return
	}

	c.JSON(http.StatusCreated, dto.ProjectToResponse(created))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Status != "" && !project.Status(req.Status).IsValid() {
		respondError(c, http.StatusBadRequest, errInvalidProjectStatus)
		return
	}

	p := dto.ProjectFromRequest(&req)
	p.ID = id

	if err := h.service.Update(c.Request.Context(), p); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		respondInternal(c)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, project.ErrProjectNotFound):
			respondError(c, http.StatusNotFound, err)
		case errors.Is(err, project.ErrProjectHasPendingTasks):
			respondError(c, http.StatusBadRequest, err)
		default:
			respondInternal(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
