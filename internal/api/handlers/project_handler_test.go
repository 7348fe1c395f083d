package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/project"
	"github.com/stretchr/testify/assert"
)

type stubProjectService struct {
	projects  map[uint]*project.Project
	deleteErr error
}

func (s *stubProjectService) GetByID(_ context.Context, id uint) (*project.Project, error) {
	p, ok := s.projects[id]
	if !ok {
		return nil, project.ErrProjectNotFound
	}
	return p, nil
}

func (s *stubProjectService) ListByUser(_ context.Context, userID uint) ([]project.Project, error) {
	var out []project.Project
	for _, p := range s.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	if len(out) == 0 {
		return nil, project.ErrNoProjectsForUser
	}
	return out, nil
}

func (s *stubProjectService) Create(_ context.Context, p *project.Project) (*project.Project, error) {
	p.ID = 1
	if p.Status == "" {
		p.Status = project.StatusActive
	}
	return p, nil
}

func (s *stubProjectService) Update(_ context.Context, p *project.Project) error {
	if _, ok := s.projects[p.ID]; !ok {
		return project.ErrProjectNotFound
	}
	return nil
}

func (s *stubProjectService) Delete(_ context.Context, id uint) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.projects[id]; !ok {
		return project.ErrProjectNotFound
	}
	return nil
}

func newProjectRouter(svc project.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewProjectHandler(svc)
	router.GET("/api/projects/:id", h.GetProject)
	router.GET("/api/projects/user/:userId", h.ListProjectsByUser)
	router.POST("/api/projects", h.CreateProject)
	router.PUT("/api/projects/:id", h.UpdateProject)
	router.DELETE("/api/projects/:id", h.DeleteProject)
	return router
}

func TestListProjectsByUserEmpty(t *testing.T) {
	router := newProjectRouter(&stubProjectService{projects: map[uint]*project.Project{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/projects/user/9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Project not found by userId.")
}

func TestCreateProjectDefaultsToActive(t *testing.T) {
	router := newProjectRouter(&stubProjectService{})

	body := `{"user_id":1,"name":"Q3 launch","start_date":"2025-05-01T00:00:00Z"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Active"`)
}

func TestCreateProjectInvalidStatus(t *testing.T) {
	router := newProjectRouter(&stubProjectService{})

	body := `{"user_id":1,"name":"bad","start_date":"2025-05-01T00:00:00Z","status":"Paused"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid project status.")
}

func TestDeleteProjectBlockedByPendingTasks(t *testing.T) {
	router := newProjectRouter(&stubProjectService{deleteErr: project.ErrProjectHasPendingTasks})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/projects/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot delete the project because there are pending tasks.")
}

func TestDeleteProjectNotFound(t *testing.T) {
	router := newProjectRouter(&stubProjectService{projects: map[uint]*project.Project{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/projects/404", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Project not found.")
}

func TestUpdateProjectNotFound(t *testing.T) {
	router := newProjectRouter(&stubProjectService{projects: map[uint]*project.Project{}})

	body := `{"user_id":1,"name":"ghost","start_date":"2025-05-01T00:00:00Z"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/projects/404", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
