package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportService struct {
	lastFilter report.Filter
}

func (s *stubReportService) GeneratePerformance(_ context.Context, filter report.Filter) (*report.PerformanceReport, error) {
	s.lastFilter = filter
	return &report.PerformanceReport{Data: []report.UserPerformance{
		{UserID: 1, AvgCompletedTasksPerDay: 0.2},
	}}, nil
}

func newReportRouter(svc report.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/reports/performance", NewReportHandler(svc).PerformanceReport)
	return router
}

func TestPerformanceReportDefaultFilter(t *testing.T) {
	svc := &stubReportService{}
	router := newReportRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/performance", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"avg_completed_tasks_per_day":0.2`)
	assert.Nil(t, svc.lastFilter.UserID)
	assert.Nil(t, svc.lastFilter.StartDate)
	assert.Nil(t, svc.lastFilter.EndDate)
}

func TestPerformanceReportParsesQuery(t *testing.T) {
	svc := &stubReportService{}
	router := newReportRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/reports/performance?userId=7&startdate=2025-03-01&enddate=2025-03-31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastFilter.UserID)
	assert.Equal(t, uint(7), *svc.lastFilter.UserID)
	require.NotNil(t, svc.lastFilter.StartDate)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *svc.lastFilter.StartDate)
	require.NotNil(t, svc.lastFilter.EndDate)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), *svc.lastFilter.EndDate)
}

func TestPerformanceReportBadUserID(t *testing.T) {
	router := newReportRouter(&stubReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/performance?userId=abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid userId parameter.")
}

func TestPerformanceReportBadDate(t *testing.T) {
	router := newReportRouter(&stubReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/performance?startdate=03-01-2025", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Dates must use the YYYY-MM-DD format.")
}
