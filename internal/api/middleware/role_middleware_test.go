package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/pkg/security/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newRoleRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/report", RequireRole("manager", testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireRoleRejectsAnonymous(t *testing.T) {
	router := newRoleRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Only users with the 'manager' role can access this report.")
}

func TestRequireRoleAcceptsQueryFallback(t *testing.T) {
	router := newRoleRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/report?role=Manager", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleAcceptsTokenWithRole(t *testing.T) {
	router := newRoleRouter()

	token, err := auth.GenerateToken(1, "boss@example.com", []string{"manager"}, testSecret, "taskmanager", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRejectsTokenWithoutRole(t *testing.T) {
	router := newRoleRouter()

	token, err := auth.GenerateToken(2, "dev@example.com", []string{"developer"}, testSecret, "taskmanager", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleRejectsBadToken(t *testing.T) {
	router := newRoleRouter()

	// A bearer header takes precedence over the query fallback.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/report?role=manager", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
