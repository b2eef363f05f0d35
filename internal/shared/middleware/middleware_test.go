package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/internal/domains/user"
	"bookstore-api/pkg/jwt"
)

const (
	testSecret = "middleware-test-secret-0123456789abcdef"
	testIssuer = "https://bookstore.test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(clock clockwork.Clock, guards ...gin.HandlerFunc) (*gin.Engine, *jwt.Manager) {
	manager := jwt.NewManager(testSecret, testIssuer, 5*time.Minute)

	r := gin.New()
	r.Use(RequestID(), Recovery())
	handlers := append([]gin.HandlerFunc{AuthMiddleware(manager, clock)}, guards...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user":  c.GetString(ContextUserID),
			"email": c.GetString(ContextEmail),
		})
	})
	r.GET("/protected", handlers...)
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	return r, manager
}

func doRequest(r http.Handler, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)
	r, manager := newProtectedRouter(clock)

	token, err := manager.Issue("customer1@gmail.com", "user-1", []string{"Customer"}, start)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		w := doRequest(r, "/protected", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"customer1@gmail.com"`)
		assert.Contains(t, w.Body.String(), `"user":"user-1"`)
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/protected", "").Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/protected", "Basic "+token).Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/protected", "Bearer "+token+"x").Code)
	})

	t.Run("expired token", func(t *testing.T) {
		clock.Advance(5*time.Minute + time.Second)
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/protected", "Bearer "+token).Code)
	})
}

func TestRequireRoles(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	r, manager := newProtectedRouter(clock, RequireRoles("Administrator"))

	admin, err := manager.Issue("admin@bookstore.com", "a", []string{"Administrator"}, now)
	require.NoError(t, err)
	customer, err := manager.Issue("customer1@gmail.com", "c", []string{"Customer"}, now)
	require.NoError(t, err)
	nobody, err := manager.Issue("nobody@bookstore.com", "n", nil, now)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(r, "/protected", "Bearer "+admin).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/protected", "Bearer "+customer).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/protected", "Bearer "+nobody).Code)
}

func TestRequireRoles_WithoutAuthentication(t *testing.T) {
	r := gin.New()
	r.GET("/x", RequireRoles("Customer"), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/x", "").Code)
}

func TestRequestID(t *testing.T) {
	r, _ := newProtectedRouter(clockwork.NewFakeClock())

	w := doRequest(r, "/protected", "")
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
}

func TestRecovery(t *testing.T) {
	r, _ := newProtectedRouter(clockwork.NewFakeClock())

	w := doRequest(r, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggerAndMetrics_PassThrough(t *testing.T) {
	r := gin.New()
	r.Use(Logger(), Metrics())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	assert.Equal(t, http.StatusTeapot, doRequest(r, "/ok", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, "/missing", "").Code)
}

// Guards so sánh role theo tên, phải khớp với roles được seed
func TestRoleNamesMatchSeededRoles(t *testing.T) {
	assert.Equal(t, user.RoleAdministrator, RoleAdministrator)
	assert.Equal(t, user.RoleCustomer, RoleCustomer)
	assert.ElementsMatch(t, user.BaselineRoles(), []string{RoleAdministrator, RoleCustomer})
}
