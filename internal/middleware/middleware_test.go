package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
)

type stubValidator struct {
	tokens map[string]*models.JWTClaims
}

func (s stubValidator) ValidateToken(token string) (*models.JWTClaims, error) {
	if claims, ok := s.tokens[token]; ok {
		return claims, nil
	}
	return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
}

var validator = stubValidator{tokens: map[string]*models.JWTClaims{
	"admin":   {UserID: 1, Role: models.RoleAdmin},
	"student": {UserID: 2, Role: models.RoleStudent},
}}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	ok := func(c *gin.Context) {
		if claims, found := Claims(c); found {
			c.String(http.StatusOK, string(claims.Role))
			return
		}
		c.String(http.StatusOK, "anonymous")
	}
	r.GET("/api/courses", ok)
	r.POST("/api/courses", ok)
	return r
}

func do(r http.Handler, method, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/courses", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWT(t *testing.T) {
	r := newEngine(JWT(validator))

	w := do(r, http.MethodGet, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing bearer token")

	w = do(r, http.MethodGet, "Basic admin")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "Bearer forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")

	w = do(r, http.MethodGet, "bearer admin")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ADMIN", w.Body.String())
}

func TestOptionalJWT(t *testing.T) {
	r := newEngine(OptionalJWT(validator))

	assert.Equal(t, "anonymous", do(r, http.MethodGet, "").Body.String())
	assert.Equal(t, "anonymous", do(r, http.MethodGet, "Bearer forged").Body.String())
	assert.Equal(t, "STUDENT", do(r, http.MethodGet, "Bearer student").Body.String())
}

func TestWritesRequire(t *testing.T) {
	r := newEngine(JWT(validator), WritesRequire(models.RoleAdmin, models.RoleCoordinator))

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "Bearer student").Code)

	w := do(r, http.MethodPost, "Bearer student")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "role STUDENT cannot perform this action")

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "Bearer admin").Code)
}

func TestRequireRolesWithoutClaims(t *testing.T) {
	r := newEngine(RequireRoles(models.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "").Code)
}

type recordingObserver struct {
	paths    []string
	statuses []int
}

func (o *recordingObserver) ObserveHTTPRequest(_, path string, status int, _ time.Duration) {
	o.paths = append(o.paths, path)
	o.statuses = append(o.statuses, status)
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &recordingObserver{}
	r := gin.New()
	r.Use(Metrics(obs))
	r.GET("/api/courses/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/courses/42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, []string{"/api/courses/:id", "unmatched"}, obs.paths)
	assert.Equal(t, []int{http.StatusOK, http.StatusNotFound}, obs.statuses)
}
