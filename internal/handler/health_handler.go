package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/response"
)

// Pinger is satisfied by *sqlx.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler exposes liveness, readiness and Prometheus endpoints.
type HealthHandler struct {
	db      Pinger
	metrics http.Handler
}

// NewHealthHandler constructs a health handler. metrics may be nil when the endpoint is disabled.
func NewHealthHandler(db Pinger, metrics http.Handler) *HealthHandler {
	return &HealthHandler{db: db, metrics: metrics}
}

// Health responds with a generic OK payload for liveness checks.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the database answers a ping within two seconds.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		response.Error(c, appErrors.Wrap(err, "NOT_READY", http.StatusServiceUnavailable, "database unavailable"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *HealthHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.ServeHTTP(c.Writer, c.Request)
}
