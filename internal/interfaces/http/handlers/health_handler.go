package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/config"
)

// HealthChecker is one named dependency probe.
type HealthChecker struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthHandler serves liveness and readiness endpoints.
type HealthHandler struct {
	checkers []HealthChecker
	started  time.Time
}

// NewHealthHandler builds the handler; checkers may be empty when the
// server runs without optional backends.
func NewHealthHandler(checkers ...HealthChecker) *HealthHandler {
	return &HealthHandler{checkers: checkers, started: time.Now()}
}

// Live reports process liveness.  It never touches dependencies.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": config.Version,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}

// Ready probes every registered dependency with a short timeout and
// reports per-dependency status.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(h.checkers))
	for _, checker := range h.checkers {
		if err := checker.Check(ctx); err != nil {
			deps[checker.Name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		deps[checker.Name] = "ok"
	}

	body := gin.H{"status": "ready", "dependencies": deps}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	c.JSON(status, body)
}
