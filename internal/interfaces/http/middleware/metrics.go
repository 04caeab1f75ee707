package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/prometheus"
)

// Metrics returns middleware that records request counts and latency.
// The route template, not the raw path, is used as the label so that
// /documents/:id stays one series regardless of id cardinality.
func Metrics(m *prometheus.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
