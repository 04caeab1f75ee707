// Package http wires the REST API: routing, middleware, and the server
// lifecycle.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/application/document"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/config"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/logging"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/prometheus"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/interfaces/http/handlers"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/interfaces/http/middleware"
)

// RouterDeps carries everything the router needs.  Metrics and the rate
// limiter are optional; checkers may be empty.
type RouterDeps struct {
	Service  *document.Service
	Logger   logging.Logger
	Metrics  *prometheus.Metrics
	Limiter  *middleware.RateLimiter
	Checkers []handlers.HealthChecker
}

// NewRouter assembles the gin engine with all routes and middleware.
func NewRouter(cfg config.ServerConfig, deps RouterDeps) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogging(deps.Logger))
	engine.Use(middleware.CORS(cfg.CORSOrigins))
	if deps.Metrics != nil {
		engine.Use(middleware.Metrics(deps.Metrics))
	}
	if deps.Limiter != nil {
		engine.Use(deps.Limiter.Handler())
	}

	health := handlers.NewHealthHandler(deps.Checkers...)
	engine.GET("/healthz", health.Live)
	engine.GET("/readyz", health.Ready)
	if deps.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	docs := handlers.NewDocumentHandler(deps.Service)
	v1 := engine.Group("/api/v1")
	{
		v1.POST("/documents", docs.Upload)
		v1.GET("/documents", docs.List)
		v1.POST("/documents/compare", docs.Compare)
		v1.GET("/documents/:id", docs.Get)
		v1.DELETE("/documents/:id", docs.Delete)
		v1.POST("/documents/:id/reanalyze", docs.Reanalyze)
		v1.POST("/documents/:id/qa", docs.Ask)
		v1.GET("/documents/:id/entities", docs.Entities)
		v1.GET("/documents/:id/risk", docs.Risk)
		v1.GET("/documents/:id/compliance", docs.Compliance)
	}

	return engine
}
