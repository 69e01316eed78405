// Package server exposes the analysis pipeline over HTTP for IDE
// integrations.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"github.com/aeyeguard/aeyeguard/internal/analyzer"
	"github.com/aeyeguard/aeyeguard/pkg/shared/config"
)

// Server hosts the HTTP API in front of the analysis service.
type Server struct {
	cfg      *config.Config
	logger   hclog.Logger
	service  *analyzer.Service
	health   HealthChecker
	versions VersionInfo
}

// VersionInfo is reported by the health endpoint.
type VersionInfo struct {
	Service string
	Version string
}

// New assembles a Server. The health checker is the LLM client's probe.
func New(cfg *config.Config, logger hclog.Logger, service *analyzer.Service, health HealthChecker, versions VersionInfo) *Server {
	return &Server{
		cfg:      cfg,
		logger:   logger,
		service:  service,
		health:   health,
		versions: versions,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/", s.handleServiceInfo)
	router.GET("/mcp/tools", s.handleMCPTools)

	v1 := router.Group("/v1")
	v1.POST("/analyze", s.handleAnalyze)
	v1.GET("/health", s.handleHealth)
	v1.GET("/languages", s.handleLanguages)

	return router
}

// Run blocks serving HTTP until the listener fails.
func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info("starting server", "addr", addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
