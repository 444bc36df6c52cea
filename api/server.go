// Package api exposes the status endpoints over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/infoline/infoline-api/collector"
	"github.com/infoline/infoline-api/config"
	"github.com/infoline/infoline-api/health"
	"github.com/infoline/infoline-api/status"
)

const (
	readTimeout    = 10 * time.Second
	writeTimeout   = 60 * time.Second
	idleTimeout    = 120 * time.Second
	healthTimeout  = 5 * time.Second
	defaultDelayMS = 2000
)

// Server wires the reporter, collector and health checker to the HTTP routes.
type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	router   *gin.Engine
	server   *http.Server
	reporter *status.Reporter
	source   collector.Source
	checker  *health.Checker
	stats    *stats
}

// NewServer builds the router and the underlying http.Server.
func NewServer(cfg *config.Config, log *zap.Logger, reporter *status.Reporter, source collector.Source, checker *health.Checker) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		log:      log,
		reporter: reporter,
		source:   source,
		checker:  checker,
		stats:    newStats(reporter.Timestamp()),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(requestLogger(log))
	router.Use(s.stats.middleware())

	v1 := router.Group("/api/v1")
	v1.GET("/", s.handleHome)
	v1.GET("/health", s.handleHealth)
	v1.GET("/info", s.handleInfo)
	v1.GET("/status", s.handleStatus)
	v1.GET("/test/error", s.handleTestError)
	v1.GET("/test/slow", s.handleTestSlow)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router = router
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return s
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() http.Handler { return s.router }

// Start blocks serving HTTP until the server is shut down.
func (s *Server) Start() error {
	s.log.Info("Starting HTTP server", zap.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
