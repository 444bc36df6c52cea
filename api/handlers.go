package api

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/infoline/infoline-api/collector"
	"github.com/infoline/infoline-api/health"
)

const appDescription = "REST API for sports technology news"

// handleHome returns the welcome payload with the endpoint directory.
func (s *Server) handleHome(c *gin.Context) {
	app := s.reporter.App()
	c.JSON(http.StatusOK, gin.H{
		"message":     "Welcome to InfoLine API",
		"description": appDescription,
		"version":     app.Version,
		"environment": app.Environment,
		"timestamp":   s.reporter.Timestamp(),
		"endpoints": gin.H{
			"health": "/api/v1/health",
			"info":   "/api/v1/info",
			"status": "/api/v1/status",
		},
	})
}

// handleHealth runs the registered checks. Any failing check turns the
// response into a 503 so Kubernetes probes see it.
func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	overall, checks := s.checker.Run(ctx)

	code := http.StatusOK
	if overall == health.StatusDown {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":      overall,
		"application": s.reporter.App().Name,
		"timestamp":   s.reporter.Timestamp(),
		"checks":      checks,
	})
}

// handleInfo reports application, runtime and OS details.
func (s *Server) handleInfo(c *gin.Context) {
	memTotal, memFree, err := s.source.Memory()
	if err != nil {
		s.internalError(c, err)
		return
	}

	snap, err := s.reporter.Snapshot(s.source.UptimeMillis(), memTotal, memFree)
	if err != nil {
		s.internalError(c, err)
		return
	}

	hostInfo, err := s.source.Host()
	if err != nil {
		s.internalError(c, err)
		return
	}

	app := s.reporter.App()
	c.JSON(http.StatusOK, InfoResponse{
		Application: AppBlock{
			Name:        app.Name,
			Version:     app.Version,
			Environment: app.Environment,
			Description: appDescription,
		},
		Runtime: RuntimeBlock{
			GoVersion:   runtime.Version(),
			Processors:  runtime.NumCPU(),
			Goroutines:  runtime.NumGoroutine(),
			MemoryTotal: snap.MemoryTotal,
			MemoryFree:  snap.MemoryFree,
			MemoryUsed:  snap.MemoryUsed,
		},
		System:     hostInfo,
		Containers: collector.Containers(c.Request.Context()),
		Timestamp:  snap.Timestamp,
	})
}

// handleStatus combines the uptime snapshot with live request stats.
func (s *Server) handleStatus(c *gin.Context) {
	memTotal, memFree, err := s.source.Memory()
	if err != nil {
		s.internalError(c, err)
		return
	}

	snap, err := s.reporter.Snapshot(s.source.UptimeMillis(), memTotal, memFree)
	if err != nil {
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Status:      "RUNNING",
		Uptime:      snap.Uptime,
		Application: snap.Application,
		Version:     snap.Version,
		Environment: snap.Environment,
		Timestamp:   snap.Timestamp,
		Stats: StatsBlock{
			TotalRequests:     s.stats.total.Load(),
			ActiveConnections: s.stats.active.Load(),
			LastDeployment:    s.stats.lastDeployment,
		},
	})
}

// handleTestError always fails. Kept for monitoring drills, not wired in
// production route tables.
func (s *Server) handleTestError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":     "Test error endpoint",
		"message":   "Intentional error for monitoring checks",
		"timestamp": s.reporter.Timestamp(),
	})
}

// handleTestSlow sleeps for the requested delay before answering. The delay
// is clamped to [0, SlowMaxDelay] and the sleep aborts if the client goes away.
func (s *Server) handleTestSlow(c *gin.Context) {
	delay := defaultDelayMS
	if raw := c.Query("delay"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			delay = v
		}
	}
	if delay < 0 {
		delay = 0
	}
	if maxDelay := int(s.cfg.SlowMaxDelay.Milliseconds()); maxDelay > 0 && delay > maxDelay {
		delay = maxDelay
	}

	timer := time.NewTimer(time.Duration(delay) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-c.Request.Context().Done():
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Response after %dms delay", delay),
		"delay":     fmt.Sprintf("%dms", delay),
		"timestamp": s.reporter.Timestamp(),
	})
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.log.Error("snapshot failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":     "internal error",
		"message":   err.Error(),
		"timestamp": s.reporter.Timestamp(),
	})
}
