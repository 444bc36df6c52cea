package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/infoline/infoline-api/api"
	"github.com/infoline/infoline-api/collector"
	"github.com/infoline/infoline-api/config"
	"github.com/infoline/infoline-api/health"
	"github.com/infoline/infoline-api/status"
)

// Build info
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	shutdownTimeout = 10 * time.Second
	pingTimeout     = 2 * time.Second
)

func main() {
	cfg := config.Load()

	log := newLogger(cfg)
	defer log.Sync()

	log.Info("Starting InfoLine API",
		zap.String("app", cfg.AppName),
		zap.String("version", cfg.AppVersion),
		zap.String("environment", cfg.Environment),
		zap.Int("port", cfg.Port),
		zap.String("build", version+" ("+commit+") "+date),
	)

	source := collector.NewSystem()
	reporter := status.NewReporter(status.AppInfo{
		Name:        cfg.AppName,
		Version:     cfg.AppVersion,
		Environment: cfg.Environment,
	}, status.SystemClock())

	checker := health.NewChecker()
	if cfg.PingTarget != "" {
		checker.Register("connectivity", health.PingCheck(cfg.PingTarget, pingTimeout))
	}
	if collector.DockerAvailable() {
		checker.Register("docker", collector.PingDaemon)
	}

	srv := api.NewServer(cfg, log, reporter, source, checker)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("Server failed", zap.Error(err))
		}
	case sig := <-stop:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Shutdown error", zap.Error(err))
	}
	log.Info("Server stopped")
}

// newLogger builds a zap logger from the configured level.
func newLogger(cfg *config.Config) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	if cfg.Debug {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var level zapcore.Level
	if err := level.Set(cfg.LogLevel); err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	log, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
