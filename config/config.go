// Package config loads service configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment leaves a value unset.
const (
	DefaultPort         = 8080
	DefaultSlowMaxDelay = 30 * time.Second
)

// Config holds all runtime configuration for the service.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	Port        int
	LogLevel    string
	// PingTarget enables the connectivity health check when non-empty.
	PingTarget string
	// SlowMaxDelay caps the delay accepted by the slow test endpoint.
	SlowMaxDelay time.Duration
	Debug        bool
}

// Load reads config from a .env file if present, falling back to plain
// environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppName:      getEnv("APP_NAME", "infoline-api"),
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Environment:  getEnv("APP_ENVIRONMENT", "dev"),
		Port:         getEnvInt("PORT", DefaultPort),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		PingTarget:   getEnv("PING_TARGET", ""),
		SlowMaxDelay: time.Duration(getEnvInt("SLOW_MAX_DELAY_MS", int(DefaultSlowMaxDelay.Milliseconds()))) * time.Millisecond,
		Debug:        getEnvBool("APP_DEBUG", false),
	}
}

// getEnv reads an env var with a fallback.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt reads an integer env var; non-numeric or non-positive values fall back.
func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
