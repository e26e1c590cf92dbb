// Package config reads the site settings from the environment. A .env file
// in the working directory is loaded by main before Load is called.
package config

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	AppEnv string
	Port   string

	// BasePath is "/" for a root deployment or "/<repo>/" for a sub-path.
	BasePath string

	// ProfilePath is a YAML profile on disk; empty means the embedded one.
	ProfilePath string
	AssetsDir   string
	OutDir      string

	LogLevel zapcore.Level
}

// Load reads configuration from environment variables, falling back to
// development defaults.
func Load() (Config, error) {
	port := getEnv("PORT", "8080")
	if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", port)
	}

	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		Port:        port,
		BasePath:    getEnv("BASE_PATH", "/"),
		ProfilePath: os.Getenv("PROFILE_PATH"),
		AssetsDir:   getEnv("ASSETS_DIR", "public"),
		OutDir:      getEnv("OUT_DIR", "dist"),
		LogLevel:    level,
	}, nil
}

// Addr is the listen address for the preview server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
