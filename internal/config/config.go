// Package config holds CLI configuration loaded from the environment and
// optional YAML parameter files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		LogFile:  getEnv("FILECONV_LOG_FILE", ""),
		LogLevel: parseLogLevel(getEnv("FILECONV_LOG_LEVEL", "INFO")),
	}
}

// LoadParameterFile reads a YAML file of conversion parameters into a flat
// name -> value map.
func LoadParameterFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parameter file: %w", err)
	}
	params := make(map[string]any)
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("parse parameter file: %w", err)
	}
	return params, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
