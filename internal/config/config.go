// Package config assembles application configuration from the
// environment, with optional .env loading for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/codecampus/pathway/internal/llm"
)

// Config holds the full application configuration.
type Config struct {
	// LogMode selects the logger profile: "dev" or "prod".
	LogMode string

	// DBPath is the SQLite database path. Empty selects the default
	// data directory.
	DBPath string

	// MetricsAddr exposes the Prometheus endpoint when non-empty,
	// e.g. ":9090".
	MetricsAddr string

	// RubricFile points to a rubric YAML overriding the embedded set.
	RubricFile string

	LLM llm.Config

	// Workers caps simultaneous in-flight assessment runs.
	Workers int64

	// DimensionTimeout bounds each dimension evaluation.
	DimensionTimeout time.Duration

	// MaxRetries is the need_improvement count that forces scaffolding.
	MaxRetries int
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		LogMode:          "dev",
		LLM:              llm.DefaultConfig(),
		Workers:          10,
		DimensionTimeout: 30 * time.Second,
		MaxRetries:       3,
	}
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over .env entries.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	cfg.LLM = llm.ConfigFromEnv()

	if v := os.Getenv("PATHWAY_LOG_MODE"); v != "" {
		cfg.LogMode = v
	}
	if v := os.Getenv("PATHWAY_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PATHWAY_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("PATHWAY_RUBRIC_FILE"); v != "" {
		cfg.RubricFile = v
	}
	if v := os.Getenv("PATHWAY_WORKERS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("PATHWAY_WORKERS %q: want a positive integer", v)
		}
		cfg.Workers = n
	}
	if v := os.Getenv("PATHWAY_DIMENSION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("PATHWAY_DIMENSION_TIMEOUT %q: want a positive duration", v)
		}
		cfg.DimensionTimeout = d
	}
	if v := os.Getenv("PATHWAY_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("PATHWAY_MAX_RETRIES %q: want a positive integer", v)
		}
		cfg.MaxRetries = n
	}

	return cfg, nil
}
