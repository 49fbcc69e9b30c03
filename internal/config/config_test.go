package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 10 {
		t.Errorf("workers = %d, want 10", cfg.Workers)
	}
	if cfg.DimensionTimeout != 30*time.Second {
		t.Errorf("dimension timeout = %s, want 30s", cfg.DimensionTimeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("max retries = %d, want 3", cfg.MaxRetries)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PATHWAY_WORKERS", "4")
	t.Setenv("PATHWAY_DIMENSION_TIMEOUT", "10s")
	t.Setenv("PATHWAY_LOG_MODE", "prod")
	t.Setenv("PATHWAY_METRICS_ADDR", ":9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 4 {
		t.Errorf("workers = %d, want 4", cfg.Workers)
	}
	if cfg.DimensionTimeout != 10*time.Second {
		t.Errorf("dimension timeout = %s, want 10s", cfg.DimensionTimeout)
	}
	if cfg.LogMode != "prod" {
		t.Errorf("log mode = %q, want prod", cfg.LogMode)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("metrics addr = %q, want :9090", cfg.MetricsAddr)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("PATHWAY_WORKERS", "zero")
	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric PATHWAY_WORKERS")
	}
	t.Setenv("PATHWAY_WORKERS", "10")
	t.Setenv("PATHWAY_DIMENSION_TIMEOUT", "-5s")
	if _, err := Load(); err == nil {
		t.Error("expected error for negative PATHWAY_DIMENSION_TIMEOUT")
	}
}
