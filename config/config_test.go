package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Fatalf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Pagination.DefaultLimit != 20 {
		t.Fatalf("expected default limit 20, got %d", cfg.Pagination.DefaultLimit)
	}
	if cfg.Storage.OutputDir != "outputs" {
		t.Fatalf("expected default output dir, got %s", cfg.Storage.OutputDir)
	}
}

func TestLoadConfigPortEnvOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected env port 9090, got %d", cfg.Server.Port)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "server:\n  port: 8123\nmongo:\n  uri: mongodb://localhost:27017\n  database: demo\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8123 {
		t.Fatalf("expected port 8123, got %d", cfg.Server.Port)
	}
	if cfg.Mongo.Database != "demo" {
		t.Fatalf("expected database demo, got %s", cfg.Mongo.Database)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("expected default host to fill in, got %s", cfg.Server.Host)
	}
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - broken ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
}
