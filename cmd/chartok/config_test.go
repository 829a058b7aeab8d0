package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFrom(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `min_freq: 3
include_specials: false
log_level: debug
server_address: "0.0.0.0:9000"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := loadConfigFrom(path)
	if cfg.MinFreq == nil || *cfg.MinFreq != 3 {
		t.Fatalf("min_freq: got %v", cfg.MinFreq)
	}
	if cfg.IncludeSpecials == nil || *cfg.IncludeSpecials {
		t.Fatalf("include_specials: got %v", cfg.IncludeSpecials)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log_level: got %q", cfg.LogLevel)
	}
	if cfg.ServerAddress != "0.0.0.0:9000" {
		t.Fatalf("server_address: got %q", cfg.ServerAddress)
	}
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	t.Parallel()

	cfg := loadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if cfg.MinFreq != nil || cfg.IncludeSpecials != nil || cfg.LogLevel != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigFromMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg := loadConfigFrom(path)
	if cfg.MinFreq != nil || cfg.LogLevel != "" {
		t.Fatalf("expected zero config for malformed file, got %+v", cfg)
	}
}
