package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.Server.ServerAddr != ":7277" || config.Builder.GenerationDelayMs != 3000 {
		t.Errorf("unexpected defaults: %+v %+v", config.Server, config.Builder)
	}
	if _, err = os.Stat(path); err != nil {
		t.Fatalf("default config was not written: %v", err)
	}

	// Reading the written file gives the same values back.
	again, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() on written file failed: %v", err)
	}
	if *again.Server != *config.Server || *again.Builder != *config.Builder {
		t.Error("written defaults did not round-trip")
	}
}

func TestLoadConfig_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"server_config": {"server_addr": ":9000", "log_level": "debug"}}`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.Server.ServerAddr != ":9000" {
		t.Errorf("ServerAddr = %q, want :9000", config.Server.ServerAddr)
	}
	if config.Builder == nil || config.Templates == nil {
		t.Fatal("missing sections should fall back to defaults")
	}
	if got := config.Builder.generationDelay(); got != 3*time.Second {
		t.Errorf("generationDelay() = %v, want 3s", got)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() should reject invalid JSON")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestBuilderConfig_Fallbacks(t *testing.T) {
	c := &BuilderConfig{GenerationDelayMs: -5}
	if c.generationDelay() != 0 {
		t.Error("negative delay should clamp to zero")
	}
	if c.generationTimeout() != 30*time.Second || c.sessionTTL() != time.Hour || c.sweepInterval() != time.Minute || c.maxSessions() != 10000 {
		t.Error("zero values should fall back to defaults")
	}
}
