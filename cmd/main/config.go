package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/CTAG07/Sitewright/pkg/templating"
	"github.com/natefinch/atomic"
)

// ServerConfig holds the configuration for the HTTP server.
type ServerConfig struct {
	ServerAddr      string `json:"server_addr"`
	LogLevel        string `json:"log_level"`
	DataDir         string `json:"data_dir"`
	DatabasePath    string `json:"database_path"`
	EnableStats     bool   `json:"enable_stats"`
	ShutdownTimeout int    `json:"shutdown_timeout_sec"`
}

// BuilderConfig holds settings for wizard sessions and generation.
type BuilderConfig struct {
	GenerationDelayMs   int `json:"generation_delay_ms"`
	GenerationTimeoutMs int `json:"generation_timeout_ms"`
	SessionTTLMin       int `json:"session_ttl_min"`
	MaxSessions         int `json:"max_sessions"`
	SweepIntervalSec    int `json:"sweep_interval_sec"`
	RefreshIntervalSec  int `json:"refresh_interval_sec"`
}

// Config is the top-level configuration struct that aggregates all other configs.
type Config struct {
	Server    *ServerConfig              `json:"server_config"`
	Templates *templating.TemplateConfig `json:"template_config"`
	Builder   *BuilderConfig             `json:"builder_config"`
}

// DefaultServerConfig creates a server configuration with default values.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerAddr:      ":7277",
		LogLevel:        "info",
		DataDir:         "./data",
		DatabasePath:    "./data/sitewright_stats.db?_journal_mode=WAL&_busy_timeout=5000",
		EnableStats:     true,
		ShutdownTimeout: 10,
	}
}

// DefaultBuilderConfig creates a builder configuration with default values.
func DefaultBuilderConfig() *BuilderConfig {
	return &BuilderConfig{
		GenerationDelayMs:   3000,
		GenerationTimeoutMs: 30000,
		SessionTTLMin:       60,
		MaxSessions:         10000,
		SweepIntervalSec:    60,
		RefreshIntervalSec:  1,
	}
}

// DefaultConfig returns a Config with every section set to its defaults.
func DefaultConfig() *Config {
	return &Config{
		Server:    DefaultServerConfig(),
		Templates: templating.DefaultConfig(),
		Builder:   DefaultBuilderConfig(),
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// The server can still run with defaults.
				fmt.Printf("warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Sections missing from the file keep their defaults.
	if config.Server == nil {
		config.Server = DefaultServerConfig()
	}
	if config.Templates == nil {
		config.Templates = templating.DefaultConfig()
	}
	if config.Builder == nil {
		config.Builder = DefaultBuilderConfig()
	}
	return config, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *BuilderConfig) generationDelay() time.Duration {
	if c.GenerationDelayMs < 0 {
		return 0
	}
	return time.Duration(c.GenerationDelayMs) * time.Millisecond
}

func (c *BuilderConfig) generationTimeout() time.Duration {
	if c.GenerationTimeoutMs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.GenerationTimeoutMs) * time.Millisecond
}

func (c *BuilderConfig) sessionTTL() time.Duration {
	if c.SessionTTLMin <= 0 {
		return time.Hour
	}
	return time.Duration(c.SessionTTLMin) * time.Minute
}

func (c *BuilderConfig) maxSessions() int {
	if c.MaxSessions <= 0 {
		return 10000
	}
	return c.MaxSessions
}

func (c *BuilderConfig) sweepInterval() time.Duration {
	if c.SweepIntervalSec <= 0 {
		return time.Minute
	}
	return time.Duration(c.SweepIntervalSec) * time.Second
}
