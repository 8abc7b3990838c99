package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// initDB opens dataSource with the driver selected at build time and checks
// that it is reachable. Writes are serialized through a single connection.
func initDB(dataSource string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriver, dataSource)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// openStatsDB opens the statistics database and ensures its schema. It returns
// a nil db when statistics are disabled.
func openStatsDB(cfg *ServerConfig, logger *slog.Logger) (*sql.DB, error) {
	if !cfg.EnableStats {
		logger.Info("Usage statistics disabled")
		return nil, nil
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	if dir := filepath.Dir(strings.SplitN(cfg.DatabasePath, "?", 2)[0]); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database dir: %w", err)
		}
	}

	db, err := initDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err = setupStatsSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to setup stats schema: %w", err)
	}
	return db, nil
}
