package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/CTAG07/Sitewright/pkg/wizard"
	"github.com/go-chi/chi/v5"
)

const statsSchema = `
CREATE TABLE IF NOT EXISTS stats_page (
    path          TEXT PRIMARY KEY,
    total_hits    INTEGER NOT NULL DEFAULT 1,
    first_seen    DATETIME NOT NULL,
    last_seen     DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS stats_generation (
    business_type TEXT NOT NULL,
    color_scheme  TEXT NOT NULL,
    total         INTEGER NOT NULL DEFAULT 1,
    last_seen     DATETIME NOT NULL,
    PRIMARY KEY (business_type, color_scheme)
);
`

// CountEntry is one row of a ranked counter list.
type CountEntry struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// StatsSummary provides a high-level overview of all collected stats.
type StatsSummary struct {
	TotalRequests    int64        `json:"total_requests"`
	UniquePaths      int64        `json:"unique_paths"`
	TotalGenerations int64        `json:"total_generations"`
	TopPaths         []CountEntry `json:"top_paths"`
	TopBusinessTypes []CountEntry `json:"top_business_types"`
	TopColorSchemes  []CountEntry `json:"top_color_schemes"`
}

// StatsAPI records anonymous usage counters. Generated sites themselves are
// never stored.
type StatsAPI struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

func setupStatsSchema(db *sql.DB) error {
	_, err := db.Exec(statsSchema)
	return err
}

func NewStatsAPI(db *sql.DB, logger *slog.Logger) *StatsAPI {
	return &StatsAPI{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *StatsAPI) RegisterRoutes(r chi.Router) {
	r.Get("/api/stats/summary", s.handleSummary)
}

// CountHits records a page hit for every routed request. The route pattern is
// used as the key, so unknown paths and query strings never create rows.
func (s *StatsAPI) CountHits(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			return
		}
		path := rctx.RoutePattern()
		if path == "" {
			return
		}
		if err := s.RecordHit(context.WithoutCancel(r.Context()), path); err != nil {
			s.logger.Warn("Failed to record page hit", "path", path, "error", err)
		}
	})
}

// RecordHit increments the hit counter for path.
func (s *StatsAPI) RecordHit(ctx context.Context, path string) error {
	now := s.now()
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO stats_page (path, first_seen, last_seen) VALUES (?, ?, ?)
        ON CONFLICT(path) DO UPDATE SET total_hits = total_hits + 1, last_seen = ?
    `, path, now, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert stats_page: %w", err)
	}
	return nil
}

// RecordGeneration increments the counter for the record's business type and
// color scheme. Only the two keys are stored.
func (s *StatsAPI) RecordGeneration(ctx context.Context, data wizard.WebsiteData) error {
	now := s.now()
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO stats_generation (business_type, color_scheme, last_seen) VALUES (?, ?, ?)
        ON CONFLICT(business_type, color_scheme) DO UPDATE SET total = total + 1, last_seen = ?
    `, string(data.BusinessType), string(data.ColorScheme), now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert stats_generation: %w", err)
	}
	return nil
}

// Summary gathers the totals and the top ten entries of each counter.
func (s *StatsAPI) Summary(ctx context.Context) (*StatsSummary, error) {
	summary := &StatsSummary{}
	if err := s.db.QueryRowContext(ctx, "SELECT COALESCE(SUM(total_hits), 0), COUNT(*) FROM stats_page").Scan(&summary.TotalRequests, &summary.UniquePaths); err != nil {
		return nil, fmt.Errorf("failed to query page totals: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COALESCE(SUM(total), 0) FROM stats_generation").Scan(&summary.TotalGenerations); err != nil {
		return nil, fmt.Errorf("failed to query generation totals: %w", err)
	}

	var err error
	if summary.TopPaths, err = s.topCounts(ctx, "SELECT path, total_hits FROM stats_page ORDER BY total_hits DESC, path LIMIT 10"); err != nil {
		return nil, err
	}
	if summary.TopBusinessTypes, err = s.topCounts(ctx, "SELECT business_type, SUM(total) AS n FROM stats_generation GROUP BY business_type ORDER BY n DESC, business_type LIMIT 10"); err != nil {
		return nil, err
	}
	if summary.TopColorSchemes, err = s.topCounts(ctx, "SELECT color_scheme, SUM(total) AS n FROM stats_generation GROUP BY color_scheme ORDER BY n DESC, color_scheme LIMIT 10"); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *StatsAPI) topCounts(ctx context.Context, query string) ([]CountEntry, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query counters: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	results := []CountEntry{}
	for rows.Next() {
		var e CountEntry
		if err = rows.Scan(&e.Key, &e.Count); err != nil {
			return nil, fmt.Errorf("failed to scan counter row: %w", err)
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

func (s *StatsAPI) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.Summary(r.Context())
	if err != nil {
		s.logger.Error("Failed to build stats summary", "error", err)
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Database error: %v", err))
		return
	}
	respondWithJSON(w, http.StatusOK, summary)
}
