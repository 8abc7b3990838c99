package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	actionShutdown = "shutdown"
	actionRestart  = "restart"
)

// ServerAPI serves the operational endpoints.
type ServerAPI struct {
	sessions *SessionStore
	logger   *slog.Logger
}

// VersionInfo defines the structure for build/version information.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
}

// HealthStatus is the body of the health check.
type HealthStatus struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

func NewServerAPI(sessions *SessionStore, logger *slog.Logger) *ServerAPI {
	return &ServerAPI{
		sessions: sessions,
		logger:   logger,
	}
}

func (a *ServerAPI) RegisterRoutes(r chi.Router) {
	r.Get("/api/health", a.handleHealthCheck)
	r.Get("/api/version", a.handleVersion)
}

func (a *ServerAPI) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthStatus{Status: "ok", Sessions: a.sessions.Len()})
}

// handleVersion returns the application's build information.
func (a *ServerAPI) handleVersion(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, VersionInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
	})
}
