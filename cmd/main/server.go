package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/CTAG07/Sitewright/pkg/templating"
	"github.com/CTAG07/Sitewright/pkg/wizard"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	config     *Config
	db         *sql.DB
	logger     *slog.Logger
	tm         *templating.TemplateManager
	sessions   *SessionStore
	builderAPI *BuilderAPI
	contentAPI *ContentAPI
	statsAPI   *StatsAPI
	serverAPI  *ServerAPI
	router     chi.Router
}

// NewServer wires the APIs onto a single router. db may be nil, in which case
// usage statistics are disabled.
func NewServer(config *Config, logger *slog.Logger, db *sql.DB) (*Server, error) {
	tm, err := templating.NewTemplateManager(logger, config.Templates)
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	var statsAPI *StatsAPI
	if db != nil {
		statsAPI = NewStatsAPI(db, logger)
	}

	delay := config.Builder.generationDelay()
	newWizard := func(n wizard.Notifier) *wizard.Wizard {
		opts := []wizard.Option{
			wizard.WithNotifier(n),
			wizard.WithGenerator(wizard.NewDelayGenerator(delay)),
		}
		if statsAPI != nil {
			opts = append(opts, wizard.OnGenerated(func(data wizard.WebsiteData) {
				if err := statsAPI.RecordGeneration(context.Background(), data); err != nil {
					logger.Warn("Failed to record generation", "error", err)
				}
			}))
		}
		return wizard.New(opts...)
	}
	sessions := NewSessionStore(config.Builder.sessionTTL(), config.Builder.maxSessions(), newWizard, logger)

	server := &Server{
		config:     config,
		db:         db,
		logger:     logger,
		tm:         tm,
		sessions:   sessions,
		builderAPI: NewBuilderAPI(config.Builder, sessions, tm, logger),
		contentAPI: NewContentAPI(logger),
		statsAPI:   statsAPI,
		serverAPI:  NewServerAPI(sessions, logger),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(server.requestLogger)
	r.Use(middleware.Recoverer)
	if statsAPI != nil {
		r.Use(statsAPI.CountHits)
		statsAPI.RegisterRoutes(r)
	} else {
		r.Get("/api/stats/summary", func(w http.ResponseWriter, _ *http.Request) {
			respondWithError(w, http.StatusServiceUnavailable, "Statistics are disabled")
		})
	}
	server.builderAPI.RegisterRoutes(r)
	server.contentAPI.RegisterRoutes(r)
	server.serverAPI.RegisterRoutes(r)
	r.Get("/favicon.ico", handleFavicon)
	server.router = r

	return server, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start launches the background workers: the session sweeper and, when an
// override directory is configured and watching is enabled, the template
// watcher. They stop when ctx is done.
func (s *Server) Start(ctx context.Context) {
	go s.sessions.Run(ctx, s.config.Builder.sweepInterval())
	if s.config.Templates.WatchOverrides && s.config.Templates.OverrideDir != "" {
		go func() {
			if err := s.tm.Watch(ctx); err != nil {
				s.logger.Error("Template watcher stopped", "error", err)
			}
		}()
	}
}

// requestLogger logs one line per request once it has been served.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("Request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"remote_addr", getClientIP(r),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func getClientIP(r *http.Request) string {

	// The X-Real-Ip header contains the forwarded IP in some cases (like from nginx)
	realIP := r.Header.Get("X-Real-Ip")
	if realIP != "" {
		return realIP
	}

	// The X-Forwarded-For header can contain a comma-separated list of IPs.
	// The first IP in the list is the original client IP.
	forwardedFor := r.Header.Get("X-Forwarded-For")
	if forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		return strings.TrimSpace(ips[0])
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// handleFavicon answers favicon requests with no content so they don't create sessions.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
