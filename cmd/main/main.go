package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sitewright",
	Short: "Sitewright - build a business website in two steps",
	Long: `Sitewright serves a landing page and a two-step website builder. Visitors
describe their business, and Sitewright renders a complete, responsive site
preview from it.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the web server",
	Long: `The serve command starts the landing page, builder and JSON API on the
configured address. Send SIGHUP to reload the configuration and restart, or
SIGINT/SIGTERM to shut down gracefully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		serve(cfgFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "./config.json", "config file")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// serve runs server cycles until a shutdown is requested. SIGHUP ends the
// current cycle and starts a new one with the configuration reread from disk.
func serve(configPath string) {
	baseLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	actionChan := make(chan string, 1)

	go func() {
		osSignalChan := make(chan os.Signal, 1)
		signal.Notify(osSignalChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		for sig := range osSignalChan {
			if sig == syscall.SIGHUP {
				baseLogger.Info("SIGHUP received, restarting.")
				actionChan <- actionRestart
				continue
			}
			baseLogger.Info("OS signal received, initiating shutdown.")
			actionChan <- actionShutdown
			return
		}
	}()

	for {
		action, err := run(configPath, actionChan)
		if err != nil {
			baseLogger.Error("An error occurred during server run, shutting down.", "error", err)
			break
		}

		if action == actionRestart {
			baseLogger.Info("--- Server Restarting ---")
			continue
		}
		break
	}

	baseLogger.Info("Sitewright has shut down.")
}

// run hosts one server cycle and returns whenever the server is shut down or restarted.
func run(configPath string, actionChan chan string) (string, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(config.Server.LogLevel)}))
	logger.Info("Starting server cycle...", "version", Version)

	db, err := openStatsDB(config.Server, logger)
	if err != nil {
		return "", err
	}

	server, err := NewServer(config, logger, db)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return "", fmt.Errorf("failed to create server object: %w", err)
	}

	ctx, stopWorkers := context.WithCancel(context.Background())
	server.Start(ctx)

	httpServer := &http.Server{
		Addr:              config.Server.ServerAddr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting Sitewright server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			actionChan <- actionShutdown
		}
	}()

	action := <-actionChan // Block here until the OS or a failed listener sends an action.

	logger.Info("Stopping server for " + action + "...")
	timeout := time.Duration(config.Server.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	stopWorkers()
	logger.Info("HTTP server stopped.")

	if db != nil {
		logger.Info("Closing database connection.")
		if err = db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}

	return action, nil
}
