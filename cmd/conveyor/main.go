// Conveyor pipeline server — drives the multi-stage development pipeline
// workers and exposes the operations HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/conveyor-dev/conveyor/pkg/api"
	"github.com/conveyor-dev/conveyor/pkg/codebase"
	"github.com/conveyor-dev/conveyor/pkg/codehost"
	"github.com/conveyor-dev/conveyor/pkg/config"
	"github.com/conveyor-dev/conveyor/pkg/database"
	"github.com/conveyor-dev/conveyor/pkg/llm"
	"github.com/conveyor-dev/conveyor/pkg/notify"
	"github.com/conveyor-dev/conveyor/pkg/prompt"
	"github.com/conveyor-dev/conveyor/pkg/refdocs"
	"github.com/conveyor-dev/conveyor/pkg/services"
	"github.com/conveyor-dev/conveyor/pkg/version"
	"github.com/conveyor-dev/conveyor/pkg/workers"
)

// workerShutdownTimeout bounds how long shutdown waits for in-flight
// worker cycles before giving up. Cycles are short; anything longer
// means a stuck external call.
const workerShutdownTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting Conveyor",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	requestService := services.NewRequestService(dbClient.Client)
	reviewService := services.NewReviewService(dbClient.Client)
	commentService := services.NewCommentService(dbClient.Client)
	promptService := services.NewPromptService(dbClient.Client)
	statsService := services.NewStatsService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. LLM client. A missing credential degrades the pipeline (review
	// stages pause) instead of stopping it: dispatch, PR monitoring, and
	// deployment watching need no model.
	llmClient, err := llm.New(*cfg.LLM)
	switch {
	case err == nil:
		slog.Info("LLM client initialized",
			"provider", llmClient.Provider(), "model", llmClient.Model())
	case errors.Is(err, llm.ErrMissingCredential):
		slog.Warn("LLM credential missing, review stages disabled", "error", err)
		llmClient = nil
	default:
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}

	// 5. Code host, reference documents, prompt builder, codebase map
	host := codehost.New(cfg.GitHub)
	docs := refdocs.NewStore(cfg.RefDocs, *configDir)
	builder := prompt.NewBuilder(docs)
	codebaseService := codebase.NewService(host, cfg.Codebase)

	// 6. Slack notifications (nil when not configured)
	notifyService := notify.NewService(cfg.Slack)
	if notifyService == nil {
		slog.Info("Slack notifications disabled")
	}

	// 7. Start pipeline workers
	runner := workers.New(workers.Deps{
		Config:          cfg,
		Requests:        requestService,
		Reviews:         reviewService,
		Comments:        commentService,
		Prompts:         promptService,
		LLM:             llmClient,
		Host:            host,
		Codebase:        codebaseService,
		Prompt:          builder,
		Notify:          notifyService,
		AgentPrincipal:  cfg.GitHub.AgentPrincipal,
		DeployWorkflows: cfg.GitHub.DeployWorkflows,
	})
	runner.Start(ctx)

	stats := cfg.Stats()
	slog.Info("Conveyor started",
		"workers_enabled", stats.EnabledWorkers,
		"deployment_mode", stats.DeploymentMode)

	// 8. Start HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, requestService, reviewService, statsService, runner)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: workers first so in-flight cycles commit
	// their transitions, then the HTTP server with its own budget.
	done := make(chan struct{})
	go func() {
		runner.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Pipeline workers stopped gracefully")
	case <-time.After(workerShutdownTimeout):
		slog.Warn("Worker shutdown timeout exceeded")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
