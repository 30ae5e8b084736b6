package notify

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/conveyor-dev/conveyor/pkg/config"
)

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when the service is nil.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService creates a notification service from config. Returns nil
// when Slack is disabled, the channel is unset, or the token env var is
// empty, so callers can hold a nil service without checks.
func NewService(cfg *config.SlackConfig) *Service {
	if cfg == nil || !cfg.Enabled || cfg.Channel == "" {
		return nil
	}
	token := os.Getenv(cfg.TokenEnv)
	if token == "" {
		slog.Warn("slack enabled but token env var is empty, notifications disabled",
			"env", cfg.TokenEnv)
		return nil
	}
	return &Service{
		client: NewClient(token, cfg.Channel),
		logger: slog.Default().With("component", "notify"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client) *Service {
	return &Service{
		client: client,
		logger: slog.Default().With("component", "notify"),
	}
}

// NotifyStall sends a stall alert for one request.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyStall(ctx context.Context, input StallInput) {
	if s == nil {
		return
	}

	blocks := BuildStallMessage(input)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Error("failed to send stall notification",
			"request_id", input.RequestID,
			"state", input.State,
			"error", err)
	}
}

// NotifyDeployment sends a deployment outcome notification.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyDeployment(ctx context.Context, input DeploymentInput) {
	if s == nil {
		return
	}

	blocks := BuildDeploymentMessage(input)
	if err := s.client.PostMessage(ctx, blocks, 10*time.Second); err != nil {
		s.logger.Error("failed to send deployment notification",
			"request_id", input.RequestID,
			"status", input.Status,
			"error", err)
	}
}
