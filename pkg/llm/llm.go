// Package llm provides the chat-completion clients used by the review
// stages. One shared client serves triage, architect, and code review;
// each call carries its own stage label, temperature, and token limit.
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/conveyor-dev/conveyor/pkg/config"
	"github.com/conveyor-dev/conveyor/pkg/metrics"
)

// Default models used when the configuration leaves Model empty.
const (
	DefaultAnthropicModel = "claude-sonnet-4-5"
	DefaultOpenAIModel    = "gpt-4o"
)

// DefaultTimeout bounds a single completion call when the configuration
// does not set one.
const DefaultTimeout = 120 * time.Second

// ErrMissingCredential is returned by New when the configured credential
// env var is unset or empty. Callers treat this as degraded mode: the
// pipeline keeps serving reads while review workers sit idle.
var ErrMissingCredential = errors.New("llm credential env var is empty")

// Request is a single-turn completion request.
type Request struct {
	Stage        string // pipeline stage label for metrics
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
}

// Response carries the completion text plus the usage accounting the
// review services persist for budget tracking.
type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	Duration         time.Duration
}

// Client is a synchronous chat-completion client.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
	Provider() string
	Model() string
}

// New builds the provider client from configuration and wraps it with
// per-call timeouts and Prometheus instrumentation. A missing credential
// returns ErrMissingCredential rather than a constructed client.
func New(cfg config.LLMConfig) (Client, error) {
	keyEnv := cfg.APIKeyEnv
	if keyEnv == "" {
		keyEnv = config.DefaultAPIKeyEnv(cfg.Provider)
	}
	apiKey := os.Getenv(keyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingCredential, keyEnv)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var inner Client
	switch cfg.Provider {
	case config.ProviderOpenAI:
		inner = newOpenAIClient(apiKey, cfg.Model)
	case config.ProviderAnthropic, "":
		inner = newAnthropicClient(apiKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}

	return &instrumentedClient{inner: inner, timeout: timeout}, nil
}

// instrumentedClient applies the per-call timeout, measures duration,
// and records request metrics around the wrapped provider client.
type instrumentedClient struct {
	inner   Client
	timeout time.Duration
}

func (c *instrumentedClient) Provider() string { return c.inner.Provider() }
func (c *instrumentedClient) Model() string    { return c.inner.Model() }

func (c *instrumentedClient) Complete(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.inner.Complete(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		metrics.ObserveLLMRequest(c.inner.Provider(), c.inner.Model(), req.Stage, 0, 0, elapsed, err)
		return nil, err
	}

	resp.Duration = elapsed
	metrics.ObserveLLMRequest(c.inner.Provider(), c.inner.Model(), req.Stage, resp.PromptTokens, resp.CompletionTokens, elapsed, nil)
	return resp, nil
}
