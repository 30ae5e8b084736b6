package config

import (
	"fmt"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("llm validation failed: %w", err)
	}

	if err := v.validateGitHub(); err != nil {
		return fmt.Errorf("github validation failed: %w", err)
	}

	if err := v.validateCodebase(); err != nil {
		return fmt.Errorf("codebase validation failed: %w", err)
	}

	if err := validatePipeline(v.cfg.Pipeline()); err != nil {
		return fmt.Errorf("pipeline validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLM() error {
	llm := v.cfg.LLM
	if llm == nil {
		return NewValidationError("llm", "", ErrMissingRequiredField)
	}

	switch llm.Provider {
	case ProviderAnthropic, ProviderOpenAI:
	default:
		return NewValidationError("llm", "provider",
			fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidValue, llm.Provider, ProviderAnthropic, ProviderOpenAI))
	}

	if llm.Timeout <= 0 {
		return NewValidationError("llm", "timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}

	// Note: a missing credential is not a validation failure. The LLM
	// client constructor reports it and the pipeline runs degraded.
	return nil
}

func (v *ConfigValidator) validateGitHub() error {
	gh := v.cfg.GitHub
	if gh == nil {
		return NewValidationError("github", "", ErrMissingRequiredField)
	}
	if gh.APIBaseURL == "" {
		return NewValidationError("github", "api_base_url", ErrMissingRequiredField)
	}
	if gh.AgentPrincipal == "" {
		return NewValidationError("github", "agent_principal", ErrMissingRequiredField)
	}
	return nil
}

func (v *ConfigValidator) validateCodebase() error {
	cb := v.cfg.Codebase
	if cb == nil {
		return NewValidationError("codebase", "", ErrMissingRequiredField)
	}
	if cb.MapCacheTTL <= 0 {
		return NewValidationError("codebase", "map_cache_ttl", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cb.ContentCacheTTL <= 0 {
		return NewValidationError("codebase", "content_cache_ttl", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cb.MaxConcurrentFetches < 1 {
		return NewValidationError("codebase", "max_concurrent_fetches", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}

// validatePipeline checks one settings snapshot. It is used both at load
// time and when an admin submits updated settings.
func validatePipeline(ps *PipelineSettings) error {
	if ps == nil {
		return NewValidationError("pipeline", "", ErrMissingRequiredField)
	}

	t := ps.Triage
	if t.PollSec < 1 {
		return NewValidationError("pipeline.triage", "poll_sec", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if t.MaxReviews < 1 {
		return NewValidationError("pipeline.triage", "max_reviews", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if t.Temperature < 0 || t.Temperature > 2 {
		return NewValidationError("pipeline.triage", "temperature", fmt.Errorf("%w: must be in [0, 2]", ErrInvalidValue))
	}
	if t.MaxTokens < 1 {
		return NewValidationError("pipeline.triage", "max_tokens", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if t.DailyBudget < 0 || t.MonthlyBudget < 0 {
		return NewValidationError("pipeline.triage", "budget", fmt.Errorf("%w: budgets must be non-negative", ErrInvalidValue))
	}

	a := ps.Architect
	if a.PollSec < 1 {
		return NewValidationError("pipeline.architect", "poll_sec", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if a.MaxReviews < 1 {
		return NewValidationError("pipeline.architect", "max_reviews", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if a.MaxFiles < 1 {
		return NewValidationError("pipeline.architect", "max_files", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if a.MaxContentChars < 1 {
		return NewValidationError("pipeline.architect", "max_content_chars", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if a.Temperature < 0 || a.Temperature > 2 {
		return NewValidationError("pipeline.architect", "temperature", fmt.Errorf("%w: must be in [0, 2]", ErrInvalidValue))
	}
	if a.MaxTokens < 1 {
		return NewValidationError("pipeline.architect", "max_tokens", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if a.DailyBudget < 0 || a.MonthlyBudget < 0 {
		return NewValidationError("pipeline.architect", "budget", fmt.Errorf("%w: budgets must be non-negative", ErrInvalidValue))
	}

	i := ps.Implementation
	if i.PollSec < 1 {
		return NewValidationError("pipeline.implementation", "poll_sec", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if i.PrPollSec < 1 {
		return NewValidationError("pipeline.implementation", "pr_poll_sec", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if i.MaxConcurrent < 1 {
		return NewValidationError("pipeline.implementation", "max_concurrent", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if i.BaseBranch == "" {
		return NewValidationError("pipeline.implementation", "base_branch", ErrMissingRequiredField)
	}
	if i.MaxRetries < 0 {
		return NewValidationError("pipeline.implementation", "max_retries", fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}

	cr := ps.CodeReview
	if cr.Temperature < 0 || cr.Temperature > 2 {
		return NewValidationError("pipeline.code_review", "temperature", fmt.Errorf("%w: must be in [0, 2]", ErrInvalidValue))
	}
	if cr.MaxInputTokens < 1 {
		return NewValidationError("pipeline.code_review", "max_input_tokens", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if cr.MaxTokens < 1 {
		return NewValidationError("pipeline.code_review", "max_tokens", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}

	o := ps.Orchestrator
	if o.PollSec < 1 {
		return NewValidationError("pipeline.orchestrator", "poll_sec", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if o.NeedsClarificationStaleDays < 1 || o.ArchitectReviewStaleDays < 1 || o.ApprovedStaleDays < 1 {
		return NewValidationError("pipeline.orchestrator", "stale_days", fmt.Errorf("%w: stall thresholds must be at least 1", ErrInvalidValue))
	}
	if o.FailedStaleHours < 1 {
		return NewValidationError("pipeline.orchestrator", "failed_stale_hours", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	switch o.DeploymentMode {
	case DeploymentModeAuto, DeploymentModeStaged:
	default:
		return NewValidationError("pipeline.orchestrator", "deployment_mode",
			fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidValue, o.DeploymentMode, DeploymentModeAuto, DeploymentModeStaged))
	}
	if o.MaxDeployRetries < 0 {
		return NewValidationError("pipeline.orchestrator", "max_deploy_retries", fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}

	return nil
}
