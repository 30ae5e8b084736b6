package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, "conveyor.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestInitialize_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "{}\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ConfigDir())

	// LLM defaults
	assert.Equal(t, ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "ANTHROPIC_API_KEY", cfg.LLM.APIKeyEnv)
	assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)

	// GitHub defaults
	assert.Equal(t, "GITHUB_TOKEN", cfg.GitHub.TokenEnv)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.APIBaseURL)
	assert.Equal(t, "copilot", cfg.GitHub.AgentPrincipal)
	assert.Equal(t, []string{"deploy-api.yml", "deploy-web.yml"}, cfg.GitHub.DeployWorkflows)

	// Slack defaults to disabled
	assert.False(t, cfg.Slack.Enabled)
	assert.Equal(t, "SLACK_BOT_TOKEN", cfg.Slack.TokenEnv)

	// Codebase cache defaults
	assert.Equal(t, 15*time.Minute, cfg.Codebase.MapCacheTTL)
	assert.Equal(t, 30*time.Minute, cfg.Codebase.ContentCacheTTL)
	assert.Equal(t, 5, cfg.Codebase.MaxConcurrentFetches)

	// Pipeline defaults
	ps := cfg.Pipeline()
	require.NotNil(t, ps)
	assert.True(t, ps.Triage.Enabled)
	assert.Equal(t, 30, ps.Triage.PollSec)
	assert.Equal(t, 3, ps.Triage.MaxReviews)
	assert.InDelta(t, 0.3, ps.Triage.Temperature, 0.001)
	assert.Equal(t, 2000, ps.Triage.MaxTokens)
	assert.Equal(t, 0, ps.Triage.DailyBudget)

	assert.Equal(t, 60, ps.Architect.PollSec)
	assert.Equal(t, 20, ps.Architect.MaxFiles)
	assert.Equal(t, 50000, ps.Architect.MaxContentChars)
	assert.Equal(t, 4000, ps.Architect.MaxTokens)

	assert.True(t, ps.Implementation.AutoTrigger)
	assert.Equal(t, 120, ps.Implementation.PrPollSec)
	assert.Equal(t, 3, ps.Implementation.MaxConcurrent)
	assert.Equal(t, "main", ps.Implementation.BaseBranch)
	assert.Equal(t, 2, ps.Implementation.MaxRetries)

	assert.False(t, ps.CodeReview.AutoMerge)
	assert.Equal(t, 6000, ps.CodeReview.MaxInputTokens)

	assert.Equal(t, DeploymentModeAuto, ps.Orchestrator.DeploymentMode)
	assert.Equal(t, 7, ps.Orchestrator.NeedsClarificationStaleDays)
	assert.Equal(t, 3, ps.Orchestrator.ArchitectReviewStaleDays)
	assert.Equal(t, 1, ps.Orchestrator.ApprovedStaleDays)
	assert.Equal(t, 24, ps.Orchestrator.FailedStaleHours)
	assert.Equal(t, 3, ps.Orchestrator.MaxDeployRetries)
}

func TestInitialize_Overrides(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
system:
  github:
    token_env: GH_PAT
    agent_principal: swe-bot
    deploy_workflows: [release.yml]
  slack:
    enabled: true
    channel: C12345678
  codebase:
    map_cache_ttl: 5m
    max_concurrent_fetches: 2
llm:
  provider: openai
  model: gpt-4.1
  timeout: 60s
pipeline:
  triage:
    enabled: false
    poll_sec: 10
    daily_budget: 100000
  implementation:
    auto_trigger: false
    base_branch: develop
    max_retries: 0
  orchestrator:
    deployment_mode: Staged
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "GH_PAT", cfg.GitHub.TokenEnv)
	assert.Equal(t, "swe-bot", cfg.GitHub.AgentPrincipal)
	assert.Equal(t, []string{"release.yml"}, cfg.GitHub.DeployWorkflows)
	// Unset github fields keep their defaults.
	assert.Equal(t, "https://api.github.com", cfg.GitHub.APIBaseURL)

	assert.True(t, cfg.Slack.Enabled)
	assert.Equal(t, "C12345678", cfg.Slack.Channel)

	assert.Equal(t, 5*time.Minute, cfg.Codebase.MapCacheTTL)
	assert.Equal(t, 30*time.Minute, cfg.Codebase.ContentCacheTTL)
	assert.Equal(t, 2, cfg.Codebase.MaxConcurrentFetches)

	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "gpt-4.1", cfg.LLM.Model)
	assert.Equal(t, "OPENAI_API_KEY", cfg.LLM.APIKeyEnv)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)

	ps := cfg.Pipeline()
	assert.False(t, ps.Triage.Enabled, "explicit enabled: false must win over the default")
	assert.Equal(t, 10, ps.Triage.PollSec)
	assert.Equal(t, 100000, ps.Triage.DailyBudget)
	assert.Equal(t, 3, ps.Triage.MaxReviews, "unset values keep defaults")

	assert.False(t, ps.Implementation.AutoTrigger)
	assert.Equal(t, "develop", ps.Implementation.BaseBranch)
	assert.Equal(t, 0, ps.Implementation.MaxRetries, "explicit zero must win over the default")

	assert.Equal(t, DeploymentModeStaged, ps.Orchestrator.DeploymentMode)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONVEYOR_TEST_CHANNEL", "C99999999")
	writeConfigFile(t, dir, `
system:
  slack:
    enabled: true
    channel: "{{ .CONVEYOR_TEST_CHANNEL }}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "C99999999", cfg.Slack.Channel)
}

func TestInitialize_MissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "pipeline: [this is not\n  a mapping\n")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_ValidationFailure(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		contains string
	}{
		{
			name:     "unknown llm provider",
			yaml:     "llm:\n  provider: gemini\n",
			contains: "provider",
		},
		{
			name:     "unknown deployment mode",
			yaml:     "pipeline:\n  orchestrator:\n    deployment_mode: YOLO\n",
			contains: "deployment_mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfigFile(t, dir, tt.yaml)

			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestConfig_UpdatePipeline(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "{}\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	before := cfg.Pipeline()

	next := before.Clone()
	next.Triage.PollSec = 5
	require.NoError(t, cfg.UpdatePipeline(next))

	after := cfg.Pipeline()
	assert.Equal(t, 5, after.Triage.PollSec)
	assert.Equal(t, 30, before.Triage.PollSec, "old snapshot unaffected")

	// Invalid settings are rejected and the snapshot stays put.
	bad := after.Clone()
	bad.Orchestrator.DeploymentMode = "Chaotic"
	err = cfg.UpdatePipeline(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, DeploymentModeAuto, cfg.Pipeline().Orchestrator.DeploymentMode)
}

func TestConfig_Stats(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
pipeline:
  triage:
    enabled: false
  code_review:
    enabled: false
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	stats := cfg.Stats()
	assert.Equal(t, 3, stats.EnabledWorkers)
	assert.Equal(t, ProviderAnthropic, stats.LLMProvider)
	assert.Equal(t, DeploymentModeAuto, stats.DeploymentMode)
}
