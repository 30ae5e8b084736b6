package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConveyorYAMLConfig represents the complete conveyor.yaml file structure
type ConveyorYAMLConfig struct {
	System   *SystemYAMLConfig   `yaml:"system"`
	LLM      *LLMYAMLConfig      `yaml:"llm"`
	Pipeline *PipelineYAMLConfig `yaml:"pipeline"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	GitHub   *GitHubYAMLConfig   `yaml:"github"`
	Slack    *SlackYAMLConfig    `yaml:"slack"`
	RefDocs  *RefDocsYAMLConfig  `yaml:"ref_docs"`
	Codebase *CodebaseYAMLConfig `yaml:"codebase"`
}

// GitHubYAMLConfig holds code-host settings from YAML.
type GitHubYAMLConfig struct {
	TokenEnv        string   `yaml:"token_env,omitempty"` // Defaults to "GITHUB_TOKEN" if omitted
	APIBaseURL      string   `yaml:"api_base_url,omitempty"`
	AgentPrincipal  string   `yaml:"agent_principal,omitempty"`
	DeployWorkflows []string `yaml:"deploy_workflows,omitempty"`
}

// SlackYAMLConfig holds Slack notification settings from YAML.
type SlackYAMLConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// RefDocsYAMLConfig holds reference document paths from YAML.
type RefDocsYAMLConfig struct {
	ProductObjectives string `yaml:"product_objectives,omitempty"`
	SalesPositioning  string `yaml:"sales_positioning,omitempty"`
}

// CodebaseYAMLConfig holds codebase cache settings from YAML.
type CodebaseYAMLConfig struct {
	MapCacheTTL          string `yaml:"map_cache_ttl,omitempty"`     // Parsed to time.Duration
	ContentCacheTTL      string `yaml:"content_cache_ttl,omitempty"` // Parsed to time.Duration
	MaxConcurrentFetches int    `yaml:"max_concurrent_fetches,omitempty"`
}

// LLMYAMLConfig holds chat-completion client settings from YAML.
type LLMYAMLConfig struct {
	Provider  string `yaml:"provider,omitempty"`
	Model     string `yaml:"model,omitempty"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
	Timeout   string `yaml:"timeout,omitempty"` // Parsed to time.Duration
}

// PipelineYAMLConfig mirrors PipelineSettings with pointer booleans so an
// explicit `enabled: false` is distinguishable from an omitted key.
type PipelineYAMLConfig struct {
	Triage         *TriageYAMLConfig         `yaml:"triage"`
	Architect      *ArchitectYAMLConfig      `yaml:"architect"`
	Implementation *ImplementationYAMLConfig `yaml:"implementation"`
	CodeReview     *CodeReviewYAMLConfig     `yaml:"code_review"`
	Orchestrator   *OrchestratorYAMLConfig   `yaml:"orchestrator"`
}

// TriageYAMLConfig holds triage stage settings from YAML.
type TriageYAMLConfig struct {
	Enabled       *bool   `yaml:"enabled,omitempty"`
	PollSec       int     `yaml:"poll_sec,omitempty"`
	MaxReviews    int     `yaml:"max_reviews,omitempty"`
	Temperature   float64 `yaml:"temperature,omitempty"`
	MaxTokens     int     `yaml:"max_tokens,omitempty"`
	DailyBudget   int     `yaml:"daily_budget,omitempty"`
	MonthlyBudget int     `yaml:"monthly_budget,omitempty"`
}

// ArchitectYAMLConfig holds architect stage settings from YAML.
type ArchitectYAMLConfig struct {
	Enabled         *bool   `yaml:"enabled,omitempty"`
	PollSec         int     `yaml:"poll_sec,omitempty"`
	MaxReviews      int     `yaml:"max_reviews,omitempty"`
	MaxFiles        int     `yaml:"max_files,omitempty"`
	MaxContentChars int     `yaml:"max_content_chars,omitempty"`
	Temperature     float64 `yaml:"temperature,omitempty"`
	MaxTokens       int     `yaml:"max_tokens,omitempty"`
	DailyBudget     int     `yaml:"daily_budget,omitempty"`
	MonthlyBudget   int     `yaml:"monthly_budget,omitempty"`
}

// ImplementationYAMLConfig holds implementation stage settings from YAML.
type ImplementationYAMLConfig struct {
	Enabled       *bool  `yaml:"enabled,omitempty"`
	AutoTrigger   *bool  `yaml:"auto_trigger,omitempty"`
	PollSec       int    `yaml:"poll_sec,omitempty"`
	PrPollSec     int    `yaml:"pr_poll_sec,omitempty"`
	MaxConcurrent int    `yaml:"max_concurrent,omitempty"`
	BaseBranch    string `yaml:"base_branch,omitempty"`
	Model         string `yaml:"model,omitempty"`
	MaxRetries    *int   `yaml:"max_retries,omitempty"`
}

// CodeReviewYAMLConfig holds code review stage settings from YAML.
type CodeReviewYAMLConfig struct {
	Enabled        *bool   `yaml:"enabled,omitempty"`
	AutoMerge      *bool   `yaml:"auto_merge,omitempty"`
	Temperature    float64 `yaml:"temperature,omitempty"`
	MaxInputTokens int     `yaml:"max_input_tokens,omitempty"`
	MaxTokens      int     `yaml:"max_tokens,omitempty"`
}

// OrchestratorYAMLConfig holds orchestrator settings from YAML.
type OrchestratorYAMLConfig struct {
	Enabled                     *bool  `yaml:"enabled,omitempty"`
	PollSec                     int    `yaml:"poll_sec,omitempty"`
	NeedsClarificationStaleDays int    `yaml:"needs_clarification_stale_days,omitempty"`
	ArchitectReviewStaleDays    int    `yaml:"architect_review_stale_days,omitempty"`
	ApprovedStaleDays           int    `yaml:"approved_stale_days,omitempty"`
	FailedStaleHours            int    `yaml:"failed_stale_hours,omitempty"`
	DeploymentMode              string `yaml:"deployment_mode,omitempty"`
	MaxDeployRetries            *int   `yaml:"max_deploy_retries,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load conveyor.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Resolve defaults for all sections
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"enabled_workers", stats.EnabledWorkers,
		"llm_provider", stats.LLMProvider,
		"deployment_mode", stats.DeploymentMode)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	yamlCfg, err := loader.loadConveyorYAML()
	if err != nil {
		return nil, NewLoadError("conveyor.yaml", err)
	}

	githubCfg, err := resolveGitHubConfig(yamlCfg.System)
	if err != nil {
		return nil, err
	}
	refDocsCfg, err := resolveRefDocsConfig(yamlCfg.System)
	if err != nil {
		return nil, err
	}
	slackCfg := resolveSlackConfig(yamlCfg.System)
	codebaseCfg := resolveCodebaseConfig(yamlCfg.System)
	llmCfg := resolveLLMConfig(yamlCfg.LLM)
	pipeline := resolvePipelineSettings(yamlCfg.Pipeline)

	cfg := &Config{
		configDir: configDir,
		LLM:       llmCfg,
		GitHub:    githubCfg,
		Slack:     slackCfg,
		RefDocs:   refDocsCfg,
		Codebase:  codebaseCfg,
	}
	cfg.pipeline.Store(pipeline)

	return cfg, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadConveyorYAML() (*ConveyorYAMLConfig, error) {
	var config ConveyorYAMLConfig

	if err := l.loadYAML("conveyor.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// resolveGitHubConfig resolves code-host configuration from system YAML, applying defaults.
func resolveGitHubConfig(sys *SystemYAMLConfig) (*GitHubConfig, error) {
	cfg := &GitHubConfig{
		TokenEnv:        "GITHUB_TOKEN",
		APIBaseURL:      "https://api.github.com",
		AgentPrincipal:  "copilot",
		DeployWorkflows: []string{"deploy-api.yml", "deploy-web.yml"},
	}

	if sys == nil || sys.GitHub == nil {
		return cfg, nil
	}

	user := &GitHubConfig{
		TokenEnv:        sys.GitHub.TokenEnv,
		APIBaseURL:      sys.GitHub.APIBaseURL,
		AgentPrincipal:  sys.GitHub.AgentPrincipal,
		DeployWorkflows: sys.GitHub.DeployWorkflows,
	}
	if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge github config: %w", err)
	}

	return cfg, nil
}

// resolveRefDocsConfig resolves reference document paths from system YAML, applying defaults.
func resolveRefDocsConfig(sys *SystemYAMLConfig) (*RefDocsConfig, error) {
	cfg := &RefDocsConfig{
		ProductObjectives: "product-objectives.md",
		SalesPositioning:  "sales-positioning.md",
	}

	if sys == nil || sys.RefDocs == nil {
		return cfg, nil
	}

	user := &RefDocsConfig{
		ProductObjectives: sys.RefDocs.ProductObjectives,
		SalesPositioning:  sys.RefDocs.SalesPositioning,
	}
	if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge ref_docs config: %w", err)
	}

	return cfg, nil
}

// resolveSlackConfig resolves Slack configuration from system YAML, applying defaults.
func resolveSlackConfig(sys *SystemYAMLConfig) *SlackConfig {
	cfg := &SlackConfig{
		Enabled:  false,
		TokenEnv: "SLACK_BOT_TOKEN",
	}

	if sys == nil || sys.Slack == nil {
		return cfg
	}

	s := sys.Slack
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.TokenEnv != "" {
		cfg.TokenEnv = s.TokenEnv
	}
	if s.Channel != "" {
		cfg.Channel = s.Channel
	}

	return cfg
}

// resolveCodebaseConfig resolves codebase cache configuration from system YAML, applying defaults.
func resolveCodebaseConfig(sys *SystemYAMLConfig) *CodebaseConfig {
	cfg := &CodebaseConfig{
		MapCacheTTL:          15 * time.Minute,
		ContentCacheTTL:      30 * time.Minute,
		MaxConcurrentFetches: 5,
	}

	if sys == nil || sys.Codebase == nil {
		return cfg
	}

	cb := sys.Codebase
	if cb.MapCacheTTL != "" {
		if d, err := time.ParseDuration(cb.MapCacheTTL); err == nil {
			cfg.MapCacheTTL = d
		} else {
			slog.Warn("Invalid map_cache_ttl in codebase config, using default",
				"value", cb.MapCacheTTL,
				"default", cfg.MapCacheTTL,
				"error", err)
		}
	}
	if cb.ContentCacheTTL != "" {
		if d, err := time.ParseDuration(cb.ContentCacheTTL); err == nil {
			cfg.ContentCacheTTL = d
		} else {
			slog.Warn("Invalid content_cache_ttl in codebase config, using default",
				"value", cb.ContentCacheTTL,
				"default", cfg.ContentCacheTTL,
				"error", err)
		}
	}
	if cb.MaxConcurrentFetches > 0 {
		cfg.MaxConcurrentFetches = cb.MaxConcurrentFetches
	}

	return cfg
}

// resolveLLMConfig resolves chat client configuration from YAML, applying defaults.
func resolveLLMConfig(y *LLMYAMLConfig) *LLMConfig {
	cfg := &LLMConfig{
		Provider: ProviderAnthropic,
		Timeout:  120 * time.Second,
	}

	if y != nil {
		if y.Provider != "" {
			cfg.Provider = y.Provider
		}
		if y.Model != "" {
			cfg.Model = y.Model
		}
		if y.APIKeyEnv != "" {
			cfg.APIKeyEnv = y.APIKeyEnv
		}
		if y.Timeout != "" {
			if d, err := time.ParseDuration(y.Timeout); err == nil {
				cfg.Timeout = d
			} else {
				slog.Warn("Invalid timeout in llm config, using default",
					"value", y.Timeout,
					"default", cfg.Timeout,
					"error", err)
			}
		}
	}

	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = DefaultAPIKeyEnv(cfg.Provider)
	}

	return cfg
}

// resolvePipelineSettings resolves pipeline settings from YAML, applying defaults.
func resolvePipelineSettings(y *PipelineYAMLConfig) *PipelineSettings {
	ps := DefaultPipelineSettings()

	if y == nil {
		return ps
	}

	ps.Triage = resolveTriageSettings(ps.Triage, y.Triage)
	ps.Architect = resolveArchitectSettings(ps.Architect, y.Architect)
	ps.Implementation = resolveImplementationSettings(ps.Implementation, y.Implementation)
	ps.CodeReview = resolveCodeReviewSettings(ps.CodeReview, y.CodeReview)
	ps.Orchestrator = resolveOrchestratorSettings(ps.Orchestrator, y.Orchestrator)

	return ps
}

func resolveTriageSettings(def TriageSettings, y *TriageYAMLConfig) TriageSettings {
	if y == nil {
		return def
	}
	if y.Enabled != nil {
		def.Enabled = *y.Enabled
	}
	if y.PollSec > 0 {
		def.PollSec = y.PollSec
	}
	if y.MaxReviews > 0 {
		def.MaxReviews = y.MaxReviews
	}
	if y.Temperature > 0 {
		def.Temperature = y.Temperature
	}
	if y.MaxTokens > 0 {
		def.MaxTokens = y.MaxTokens
	}
	if y.DailyBudget > 0 {
		def.DailyBudget = y.DailyBudget
	}
	if y.MonthlyBudget > 0 {
		def.MonthlyBudget = y.MonthlyBudget
	}
	return def
}

func resolveArchitectSettings(def ArchitectSettings, y *ArchitectYAMLConfig) ArchitectSettings {
	if y == nil {
		return def
	}
	if y.Enabled != nil {
		def.Enabled = *y.Enabled
	}
	if y.PollSec > 0 {
		def.PollSec = y.PollSec
	}
	if y.MaxReviews > 0 {
		def.MaxReviews = y.MaxReviews
	}
	if y.MaxFiles > 0 {
		def.MaxFiles = y.MaxFiles
	}
	if y.MaxContentChars > 0 {
		def.MaxContentChars = y.MaxContentChars
	}
	if y.Temperature > 0 {
		def.Temperature = y.Temperature
	}
	if y.MaxTokens > 0 {
		def.MaxTokens = y.MaxTokens
	}
	if y.DailyBudget > 0 {
		def.DailyBudget = y.DailyBudget
	}
	if y.MonthlyBudget > 0 {
		def.MonthlyBudget = y.MonthlyBudget
	}
	return def
}

func resolveImplementationSettings(def ImplementationSettings, y *ImplementationYAMLConfig) ImplementationSettings {
	if y == nil {
		return def
	}
	if y.Enabled != nil {
		def.Enabled = *y.Enabled
	}
	if y.AutoTrigger != nil {
		def.AutoTrigger = *y.AutoTrigger
	}
	if y.PollSec > 0 {
		def.PollSec = y.PollSec
	}
	if y.PrPollSec > 0 {
		def.PrPollSec = y.PrPollSec
	}
	if y.MaxConcurrent > 0 {
		def.MaxConcurrent = y.MaxConcurrent
	}
	if y.BaseBranch != "" {
		def.BaseBranch = y.BaseBranch
	}
	if y.Model != "" {
		def.Model = y.Model
	}
	if y.MaxRetries != nil {
		def.MaxRetries = *y.MaxRetries
	}
	return def
}

func resolveCodeReviewSettings(def CodeReviewSettings, y *CodeReviewYAMLConfig) CodeReviewSettings {
	if y == nil {
		return def
	}
	if y.Enabled != nil {
		def.Enabled = *y.Enabled
	}
	if y.AutoMerge != nil {
		def.AutoMerge = *y.AutoMerge
	}
	if y.Temperature > 0 {
		def.Temperature = y.Temperature
	}
	if y.MaxInputTokens > 0 {
		def.MaxInputTokens = y.MaxInputTokens
	}
	if y.MaxTokens > 0 {
		def.MaxTokens = y.MaxTokens
	}
	return def
}

func resolveOrchestratorSettings(def OrchestratorSettings, y *OrchestratorYAMLConfig) OrchestratorSettings {
	if y == nil {
		return def
	}
	if y.Enabled != nil {
		def.Enabled = *y.Enabled
	}
	if y.PollSec > 0 {
		def.PollSec = y.PollSec
	}
	if y.NeedsClarificationStaleDays > 0 {
		def.NeedsClarificationStaleDays = y.NeedsClarificationStaleDays
	}
	if y.ArchitectReviewStaleDays > 0 {
		def.ArchitectReviewStaleDays = y.ArchitectReviewStaleDays
	}
	if y.ApprovedStaleDays > 0 {
		def.ApprovedStaleDays = y.ApprovedStaleDays
	}
	if y.FailedStaleHours > 0 {
		def.FailedStaleHours = y.FailedStaleHours
	}
	if y.DeploymentMode != "" {
		def.DeploymentMode = y.DeploymentMode
	}
	if y.MaxDeployRetries != nil {
		def.MaxDeployRetries = *y.MaxDeployRetries
	}
	return def
}
