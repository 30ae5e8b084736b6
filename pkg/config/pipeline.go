package config

// PipelineSettings groups the per-worker knobs that admins may edit at
// runtime. Workers read a fresh snapshot at the start of every cycle, so
// an update takes effect without a restart.
type PipelineSettings struct {
	Triage         TriageSettings         `yaml:"triage" json:"triage"`
	Architect      ArchitectSettings      `yaml:"architect" json:"architect"`
	Implementation ImplementationSettings `yaml:"implementation" json:"implementation"`
	CodeReview     CodeReviewSettings     `yaml:"code_review" json:"code_review"`
	Orchestrator   OrchestratorSettings   `yaml:"orchestrator" json:"orchestrator"`
}

// TriageSettings controls the product-owner triage stage.
type TriageSettings struct {
	Enabled       bool    `yaml:"enabled" json:"enabled"`
	PollSec       int     `yaml:"poll_sec" json:"poll_sec"`
	MaxReviews    int     `yaml:"max_reviews" json:"max_reviews"`
	Temperature   float64 `yaml:"temperature" json:"temperature"`
	MaxTokens     int     `yaml:"max_tokens" json:"max_tokens"`
	DailyBudget   int     `yaml:"daily_budget" json:"daily_budget"`
	MonthlyBudget int     `yaml:"monthly_budget" json:"monthly_budget"`
}

// ArchitectSettings controls the solution-design stage.
type ArchitectSettings struct {
	Enabled         bool    `yaml:"enabled" json:"enabled"`
	PollSec         int     `yaml:"poll_sec" json:"poll_sec"`
	MaxReviews      int     `yaml:"max_reviews" json:"max_reviews"`
	MaxFiles        int     `yaml:"max_files" json:"max_files"`
	MaxContentChars int     `yaml:"max_content_chars" json:"max_content_chars"`
	Temperature     float64 `yaml:"temperature" json:"temperature"`
	MaxTokens       int     `yaml:"max_tokens" json:"max_tokens"`
	DailyBudget     int     `yaml:"daily_budget" json:"daily_budget"`
	MonthlyBudget   int     `yaml:"monthly_budget" json:"monthly_budget"`
}

// ImplementationSettings controls coding-agent dispatch and PR monitoring.
type ImplementationSettings struct {
	Enabled       bool   `yaml:"enabled" json:"enabled"`
	AutoTrigger   bool   `yaml:"auto_trigger" json:"auto_trigger"`
	PollSec       int    `yaml:"poll_sec" json:"poll_sec"`
	PrPollSec     int    `yaml:"pr_poll_sec" json:"pr_poll_sec"`
	MaxConcurrent int    `yaml:"max_concurrent" json:"max_concurrent"`
	BaseBranch    string `yaml:"base_branch" json:"base_branch"`
	Model         string `yaml:"model" json:"model"`
	MaxRetries    int    `yaml:"max_retries" json:"max_retries"`
}

// CodeReviewSettings controls the automated PR review stage.
// The review worker polls at the implementation pr_poll_sec cadence since
// it consumes what the PR monitor produces.
type CodeReviewSettings struct {
	Enabled        bool    `yaml:"enabled" json:"enabled"`
	AutoMerge      bool    `yaml:"auto_merge" json:"auto_merge"`
	Temperature    float64 `yaml:"temperature" json:"temperature"`
	MaxInputTokens int     `yaml:"max_input_tokens" json:"max_input_tokens"`
	MaxTokens      int     `yaml:"max_tokens" json:"max_tokens"`
}

// OrchestratorSettings controls stall detection and deployment driving.
type OrchestratorSettings struct {
	Enabled                     bool   `yaml:"enabled" json:"enabled"`
	PollSec                     int    `yaml:"poll_sec" json:"poll_sec"`
	NeedsClarificationStaleDays int    `yaml:"needs_clarification_stale_days" json:"needs_clarification_stale_days"`
	ArchitectReviewStaleDays    int    `yaml:"architect_review_stale_days" json:"architect_review_stale_days"`
	ApprovedStaleDays           int    `yaml:"approved_stale_days" json:"approved_stale_days"`
	FailedStaleHours            int    `yaml:"failed_stale_hours" json:"failed_stale_hours"`
	DeploymentMode              string `yaml:"deployment_mode" json:"deployment_mode"`
	MaxDeployRetries            int    `yaml:"max_deploy_retries" json:"max_deploy_retries"`
}

// Deployment modes recognized by the orchestrator.
const (
	DeploymentModeAuto   = "Auto"
	DeploymentModeStaged = "Staged"
)

// DefaultPipelineSettings returns the built-in pipeline defaults.
func DefaultPipelineSettings() *PipelineSettings {
	return &PipelineSettings{
		Triage: TriageSettings{
			Enabled:       true,
			PollSec:       30,
			MaxReviews:    3,
			Temperature:   0.3,
			MaxTokens:     2000,
			DailyBudget:   0,
			MonthlyBudget: 0,
		},
		Architect: ArchitectSettings{
			Enabled:         true,
			PollSec:         60,
			MaxReviews:      3,
			MaxFiles:        20,
			MaxContentChars: 50000,
			Temperature:     0.2,
			MaxTokens:       4000,
			DailyBudget:     0,
			MonthlyBudget:   0,
		},
		Implementation: ImplementationSettings{
			Enabled:       true,
			AutoTrigger:   true,
			PollSec:       60,
			PrPollSec:     120,
			MaxConcurrent: 3,
			BaseBranch:    "main",
			Model:         "",
			MaxRetries:    2,
		},
		CodeReview: CodeReviewSettings{
			Enabled:        true,
			AutoMerge:      false,
			Temperature:    0.2,
			MaxInputTokens: 6000,
			MaxTokens:      2000,
		},
		Orchestrator: OrchestratorSettings{
			Enabled:                     true,
			PollSec:                     60,
			NeedsClarificationStaleDays: 7,
			ArchitectReviewStaleDays:    3,
			ApprovedStaleDays:           1,
			FailedStaleHours:            24,
			DeploymentMode:              DeploymentModeAuto,
			MaxDeployRetries:            3,
		},
	}
}

// Clone returns a deep copy so callers can mutate a candidate settings
// object without touching the live snapshot.
func (p *PipelineSettings) Clone() *PipelineSettings {
	cp := *p
	return &cp
}
