package config

import "time"

// GitHubConfig holds resolved code-host integration configuration.
type GitHubConfig struct {
	TokenEnv        string   // Env var name containing GitHub PAT (default: "GITHUB_TOKEN")
	APIBaseURL      string   // API root (default: "https://api.github.com")
	AgentPrincipal  string   // Login the coding agent acts as (default: "copilot")
	DeployWorkflows []string // Workflow files observed after merge (default: deploy-api.yml, deploy-web.yml)
}

// SlackConfig holds resolved Slack notification configuration.
type SlackConfig struct {
	Enabled  bool
	TokenEnv string // Env var name for Slack bot token (default: "SLACK_BOT_TOKEN")
	Channel  string // Slack channel ID (e.g., "C12345678")
}

// RefDocsConfig holds reference document locations, relative to the config
// directory unless absolute.
type RefDocsConfig struct {
	ProductObjectives string // default: "product-objectives.md"
	SalesPositioning  string // default: "sales-positioning.md"
}

// CodebaseConfig holds repository map / file content cache tuning.
type CodebaseConfig struct {
	MapCacheTTL          time.Duration // default: 15m
	ContentCacheTTL      time.Duration // default: 30m
	MaxConcurrentFetches int           // default: 5
}
