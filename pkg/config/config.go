package config

import (
	"fmt"
	"sync/atomic"
)

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application. Static sections (LLM, GitHub,
// Slack, documents, caches) are fixed at startup; the pipeline section
// is held behind an atomic pointer so admin updates become visible to
// workers on their next cycle without a restart.
type Config struct {
	configDir string // Configuration directory path (for reference)

	LLM      *LLMConfig
	GitHub   *GitHubConfig
	Slack    *SlackConfig
	RefDocs  *RefDocsConfig
	Codebase *CodebaseConfig

	pipeline atomic.Pointer[PipelineSettings]
}

// Pipeline returns the current pipeline settings snapshot. Callers must
// not mutate the returned value; use UpdatePipeline to change settings.
func (c *Config) Pipeline() *PipelineSettings {
	return c.pipeline.Load()
}

// UpdatePipeline validates and atomically swaps in new pipeline settings.
func (c *Config) UpdatePipeline(ps *PipelineSettings) error {
	if err := validatePipeline(ps); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	c.pipeline.Store(ps.Clone())
	return nil
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats contains statistics about loaded configuration
type Stats struct {
	EnabledWorkers int
	LLMProvider    string
	DeploymentMode string
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLM != nil {
		s.LLMProvider = c.LLM.Provider
	}
	ps := c.Pipeline()
	if ps == nil {
		return s
	}
	s.DeploymentMode = ps.Orchestrator.DeploymentMode
	for _, enabled := range []bool{
		ps.Triage.Enabled,
		ps.Architect.Enabled,
		ps.Implementation.Enabled,
		ps.CodeReview.Enabled,
		ps.Orchestrator.Enabled,
	} {
		if enabled {
			s.EnabledWorkers++
		}
	}
	return s
}
