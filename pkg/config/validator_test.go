package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePipeline(t *testing.T) {
	mutate := func(fn func(*PipelineSettings)) *PipelineSettings {
		ps := DefaultPipelineSettings()
		fn(ps)
		return ps
	}

	tests := []struct {
		name     string
		ps       *PipelineSettings
		wantErr  bool
		contains string
	}{
		{
			name:    "defaults are valid",
			ps:      DefaultPipelineSettings(),
			wantErr: false,
		},
		{
			name:     "nil settings",
			ps:       nil,
			wantErr:  true,
			contains: "pipeline",
		},
		{
			name:     "zero triage poll",
			ps:       mutate(func(ps *PipelineSettings) { ps.Triage.PollSec = 0 }),
			wantErr:  true,
			contains: "poll_sec",
		},
		{
			name:     "negative budget",
			ps:       mutate(func(ps *PipelineSettings) { ps.Architect.MonthlyBudget = -1 }),
			wantErr:  true,
			contains: "budget",
		},
		{
			name:     "temperature out of range",
			ps:       mutate(func(ps *PipelineSettings) { ps.CodeReview.Temperature = 3.0 }),
			wantErr:  true,
			contains: "temperature",
		},
		{
			name:     "empty base branch",
			ps:       mutate(func(ps *PipelineSettings) { ps.Implementation.BaseBranch = "" }),
			wantErr:  true,
			contains: "base_branch",
		},
		{
			name:     "zero max concurrent",
			ps:       mutate(func(ps *PipelineSettings) { ps.Implementation.MaxConcurrent = 0 }),
			wantErr:  true,
			contains: "max_concurrent",
		},
		{
			name:     "bad deployment mode",
			ps:       mutate(func(ps *PipelineSettings) { ps.Orchestrator.DeploymentMode = "auto" }),
			wantErr:  true,
			contains: "deployment_mode",
		},
		{
			name:     "negative deploy retries",
			ps:       mutate(func(ps *PipelineSettings) { ps.Orchestrator.MaxDeployRetries = -1 }),
			wantErr:  true,
			contains: "max_deploy_retries",
		},
		{
			name:     "zero stall threshold",
			ps:       mutate(func(ps *PipelineSettings) { ps.Orchestrator.ApprovedStaleDays = 0 }),
			wantErr:  true,
			contains: "stale_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePipeline(tt.ps)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.contains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Format(t *testing.T) {
	err := NewValidationError("pipeline.triage", "poll_sec", ErrInvalidValue)
	assert.Contains(t, err.Error(), "pipeline.triage")
	assert.Contains(t, err.Error(), "poll_sec")
	assert.ErrorIs(t, err, ErrInvalidValue)

	noField := NewValidationError("llm", "", ErrMissingRequiredField)
	assert.Equal(t, "llm: missing required field", noField.Error())
}
