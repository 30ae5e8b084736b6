package services

import (
	"context"
	"fmt"

	"github.com/conveyor-dev/conveyor/ent"
)

// PromptService stores per-stage system prompt overrides. A missing row
// means the stage uses its compiled-in default.
type PromptService struct {
	client *ent.Client
}

// NewPromptService creates a new PromptService
func NewPromptService(client *ent.Client) *PromptService {
	return &PromptService{client: client}
}

// GetPrompt returns the stored override for a stage, or ErrNotFound.
func (s *PromptService) GetPrompt(ctx context.Context, stage string) (string, error) {
	row, err := s.client.SystemPrompt.Get(ctx, stage)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get system prompt: %w", err)
	}
	return row.Content, nil
}

// SetPrompt stores or replaces the override for a stage.
func (s *PromptService) SetPrompt(ctx context.Context, stage, content string) error {
	if stage == "" {
		return NewValidationError("stage", "required")
	}
	if content == "" {
		return NewValidationError("content", "required")
	}

	err := s.client.SystemPrompt.UpdateOneID(stage).
		SetContent(content).
		Exec(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("failed to update system prompt: %w", err)
	}

	if err := s.client.SystemPrompt.Create().
		SetID(stage).
		SetContent(content).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create system prompt: %w", err)
	}
	return nil
}

// DeletePrompt removes a stage override, restoring the compiled default.
func (s *PromptService) DeletePrompt(ctx context.Context, stage string) error {
	err := s.client.SystemPrompt.DeleteOneID(stage).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete system prompt: %w", err)
	}
	return nil
}
