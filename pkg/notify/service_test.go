package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conveyor-dev/conveyor/pkg/config"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("NotifyStall is no-op", func(_ *testing.T) {
		s.NotifyStall(context.Background(), StallInput{RequestID: 1, State: "approved"})
	})

	t.Run("NotifyDeployment is no-op", func(_ *testing.T) {
		s.NotifyDeployment(context.Background(), DeploymentInput{RequestID: 1, Status: DeployFailed})
	})
}

func TestNewService(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		assert.Nil(t, NewService(nil))
	})

	t.Run("disabled", func(t *testing.T) {
		assert.Nil(t, NewService(&config.SlackConfig{Enabled: false, Channel: "C123"}))
	})

	t.Run("missing channel", func(t *testing.T) {
		t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
		assert.Nil(t, NewService(&config.SlackConfig{Enabled: true, TokenEnv: "SLACK_BOT_TOKEN"}))
	})

	t.Run("empty token env", func(t *testing.T) {
		t.Setenv("SLACK_BOT_TOKEN", "")
		cfg := &config.SlackConfig{Enabled: true, TokenEnv: "SLACK_BOT_TOKEN", Channel: "C123"}
		assert.Nil(t, NewService(cfg))
	})

	t.Run("configured", func(t *testing.T) {
		t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
		cfg := &config.SlackConfig{Enabled: true, TokenEnv: "SLACK_BOT_TOKEN", Channel: "C123"}
		assert.NotNil(t, NewService(cfg))
	})
}
