package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/pkg/config"
)

func TestNew(t *testing.T) {
	t.Run("missing credential", func(t *testing.T) {
		t.Setenv("CONVEYOR_TEST_LLM_KEY", "")
		_, err := New(config.LLMConfig{Provider: config.ProviderAnthropic, APIKeyEnv: "CONVEYOR_TEST_LLM_KEY"})
		require.ErrorIs(t, err, ErrMissingCredential)
		assert.Contains(t, err.Error(), "CONVEYOR_TEST_LLM_KEY")
	})

	t.Run("anthropic with default model", func(t *testing.T) {
		t.Setenv("CONVEYOR_TEST_LLM_KEY", "sk-test")
		client, err := New(config.LLMConfig{Provider: config.ProviderAnthropic, APIKeyEnv: "CONVEYOR_TEST_LLM_KEY"})
		require.NoError(t, err)
		assert.Equal(t, "anthropic", client.Provider())
		assert.Equal(t, DefaultAnthropicModel, client.Model())
	})

	t.Run("openai with explicit model", func(t *testing.T) {
		t.Setenv("CONVEYOR_TEST_LLM_KEY", "sk-test")
		client, err := New(config.LLMConfig{
			Provider:  config.ProviderOpenAI,
			Model:     "gpt-4o-mini",
			APIKeyEnv: "CONVEYOR_TEST_LLM_KEY",
			Timeout:   30 * time.Second,
		})
		require.NoError(t, err)
		assert.Equal(t, "openai", client.Provider())
		assert.Equal(t, "gpt-4o-mini", client.Model())
	})

	t.Run("empty provider defaults to anthropic", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "sk-test")
		client, err := New(config.LLMConfig{})
		require.NoError(t, err)
		assert.Equal(t, "anthropic", client.Provider())
	})

	t.Run("unknown provider rejected", func(t *testing.T) {
		t.Setenv("CONVEYOR_TEST_LLM_KEY", "sk-test")
		_, err := New(config.LLMConfig{Provider: "cohere", APIKeyEnv: "CONVEYOR_TEST_LLM_KEY"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported llm provider")
	})
}
