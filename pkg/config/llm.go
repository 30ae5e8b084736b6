package config

import "time"

// Supported LLM providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// LLMConfig holds resolved chat-completion client configuration. One
// shared client serves every stage; each stage supplies its own
// temperature and token limits per call.
type LLMConfig struct {
	Provider  string        // "anthropic" or "openai"
	Model     string        // Provider model name; empty selects the provider default
	APIKeyEnv string        // Env var holding the credential
	Timeout   time.Duration // Per-call timeout (default: 120s)
}

// DefaultAPIKeyEnv returns the conventional credential env var for a provider.
func DefaultAPIKeyEnv(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return "ANTHROPIC_API_KEY"
	}
}
