package llm

import (
	"sync"

	"github.com/tiktoken-go/tokenizer"
)

var (
	codecOnce sync.Once
	codec     tokenizer.Codec
)

// EstimateTokens approximates the token count of text using the GPT-4
// encoding, which is close enough for budget checks across providers.
// Falls back to a 4-chars-per-token heuristic if the codec fails.
func EstimateTokens(text string) int {
	codecOnce.Do(func() {
		c, err := tokenizer.ForModel(tokenizer.GPT4)
		if err == nil {
			codec = c
		}
	})
	if codec == nil {
		return len(text) / 4
	}
	n, err := codec.Count(text)
	if err != nil {
		return len(text) / 4
	}
	return n
}

// TruncateToTokens trims text so its estimated token count fits within
// limit. Truncation is proportional by characters, not exact token
// boundaries, with a safety margin to stay under the limit.
func TruncateToTokens(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	current := EstimateTokens(text)
	if current <= limit {
		return text
	}

	ratio := float64(limit) / float64(current)
	charLimit := int(float64(len(text)) * ratio * 0.9)
	if charLimit >= len(text) {
		return text
	}
	if charLimit < 0 {
		charLimit = 0
	}

	return text[:charLimit] + "\n... [truncated]"
}
