package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "fenced json block",
			content:  "Here is the result:\n```json\n{\"decision\": \"approve\"}\n```\nDone.",
			expected: `{"decision": "approve"}`,
		},
		{
			name:     "fence without language tag",
			content:  "```\n{\"score\": 80}\n```",
			expected: `{"score": 80}`,
		},
		{
			name:     "bare object with surrounding prose",
			content:  "Sure! {\"decision\": \"reject\", \"reason\": \"duplicate\"} Let me know.",
			expected: `{"decision": "reject", "reason": "duplicate"}`,
		},
		{
			name:     "trailing commas removed",
			content:  `{"tags": ["a", "b",], "score": 5,}`,
			expected: `{"tags": ["a", "b"], "score": 5}`,
		},
		{
			name:     "line comments stripped",
			content:  "{\n\"score\": 7, // model explains itself\n\"decision\": \"approve\"\n}",
			expected: "{\n\"score\": 7,\n\"decision\": \"approve\"\n}",
		},
		{
			name:     "url inside string survives",
			content:  `{"pr_url": "https://github.com/acme/widgets/pull/7"}`,
			expected: `{"pr_url": "https://github.com/acme/widgets/pull/7"}`,
		},
		{
			name:     "no json at all",
			content:  "I could not produce a review.",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractJSON(tt.content))
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "fenced array",
			content:  "Most relevant first:\n```json\n[\"src/api.go\", \"src/db.go\"]\n```",
			expected: `["src/api.go", "src/db.go"]`,
		},
		{
			name:     "bare array with prose",
			content:  `The files are ["a.go", "b.go"] as discussed.`,
			expected: `["a.go", "b.go"]`,
		},
		{
			name:     "trailing comma removed",
			content:  `["a.go", "b.go",]`,
			expected: `["a.go", "b.go"]`,
		},
		{
			name:     "no array at all",
			content:  "I need more context to pick files.",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractJSONArray(tt.content))
		})
	}
}

func TestDecodeJSONArray(t *testing.T) {
	t.Run("decodes fenced array", func(t *testing.T) {
		var paths []string
		err := DecodeJSONArray("```json\n[\"x.go\"]\n```", &paths)
		require.NoError(t, err)
		assert.Equal(t, []string{"x.go"}, paths)
	})

	t.Run("reports missing array", func(t *testing.T) {
		var paths []string
		err := DecodeJSONArray("no list here", &paths)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no JSON array")
	})
}

func TestDecodeJSON(t *testing.T) {
	type verdict struct {
		Decision string `json:"decision"`
		Score    int    `json:"score"`
	}

	t.Run("decodes fenced response", func(t *testing.T) {
		var v verdict
		err := DecodeJSON("```json\n{\"decision\": \"approve\", \"score\": 85}\n```", &v)
		require.NoError(t, err)
		assert.Equal(t, "approve", v.Decision)
		assert.Equal(t, 85, v.Score)
	})

	t.Run("reports missing object", func(t *testing.T) {
		var v verdict
		err := DecodeJSON("no structured output here", &v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no JSON object")
	})

	t.Run("reports malformed object", func(t *testing.T) {
		var v verdict
		err := DecodeJSON(`{"decision": approve}`, &v)
		require.Error(t, err)
	})
}

func TestEstimateTokens(t *testing.T) {
	assert.Zero(t, EstimateTokens(""))

	short := EstimateTokens("hello world")
	long := EstimateTokens("The quick brown fox jumps over the lazy dog, repeatedly, all afternoon.")
	assert.Greater(t, short, 0)
	assert.Greater(t, long, short)
}

func TestTruncateToTokens(t *testing.T) {
	text := ""
	for i := 0; i < 500; i++ {
		text += "some diff content line that keeps going\n"
	}

	t.Run("fits within limit", func(t *testing.T) {
		out := TruncateToTokens(text, 100)
		assert.Less(t, len(out), len(text))
		assert.LessOrEqual(t, EstimateTokens(out), 100)
	})

	t.Run("short text untouched", func(t *testing.T) {
		assert.Equal(t, "tiny", TruncateToTokens("tiny", 100))
	})

	t.Run("zero limit disables truncation", func(t *testing.T) {
		assert.Equal(t, text, TruncateToTokens(text, 0))
	})
}
