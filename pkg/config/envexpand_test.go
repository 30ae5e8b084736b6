package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("CONVEYOR_TEST_TOKEN", "tok-123")
	t.Setenv("CONVEYOR_TEST_HOST", "db.internal")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single variable",
			input: "token: {{ .CONVEYOR_TEST_TOKEN }}",
			want:  "token: tok-123",
		},
		{
			name:  "multiple variables",
			input: "dsn: {{ .CONVEYOR_TEST_HOST }}:{{ .CONVEYOR_TEST_TOKEN }}",
			want:  "dsn: db.internal:tok-123",
		},
		{
			name:  "missing variable expands to empty",
			input: "value: {{ .CONVEYOR_TEST_MISSING_VAR }}",
			want:  "value: ",
		},
		{
			name:  "dollar signs are preserved",
			input: "pattern: ^secret.*$ price\\$[0-9]+",
			want:  "pattern: ^secret.*$ price\\$[0-9]+",
		},
		{
			name:  "no template syntax passes through",
			input: "plain: yaml\nnested:\n  key: value",
			want:  "plain: yaml\nnested:\n  key: value",
		},
		{
			name:  "malformed template returns original",
			input: "broken: {{ .UNCLOSED",
			want:  "broken: {{ .UNCLOSED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}
