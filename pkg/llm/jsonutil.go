package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	// fencedJSONPattern matches a JSON object inside a markdown code fence.
	fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	// bareJSONPattern matches the outermost JSON object anywhere in the text.
	bareJSONPattern = regexp.MustCompile(`(?s)\{[\s\S]*\}`)
	// fencedArrayPattern matches a JSON array inside a markdown code fence.
	fencedArrayPattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\[.*\\])\\s*```")
	// bareArrayPattern matches the outermost JSON array anywhere in the text.
	bareArrayPattern = regexp.MustCompile(`(?s)\[[\s\S]*\]`)
	// trailingCommaPattern matches trailing commas before ] or }.
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractJSON pulls a JSON object out of a model response. Models wrap
// JSON in markdown fences, lead with prose, add // comments, and leave
// trailing commas; this strips all of that. Returns "" when no object
// is found.
func ExtractJSON(content string) string {
	raw := ""
	if m := fencedJSONPattern.FindStringSubmatch(content); len(m) > 1 {
		raw = m[1]
	} else if m := bareJSONPattern.FindString(content); m != "" {
		raw = m
	}
	if raw == "" {
		return ""
	}

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = stripLineComment(line)
	}
	cleaned := strings.Join(lines, "\n")

	return trailingCommaPattern.ReplaceAllString(cleaned, "$1")
}

// ExtractJSONArray pulls a JSON array out of a model response, applying
// the same fence and comment cleanup as ExtractJSON. Returns "" when no
// array is found.
func ExtractJSONArray(content string) string {
	raw := ""
	if m := fencedArrayPattern.FindStringSubmatch(content); len(m) > 1 {
		raw = m[1]
	} else if m := bareArrayPattern.FindString(content); m != "" {
		raw = m
	}
	if raw == "" {
		return ""
	}

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = stripLineComment(line)
	}
	cleaned := strings.Join(lines, "\n")

	return trailingCommaPattern.ReplaceAllString(cleaned, "$1")
}

// DecodeJSON extracts a JSON object from a model response and unmarshals
// it into v.
func DecodeJSON(content string, v any) error {
	raw := ExtractJSON(content)
	if raw == "" {
		return fmt.Errorf("no JSON object in response")
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode response JSON: %w", err)
	}
	return nil
}

// DecodeJSONArray extracts a JSON array from a model response and
// unmarshals it into v.
func DecodeJSONArray(content string, v any) error {
	raw := ExtractJSONArray(content)
	if raw == "" {
		return fmt.Errorf("no JSON array in response")
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode response JSON: %w", err)
	}
	return nil
}

// stripLineComment removes a trailing // comment from a line, leaving
// string values that contain "//" (URLs and the like) intact.
func stripLineComment(line string) string {
	if !strings.Contains(line, "//") {
		return line
	}

	inString := false
	escaped := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if ch == '/' && !inString && i+1 < len(line) && line[i+1] == '/' {
			return strings.TrimRight(line[:i], " \t")
		}
	}
	return line
}
