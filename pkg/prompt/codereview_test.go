package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeReviewSystem_Default(t *testing.T) {
	b := NewBuilder(nil)
	result := b.CodeReviewSystem("")
	assert.Contains(t, result, "senior code reviewer")
	assert.Contains(t, result, `"qualityScore": int`)
}

func TestCodeReviewUser_Sections(t *testing.T) {
	b := NewBuilder(nil)
	result := b.CodeReviewUser(CodeReviewInput{
		Request:         featureRequest(),
		SolutionSummary: "Add a theme toggle.",
		SolutionJSON:    `{"solutionSummary": "Add a theme toggle."}`,
		Diff:            "diff --git a/src/app.css b/src/app.css\n+:root { --bg: #111; }",
		FilesChanged:    2,
		Additions:       40,
		Deletions:       3,
	})
	assert.Contains(t, result, "## Request")
	assert.Contains(t, result, "## Approved Solution\n\nAdd a theme toggle.")
	assert.Contains(t, result, "```json")
	assert.Contains(t, result, "**Files changed:** 2, **Additions:** 40, **Deletions:** 3")
	assert.Contains(t, result, "```diff")
	assert.Contains(t, result, "--bg: #111")
	assert.Contains(t, result, "## Your Task")
}

func TestCodeReviewUser_TruncatesDiff(t *testing.T) {
	b := NewBuilder(nil)
	diff := strings.Repeat("+added line\n", 10000)
	result := b.CodeReviewUser(CodeReviewInput{
		Request:        featureRequest(),
		SolutionJSON:   strings.Repeat(`{"k":"v"}`, 5000),
		Diff:           diff,
		MaxInputTokens: 100,
	})
	// 100 tokens ~= 400 chars; the diff gets 60% and the JSON 40%.
	assert.Contains(t, result, "... [truncated]")
	assert.Less(t, len(result), 3000)
}

func TestCodeReviewUser_NoBudget(t *testing.T) {
	b := NewBuilder(nil)
	diff := strings.Repeat("+line\n", 100)
	result := b.CodeReviewUser(CodeReviewInput{Request: featureRequest(), Diff: diff})
	assert.NotContains(t, result, "... [truncated]")
}

func TestParseCodeReviewResponse_Approved(t *testing.T) {
	resp := ParseCodeReviewResponse(`{
		"decision": "approved",
		"summary": "Implements the solution faithfully.",
		"designCompliance": true, "designComplianceNotes": "Matches the design.",
		"securityPass": true, "securityNotes": "No issues.",
		"codingStandardsPass": true, "codingStandardsNotes": "Consistent.",
		"qualityScore": 15
	}`)
	assert.Equal(t, ReviewApproved, resp.Decision)
	assert.True(t, resp.DesignCompliance)
	assert.Equal(t, 10, resp.QualityScore)
}

func TestParseCodeReviewResponse_ChangesRequested(t *testing.T) {
	resp := ParseCodeReviewResponse(`{
		"decision": "changes_requested",
		"summary": "Misses the migration step.",
		"qualityScore": 0
	}`)
	assert.Equal(t, ReviewChangesRequested, resp.Decision)
	assert.Equal(t, 1, resp.QualityScore)
}

func TestParseCodeReviewResponse_FallbackApproved(t *testing.T) {
	resp := ParseCodeReviewResponse("The change looks solid. Approved, nice work!")
	assert.Equal(t, ReviewApproved, resp.Decision)
	assert.Equal(t, ReviewFallbackNotes, resp.Summary)
	assert.Equal(t, ReviewFallbackNotes, resp.SecurityNotes)
}

func TestParseCodeReviewResponse_FallbackChanges(t *testing.T) {
	resp := ParseCodeReviewResponse("I could not finish reviewing this diff.")
	assert.Equal(t, ReviewChangesRequested, resp.Decision)
	assert.Equal(t, ReviewFallbackNotes, resp.Summary)
}

func TestParseCodeReviewResponse_UnknownDecision(t *testing.T) {
	resp := ParseCodeReviewResponse(`{"decision": "hold", "summary": "?"}`)
	assert.Equal(t, ReviewChangesRequested, resp.Decision)
	assert.Equal(t, ReviewFallbackNotes, resp.Summary)
}
