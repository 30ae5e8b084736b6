package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/triagereview"
	"github.com/conveyor-dev/conveyor/pkg/codebase"
)

func TestFormatRequestSection_Feature(t *testing.T) {
	result := FormatRequestSection(featureRequest())
	assert.Contains(t, result, "## Request")
	assert.Contains(t, result, "**ID:** 42")
	assert.Contains(t, result, "**Title:** Add dark mode")
	assert.Contains(t, result, "**Kind:** feature")
	assert.Contains(t, result, "**Priority:** high")
	assert.Contains(t, result, "Users want a dark theme")
	assert.NotContains(t, result, "Steps To Reproduce")
}

func TestFormatRequestSection_Bug(t *testing.T) {
	req := featureRequest()
	req.SubmitterName = strPtr("Sam")
	req.StepsToReproduce = strPtr("1. Open the dashboard")
	req.ExpectedBehavior = strPtr("Dashboard loads")
	req.ActualBehavior = strPtr("500 error")

	result := FormatRequestSection(req)
	assert.Contains(t, result, "**Submitted by:** Sam")
	assert.Contains(t, result, "### Steps To Reproduce\n1. Open the dashboard")
	assert.Contains(t, result, "### Expected Behavior\nDashboard loads")
	assert.Contains(t, result, "### Actual Behavior\n500 error")
}

func TestFormatConversationSection_Empty(t *testing.T) {
	result := FormatConversationSection(nil)
	assert.Contains(t, result, "No prior conversation")
}

func TestFormatConversationSection_Roles(t *testing.T) {
	comments := []*ent.Comment{
		{Author: "triage-agent", Content: "Please add browser details.", IsAgent: true},
		{Author: "sam@example.com", Content: "Happens on Firefox 128."},
	}
	result := FormatConversationSection(comments)
	assert.Contains(t, result, "**triage-agent (agent):**\nPlease add browser details.")
	assert.Contains(t, result, "**sam@example.com (submitter):**\nHappens on Firefox 128.")
}

func TestFormatSiblingsSection_Empty(t *testing.T) {
	result := FormatSiblingsSection(nil)
	assert.Contains(t, result, "None.")
}

func TestFormatSiblingsSection_Entries(t *testing.T) {
	siblings := []*ent.Request{
		{ID: 7, Title: "Dark mode for mobile", State: "triaged"},
		{ID: 9, Title: "Export to CSV", State: "done"},
	}
	result := FormatSiblingsSection(siblings)
	assert.Contains(t, result, "- [7] (triaged) Dark mode for mobile")
	assert.Contains(t, result, "- [9] (done) Export to CSV")
}

func TestFormatRepoMapSection_Empty(t *testing.T) {
	result := FormatRepoMapSection("", 0)
	assert.Contains(t, result, "Not available")
}

func TestFormatRepoMapSection_Fenced(t *testing.T) {
	result := FormatRepoMapSection("src/\n  api.go (~100 lines)", 0)
	assert.Contains(t, result, "## Repository Map")
	assert.Contains(t, result, "```\nsrc/\n  api.go (~100 lines)\n```")
}

func TestFormatRepoMapSection_Trimmed(t *testing.T) {
	rendered := strings.Repeat("src/file.go\n", 100)
	result := FormatRepoMapSection(rendered, 50)
	assert.Contains(t, result, "... [truncated]")
	assert.Less(t, len(result), len(rendered))
}

func TestFormatFileContentsSection_Empty(t *testing.T) {
	result := FormatFileContentsSection(nil)
	assert.Contains(t, result, "No files fetched")
}

func TestFormatFileContentsSection_Files(t *testing.T) {
	files := []codebase.File{
		{Path: "src/api.go", Content: "package api"},
		{Path: "src/db.go", Content: "package db", Truncated: true},
	}
	result := FormatFileContentsSection(files)
	assert.Contains(t, result, "### src/api.go")
	assert.Contains(t, result, "package api")
	assert.Contains(t, result, "### src/db.go")
	assert.Contains(t, result, "(file truncated to fit the character budget)")
}

func TestFormatTriageSummarySection_Nil(t *testing.T) {
	result := FormatTriageSummarySection(nil)
	assert.Contains(t, result, "Not available")
}

func TestFormatTriageSummarySection_Populated(t *testing.T) {
	tr := &ent.TriageReview{
		Decision:            triagereview.DecisionApprove,
		Reasoning:           "Aligned with the onboarding objective.",
		AlignmentScore:      90,
		CompletenessScore:   75,
		SalesAlignmentScore: 60,
		Tags:                []string{"ui", "onboarding"},
	}
	result := FormatTriageSummarySection(tr)
	assert.Contains(t, result, "## Product Owner Review")
	assert.Contains(t, result, "**Decision:** approve")
	assert.Contains(t, result, "**Alignment:** 90/100")
	assert.Contains(t, result, "**Tags:** ui, onboarding")
	assert.Contains(t, result, "Aligned with the onboarding objective.")
}

func TestFormatRevisionSection(t *testing.T) {
	result := FormatRevisionSection("Add a theme toggle.", "Use CSS variables instead.")
	assert.Contains(t, result, "## Revision Context")
	assert.Contains(t, result, "### Previous Solution Summary\nAdd a theme toggle.")
	assert.Contains(t, result, "### Human Feedback\nUse CSS variables instead.")
}
