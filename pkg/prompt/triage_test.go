package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/ent"
)

func TestTriageSystem_IncludesReferenceDocs(t *testing.T) {
	b := newTestBuilder(t)
	result := b.TriageSystem("")
	assert.Contains(t, result, "You are the product owner")
	assert.Contains(t, result, "## Product Objectives")
	assert.Contains(t, result, "Ship self-serve onboarding this quarter.")
	assert.Contains(t, result, "## Sales Positioning")
	assert.Contains(t, result, "We win on integration depth.")
}

func TestTriageSystem_Override(t *testing.T) {
	b := newTestBuilder(t)
	result := b.TriageSystem("You are a strict gatekeeper.")
	assert.Contains(t, result, "You are a strict gatekeeper.")
	assert.NotContains(t, result, "You are the product owner")
	// Reference documents ride along regardless of the role override.
	assert.Contains(t, result, "## Product Objectives")
}

func TestTriageSystem_NoDocs(t *testing.T) {
	b := NewBuilder(nil)
	result := b.TriageSystem("")
	assert.Contains(t, result, "You are the product owner")
	assert.NotContains(t, result, "## Product Objectives")
}

func TestTriageUser_Sections(t *testing.T) {
	b := newTestBuilder(t)
	conversation := []*ent.Comment{
		{Author: "triage-agent", Content: "Which browsers?", IsAgent: true},
		{Author: "sam@example.com", Content: "Firefox and Chrome."},
	}
	siblings := []*ent.Request{{ID: 7, Title: "Dark mode for mobile", State: "triaged"}}

	result := b.TriageUser(featureRequest(), conversation, siblings)
	assert.Contains(t, result, "## Request")
	assert.Contains(t, result, "## Conversation")
	assert.Contains(t, result, "Firefox and Chrome.")
	assert.Contains(t, result, "## Other Requests In This Project")
	assert.Contains(t, result, "Dark mode for mobile")
}

func TestParseTriageResponse_Approve(t *testing.T) {
	content := `{
		"decision": "approve",
		"reasoning": "Clear and aligned.",
		"alignmentScore": 85,
		"completenessScore": 70,
		"salesAlignmentScore": 65,
		"clarificationQuestions": [],
		"suggestedPriority": "high",
		"tags": ["ui"],
		"isDuplicate": false,
		"duplicateOfRequestId": null
	}`
	resp := ParseTriageResponse(content)
	require.NotNil(t, resp)
	assert.Equal(t, DecisionApprove, resp.Decision)
	assert.Equal(t, "Clear and aligned.", resp.Reasoning)
	assert.Equal(t, 85, resp.AlignmentScore)
	assert.Equal(t, "high", resp.SuggestedPriority)
	assert.Nil(t, resp.DuplicateOfRequestID)
}

func TestParseTriageResponse_FencedClarify(t *testing.T) {
	content := "Here is my assessment:\n```json\n" +
		`{"decision": "CLARIFY", "reasoning": "Missing detail.", "alignmentScore": 50,
		  "completenessScore": 20, "salesAlignmentScore": 40,
		  "clarificationQuestions": ["Which browsers are affected?"]}` +
		"\n```\n"
	resp := ParseTriageResponse(content)
	assert.Equal(t, DecisionClarify, resp.Decision)
	assert.Equal(t, []string{"Which browsers are affected?"}, resp.ClarificationQuestions)
}

func TestParseTriageResponse_Garbage(t *testing.T) {
	resp := ParseTriageResponse("I think this request is fine, go ahead!")
	assert.Equal(t, DecisionClarify, resp.Decision)
	assert.Contains(t, resp.Reasoning, "could not be parsed")
	assert.Equal(t, 0, resp.AlignmentScore)
	assert.Equal(t, 0, resp.CompletenessScore)
	assert.Equal(t, 0, resp.SalesAlignmentScore)
}

func TestParseTriageResponse_UnknownDecision(t *testing.T) {
	resp := ParseTriageResponse(`{"decision": "escalate", "reasoning": "?"}`)
	assert.Equal(t, DecisionClarify, resp.Decision)
	assert.Contains(t, resp.Reasoning, "could not be parsed")
}

func TestParseTriageResponse_ClampsScores(t *testing.T) {
	resp := ParseTriageResponse(`{
		"decision": "approve", "reasoning": "ok",
		"alignmentScore": 150, "completenessScore": -5, "salesAlignmentScore": 100
	}`)
	assert.Equal(t, 100, resp.AlignmentScore)
	assert.Equal(t, 0, resp.CompletenessScore)
	assert.Equal(t, 100, resp.SalesAlignmentScore)
}

func TestParseTriageResponse_Duplicate(t *testing.T) {
	resp := ParseTriageResponse(`{
		"decision": "reject", "reasoning": "Duplicate of an open request.",
		"alignmentScore": 80, "completenessScore": 80, "salesAlignmentScore": 80,
		"isDuplicate": true, "duplicateOfRequestId": 7
	}`)
	assert.Equal(t, DecisionReject, resp.Decision)
	assert.True(t, resp.IsDuplicate)
	require.NotNil(t, resp.DuplicateOfRequestID)
	assert.Equal(t, 7, *resp.DuplicateOfRequestID)
}
