package prompt

import (
	"strings"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/pkg/llm"
)

// Triage decisions as returned by the model.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
	DecisionClarify = "clarify"
)

// TriageFallbackReasoning is stored when the model response cannot be
// parsed and the request is escalated instead.
const TriageFallbackReasoning = "LLM response could not be parsed - escalated for human review"

// triageSystemRole is the default product owner role prompt.
const triageSystemRole = `## Product Owner Instructions

You are the product owner for a software product. You evaluate incoming
development requests (bugs, features, enhancements, questions) and decide
whether each one should enter the development pipeline.

Evaluate every request against:
1. The product objectives below: does the request advance them?
2. The sales positioning below: does it strengthen how the product sells?
3. Completeness: does the request contain enough detail to act on?
4. Duplication: does it restate another request listed in the user message?

Decision guide:
- "approve": aligned, complete, and not a duplicate.
- "reject": out of scope, conflicts with the objectives, or duplicates a
  request that is already moving through the pipeline.
- "clarify": plausibly valuable but missing information; ask targeted
  questions.

Respond ONLY with a JSON object matching this schema:

{
  "decision": "approve" | "reject" | "clarify",
  "reasoning": string,
  "alignmentScore": int,
  "completenessScore": int,
  "salesAlignmentScore": int,
  "clarificationQuestions": [string],
  "suggestedPriority": "low" | "medium" | "high" | "critical",
  "tags": [string],
  "isDuplicate": bool,
  "duplicateOfRequestId": int or null
}

Scores are 0-100. clarificationQuestions is required for "clarify" and
empty otherwise. duplicateOfRequestId is null unless isDuplicate is true.`

// TriageResponse is the structured triage verdict.
type TriageResponse struct {
	Decision               string   `json:"decision"`
	Reasoning              string   `json:"reasoning"`
	AlignmentScore         int      `json:"alignmentScore"`
	CompletenessScore      int      `json:"completenessScore"`
	SalesAlignmentScore    int      `json:"salesAlignmentScore"`
	ClarificationQuestions []string `json:"clarificationQuestions"`
	SuggestedPriority      string   `json:"suggestedPriority"`
	Tags                   []string `json:"tags"`
	IsDuplicate            bool     `json:"isDuplicate"`
	DuplicateOfRequestID   *int     `json:"duplicateOfRequestId"`
}

// TriageSystem builds the triage system message: the role prompt plus
// the full text of the reference documents.
func (b *Builder) TriageSystem(override string) string {
	sections := []string{roleOrDefault(override, triageSystemRole)}
	if docs := b.referenceDocSections(); docs != "" {
		sections = append(sections, docs)
	}
	return strings.Join(sections, "\n\n")
}

// TriageUser builds the triage user message: request fields, the
// conversation excerpt, and project siblings for duplicate context.
func (b *Builder) TriageUser(req *ent.Request, conversation []*ent.Comment, siblings []*ent.Request) string {
	sections := []string{
		FormatRequestSection(req),
		FormatConversationSection(conversation),
		FormatSiblingsSection(siblings),
	}
	return strings.Join(sections, "\n")
}

// ParseTriageResponse decodes the triage verdict. It never fails:
// malformed output falls back to a clarify decision with zero scores so
// a human picks the request up.
func ParseTriageResponse(content string) *TriageResponse {
	var resp TriageResponse
	if err := llm.DecodeJSON(content, &resp); err != nil {
		return triageFallback()
	}

	resp.Decision = strings.ToLower(strings.TrimSpace(resp.Decision))
	switch resp.Decision {
	case DecisionApprove, DecisionReject, DecisionClarify:
	default:
		return triageFallback()
	}

	resp.AlignmentScore = clampScore(resp.AlignmentScore)
	resp.CompletenessScore = clampScore(resp.CompletenessScore)
	resp.SalesAlignmentScore = clampScore(resp.SalesAlignmentScore)
	return &resp
}

func triageFallback() *TriageResponse {
	return &TriageResponse{
		Decision:  DecisionClarify,
		Reasoning: TriageFallbackReasoning,
	}
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
