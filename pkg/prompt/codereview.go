package prompt

import (
	"fmt"
	"strings"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/pkg/llm"
)

// Review decisions as returned by the model.
const (
	ReviewApproved         = "Approved"
	ReviewChangesRequested = "ChangesRequested"
)

// ReviewFallbackNotes marks review fields synthesized after a parse
// failure.
const ReviewFallbackNotes = "Could not parse structured response"

// codeReviewSystemRole is the default reviewer role prompt.
const codeReviewSystemRole = `## Code Reviewer Instructions

You are a meticulous senior code reviewer. You review pull request
diffs produced by an automated coding agent against the approved
solution design.

Check three things:
1. Design compliance: the diff implements the approved solution and
   does not smuggle in unrelated changes.
2. Security: no injection risks, secret leakage, unsafe deserialization,
   or missing authorization checks.
3. Coding standards: naming, structure, error handling, and tests match
   the conventions visible in the diff context.

Respond ONLY with a JSON object matching this schema:

{
  "decision": "Approved" | "ChangesRequested",
  "summary": string,
  "designCompliance": bool,
  "designComplianceNotes": string,
  "securityPass": bool,
  "securityNotes": string,
  "codingStandardsPass": bool,
  "codingStandardsNotes": string,
  "qualityScore": int
}

qualityScore is 1-10. Request changes when any of the three checks
fails.`

// codeReviewTask closes the review user message.
const codeReviewTask = `## Your Task
Review the diff against the approved solution and respond with the JSON
schema from your instructions.`

// Share of the character budget given to each large section.
const (
	solutionJSONBudgetShare = 40
	diffBudgetShare         = 60
)

// CodeReviewResponse is the structured review verdict.
type CodeReviewResponse struct {
	Decision              string `json:"decision"`
	Summary               string `json:"summary"`
	DesignCompliance      bool   `json:"designCompliance"`
	DesignComplianceNotes string `json:"designComplianceNotes"`
	SecurityPass          bool   `json:"securityPass"`
	SecurityNotes         string `json:"securityNotes"`
	CodingStandardsPass   bool   `json:"codingStandardsPass"`
	CodingStandardsNotes  string `json:"codingStandardsNotes"`
	QualityScore          int    `json:"qualityScore"`
}

// CodeReviewInput gathers everything the review prompt embeds.
type CodeReviewInput struct {
	Request         *ent.Request
	SolutionSummary string
	SolutionJSON    string
	Diff            string
	FilesChanged    int
	Additions       int
	Deletions       int

	// MaxInputTokens caps the message at roughly four characters per
	// token; the solution JSON gets 40% of the budget, the diff 60%.
	MaxInputTokens int
}

// CodeReviewSystem builds the review system message.
func (b *Builder) CodeReviewSystem(override string) string {
	return roleOrDefault(override, codeReviewSystemRole)
}

// CodeReviewUser builds the review user message: request summary,
// approved solution, the full solution document, and the PR diff. Both
// large sections are truncated at the end to honor the budget.
func (b *Builder) CodeReviewUser(in CodeReviewInput) string {
	solutionJSON := in.SolutionJSON
	diff := in.Diff
	if budget := in.MaxInputTokens * 4; budget > 0 {
		solutionJSON = truncateEnd(solutionJSON, budget*solutionJSONBudgetShare/100)
		diff = truncateEnd(diff, budget*diffBudgetShare/100)
	}

	var sb strings.Builder
	sb.WriteString(FormatRequestSection(in.Request))
	sb.WriteString("\n## Approved Solution\n\n")
	sb.WriteString(in.SolutionSummary)
	sb.WriteString("\n\n### Solution Document\n```json\n")
	sb.WriteString(solutionJSON)
	sb.WriteString("\n```\n")
	sb.WriteString("\n## Pull Request\n\n")
	fmt.Fprintf(&sb, "**Files changed:** %d, **Additions:** %d, **Deletions:** %d\n",
		in.FilesChanged, in.Additions, in.Deletions)
	sb.WriteString("\n### Diff\n```diff\n")
	sb.WriteString(diff)
	if !strings.HasSuffix(diff, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("```\n\n")
	sb.WriteString(codeReviewTask)
	return sb.String()
}

// ParseCodeReviewResponse decodes the review verdict. It never fails:
// when the JSON cannot be parsed, the raw text is scanned for the word
// Approved and a degraded response is synthesized.
func ParseCodeReviewResponse(content string) *CodeReviewResponse {
	var resp CodeReviewResponse
	if err := llm.DecodeJSON(content, &resp); err != nil {
		return codeReviewFallback(content)
	}

	switch {
	case strings.EqualFold(resp.Decision, "approved"):
		resp.Decision = ReviewApproved
	case strings.EqualFold(resp.Decision, "changesrequested"),
		strings.EqualFold(resp.Decision, "changes_requested"),
		strings.EqualFold(resp.Decision, "changes requested"):
		resp.Decision = ReviewChangesRequested
	default:
		return codeReviewFallback(content)
	}

	resp.QualityScore = clampQuality(resp.QualityScore)
	return &resp
}

func codeReviewFallback(content string) *CodeReviewResponse {
	decision := ReviewChangesRequested
	if strings.Contains(content, "Approved") {
		decision = ReviewApproved
	}
	return &CodeReviewResponse{
		Decision:              decision,
		Summary:               ReviewFallbackNotes,
		DesignComplianceNotes: ReviewFallbackNotes,
		SecurityNotes:         ReviewFallbackNotes,
		CodingStandardsNotes:  ReviewFallbackNotes,
		QualityScore:          1,
	}
}

func clampQuality(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

func truncateEnd(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit] + "\n... [truncated]"
}
