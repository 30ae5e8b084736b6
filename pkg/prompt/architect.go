package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/pkg/codebase"
	"github.com/conveyor-dev/conveyor/pkg/llm"
)

// architectSystemRole is the default architect role prompt, shared by
// both phases.
const architectSystemRole = `## Software Architect Instructions

You are a senior software architect. You design implementation plans
for approved development requests against a real codebase.

Ground every statement in the repository map and file contents provided.
Be specific: name files, functions, and data structures. Prefer small,
reviewable changes over rewrites. Call out migrations, breaking changes,
and risks explicitly so humans can weigh them before implementation.`

// fileSelectionTask closes the phase one user message. %d is the path cap.
const fileSelectionTask = `## Your Task
Select the files you need to read to design a solution for this request.

Respond ONLY with a JSON array of at most %d repository paths, ordered
by relevance. Choose source files only: skip build outputs, lockfiles,
and generated code.

Example: ["src/api/users.ts", "src/db/schema.ts"]`

// solutionTask closes the phase two user message.
const solutionTask = `## Your Task
Design a complete solution for this request using the file contents
above.

Respond ONLY with a JSON object matching this schema:

{
  "solutionSummary": string,
  "approach": string,
  "impactedFiles": [{"path": string, "action": "modify" | "delete", "description": string, "estimatedLinesChanged": int}],
  "newFiles": [{"path": string, "description": string, "estimatedLines": int}],
  "dataMigration": {"required": bool, "description": string, "steps": [string]},
  "breakingChanges": [string],
  "dependencyChanges": [{"package": string, "action": "add" | "remove" | "upgrade", "version": string, "reason": string}],
  "risks": [{"description": string, "severity": "low" | "medium" | "high", "mitigation": string}],
  "estimatedComplexity": "low" | "medium" | "high",
  "estimatedEffort": string,
  "implementationOrder": [string],
  "testingNotes": string,
  "architecturalNotes": string,
  "clarificationQuestions": [string]
}

Reference only paths that exist in the repository map unless they appear
in newFiles. clarificationQuestions is optional; use it only when the
request cannot be designed without more information.`

// solutionRepoMapMaxChars bounds the repeated repository map in the
// solution prompt; the file contents carry the detail there.
const solutionRepoMapMaxChars = 10000

// Head and tail line counts kept when a file must be shortened to fit
// the model input window.
const (
	fileHeadLines = 200
	fileTailLines = 50
)

// ImpactedFile is one existing file the solution touches.
type ImpactedFile struct {
	Path                  string `json:"path"`
	Action                string `json:"action"`
	Description           string `json:"description"`
	EstimatedLinesChanged int    `json:"estimatedLinesChanged"`
}

// NewFile is one file the solution creates.
type NewFile struct {
	Path           string `json:"path"`
	Description    string `json:"description"`
	EstimatedLines int    `json:"estimatedLines"`
}

// DataMigration describes schema or data changes the solution requires.
type DataMigration struct {
	Required    bool     `json:"required"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// DependencyChange is one package-level change.
type DependencyChange struct {
	Package string `json:"package"`
	Action  string `json:"action"`
	Version string `json:"version"`
	Reason  string `json:"reason"`
}

// Risk is one identified risk with its mitigation.
type Risk struct {
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Mitigation  string `json:"mitigation"`
}

// Solution is the architect's structured design document.
type Solution struct {
	SolutionSummary        string             `json:"solutionSummary"`
	Approach               string             `json:"approach"`
	ImpactedFiles          []ImpactedFile     `json:"impactedFiles"`
	NewFiles               []NewFile          `json:"newFiles"`
	DataMigration          *DataMigration     `json:"dataMigration"`
	BreakingChanges        []string           `json:"breakingChanges"`
	DependencyChanges      []DependencyChange `json:"dependencyChanges"`
	Risks                  []Risk             `json:"risks"`
	EstimatedComplexity    string             `json:"estimatedComplexity"`
	EstimatedEffort        string             `json:"estimatedEffort"`
	ImplementationOrder    []string           `json:"implementationOrder"`
	TestingNotes           string             `json:"testingNotes"`
	ArchitecturalNotes     string             `json:"architecturalNotes"`
	ClarificationQuestions []string           `json:"clarificationQuestions,omitempty"`

	// Raw preserves response fields the schema does not model, so the
	// stored JSON loses nothing a newer model adds.
	Raw map[string]json.RawMessage `json:"-"`
}

// UnknownPaths returns impacted file paths absent from the repository
// map. New files are expected to be absent and are not checked.
func (s *Solution) UnknownPaths(has func(string) bool) []string {
	var unknown []string
	for _, f := range s.ImpactedFiles {
		if f.Path == "" || has(f.Path) {
			continue
		}
		unknown = append(unknown, f.Path)
	}
	return unknown
}

// Revision carries the prior solution and human feedback into a
// re-review prompt.
type Revision struct {
	PriorSummary string
	Feedback     string
}

// ArchitectSystem builds the architect system message for both phases.
func (b *Builder) ArchitectSystem(override string) string {
	return roleOrDefault(override, architectSystemRole)
}

// FileSelectionUser builds the phase one user message: request details,
// the product owner review, and the full repository map.
func (b *Builder) FileSelectionUser(req *ent.Request, repoMap string, tr *ent.TriageReview, maxFiles int) string {
	sections := []string{
		FormatRequestSection(req),
		FormatTriageSummarySection(tr),
		FormatRepoMapSection(repoMap, 0),
		fmt.Sprintf(fileSelectionTask, maxFiles),
	}
	return strings.Join(sections, "\n")
}

// SolutionUser builds the phase two user message: reference documents,
// request details, product owner review, a trimmed repository map, the
// selected file contents, and revision context when present.
func (b *Builder) SolutionUser(req *ent.Request, repoMap string, files []codebase.File, tr *ent.TriageReview, rev *Revision) string {
	var sections []string
	if docs := b.referenceDocSections(); docs != "" {
		sections = append(sections, docs)
	}
	sections = append(sections,
		FormatRequestSection(req),
		FormatTriageSummarySection(tr),
		FormatRepoMapSection(repoMap, solutionRepoMapMaxChars),
		FormatFileContentsSection(files),
	)
	if rev != nil {
		sections = append(sections, FormatRevisionSection(rev.PriorSummary, rev.Feedback))
	}
	sections = append(sections, solutionTask)
	return strings.Join(sections, "\n")
}

// ParseFileSelection decodes the phase one path list. Models sometimes
// wrap the array in an object or return path objects; both are
// tolerated. The result is trimmed, deduplicated, and capped.
func ParseFileSelection(content string, maxFiles int) []string {
	var paths []string
	if err := llm.DecodeJSONArray(content, &paths); err != nil {
		var wrapped struct {
			Files []string `json:"files"`
			Paths []string `json:"paths"`
		}
		if err := llm.DecodeJSON(content, &wrapped); err == nil {
			paths = wrapped.Files
			if len(paths) == 0 {
				paths = wrapped.Paths
			}
		}
	}
	if len(paths) == 0 {
		var objs []struct {
			Path string `json:"path"`
		}
		if err := llm.DecodeJSONArray(content, &objs); err == nil {
			for _, o := range objs {
				paths = append(paths, o.Path)
			}
		}
	}

	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
		if maxFiles > 0 && len(out) == maxFiles {
			break
		}
	}
	return out
}

// ParseSolutionResponse decodes the phase two solution document. It
// returns the parsed solution, the cleaned JSON to store verbatim, and
// whether parsing succeeded. On failure a minimal solution is
// synthesized so the review still lands in front of a human.
func ParseSolutionResponse(content string) (*Solution, string, bool) {
	raw := llm.ExtractJSON(content)
	if raw != "" {
		var sol Solution
		if err := json.Unmarshal([]byte(raw), &sol); err == nil && !sol.empty() {
			_ = json.Unmarshal([]byte(raw), &sol.Raw)
			return &sol, raw, true
		}
	}

	sol := &Solution{
		SolutionSummary: "Solution could not be parsed from the model response",
		Approach:        firstChars(content, 2000),
		ClarificationQuestions: []string{
			"The architect did not return a structured solution. Review the raw response, then provide feedback or reject.",
		},
	}
	data, _ := json.Marshal(sol)
	return sol, string(data), false
}

func (s *Solution) empty() bool {
	return s.SolutionSummary == "" && s.Approach == "" &&
		len(s.ImpactedFiles) == 0 && len(s.NewFiles) == 0
}

// DecodeSolution parses a stored solution document. Unlike
// ParseSolutionResponse it expects clean JSON and reports failure to the
// caller instead of synthesizing a fallback.
func DecodeSolution(data string) (*Solution, error) {
	var sol Solution
	if err := json.Unmarshal([]byte(data), &sol); err != nil {
		return nil, fmt.Errorf("failed to parse solution document: %w", err)
	}
	return &sol, nil
}

// TrimFileHeadTail keeps the first 200 and last 50 lines of a file,
// eliding the middle. Files at or under the limit pass through.
func TrimFileHeadTail(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= fileHeadLines+fileTailLines {
		return content
	}
	elided := len(lines) - fileHeadLines - fileTailLines
	var sb strings.Builder
	sb.WriteString(strings.Join(lines[:fileHeadLines], "\n"))
	fmt.Fprintf(&sb, "\n... [%d lines elided] ...\n", elided)
	sb.WriteString(strings.Join(lines[len(lines)-fileTailLines:], "\n"))
	return sb.String()
}

func firstChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
