package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/pkg/codebase"
)

func TestArchitectSystem_Default(t *testing.T) {
	b := newTestBuilder(t)
	result := b.ArchitectSystem("")
	assert.Contains(t, result, "senior software architect")
}

func TestArchitectSystem_Override(t *testing.T) {
	b := newTestBuilder(t)
	result := b.ArchitectSystem("You design embedded firmware.")
	assert.Equal(t, "You design embedded firmware.", result)
}

func TestFileSelectionUser(t *testing.T) {
	b := newTestBuilder(t)
	tr := &ent.TriageReview{Decision: "approve", Reasoning: "Aligned.", AlignmentScore: 90}

	result := b.FileSelectionUser(featureRequest(), "src/\n  api.go (~100 lines)", tr, 20)
	assert.Contains(t, result, "## Request")
	assert.Contains(t, result, "## Product Owner Review")
	assert.Contains(t, result, "## Repository Map")
	assert.Contains(t, result, "api.go (~100 lines)")
	assert.Contains(t, result, "at most 20 repository paths")
}

func TestSolutionUser(t *testing.T) {
	b := newTestBuilder(t)
	files := []codebase.File{{Path: "src/api.go", Content: "package api"}}
	tr := &ent.TriageReview{Decision: "approve", Reasoning: "Aligned."}

	result := b.SolutionUser(featureRequest(), "src/\n  api.go (~100 lines)", files, tr, nil)
	assert.Contains(t, result, "## Product Objectives")
	assert.Contains(t, result, "## Request")
	assert.Contains(t, result, "## File Contents")
	assert.Contains(t, result, "### src/api.go")
	assert.Contains(t, result, `"solutionSummary": string`)
	assert.NotContains(t, result, "## Revision Context")
}

func TestSolutionUser_Revision(t *testing.T) {
	b := newTestBuilder(t)
	rev := &Revision{PriorSummary: "Add a toggle.", Feedback: "Use CSS variables."}

	result := b.SolutionUser(featureRequest(), "", nil, nil, rev)
	assert.Contains(t, result, "## Revision Context")
	assert.Contains(t, result, "Add a toggle.")
	assert.Contains(t, result, "Use CSS variables.")
}

func TestSolutionUser_TrimsRepoMap(t *testing.T) {
	b := NewBuilder(nil)
	huge := strings.Repeat("src/some/deep/path/file.go\n", 1000)

	result := b.SolutionUser(featureRequest(), huge, nil, nil, nil)
	assert.Contains(t, result, "... [truncated]")
	assert.Less(t, len(result), len(huge))
}

func TestParseFileSelection_Array(t *testing.T) {
	paths := ParseFileSelection(`["src/api.go", "src/db.go"]`, 20)
	assert.Equal(t, []string{"src/api.go", "src/db.go"}, paths)
}

func TestParseFileSelection_Fenced(t *testing.T) {
	content := "The most relevant files are:\n```json\n[\"src/api.go\", \"src/db.go\",]\n```"
	paths := ParseFileSelection(content, 20)
	assert.Equal(t, []string{"src/api.go", "src/db.go"}, paths)
}

func TestParseFileSelection_WrappedObject(t *testing.T) {
	paths := ParseFileSelection(`{"files": ["src/api.go"]}`, 20)
	assert.Equal(t, []string{"src/api.go"}, paths)
}

func TestParseFileSelection_PathObjects(t *testing.T) {
	paths := ParseFileSelection(`[{"path": "src/api.go"}, {"path": "src/db.go"}]`, 20)
	assert.Equal(t, []string{"src/api.go", "src/db.go"}, paths)
}

func TestParseFileSelection_DedupAndCap(t *testing.T) {
	paths := ParseFileSelection(`["a.go", "a.go", " b.go ", "", "c.go"]`, 2)
	assert.Equal(t, []string{"a.go", "b.go"}, paths)
}

func TestParseFileSelection_Garbage(t *testing.T) {
	paths := ParseFileSelection("I would read the API handler first.", 20)
	assert.Empty(t, paths)
}

func TestParseSolutionResponse_Valid(t *testing.T) {
	content := "```json\n" + `{
		"solutionSummary": "Add a theme toggle",
		"approach": "Introduce CSS variables and a settings switch.",
		"impactedFiles": [{"path": "src/app.css", "action": "modify", "description": "variables", "estimatedLinesChanged": 40}],
		"newFiles": [{"path": "src/theme.ts", "description": "toggle state", "estimatedLines": 80}],
		"dataMigration": {"required": false, "description": "", "steps": []},
		"breakingChanges": [],
		"dependencyChanges": [{"package": "classnames", "action": "add", "version": "2.5.1", "reason": "conditional classes"}],
		"risks": [{"description": "flash of wrong theme", "severity": "low", "mitigation": "inline script"}],
		"estimatedComplexity": "low",
		"estimatedEffort": "1 day",
		"implementationOrder": ["src/theme.ts", "src/app.css"],
		"testingNotes": "Snapshot both themes.",
		"architecturalNotes": "Keep theme state in localStorage.",
		"futureIdeas": ["high contrast mode"]
	}` + "\n```"

	sol, raw, parsed := ParseSolutionResponse(content)
	require.True(t, parsed)
	assert.Equal(t, "Add a theme toggle", sol.SolutionSummary)
	require.Len(t, sol.ImpactedFiles, 1)
	assert.Equal(t, "src/app.css", sol.ImpactedFiles[0].Path)
	assert.Equal(t, "modify", sol.ImpactedFiles[0].Action)
	require.Len(t, sol.DependencyChanges, 1)
	assert.Equal(t, "classnames", sol.DependencyChanges[0].Package)
	assert.Equal(t, "low", sol.EstimatedComplexity)

	// The stored JSON is the cleaned response, not a re-marshal.
	assert.True(t, json.Valid([]byte(raw)))
	assert.Contains(t, raw, `"futureIdeas"`)
	// Unknown fields survive in Raw.
	assert.Contains(t, sol.Raw, "futureIdeas")
}

func TestParseSolutionResponse_Garbage(t *testing.T) {
	sol, raw, parsed := ParseSolutionResponse("I would restructure the frontend entirely.")
	assert.False(t, parsed)
	assert.Contains(t, sol.SolutionSummary, "could not be parsed")
	assert.Contains(t, sol.Approach, "restructure the frontend")
	assert.NotEmpty(t, sol.ClarificationQuestions)
	assert.True(t, json.Valid([]byte(raw)))
}

func TestParseSolutionResponse_EmptyObject(t *testing.T) {
	_, _, parsed := ParseSolutionResponse(`{"unrelated": true}`)
	assert.False(t, parsed)
}

func TestSolution_UnknownPaths(t *testing.T) {
	sol := &Solution{ImpactedFiles: []ImpactedFile{
		{Path: "src/api.go"},
		{Path: "src/missing.go"},
		{Path: ""},
	}}
	known := map[string]bool{"src/api.go": true}

	unknown := sol.UnknownPaths(func(p string) bool { return known[p] })
	assert.Equal(t, []string{"src/missing.go"}, unknown)
}

func TestTrimFileHeadTail_Short(t *testing.T) {
	content := "line one\nline two"
	assert.Equal(t, content, TrimFileHeadTail(content))
}

func TestTrimFileHeadTail_Long(t *testing.T) {
	lines := make([]string, 300)
	for i := range lines {
		lines[i] = fmt.Sprintf("line-%d", i)
	}
	result := TrimFileHeadTail(strings.Join(lines, "\n"))

	assert.Contains(t, result, "line-0\n")
	assert.Contains(t, result, "line-199")
	assert.Contains(t, result, "line-250")
	assert.Contains(t, result, "line-299")
	assert.Contains(t, result, "[50 lines elided]")
	assert.NotContains(t, result, "line-224")
}
