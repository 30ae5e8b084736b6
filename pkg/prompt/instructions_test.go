package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullSolution() *Solution {
	return &Solution{
		SolutionSummary: "Add a theme toggle",
		Approach:        "Introduce CSS variables and a settings switch.",
		ImpactedFiles: []ImpactedFile{
			{Path: "src/app.css", Action: "modify", Description: "add variables", EstimatedLinesChanged: 40},
		},
		NewFiles: []NewFile{
			{Path: "src/theme.ts", Description: "toggle state", EstimatedLines: 80},
		},
		DataMigration: &DataMigration{
			Required:    true,
			Description: "Add a theme column to user settings.",
			Steps:       []string{"Add column", "Backfill default"},
		},
		BreakingChanges: []string{"Renames the settings payload field"},
		DependencyChanges: []DependencyChange{
			{Package: "classnames", Action: "add", Version: "2.5.1", Reason: "conditional classes"},
		},
		Risks: []Risk{
			{Description: "Flash of wrong theme", Severity: "low", Mitigation: "inline boot script"},
		},
		EstimatedComplexity: "low",
		EstimatedEffort:     "1 day",
		ImplementationOrder: []string{"src/theme.ts", "src/app.css"},
		TestingNotes:        "Snapshot both themes.",
		ArchitecturalNotes:  "Keep theme state in localStorage.",
	}
}

func TestBuildInstructionDocument_AllSections(t *testing.T) {
	doc := BuildInstructionDocument(featureRequest(), fullSolution())

	assert.Contains(t, doc, "# Implementation Instructions: Add dark mode")
	assert.Contains(t, doc, "Internal request 42 (feature, high priority).")
	assert.Contains(t, doc, "## Approach\n\nIntroduce CSS variables")
	assert.Contains(t, doc, "### Architectural Notes\nKeep theme state in localStorage.")
	assert.Contains(t, doc, "## Files To Modify")
	assert.Contains(t, doc, "- `src/app.css` (modify, ~40 lines): add variables")
	assert.Contains(t, doc, "## Files To Create")
	assert.Contains(t, doc, "- `src/theme.ts` (~80 lines): toggle state")
	assert.Contains(t, doc, "## Data Migration")
	assert.Contains(t, doc, "1. Add column")
	assert.Contains(t, doc, "## Breaking Changes")
	assert.Contains(t, doc, "## Implementation Order")
	assert.Contains(t, doc, "1. src/theme.ts")
	assert.Contains(t, doc, "## Dependencies")
	assert.Contains(t, doc, "- add `classnames` 2.5.1: conditional classes")
	assert.Contains(t, doc, "## Risks")
	assert.Contains(t, doc, "**low:** Flash of wrong theme Mitigation: inline boot script")
	assert.Contains(t, doc, "## Testing Requirements\n\nSnapshot both themes.")
	assert.Contains(t, doc, "## Coding Conventions")
}

func TestBuildInstructionDocument_Minimal(t *testing.T) {
	sol := &Solution{SolutionSummary: "Just fix the typo."}
	doc := BuildInstructionDocument(featureRequest(), sol)

	assert.Contains(t, doc, "## Approach\n\nJust fix the typo.")
	assert.NotContains(t, doc, "## Files To Modify")
	assert.NotContains(t, doc, "## Data Migration")
	assert.NotContains(t, doc, "## Breaking Changes")
	assert.NotContains(t, doc, "## Dependencies")
	assert.Contains(t, doc, "## Testing Requirements")
	assert.Contains(t, doc, "Cover the changed behavior with tests")
	assert.Contains(t, doc, "## Coding Conventions")
}

func TestBuildInstructionDocument_MigrationNotRequired(t *testing.T) {
	sol := fullSolution()
	sol.DataMigration.Required = false
	doc := BuildInstructionDocument(featureRequest(), sol)
	assert.NotContains(t, doc, "## Data Migration")
}

func TestFormatAttachmentsSection(t *testing.T) {
	result := FormatAttachmentsSection("attachments/request-42", []string{
		"_temp-attachments/42/mockup.png",
		"_temp-attachments/42/error.png",
	})
	assert.Contains(t, result, "## Attachments")
	assert.Contains(t, result, "`attachments/request-42`")
	assert.Contains(t, result, "- `_temp-attachments/42/mockup.png`")
	assert.Contains(t, result, "- `_temp-attachments/42/error.png`")
	assert.Contains(t, result, "Do not keep the `_temp-attachments/` directory")
}
