package prompt

import (
	"fmt"
	"strings"

	"github.com/conveyor-dev/conveyor/ent"
)

// codingConventions is the fixed tail of every instruction document.
const codingConventions = `## Coding Conventions

- Follow the existing style of each file you touch; do not reformat
  surrounding code.
- Keep the change minimal: implement exactly what the solution
  describes and nothing else.
- Every behavior change needs a test. Extend existing test files where
  they exist.
- Do not add dependencies beyond those listed under Dependencies.
- Do not commit secrets, credentials, or generated artifacts.
- Write clear commit messages describing what changed and why.`

// BuildInstructionDocument renders the Markdown document handed to the
// coding agent for one approved solution.
func BuildInstructionDocument(req *ent.Request, sol *Solution) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Implementation Instructions: %s\n\n", req.Title)
	fmt.Fprintf(&sb, "Internal request %d (%s, %s priority).\n\n", req.ID, req.Kind, req.Priority)

	sb.WriteString("## Approach\n\n")
	if sol.Approach != "" {
		sb.WriteString(sol.Approach)
	} else {
		sb.WriteString(sol.SolutionSummary)
	}
	sb.WriteString("\n")
	if sol.ArchitecturalNotes != "" {
		sb.WriteString("\n### Architectural Notes\n")
		sb.WriteString(sol.ArchitecturalNotes)
		sb.WriteString("\n")
	}

	if len(sol.ImpactedFiles) > 0 {
		sb.WriteString("\n## Files To Modify\n\n")
		for _, f := range sol.ImpactedFiles {
			fmt.Fprintf(&sb, "- `%s` (%s, ~%d lines): %s\n",
				f.Path, f.Action, f.EstimatedLinesChanged, f.Description)
		}
	}

	if len(sol.NewFiles) > 0 {
		sb.WriteString("\n## Files To Create\n\n")
		for _, f := range sol.NewFiles {
			fmt.Fprintf(&sb, "- `%s` (~%d lines): %s\n",
				f.Path, f.EstimatedLines, f.Description)
		}
	}

	if sol.DataMigration != nil && sol.DataMigration.Required {
		sb.WriteString("\n## Data Migration\n\n")
		sb.WriteString(sol.DataMigration.Description)
		sb.WriteString("\n")
		for i, step := range sol.DataMigration.Steps {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
		}
	}

	if len(sol.BreakingChanges) > 0 {
		sb.WriteString("\n## Breaking Changes\n\n")
		for _, c := range sol.BreakingChanges {
			fmt.Fprintf(&sb, "- %s\n", c)
		}
	}

	if len(sol.ImplementationOrder) > 0 {
		sb.WriteString("\n## Implementation Order\n\n")
		for i, step := range sol.ImplementationOrder {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
		}
	}

	if len(sol.DependencyChanges) > 0 {
		sb.WriteString("\n## Dependencies\n\n")
		for _, d := range sol.DependencyChanges {
			line := fmt.Sprintf("- %s `%s`", d.Action, d.Package)
			if d.Version != "" {
				line += " " + d.Version
			}
			if d.Reason != "" {
				line += ": " + d.Reason
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	if len(sol.Risks) > 0 {
		sb.WriteString("\n## Risks\n\n")
		for _, r := range sol.Risks {
			fmt.Fprintf(&sb, "- **%s:** %s", r.Severity, r.Description)
			if r.Mitigation != "" {
				fmt.Fprintf(&sb, " Mitigation: %s", r.Mitigation)
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n## Testing Requirements\n\n")
	if sol.TestingNotes != "" {
		sb.WriteString(sol.TestingNotes)
	} else {
		sb.WriteString("Cover the changed behavior with tests in the style of the surrounding test files.")
	}
	sb.WriteString("\n\n")

	sb.WriteString(codingConventions)
	sb.WriteString("\n")
	return sb.String()
}

// FormatAttachmentsSection tells the coding agent where request
// attachments were committed. Appended to the instruction document when
// image attachments exist.
func FormatAttachmentsSection(branch string, paths []string) string {
	var sb strings.Builder
	sb.WriteString("## Attachments\n\n")
	fmt.Fprintf(&sb, "Reference images for this request are committed on branch `%s`:\n\n", branch)
	for _, p := range paths {
		fmt.Fprintf(&sb, "- `%s`\n", p)
	}
	sb.WriteString("\nUse them for visual context. Do not keep the `_temp-attachments/` directory in the final change; it is removed before merge.\n")
	return sb.String()
}
