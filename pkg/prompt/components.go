package prompt

import (
	"fmt"
	"strings"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/pkg/codebase"
)

// FormatRequestSection builds the request details section.
// Bug reports include the structured reproduction triple when present.
func FormatRequestSection(req *ent.Request) string {
	var sb strings.Builder
	sb.WriteString("## Request\n\n")
	fmt.Fprintf(&sb, "**ID:** %d\n", req.ID)
	fmt.Fprintf(&sb, "**Title:** %s\n", req.Title)
	fmt.Fprintf(&sb, "**Kind:** %s\n", req.Kind)
	fmt.Fprintf(&sb, "**Priority:** %s\n", req.Priority)
	if name := deref(req.SubmitterName); name != "" {
		fmt.Fprintf(&sb, "**Submitted by:** %s\n", name)
	}
	sb.WriteString("\n### Description\n")
	sb.WriteString(req.Description)
	sb.WriteString("\n")

	if s := deref(req.StepsToReproduce); s != "" {
		sb.WriteString("\n### Steps To Reproduce\n")
		sb.WriteString(s)
		sb.WriteString("\n")
	}
	if s := deref(req.ExpectedBehavior); s != "" {
		sb.WriteString("\n### Expected Behavior\n")
		sb.WriteString(s)
		sb.WriteString("\n")
	}
	if s := deref(req.ActualBehavior); s != "" {
		sb.WriteString("\n### Actual Behavior\n")
		sb.WriteString(s)
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatConversationSection builds the conversation excerpt section.
// comments are rendered oldest first.
func FormatConversationSection(comments []*ent.Comment) string {
	if len(comments) == 0 {
		return "## Conversation\nNo prior conversation.\n"
	}

	var sb strings.Builder
	sb.WriteString("## Conversation\n\n")
	for _, c := range comments {
		role := "submitter"
		if c.IsAgent {
			role = "agent"
		}
		fmt.Fprintf(&sb, "**%s (%s):**\n%s\n\n", c.Author, role, c.Content)
	}
	return sb.String()
}

// FormatSiblingsSection lists other requests in the same project so the
// model can spot duplicates.
func FormatSiblingsSection(siblings []*ent.Request) string {
	if len(siblings) == 0 {
		return "## Other Requests In This Project\nNone.\n"
	}

	var sb strings.Builder
	sb.WriteString("## Other Requests In This Project\n\n")
	for _, s := range siblings {
		fmt.Fprintf(&sb, "- [%d] (%s) %s\n", s.ID, s.State, s.Title)
	}
	return sb.String()
}

// FormatReferenceDoc wraps a reference document under its own heading.
func FormatReferenceDoc(title, content string) string {
	var sb strings.Builder
	sb.WriteString("## ")
	sb.WriteString(title)
	sb.WriteString("\n\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	return sb.String()
}

// FormatRepoMapSection embeds the rendered repository map. maxChars > 0
// trims the tail when the map is very large.
func FormatRepoMapSection(rendered string, maxChars int) string {
	if rendered == "" {
		return "## Repository Map\nNot available.\n"
	}
	if maxChars > 0 && len(rendered) > maxChars {
		rendered = rendered[:maxChars] + "\n... [truncated]\n"
	}

	var sb strings.Builder
	sb.WriteString("## Repository Map\n\n```\n")
	sb.WriteString(rendered)
	if !strings.HasSuffix(rendered, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("```\n")
	return sb.String()
}

// FormatFileContentsSection embeds fetched file contents, one fenced
// block per file.
func FormatFileContentsSection(files []codebase.File) string {
	if len(files) == 0 {
		return "## File Contents\nNo files fetched.\n"
	}

	var sb strings.Builder
	sb.WriteString("## File Contents\n\n")
	for _, f := range files {
		fmt.Fprintf(&sb, "### %s\n```\n", f.Path)
		sb.WriteString(f.Content)
		if !strings.HasSuffix(f.Content, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("```\n")
		if f.Truncated {
			sb.WriteString("(file truncated to fit the character budget)\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatTriageSummarySection carries the product owner review forward
// into the architect prompts.
func FormatTriageSummarySection(tr *ent.TriageReview) string {
	if tr == nil {
		return "## Product Owner Review\nNot available.\n"
	}

	var sb strings.Builder
	sb.WriteString("## Product Owner Review\n\n")
	fmt.Fprintf(&sb, "**Decision:** %s\n", tr.Decision)
	fmt.Fprintf(&sb, "**Alignment:** %d/100, **Completeness:** %d/100, **Sales alignment:** %d/100\n",
		tr.AlignmentScore, tr.CompletenessScore, tr.SalesAlignmentScore)
	if len(tr.Tags) > 0 {
		fmt.Fprintf(&sb, "**Tags:** %s\n", strings.Join(tr.Tags, ", "))
	}
	sb.WriteString("\n")
	sb.WriteString(tr.Reasoning)
	sb.WriteString("\n")
	return sb.String()
}

// FormatRevisionSection carries the prior solution and the human
// feedback that triggered a re-review.
func FormatRevisionSection(priorSummary, feedback string) string {
	var sb strings.Builder
	sb.WriteString("## Revision Context\n\n")
	sb.WriteString("A previous solution was reviewed by a human and needs revision.\n\n")
	if priorSummary != "" {
		sb.WriteString("### Previous Solution Summary\n")
		sb.WriteString(priorSummary)
		sb.WriteString("\n\n")
	}
	if feedback != "" {
		sb.WriteString("### Human Feedback\n")
		sb.WriteString(feedback)
		sb.WriteString("\n")
	}
	return sb.String()
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
