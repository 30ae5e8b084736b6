package notify

import (
	"fmt"
	"strings"
	"time"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

// Deployment notification statuses.
const (
	DeploySucceeded = "succeeded"
	DeployFailed    = "failed"
	DeployRetrying  = "retrying"
)

var deployEmoji = map[string]string{
	DeploySucceeded: ":rocket:",
	DeployFailed:    ":x:",
	DeployRetrying:  ":arrows_counterclockwise:",
}

var deployLabel = map[string]string{
	DeploySucceeded: "Deployment Succeeded",
	DeployFailed:    "Deployment Failed",
	DeployRetrying:  "Deployment Retrying",
}

// StallInput describes a request that stopped making progress.
type StallInput struct {
	RequestID  int
	Title      string
	State      string
	StalledFor time.Duration
	Critical   bool
	IssueURL   string
}

// DeploymentInput describes a deployment outcome for a merged request.
type DeploymentInput struct {
	RequestID int
	Title     string
	Status    string // succeeded, failed, retrying
	Workflow  string
	RunURL    string
	Attempt   int
}

// BuildStallMessage creates Block Kit blocks for a stall alert.
func BuildStallMessage(input StallInput) []goslack.Block {
	emoji := ":warning:"
	label := "Request Stalled"
	if input.Critical {
		emoji = ":rotating_light:"
		label = "Request Stalled (critical)"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s *%s*\n\n", emoji, label)
	fmt.Fprintf(&sb, "*Request %d:* %s\n", input.RequestID, input.Title)
	fmt.Fprintf(&sb, "*State:* `%s`\n", input.State)
	fmt.Fprintf(&sb, "*No progress for:* %s", formatDuration(input.StalledFor))
	if input.IssueURL != "" {
		fmt.Fprintf(&sb, "\n<%s|View Issue>", input.IssueURL)
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(sb.String()), false, false),
			nil, nil,
		),
	}
}

// BuildDeploymentMessage creates Block Kit blocks for a deployment
// outcome notification.
func BuildDeploymentMessage(input DeploymentInput) []goslack.Block {
	emoji := deployEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := deployLabel[input.Status]
	if label == "" {
		label = "Deployment " + input.Status
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s *%s*\n\n", emoji, label)
	fmt.Fprintf(&sb, "*Request %d:* %s\n", input.RequestID, input.Title)
	if input.Workflow != "" {
		fmt.Fprintf(&sb, "*Workflow:* `%s`\n", input.Workflow)
	}
	if input.Attempt > 0 {
		fmt.Fprintf(&sb, "*Attempt:* %d\n", input.Attempt)
	}
	if input.RunURL != "" {
		fmt.Fprintf(&sb, "<%s|View Workflow Run>", input.RunURL)
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(sb.String()), false, false),
			nil, nil,
		),
	}
}

// formatDuration renders a stall age in the largest useful unit.
func formatDuration(d time.Duration) string {
	if d >= 48*time.Hour {
		return fmt.Sprintf("%d days", int(d.Hours()/24))
	}
	if d >= time.Hour {
		return fmt.Sprintf("%d hours", int(d.Hours()))
	}
	return fmt.Sprintf("%d minutes", int(d.Minutes()))
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}
