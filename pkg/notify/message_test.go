package notify

import (
	"strings"
	"testing"
	"time"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionText(t *testing.T, blocks []goslack.Block) string {
	t.Helper()
	require.Len(t, blocks, 1)
	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	return section.Text.Text
}

func TestBuildStallMessage_Warning(t *testing.T) {
	text := sectionText(t, BuildStallMessage(StallInput{
		RequestID:  42,
		Title:      "Add dark mode",
		State:      "architect_review",
		StalledFor: 72 * time.Hour,
		IssueURL:   "https://github.com/acme/widgets/issues/7",
	}))

	assert.Contains(t, text, ":warning:")
	assert.Contains(t, text, "*Request 42:* Add dark mode")
	assert.Contains(t, text, "`architect_review`")
	assert.Contains(t, text, "3 days")
	assert.Contains(t, text, "https://github.com/acme/widgets/issues/7|View Issue")
}

func TestBuildStallMessage_Critical(t *testing.T) {
	text := sectionText(t, BuildStallMessage(StallInput{
		RequestID:  42,
		Title:      "Add dark mode",
		State:      "needs_clarification",
		StalledFor: 14 * 24 * time.Hour,
		Critical:   true,
	}))

	assert.Contains(t, text, ":rotating_light:")
	assert.Contains(t, text, "critical")
	assert.Contains(t, text, "14 days")
	assert.NotContains(t, text, "View Issue")
}

func TestBuildDeploymentMessage_Succeeded(t *testing.T) {
	text := sectionText(t, BuildDeploymentMessage(DeploymentInput{
		RequestID: 42,
		Title:     "Add dark mode",
		Status:    DeploySucceeded,
		Workflow:  "deploy-api.yml",
		RunURL:    "https://github.com/acme/widgets/actions/runs/99",
	}))

	assert.Contains(t, text, ":rocket:")
	assert.Contains(t, text, "Deployment Succeeded")
	assert.Contains(t, text, "`deploy-api.yml`")
	assert.Contains(t, text, "actions/runs/99|View Workflow Run")
}

func TestBuildDeploymentMessage_Retrying(t *testing.T) {
	text := sectionText(t, BuildDeploymentMessage(DeploymentInput{
		RequestID: 42,
		Title:     "Add dark mode",
		Status:    DeployRetrying,
		Attempt:   2,
	}))

	assert.Contains(t, text, ":arrows_counterclockwise:")
	assert.Contains(t, text, "*Attempt:* 2")
}

func TestBuildDeploymentMessage_UnknownStatus(t *testing.T) {
	text := sectionText(t, BuildDeploymentMessage(DeploymentInput{
		RequestID: 1,
		Title:     "x",
		Status:    "paused",
	}))
	assert.Contains(t, text, ":question:")
	assert.Contains(t, text, "Deployment paused")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "30 minutes", formatDuration(30*time.Minute))
	assert.Equal(t, "5 hours", formatDuration(5*time.Hour))
	assert.Equal(t, "47 hours", formatDuration(47*time.Hour))
	assert.Equal(t, "2 days", formatDuration(48*time.Hour))
	assert.Equal(t, "7 days", formatDuration(7*24*time.Hour))
}

func TestTruncateForSlack(t *testing.T) {
	long := strings.Repeat("x", maxBlockTextLength+100)
	out := truncateForSlack(long)
	assert.LessOrEqual(t, len(out), maxBlockTextLength+40)
	assert.Contains(t, out, "truncated")

	assert.Equal(t, "short", truncateForSlack("short"))
}
