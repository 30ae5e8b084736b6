package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/pkg/codehost"
	"github.com/conveyor-dev/conveyor/pkg/services"
)

// hostEffects wraps the code host with the request-centric helpers the
// stages share. Labels and comments are best-effort: a failed write is
// logged and dropped, and the next write against the same issue
// reconciles the mirror. State lives in the store, never here.
type hostEffects struct {
	host     codehost.Host
	requests *services.RequestService
}

func newHostEffects(d Deps) *hostEffects {
	return &hostEffects{host: d.Host, requests: d.Requests}
}

// repoOf resolves the code-host repository for a request through its
// loaded project edge.
func repoOf(req *ent.Request) (codehost.Repo, bool) {
	p := req.Edges.Project
	if p == nil {
		return codehost.Repo{}, false
	}
	return codehost.Repo{Owner: p.Owner, Name: p.Repo}, true
}

// ensureIssue returns the mirror issue number for a request, creating
// the issue on first need. The number is recorded with a conditional
// write, so concurrent creators settle on a single value.
func (e *hostEffects) ensureIssue(ctx context.Context, req *ent.Request) (int, error) {
	if req.IssueNumber != nil {
		return *req.IssueNumber, nil
	}
	repo, ok := repoOf(req)
	if !ok {
		return 0, fmt.Errorf("request %d has no project loaded", req.ID)
	}

	issue, err := e.host.CreateIssue(ctx, repo, codehost.IssueInput{
		Title: fmt.Sprintf("[Request %d] %s", req.ID, req.Title),
		Body:  issueBody(req),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create issue for request %d: %w", req.ID, err)
	}
	if err := e.requests.SetIssueNumber(ctx, req.ID, issue.Number); err != nil {
		return 0, err
	}
	req.IssueNumber = &issue.Number
	return issue.Number, nil
}

func issueBody(req *ent.Request) string {
	var sb strings.Builder
	sb.WriteString(req.Description)
	fmt.Fprintf(&sb, "\n\n---\nKind: %s | Priority: %s | Pipeline request %d", req.Kind, req.Priority, req.ID)
	return sb.String()
}

// label applies a namespaced label to the request's issue.
func (e *hostEffects) label(ctx context.Context, req *ent.Request, l codehost.Label) {
	repo, ok := repoOf(req)
	if !ok || req.IssueNumber == nil {
		return
	}
	if err := e.host.SetLabel(ctx, repo, *req.IssueNumber, l); err != nil {
		slog.Warn("Failed to set issue label",
			"request_id", req.ID, "label", l.Name, "error", err)
	}
}

// removeLabel strips a label from the request's issue.
func (e *hostEffects) removeLabel(ctx context.Context, req *ent.Request, name string) {
	repo, ok := repoOf(req)
	if !ok || req.IssueNumber == nil {
		return
	}
	if err := e.host.RemoveLabel(ctx, repo, *req.IssueNumber, name); err != nil && !errors.Is(err, codehost.ErrNotFound) {
		slog.Warn("Failed to remove issue label",
			"request_id", req.ID, "label", name, "error", err)
	}
}

// comment mirrors a pipeline comment onto the request's issue.
func (e *hostEffects) comment(ctx context.Context, req *ent.Request, body string) {
	repo, ok := repoOf(req)
	if !ok || req.IssueNumber == nil {
		return
	}
	if err := e.host.CommentOnIssue(ctx, repo, *req.IssueNumber, body); err != nil {
		slog.Warn("Failed to post issue comment", "request_id", req.ID, "error", err)
	}
}

// issueURL builds the browser URL of a request's tracked issue for
// notifications. Empty when the issue does not exist yet.
func issueURL(req *ent.Request) string {
	repo, ok := repoOf(req)
	if !ok || req.IssueNumber == nil {
		return ""
	}
	return fmt.Sprintf("https://github.com/%s/%s/issues/%d", repo.Owner, repo.Name, *req.IssueNumber)
}

// promptOverride fetches the runtime-edited system role for a stage, or
// "" for the compiled default. Lookup failures fall back silently: the
// compiled prompt always works.
func promptOverride(ctx context.Context, prompts *services.PromptService, stage string) string {
	text, err := prompts.GetPrompt(ctx, stage)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			slog.Warn("Failed to load prompt override", "stage", stage, "error", err)
		}
		return ""
	}
	return text
}
