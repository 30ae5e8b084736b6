// Package codehost talks to the code hosting platform: issues, labels,
// branches, pull requests, and workflow runs. All write operations are
// best-effort and idempotent; a missed label or comment is reconciled by
// the next write against the same object.
package codehost

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/conveyor-dev/conveyor/pkg/config"
)

// ErrNotFound indicates the platform object does not exist.
var ErrNotFound = errors.New("code host object not found")

// Repo identifies a repository on the host.
type Repo struct {
	Owner string
	Name  string
}

func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// Issue is the tracked work item mirroring a pipeline request.
type Issue struct {
	Number  int
	Title   string
	State   string
	HTMLURL string
}

// IssueInput carries fields for issue creation and update. Empty fields
// are left untouched on update.
type IssueInput struct {
	Title  string
	Body   string
	Labels []string
}

// Label is a colored issue label. Color is a hex RGB string without '#'.
type Label struct {
	Name  string
	Color string
}

// AgentAssignment dispatches an issue to the coding-agent principal.
type AgentAssignment struct {
	Instructions string // markdown instruction document
	BaseBranch   string
	Model        string // optional model override
}

// Commit is one entry from a branch history listing.
type Commit struct {
	SHA     string
	Message string
	Author  string
	Date    time.Time
}

// CommitFile is one file in a CommitFiles call.
type CommitFile struct {
	Path    string
	Content []byte
}

// TreeEntry is one blob in a recursive repository tree listing.
type TreeEntry struct {
	Path string
	SHA  string
	Size int64
}

// PullRequest carries the PR metadata the pipeline reads.
type PullRequest struct {
	Number         int
	Title          string
	Body           string
	State          string // "open" or "closed"
	Merged         bool
	Draft          bool
	HTMLURL        string
	HeadRef        string
	BaseRef        string
	Author         string
	MergeableState string // "behind", "dirty", "clean", ...
	ChangedFiles   int
	Additions      int
	Deletions      int
}

// ReviewInput posts a pull-request review.
type ReviewInput struct {
	Event string // "APPROVE", "REQUEST_CHANGES", "COMMENT"
	Body  string
}

// MergeInput merges a pull request.
type MergeInput struct {
	CommitTitle   string
	CommitMessage string
	Method        string // "merge", "squash", "rebase"; default "squash"
}

// WorkflowRun is one run of a deployment workflow.
type WorkflowRun struct {
	ID         int64
	Name       string
	Status     string // "queued", "in_progress", "completed"
	Conclusion string // "success", "failure", ... (empty until completed)
	HeadBranch string
	HTMLURL    string
	CreatedAt  time.Time
}

// Host is the full platform surface the pipeline depends on.
type Host interface {
	// Issues
	CreateIssue(ctx context.Context, repo Repo, in IssueInput) (*Issue, error)
	UpdateIssue(ctx context.Context, repo Repo, number int, in IssueInput) error
	CloseIssue(ctx context.Context, repo Repo, number int) error
	CommentOnIssue(ctx context.Context, repo Repo, number int, body string) error
	SetLabel(ctx context.Context, repo Repo, number int, label Label) error
	RemoveLabel(ctx context.Context, repo Repo, number int, name string) error
	AssignAgent(ctx context.Context, repo Repo, number int, in AgentAssignment) error

	// Git data
	ListCommits(ctx context.Context, repo Repo, branch string, limit int) ([]Commit, error)
	EnsureBranch(ctx context.Context, repo Repo, name, from string) error
	CommitFiles(ctx context.Context, repo Repo, branch, message string, files []CommitFile) error
	DeleteBranch(ctx context.Context, repo Repo, name string) error
	RemovePathPrefix(ctx context.Context, repo Repo, branch, prefix string) error
	ListTree(ctx context.Context, repo Repo, ref string) ([]TreeEntry, error)
	FileContent(ctx context.Context, repo Repo, path, ref string) (string, error)

	// Pull requests
	FindAgentPullRequest(ctx context.Context, repo Repo, issueNumber int, author string) (*PullRequest, error)
	GetPullRequest(ctx context.Context, repo Repo, number int) (*PullRequest, error)
	PullRequestDiff(ctx context.Context, repo Repo, number int) (string, error)
	CreatePullRequestReview(ctx context.Context, repo Repo, number int, in ReviewInput) error
	MergePullRequest(ctx context.Context, repo Repo, number int, in MergeInput) error
	UpdatePullRequestBranch(ctx context.Context, repo Repo, number int) error

	// Workflows
	ListWorkflowRuns(ctx context.Context, repo Repo, workflowFile, branch string, limit int) ([]WorkflowRun, error)
	GetWorkflowRun(ctx context.Context, repo Repo, runID int64) (*WorkflowRun, error)
	RerunFailedJobs(ctx context.Context, repo Repo, runID int64) error
	DispatchWorkflow(ctx context.Context, repo Repo, workflowFile, ref string) error
}

// New resolves the host from configuration. A missing token yields the
// NullHost: the pipeline keeps running in degraded mode with external
// effects disabled.
func New(cfg *config.GitHubConfig) Host {
	tokenEnv := "GITHUB_TOKEN"
	if cfg != nil && cfg.TokenEnv != "" {
		tokenEnv = cfg.TokenEnv
	}
	token := os.Getenv(tokenEnv)
	if token == "" {
		slog.Warn("Code host token not set, external effects disabled", "env", tokenEnv)
		return &NullHost{}
	}

	baseURL := "https://api.github.com"
	agent := "copilot"
	if cfg != nil {
		if cfg.APIBaseURL != "" {
			baseURL = cfg.APIBaseURL
		}
		if cfg.AgentPrincipal != "" {
			agent = cfg.AgentPrincipal
		}
	}
	return NewGitHubHost(baseURL, token, agent)
}

// APIError is a non-2xx response from the platform API.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("code host returned HTTP %d for %s: %s", e.StatusCode, e.URL, e.Message)
}

// StatusCode extracts the HTTP status from an APIError chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
