package codehost

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/conveyor-dev/conveyor/pkg/metrics"
)

const (
	acceptJSON = "application/vnd.github.v3+json"
	acceptDiff = "application/vnd.github.v3.diff"
	acceptRaw  = "application/vnd.github.v3.raw"
)

// GitHubHost implements Host against the GitHub REST API.
type GitHubHost struct {
	httpClient *http.Client
	baseURL    string
	token      string
	agent      string
}

var _ Host = (*GitHubHost)(nil)

// NewGitHubHost creates a host client. agentPrincipal is the login issues
// are assigned to for implementation (e.g. "copilot").
func NewGitHubHost(baseURL, token, agentPrincipal string) *GitHubHost {
	return &GitHubHost{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		agent:      agentPrincipal,
	}
}

// roundTrip executes one API call and returns the raw response body.
// 404 maps to ErrNotFound; other non-2xx statuses map to *APIError.
func (h *GitHubHost) roundTrip(ctx context.Context, method, path, accept string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("Authorization", "Bearer "+h.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	}
	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: apiMessage(data), URL: path}
	}
	return data, nil
}

// call executes a JSON API call, decoding the response into out when non-nil.
func (h *GitHubHost) call(ctx context.Context, op, method, path string, body, out any) error {
	data, err := h.roundTrip(ctx, method, path, acceptJSON, body)
	if err == nil && out != nil && len(data) > 0 {
		if uerr := json.Unmarshal(data, out); uerr != nil {
			err = fmt.Errorf("decode response: %w", uerr)
		}
	}
	metrics.ObserveCodeHostRequest(op, err)
	return err
}

// callText executes a call whose response body is consumed as plain text.
func (h *GitHubHost) callText(ctx context.Context, op, method, path, accept string) (string, error) {
	data, err := h.roundTrip(ctx, method, path, accept, nil)
	metrics.ObserveCodeHostRequest(op, err)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func apiMessage(data []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &e) == nil && e.Message != "" {
		return e.Message
	}
	if len(data) > 200 {
		data = data[:200]
	}
	return string(data)
}

// Wire shapes, reduced to the fields the pipeline reads.

type ghIssue struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
}

type ghLabel struct {
	Name string `json:"name"`
}

type ghCommit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

type ghRef struct {
	Object struct {
		SHA string `json:"sha"`
	} `json:"object"`
}

type ghTree struct {
	Tree      []ghTreeEntry `json:"tree"`
	Truncated bool          `json:"truncated"`
}

type ghTreeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
	Size int64  `json:"size"`
}

type ghPull struct {
	Number         int    `json:"number"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	State          string `json:"state"`
	Merged         bool   `json:"merged"`
	Draft          bool   `json:"draft"`
	HTMLURL        string `json:"html_url"`
	MergeableState string `json:"mergeable_state"`
	ChangedFiles   int    `json:"changed_files"`
	Additions      int    `json:"additions"`
	Deletions      int    `json:"deletions"`
	Head           struct {
		Ref string `json:"ref"`
	} `json:"head"`
	Base struct {
		Ref string `json:"ref"`
	} `json:"base"`
	User struct {
		Login string `json:"login"`
	} `json:"user"`
}

type ghWorkflowRuns struct {
	WorkflowRuns []ghWorkflowRun `json:"workflow_runs"`
}

type ghWorkflowRun struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	Conclusion string    `json:"conclusion"`
	HeadBranch string    `json:"head_branch"`
	HTMLURL    string    `json:"html_url"`
	CreatedAt  time.Time `json:"created_at"`
}

func issueFromWire(in *ghIssue) *Issue {
	return &Issue{Number: in.Number, Title: in.Title, State: in.State, HTMLURL: in.HTMLURL}
}

func pullFromWire(in *ghPull) *PullRequest {
	return &PullRequest{
		Number:         in.Number,
		Title:          in.Title,
		Body:           in.Body,
		State:          in.State,
		Merged:         in.Merged,
		Draft:          in.Draft,
		HTMLURL:        in.HTMLURL,
		HeadRef:        in.Head.Ref,
		BaseRef:        in.Base.Ref,
		Author:         in.User.Login,
		MergeableState: in.MergeableState,
		ChangedFiles:   in.ChangedFiles,
		Additions:      in.Additions,
		Deletions:      in.Deletions,
	}
}

// CreateIssue opens a new issue.
func (h *GitHubHost) CreateIssue(ctx context.Context, repo Repo, in IssueInput) (*Issue, error) {
	payload := map[string]any{"title": in.Title}
	if in.Body != "" {
		payload["body"] = in.Body
	}
	if len(in.Labels) > 0 {
		payload["labels"] = in.Labels
	}

	var out ghIssue
	if err := h.call(ctx, "create_issue", http.MethodPost, fmt.Sprintf("/repos/%s/issues", repo), payload, &out); err != nil {
		return nil, fmt.Errorf("create issue in %s: %w", repo, err)
	}
	return issueFromWire(&out), nil
}

// UpdateIssue patches title/body. Empty fields are left untouched.
func (h *GitHubHost) UpdateIssue(ctx context.Context, repo Repo, number int, in IssueInput) error {
	payload := map[string]any{}
	if in.Title != "" {
		payload["title"] = in.Title
	}
	if in.Body != "" {
		payload["body"] = in.Body
	}
	if len(payload) == 0 {
		return nil
	}
	if err := h.call(ctx, "update_issue", http.MethodPatch, fmt.Sprintf("/repos/%s/issues/%d", repo, number), payload, nil); err != nil {
		return fmt.Errorf("update issue %s#%d: %w", repo, number, err)
	}
	return nil
}

// CloseIssue marks the issue closed.
func (h *GitHubHost) CloseIssue(ctx context.Context, repo Repo, number int) error {
	payload := map[string]any{"state": "closed"}
	if err := h.call(ctx, "close_issue", http.MethodPatch, fmt.Sprintf("/repos/%s/issues/%d", repo, number), payload, nil); err != nil {
		return fmt.Errorf("close issue %s#%d: %w", repo, number, err)
	}
	return nil
}

// CommentOnIssue posts a comment. Duplicates are tolerated.
func (h *GitHubHost) CommentOnIssue(ctx context.Context, repo Repo, number int, body string) error {
	payload := map[string]any{"body": body}
	if err := h.call(ctx, "comment_issue", http.MethodPost, fmt.Sprintf("/repos/%s/issues/%d/comments", repo, number), payload, nil); err != nil {
		return fmt.Errorf("comment on %s#%d: %w", repo, number, err)
	}
	return nil
}

// SetLabel applies a label after removing any other label in the same
// ':'-delimited namespace, so an issue carries at most one agent:*,
// review:*, copilot:*, or deploy:* label at a time.
func (h *GitHubHost) SetLabel(ctx context.Context, repo Repo, number int, label Label) error {
	if err := h.ensureLabelExists(ctx, repo, label); err != nil {
		return fmt.Errorf("ensure label %q in %s: %w", label.Name, repo, err)
	}

	ns := labelNamespace(label.Name)
	if ns != "" {
		var current []ghLabel
		if err := h.call(ctx, "set_label", http.MethodGet, fmt.Sprintf("/repos/%s/issues/%d/labels", repo, number), nil, &current); err != nil {
			return fmt.Errorf("list labels on %s#%d: %w", repo, number, err)
		}
		for _, l := range current {
			if l.Name != label.Name && labelNamespace(l.Name) == ns {
				if err := h.RemoveLabel(ctx, repo, number, l.Name); err != nil {
					slog.Warn("Failed to remove superseded label", "repo", repo.String(), "issue", number, "label", l.Name, "error", err)
				}
			}
		}
	}

	payload := map[string]any{"labels": []string{label.Name}}
	if err := h.call(ctx, "set_label", http.MethodPost, fmt.Sprintf("/repos/%s/issues/%d/labels", repo, number), payload, nil); err != nil {
		return fmt.Errorf("apply label %q to %s#%d: %w", label.Name, repo, number, err)
	}
	return nil
}

func (h *GitHubHost) ensureLabelExists(ctx context.Context, repo Repo, label Label) error {
	payload := map[string]any{"name": label.Name}
	if label.Color != "" {
		payload["color"] = label.Color
	}
	err := h.call(ctx, "ensure_label", http.MethodPost, fmt.Sprintf("/repos/%s/labels", repo), payload, nil)
	if StatusCode(err) == http.StatusUnprocessableEntity {
		// 422: label already defined on the repository.
		return nil
	}
	return err
}

// RemoveLabel detaches a label from an issue. Missing labels are fine.
func (h *GitHubHost) RemoveLabel(ctx context.Context, repo Repo, number int, name string) error {
	path := fmt.Sprintf("/repos/%s/issues/%d/labels/%s", repo, number, url.PathEscape(name))
	err := h.call(ctx, "remove_label", http.MethodDelete, path, nil, nil)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("remove label %q from %s#%d: %w", name, repo, number, err)
	}
	return nil
}

// AssignAgent assigns the issue to the coding-agent principal and posts
// the instruction document (base branch and optional model directives
// included) as a comment for the agent to pick up.
func (h *GitHubHost) AssignAgent(ctx context.Context, repo Repo, number int, in AgentAssignment) error {
	payload := map[string]any{"assignees": []string{h.agent}}
	if err := h.call(ctx, "assign_agent", http.MethodPost, fmt.Sprintf("/repos/%s/issues/%d/assignees", repo, number), payload, nil); err != nil {
		return fmt.Errorf("assign %s to %s#%d: %w", h.agent, repo, number, err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "@%s please implement this request.\n\n", h.agent)
	fmt.Fprintf(&sb, "Base branch: `%s`\n", in.BaseBranch)
	if in.Model != "" {
		fmt.Fprintf(&sb, "Model: `%s`\n", in.Model)
	}
	sb.WriteString("\n")
	sb.WriteString(in.Instructions)
	return h.CommentOnIssue(ctx, repo, number, sb.String())
}

// ListCommits returns the most recent commits on a branch.
func (h *GitHubHost) ListCommits(ctx context.Context, repo Repo, branch string, limit int) ([]Commit, error) {
	if limit <= 0 {
		limit = 30
	}
	path := fmt.Sprintf("/repos/%s/commits?sha=%s&per_page=%d", repo, url.QueryEscape(branch), limit)

	var out []ghCommit
	if err := h.call(ctx, "list_commits", http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("list commits on %s@%s: %w", repo, branch, err)
	}

	commits := make([]Commit, 0, len(out))
	for i := range out {
		c := &out[i]
		commits = append(commits, Commit{
			SHA:     c.SHA,
			Message: c.Commit.Message,
			Author:  c.Commit.Author.Name,
			Date:    c.Commit.Author.Date,
		})
	}
	return commits, nil
}

// EnsureBranch creates a branch off `from` unless it already exists.
func (h *GitHubHost) EnsureBranch(ctx context.Context, repo Repo, name, from string) error {
	var ref ghRef
	err := h.call(ctx, "ensure_branch", http.MethodGet, fmt.Sprintf("/repos/%s/git/ref/%s", repo, escapePath("heads/"+name)), nil, &ref)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("check branch %q in %s: %w", name, repo, err)
	}

	if err := h.call(ctx, "ensure_branch", http.MethodGet, fmt.Sprintf("/repos/%s/git/ref/%s", repo, escapePath("heads/"+from)), nil, &ref); err != nil {
		return fmt.Errorf("resolve base branch %q in %s: %w", from, repo, err)
	}

	payload := map[string]any{"ref": "refs/heads/" + name, "sha": ref.Object.SHA}
	if err := h.call(ctx, "ensure_branch", http.MethodPost, fmt.Sprintf("/repos/%s/git/refs", repo), payload, nil); err != nil {
		if StatusCode(err) == http.StatusUnprocessableEntity {
			// 422: ref already exists.
			return nil
		}
		return fmt.Errorf("create branch %q in %s: %w", name, repo, err)
	}
	return nil
}

// CommitFiles writes files to a branch in a single commit via the git
// data API. No-ops when every path already exists on the branch.
func (h *GitHubHost) CommitFiles(ctx context.Context, repo Repo, branch, message string, files []CommitFile) error {
	if len(files) == 0 {
		return nil
	}

	existing, err := h.ListTree(ctx, repo, branch)
	if err != nil {
		return fmt.Errorf("list tree of %s@%s: %w", repo, branch, err)
	}
	have := make(map[string]bool, len(existing))
	for _, e := range existing {
		have[e.Path] = true
	}
	missing := false
	for _, f := range files {
		if !have[f.Path] {
			missing = true
			break
		}
	}
	if !missing {
		return nil
	}

	base := fmt.Sprintf("/repos/%s", repo)

	var headRef ghRef
	if err := h.call(ctx, "commit_files", http.MethodGet, base+"/git/ref/"+escapePath("heads/"+branch), nil, &headRef); err != nil {
		return fmt.Errorf("resolve branch %q in %s: %w", branch, repo, err)
	}
	headSHA := headRef.Object.SHA

	var headCommit struct {
		Tree struct {
			SHA string `json:"sha"`
		} `json:"tree"`
	}
	if err := h.call(ctx, "commit_files", http.MethodGet, base+"/git/commits/"+headSHA, nil, &headCommit); err != nil {
		return fmt.Errorf("read head commit of %s@%s: %w", repo, branch, err)
	}

	entries := make([]map[string]any, 0, len(files))
	for _, f := range files {
		var blob struct {
			SHA string `json:"sha"`
		}
		payload := map[string]any{
			"content":  base64.StdEncoding.EncodeToString(f.Content),
			"encoding": "base64",
		}
		if err := h.call(ctx, "commit_files", http.MethodPost, base+"/git/blobs", payload, &blob); err != nil {
			return fmt.Errorf("upload blob %q: %w", f.Path, err)
		}
		entries = append(entries, map[string]any{"path": f.Path, "mode": "100644", "type": "blob", "sha": blob.SHA})
	}

	var tree struct {
		SHA string `json:"sha"`
	}
	treePayload := map[string]any{"base_tree": headCommit.Tree.SHA, "tree": entries}
	if err := h.call(ctx, "commit_files", http.MethodPost, base+"/git/trees", treePayload, &tree); err != nil {
		return fmt.Errorf("create tree for %s@%s: %w", repo, branch, err)
	}

	var commit struct {
		SHA string `json:"sha"`
	}
	commitPayload := map[string]any{"message": message, "tree": tree.SHA, "parents": []string{headSHA}}
	if err := h.call(ctx, "commit_files", http.MethodPost, base+"/git/commits", commitPayload, &commit); err != nil {
		return fmt.Errorf("create commit on %s@%s: %w", repo, branch, err)
	}

	refPayload := map[string]any{"sha": commit.SHA}
	if err := h.call(ctx, "commit_files", http.MethodPatch, base+"/git/refs/"+escapePath("heads/"+branch), refPayload, nil); err != nil {
		return fmt.Errorf("advance branch %q in %s: %w", branch, repo, err)
	}
	return nil
}

// DeleteBranch removes a branch ref. Already-deleted branches are fine.
func (h *GitHubHost) DeleteBranch(ctx context.Context, repo Repo, name string) error {
	path := fmt.Sprintf("/repos/%s/git/refs/%s", repo, escapePath("heads/"+name))
	err := h.call(ctx, "delete_branch", http.MethodDelete, path, nil, nil)
	if err != nil && !errors.Is(err, ErrNotFound) && StatusCode(err) != http.StatusUnprocessableEntity {
		return fmt.Errorf("delete branch %q in %s: %w", name, repo, err)
	}
	return nil
}

// RemovePathPrefix deletes every file under prefix from a branch, one
// contents-API delete per file.
func (h *GitHubHost) RemovePathPrefix(ctx context.Context, repo Repo, branch, prefix string) error {
	entries, err := h.ListTree(ctx, repo, branch)
	if err != nil {
		return fmt.Errorf("list tree of %s@%s: %w", repo, branch, err)
	}

	for _, e := range entries {
		if !strings.HasPrefix(e.Path, prefix) {
			continue
		}
		payload := map[string]any{
			"message": fmt.Sprintf("Remove %s", e.Path),
			"sha":     e.SHA,
			"branch":  branch,
		}
		path := fmt.Sprintf("/repos/%s/contents/%s", repo, escapePath(e.Path))
		err := h.call(ctx, "remove_path_prefix", http.MethodDelete, path, payload, nil)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("delete %q from %s@%s: %w", e.Path, repo, branch, err)
		}
	}
	return nil
}

// ListTree returns all blobs reachable from ref, recursively.
func (h *GitHubHost) ListTree(ctx context.Context, repo Repo, ref string) ([]TreeEntry, error) {
	var out ghTree
	path := fmt.Sprintf("/repos/%s/git/trees/%s?recursive=1", repo, url.PathEscape(ref))
	if err := h.call(ctx, "list_tree", http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("list tree %s@%s: %w", repo, ref, err)
	}
	if out.Truncated {
		slog.Warn("Repository tree listing truncated", "repo", repo.String(), "ref", ref)
	}

	entries := make([]TreeEntry, 0, len(out.Tree))
	for _, e := range out.Tree {
		if e.Type != "blob" {
			continue
		}
		entries = append(entries, TreeEntry{Path: e.Path, SHA: e.SHA, Size: e.Size})
	}
	return entries, nil
}

// FileContent fetches one file's text at ref (default branch when empty).
func (h *GitHubHost) FileContent(ctx context.Context, repo Repo, path, ref string) (string, error) {
	apiPath := fmt.Sprintf("/repos/%s/contents/%s", repo, escapePath(path))
	if ref != "" {
		apiPath += "?ref=" + url.QueryEscape(ref)
	}
	content, err := h.callText(ctx, "file_content", http.MethodGet, apiPath, acceptRaw)
	if err != nil {
		return "", fmt.Errorf("fetch %s from %s: %w", path, repo, err)
	}
	return content, nil
}

// FindAgentPullRequest locates the PR the coding agent opened for an
// issue: authored by the agent principal and referencing the issue
// number in body, title, or head branch. Returns (nil, nil) when no PR
// exists yet.
func (h *GitHubHost) FindAgentPullRequest(ctx context.Context, repo Repo, issueNumber int, author string) (*PullRequest, error) {
	var pulls []ghPull
	path := fmt.Sprintf("/repos/%s/pulls?state=all&sort=created&direction=desc&per_page=50", repo)
	if err := h.call(ctx, "find_pr", http.MethodGet, path, nil, &pulls); err != nil {
		return nil, fmt.Errorf("list pull requests in %s: %w", repo, err)
	}

	author = strings.ToLower(author)
	for i := range pulls {
		p := &pulls[i]
		if author != "" && !strings.HasPrefix(strings.ToLower(p.User.Login), author) {
			continue
		}
		if mentionsIssue(p.Body, issueNumber) || mentionsIssue(p.Title, issueNumber) ||
			strings.HasSuffix(p.Head.Ref, "-"+strconv.Itoa(issueNumber)) {
			return pullFromWire(p), nil
		}
	}
	return nil, nil
}

// mentionsIssue reports whether text contains "#N" not followed by a
// further digit, so issue 12 does not match "#123".
func mentionsIssue(text string, number int) bool {
	needle := fmt.Sprintf("#%d", number)
	for i := 0; ; {
		j := strings.Index(text[i:], needle)
		if j < 0 {
			return false
		}
		end := i + j + len(needle)
		if end >= len(text) || text[end] < '0' || text[end] > '9' {
			return true
		}
		i = end
	}
}

// GetPullRequest fetches full PR metadata.
func (h *GitHubHost) GetPullRequest(ctx context.Context, repo Repo, number int) (*PullRequest, error) {
	var out ghPull
	if err := h.call(ctx, "get_pr", http.MethodGet, fmt.Sprintf("/repos/%s/pulls/%d", repo, number), nil, &out); err != nil {
		return nil, fmt.Errorf("get pull request %s#%d: %w", repo, number, err)
	}
	return pullFromWire(&out), nil
}

// PullRequestDiff fetches the unified diff.
func (h *GitHubHost) PullRequestDiff(ctx context.Context, repo Repo, number int) (string, error) {
	diff, err := h.callText(ctx, "pr_diff", http.MethodGet, fmt.Sprintf("/repos/%s/pulls/%d", repo, number), acceptDiff)
	if err != nil {
		return "", fmt.Errorf("get diff of %s#%d: %w", repo, number, err)
	}
	return diff, nil
}

// CreatePullRequestReview posts a review with the given event.
func (h *GitHubHost) CreatePullRequestReview(ctx context.Context, repo Repo, number int, in ReviewInput) error {
	payload := map[string]any{"event": in.Event, "body": in.Body}
	if err := h.call(ctx, "pr_review", http.MethodPost, fmt.Sprintf("/repos/%s/pulls/%d/reviews", repo, number), payload, nil); err != nil {
		return fmt.Errorf("review %s#%d: %w", repo, number, err)
	}
	return nil
}

// MergePullRequest merges via the PR merge endpoint.
func (h *GitHubHost) MergePullRequest(ctx context.Context, repo Repo, number int, in MergeInput) error {
	method := in.Method
	if method == "" {
		method = "squash"
	}
	payload := map[string]any{"merge_method": method}
	if in.CommitTitle != "" {
		payload["commit_title"] = in.CommitTitle
	}
	if in.CommitMessage != "" {
		payload["commit_message"] = in.CommitMessage
	}
	if err := h.call(ctx, "merge_pr", http.MethodPut, fmt.Sprintf("/repos/%s/pulls/%d/merge", repo, number), payload, nil); err != nil {
		return fmt.Errorf("merge %s#%d: %w", repo, number, err)
	}
	return nil
}

// UpdatePullRequestBranch refreshes the PR head from its base branch.
// A 422 means the branch is already up to date.
func (h *GitHubHost) UpdatePullRequestBranch(ctx context.Context, repo Repo, number int) error {
	err := h.call(ctx, "update_pr_branch", http.MethodPut, fmt.Sprintf("/repos/%s/pulls/%d/update-branch", repo, number), map[string]any{}, nil)
	if err != nil && StatusCode(err) != http.StatusUnprocessableEntity {
		return fmt.Errorf("update branch of %s#%d: %w", repo, number, err)
	}
	return nil
}

// ListWorkflowRuns returns recent runs of one workflow file, newest first.
func (h *GitHubHost) ListWorkflowRuns(ctx context.Context, repo Repo, workflowFile, branch string, limit int) ([]WorkflowRun, error) {
	if limit <= 0 {
		limit = 10
	}
	path := fmt.Sprintf("/repos/%s/actions/workflows/%s/runs?per_page=%d", repo, url.PathEscape(workflowFile), limit)
	if branch != "" {
		path += "&branch=" + url.QueryEscape(branch)
	}

	var out ghWorkflowRuns
	if err := h.call(ctx, "list_workflow_runs", http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("list runs of %s in %s: %w", workflowFile, repo, err)
	}

	runs := make([]WorkflowRun, 0, len(out.WorkflowRuns))
	for _, r := range out.WorkflowRuns {
		runs = append(runs, WorkflowRun{
			ID:         r.ID,
			Name:       r.Name,
			Status:     r.Status,
			Conclusion: r.Conclusion,
			HeadBranch: r.HeadBranch,
			HTMLURL:    r.HTMLURL,
			CreatedAt:  r.CreatedAt,
		})
	}
	return runs, nil
}

// GetWorkflowRun fetches one workflow run by id.
func (h *GitHubHost) GetWorkflowRun(ctx context.Context, repo Repo, runID int64) (*WorkflowRun, error) {
	path := fmt.Sprintf("/repos/%s/actions/runs/%d", repo, runID)

	var out ghWorkflowRun
	if err := h.call(ctx, "get_workflow_run", http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("get run %d in %s: %w", runID, repo, err)
	}
	return &WorkflowRun{
		ID:         out.ID,
		Name:       out.Name,
		Status:     out.Status,
		Conclusion: out.Conclusion,
		HeadBranch: out.HeadBranch,
		HTMLURL:    out.HTMLURL,
		CreatedAt:  out.CreatedAt,
	}, nil
}

// RerunFailedJobs retries only the failed jobs of a run.
func (h *GitHubHost) RerunFailedJobs(ctx context.Context, repo Repo, runID int64) error {
	path := fmt.Sprintf("/repos/%s/actions/runs/%d/rerun-failed-jobs", repo, runID)
	if err := h.call(ctx, "rerun_failed_jobs", http.MethodPost, path, map[string]any{}, nil); err != nil {
		return fmt.Errorf("rerun failed jobs of run %d in %s: %w", runID, repo, err)
	}
	return nil
}

// DispatchWorkflow starts a fresh workflow run on ref.
func (h *GitHubHost) DispatchWorkflow(ctx context.Context, repo Repo, workflowFile, ref string) error {
	path := fmt.Sprintf("/repos/%s/actions/workflows/%s/dispatches", repo, url.PathEscape(workflowFile))
	payload := map[string]any{"ref": ref}
	if err := h.call(ctx, "dispatch_workflow", http.MethodPost, path, payload, nil); err != nil {
		return fmt.Errorf("dispatch %s on %s@%s: %w", workflowFile, repo, ref, err)
	}
	return nil
}

func labelNamespace(name string) string {
	if i := strings.IndexByte(name, ':'); i > 0 {
		return name[:i]
	}
	return ""
}

func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
