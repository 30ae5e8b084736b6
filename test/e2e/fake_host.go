package e2e

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/conveyor-dev/conveyor/pkg/codehost"
)

type issueKey struct {
	repo   string
	number int
}

type prKey struct {
	repo   string
	number int
}

type runKey struct {
	repo string
	id   int64
}

type workflowKey struct {
	repo     string
	workflow string
}

type pathKey struct {
	repo string
	path string
}

type branchKey struct {
	repo string
	name string
}

type fakeIssue struct {
	title    string
	body     string
	state    string
	labels   []string
	comments []string
}

// AssignmentCall records one AssignAgent invocation.
type AssignmentCall struct {
	Repo   codehost.Repo
	Number int
	Input  codehost.AgentAssignment
}

// DispatchCall records one DispatchWorkflow invocation.
type DispatchCall struct {
	Repo     codehost.Repo
	Workflow string
	Ref      string
}

// ScrubCall records one RemovePathPrefix invocation.
type ScrubCall struct {
	Repo   codehost.Repo
	Branch string
	Prefix string
}

// FakeHost is an in-memory codehost.Host. Reads and writes behave like
// the GitHub host: labels replace others in the same namespace, missing
// objects return ErrNotFound, FindAgentPullRequest matches by author
// prefix and issue reference, and DispatchWorkflow starts a fresh queued
// run. Tests seed and advance the world through the mutator methods and
// inspect writes through the recorder methods.
type FakeHost struct {
	mu sync.Mutex

	nextIssue int
	nextPR    int
	nextRun   int64

	issues   map[issueKey]*fakeIssue
	pulls    map[prKey]*codehost.PullRequest
	diffs    map[prKey]string
	tree     map[string][]codehost.TreeEntry
	contents map[pathKey]string
	commits  map[branchKey][]codehost.Commit
	branches map[branchKey]bool
	runs     map[runKey]*codehost.WorkflowRun
	runOrder map[workflowKey][]int64

	assignments     []AssignmentCall
	prReviews       map[prKey][]codehost.ReviewInput
	mergedPRs       []int
	rerunRuns       []int64
	dispatches      []DispatchCall
	scrubs          []ScrubCall
	deletedBranches []string
	branchUpdates   []int
}

var _ codehost.Host = (*FakeHost)(nil)

func NewFakeHost() *FakeHost {
	return &FakeHost{
		issues:    make(map[issueKey]*fakeIssue),
		pulls:     make(map[prKey]*codehost.PullRequest),
		diffs:     make(map[prKey]string),
		tree:      make(map[string][]codehost.TreeEntry),
		contents:  make(map[pathKey]string),
		commits:   make(map[branchKey][]codehost.Commit),
		branches:  make(map[branchKey]bool),
		runs:      make(map[runKey]*codehost.WorkflowRun),
		runOrder:  make(map[workflowKey][]int64),
		prReviews: make(map[prKey][]codehost.ReviewInput),
	}
}

// --- Issues ---

func (h *FakeHost) CreateIssue(_ context.Context, repo codehost.Repo, in codehost.IssueInput) (*codehost.Issue, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextIssue++
	number := h.nextIssue
	h.issues[issueKey{repo.String(), number}] = &fakeIssue{
		title:  in.Title,
		body:   in.Body,
		state:  "open",
		labels: append([]string(nil), in.Labels...),
	}
	return &codehost.Issue{
		Number:  number,
		Title:   in.Title,
		State:   "open",
		HTMLURL: fmt.Sprintf("https://github.com/%s/issues/%d", repo, number),
	}, nil
}

func (h *FakeHost) UpdateIssue(_ context.Context, repo codehost.Repo, number int, in codehost.IssueInput) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	issue, ok := h.issues[issueKey{repo.String(), number}]
	if !ok {
		return codehost.ErrNotFound
	}
	if in.Title != "" {
		issue.title = in.Title
	}
	if in.Body != "" {
		issue.body = in.Body
	}
	return nil
}

func (h *FakeHost) CloseIssue(_ context.Context, repo codehost.Repo, number int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	issue, ok := h.issues[issueKey{repo.String(), number}]
	if !ok {
		return codehost.ErrNotFound
	}
	issue.state = "closed"
	return nil
}

func (h *FakeHost) CommentOnIssue(_ context.Context, repo codehost.Repo, number int, body string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	issue, ok := h.issues[issueKey{repo.String(), number}]
	if !ok {
		return codehost.ErrNotFound
	}
	issue.comments = append(issue.comments, body)
	return nil
}

// SetLabel applies the label, dropping any other label that shares the
// namespace before the colon. Mirrors the GitHub host.
func (h *FakeHost) SetLabel(_ context.Context, repo codehost.Repo, number int, label codehost.Label) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	issue, ok := h.issues[issueKey{repo.String(), number}]
	if !ok {
		return codehost.ErrNotFound
	}

	ns := labelNamespace(label.Name)
	kept := issue.labels[:0]
	for _, l := range issue.labels {
		if l == label.Name {
			continue
		}
		if ns != "" && labelNamespace(l) == ns {
			continue
		}
		kept = append(kept, l)
	}
	issue.labels = append(kept, label.Name)
	return nil
}

func (h *FakeHost) RemoveLabel(_ context.Context, repo codehost.Repo, number int, name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	issue, ok := h.issues[issueKey{repo.String(), number}]
	if !ok {
		return codehost.ErrNotFound
	}
	kept := issue.labels[:0]
	for _, l := range issue.labels {
		if l != name {
			kept = append(kept, l)
		}
	}
	issue.labels = kept
	return nil
}

func (h *FakeHost) AssignAgent(_ context.Context, repo codehost.Repo, number int, in codehost.AgentAssignment) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.issues[issueKey{repo.String(), number}]; !ok {
		return codehost.ErrNotFound
	}
	h.assignments = append(h.assignments, AssignmentCall{Repo: repo, Number: number, Input: in})
	return nil
}

// --- Git data ---

func (h *FakeHost) ListCommits(_ context.Context, repo codehost.Repo, branch string, limit int) ([]codehost.Commit, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	commits := h.commits[branchKey{repo.String(), branch}]
	if limit > 0 && len(commits) > limit {
		commits = commits[:limit]
	}
	return append([]codehost.Commit(nil), commits...), nil
}

func (h *FakeHost) EnsureBranch(_ context.Context, repo codehost.Repo, name, _ string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.branches[branchKey{repo.String(), name}] = true
	return nil
}

func (h *FakeHost) CommitFiles(_ context.Context, repo codehost.Repo, branch, message string, files []codehost.CommitFile) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := branchKey{repo.String(), branch}
	if !h.branches[key] {
		return codehost.ErrNotFound
	}
	h.commits[key] = append([]codehost.Commit{{
		SHA:     fmt.Sprintf("sha-%s-%d", branch, len(h.commits[key])+1),
		Message: message,
		Author:  "conveyor",
		Date:    time.Now(),
	}}, h.commits[key]...)
	for _, f := range files {
		h.contents[pathKey{repo.String(), branch + ":" + f.Path}] = string(f.Content)
	}
	return nil
}

func (h *FakeHost) DeleteBranch(_ context.Context, repo codehost.Repo, name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.branches, branchKey{repo.String(), name})
	h.deletedBranches = append(h.deletedBranches, name)
	return nil
}

func (h *FakeHost) RemovePathPrefix(_ context.Context, repo codehost.Repo, branch, prefix string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.scrubs = append(h.scrubs, ScrubCall{Repo: repo, Branch: branch, Prefix: prefix})
	return nil
}

func (h *FakeHost) ListTree(_ context.Context, repo codehost.Repo, _ string) ([]codehost.TreeEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]codehost.TreeEntry(nil), h.tree[repo.String()]...), nil
}

func (h *FakeHost) FileContent(_ context.Context, repo codehost.Repo, path, _ string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	content, ok := h.contents[pathKey{repo.String(), path}]
	if !ok {
		return "", codehost.ErrNotFound
	}
	return content, nil
}

// --- Pull requests ---

// FindAgentPullRequest scans newest first for a PR authored by the agent
// principal that references the issue, like the GitHub host: "#N" in
// body or title, or a head branch ending in "-N". (nil, nil) when no PR
// matches.
func (h *FakeHost) FindAgentPullRequest(_ context.Context, repo codehost.Repo, issueNumber int, author string) (*codehost.PullRequest, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	author = strings.ToLower(author)
	var match *codehost.PullRequest
	for key, pr := range h.pulls {
		if key.repo != repo.String() {
			continue
		}
		if author != "" && !strings.HasPrefix(strings.ToLower(pr.Author), author) {
			continue
		}
		if !mentionsIssue(pr.Body, issueNumber) && !mentionsIssue(pr.Title, issueNumber) &&
			!strings.HasSuffix(pr.HeadRef, "-"+strconv.Itoa(issueNumber)) {
			continue
		}
		if match == nil || pr.Number > match.Number {
			match = pr
		}
	}
	if match == nil {
		return nil, nil
	}
	cp := *match
	return &cp, nil
}

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

func (h *FakeHost) GetPullRequest(_ context.Context, repo codehost.Repo, number int) (*codehost.PullRequest, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	pr, ok := h.pulls[prKey{repo.String(), number}]
	if !ok {
		return nil, codehost.ErrNotFound
	}
	cp := *pr
	return &cp, nil
}

func (h *FakeHost) PullRequestDiff(_ context.Context, repo codehost.Repo, number int) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.pulls[prKey{repo.String(), number}]; !ok {
		return "", codehost.ErrNotFound
	}
	return h.diffs[prKey{repo.String(), number}], nil
}

func (h *FakeHost) CreatePullRequestReview(_ context.Context, repo codehost.Repo, number int, in codehost.ReviewInput) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := prKey{repo.String(), number}
	if _, ok := h.pulls[key]; !ok {
		return codehost.ErrNotFound
	}
	h.prReviews[key] = append(h.prReviews[key], in)
	return nil
}

func (h *FakeHost) MergePullRequest(_ context.Context, repo codehost.Repo, number int, _ codehost.MergeInput) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	pr, ok := h.pulls[prKey{repo.String(), number}]
	if !ok {
		return codehost.ErrNotFound
	}
	pr.Merged = true
	pr.State = "closed"
	h.mergedPRs = append(h.mergedPRs, number)
	return nil
}

// UpdatePullRequestBranch refreshes the head from base; the PR is no
// longer behind afterwards.
func (h *FakeHost) UpdatePullRequestBranch(_ context.Context, repo codehost.Repo, number int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	pr, ok := h.pulls[prKey{repo.String(), number}]
	if !ok {
		return codehost.ErrNotFound
	}
	if pr.MergeableState == "behind" {
		pr.MergeableState = "clean"
	}
	h.branchUpdates = append(h.branchUpdates, number)
	return nil
}

// --- Workflows ---

func (h *FakeHost) ListWorkflowRuns(_ context.Context, repo codehost.Repo, workflowFile, branch string, limit int) ([]codehost.WorkflowRun, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []codehost.WorkflowRun
	for _, id := range h.runOrder[workflowKey{repo.String(), workflowFile}] {
		run := h.runs[runKey{repo.String(), id}]
		if run == nil {
			continue
		}
		if branch != "" && run.HeadBranch != "" && run.HeadBranch != branch {
			continue
		}
		out = append(out, *run)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (h *FakeHost) GetWorkflowRun(_ context.Context, repo codehost.Repo, runID int64) (*codehost.WorkflowRun, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	run, ok := h.runs[runKey{repo.String(), runID}]
	if !ok {
		return nil, codehost.ErrNotFound
	}
	cp := *run
	return &cp, nil
}

// RerunFailedJobs puts the run back in the queue with its conclusion
// cleared; the test completes it again via CompleteRun.
func (h *FakeHost) RerunFailedJobs(_ context.Context, repo codehost.Repo, runID int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	run, ok := h.runs[runKey{repo.String(), runID}]
	if !ok {
		return codehost.ErrNotFound
	}
	run.Status = "queued"
	run.Conclusion = ""
	h.rerunRuns = append(h.rerunRuns, runID)
	return nil
}

// DispatchWorkflow records the call and starts a fresh queued run on the
// workflow, like a real workflow_dispatch.
func (h *FakeHost) DispatchWorkflow(_ context.Context, repo codehost.Repo, workflowFile, ref string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.dispatches = append(h.dispatches, DispatchCall{Repo: repo, Workflow: workflowFile, Ref: ref})
	h.addRunLocked(repo, workflowFile, codehost.WorkflowRun{
		Name:       workflowFile,
		Status:     "queued",
		HeadBranch: ref,
		CreatedAt:  time.Now(),
	})
	return nil
}

// --- Test mutators ---

// AddFile seeds a file into the repository tree and its content store.
func (h *FakeHost) AddFile(repo codehost.Repo, path, content string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.tree[repo.String()] = append(h.tree[repo.String()], codehost.TreeEntry{
		Path: path,
		SHA:  fmt.Sprintf("blob-%d", len(h.tree[repo.String()])+1),
		Size: int64(len(content)),
	})
	h.contents[pathKey{repo.String(), path}] = content
}

// OpenPullRequest stores a PR as the coding agent would open it. A zero
// Number is assigned; State defaults to "open".
func (h *FakeHost) OpenPullRequest(repo codehost.Repo, pr codehost.PullRequest) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if pr.Number == 0 {
		h.nextPR++
		pr.Number = h.nextPR
	} else if pr.Number > h.nextPR {
		h.nextPR = pr.Number
	}
	if pr.State == "" {
		pr.State = "open"
	}
	if pr.HTMLURL == "" {
		pr.HTMLURL = fmt.Sprintf("https://github.com/%s/pull/%d", repo, pr.Number)
	}
	cp := pr
	h.pulls[prKey{repo.String(), pr.Number}] = &cp
	if pr.HeadRef != "" {
		h.branches[branchKey{repo.String(), pr.HeadRef}] = true
	}
	return pr.Number
}

// SetDiff sets the unified diff served for a PR.
func (h *FakeHost) SetDiff(repo codehost.Repo, number int, diff string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.diffs[prKey{repo.String(), number}] = diff
}

// SetMergeableState overrides a PR's mergeable state.
func (h *FakeHost) SetMergeableState(repo codehost.Repo, number int, state string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if pr, ok := h.pulls[prKey{repo.String(), number}]; ok {
		pr.MergeableState = state
	}
}

// ClosePullRequest closes a PR without merging.
func (h *FakeHost) ClosePullRequest(repo codehost.Repo, number int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if pr, ok := h.pulls[prKey{repo.String(), number}]; ok {
		pr.State = "closed"
	}
}

// AddWorkflowRun seeds a workflow run and returns its id. A zero ID is
// assigned; a zero CreatedAt becomes now.
func (h *FakeHost) AddWorkflowRun(repo codehost.Repo, workflowFile string, run codehost.WorkflowRun) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.addRunLocked(repo, workflowFile, run)
}

func (h *FakeHost) addRunLocked(repo codehost.Repo, workflowFile string, run codehost.WorkflowRun) int64 {
	if run.ID == 0 {
		h.nextRun++
		run.ID = h.nextRun
	} else if run.ID > h.nextRun {
		h.nextRun = run.ID
	}
	if run.Name == "" {
		run.Name = workflowFile
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	if run.HTMLURL == "" {
		run.HTMLURL = fmt.Sprintf("https://github.com/%s/actions/runs/%d", repo, run.ID)
	}
	cp := run
	h.runs[runKey{repo.String(), run.ID}] = &cp

	key := workflowKey{repo.String(), workflowFile}
	h.runOrder[key] = append([]int64{run.ID}, h.runOrder[key]...)
	return run.ID
}

// CompleteRun finishes a run with the given conclusion.
func (h *FakeHost) CompleteRun(repo codehost.Repo, runID int64, conclusion string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if run, ok := h.runs[runKey{repo.String(), runID}]; ok {
		run.Status = "completed"
		run.Conclusion = conclusion
	}
}

// LatestRunID returns the id of the newest run on a workflow, or 0.
func (h *FakeHost) LatestRunID(repo codehost.Repo, workflowFile string) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	order := h.runOrder[workflowKey{repo.String(), workflowFile}]
	if len(order) == 0 {
		return 0
	}
	return order[0]
}

// --- Recorders ---

// IssueCount reports how many issues exist in the repository.
func (h *FakeHost) IssueCount(repo codehost.Repo) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for key := range h.issues {
		if key.repo == repo.String() {
			n++
		}
	}
	return n
}

// Labels returns the labels currently on an issue.
func (h *FakeHost) Labels(repo codehost.Repo, number int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	issue, ok := h.issues[issueKey{repo.String(), number}]
	if !ok {
		return nil
	}
	return append([]string(nil), issue.labels...)
}

// IssueComments returns the comments posted on an issue, in order.
func (h *FakeHost) IssueComments(repo codehost.Repo, number int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	issue, ok := h.issues[issueKey{repo.String(), number}]
	if !ok {
		return nil
	}
	return append([]string(nil), issue.comments...)
}

// Assignments returns every AssignAgent call in order.
func (h *FakeHost) Assignments() []AssignmentCall {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]AssignmentCall(nil), h.assignments...)
}

// PullRequestReviews returns the reviews posted on a PR.
func (h *FakeHost) PullRequestReviews(repo codehost.Repo, number int) []codehost.ReviewInput {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]codehost.ReviewInput(nil), h.prReviews[prKey{repo.String(), number}]...)
}

// MergedPRs returns the PR numbers merged through MergePullRequest.
func (h *FakeHost) MergedPRs() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]int(nil), h.mergedPRs...)
}

// RerunCalls returns the run ids passed to RerunFailedJobs.
func (h *FakeHost) RerunCalls() []int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]int64(nil), h.rerunRuns...)
}

// Dispatches returns every DispatchWorkflow call in order.
func (h *FakeHost) Dispatches() []DispatchCall {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]DispatchCall(nil), h.dispatches...)
}

// Scrubs returns every RemovePathPrefix call in order.
func (h *FakeHost) Scrubs() []ScrubCall {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]ScrubCall(nil), h.scrubs...)
}

// DeletedBranches returns the branch names deleted, in order.
func (h *FakeHost) DeletedBranches() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.deletedBranches...)
}

// BranchUpdates returns the PR numbers whose head was refreshed.
func (h *FakeHost) BranchUpdates() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]int(nil), h.branchUpdates...)
}

func labelNamespace(name string) string {
	if i := strings.IndexByte(name, ':'); i > 0 {
		return name[:i]
	}
	return ""
}
