package codehost

import "context"

// NullHost is the degraded-mode host: reads come back empty, writes
// no-op. The pipeline stays alive without external effects.
type NullHost struct{}

var _ Host = (*NullHost)(nil)

func (*NullHost) CreateIssue(context.Context, Repo, IssueInput) (*Issue, error) {
	return nil, ErrNotFound
}

func (*NullHost) UpdateIssue(context.Context, Repo, int, IssueInput) error { return nil }

func (*NullHost) CloseIssue(context.Context, Repo, int) error { return nil }

func (*NullHost) CommentOnIssue(context.Context, Repo, int, string) error { return nil }

func (*NullHost) SetLabel(context.Context, Repo, int, Label) error { return nil }

func (*NullHost) RemoveLabel(context.Context, Repo, int, string) error { return nil }

func (*NullHost) AssignAgent(context.Context, Repo, int, AgentAssignment) error { return nil }

func (*NullHost) ListCommits(context.Context, Repo, string, int) ([]Commit, error) {
	return nil, nil
}

func (*NullHost) EnsureBranch(context.Context, Repo, string, string) error { return nil }

func (*NullHost) CommitFiles(context.Context, Repo, string, string, []CommitFile) error {
	return nil
}

func (*NullHost) DeleteBranch(context.Context, Repo, string) error { return nil }

func (*NullHost) RemovePathPrefix(context.Context, Repo, string, string) error { return nil }

func (*NullHost) ListTree(context.Context, Repo, string) ([]TreeEntry, error) { return nil, nil }

func (*NullHost) FileContent(context.Context, Repo, string, string) (string, error) {
	return "", ErrNotFound
}

func (*NullHost) FindAgentPullRequest(context.Context, Repo, int, string) (*PullRequest, error) {
	return nil, nil
}

func (*NullHost) GetPullRequest(context.Context, Repo, int) (*PullRequest, error) {
	return nil, ErrNotFound
}

func (*NullHost) PullRequestDiff(context.Context, Repo, int) (string, error) {
	return "", ErrNotFound
}

func (*NullHost) CreatePullRequestReview(context.Context, Repo, int, ReviewInput) error {
	return nil
}

func (*NullHost) MergePullRequest(context.Context, Repo, int, MergeInput) error { return nil }

func (*NullHost) UpdatePullRequestBranch(context.Context, Repo, int) error { return nil }

func (*NullHost) ListWorkflowRuns(context.Context, Repo, string, string, int) ([]WorkflowRun, error) {
	return nil, nil
}

func (*NullHost) GetWorkflowRun(context.Context, Repo, int64) (*WorkflowRun, error) {
	return nil, ErrNotFound
}

func (*NullHost) RerunFailedJobs(context.Context, Repo, int64) error { return nil }

func (*NullHost) DispatchWorkflow(context.Context, Repo, string, string) error { return nil }
