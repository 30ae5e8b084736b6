package codehost

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/pkg/config"
)

var testRepo = Repo{Owner: "acme", Name: "widgets"}

func newTestHost(t *testing.T, handler http.Handler) *GitHubHost {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGitHubHost(server.URL, "test-token", "copilot")
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNew(t *testing.T) {
	t.Run("missing token yields null host", func(t *testing.T) {
		t.Setenv("CONVEYOR_TEST_GH_TOKEN", "")
		host := New(&config.GitHubConfig{TokenEnv: "CONVEYOR_TEST_GH_TOKEN"})
		_, ok := host.(*NullHost)
		assert.True(t, ok)
	})

	t.Run("token yields github host", func(t *testing.T) {
		t.Setenv("CONVEYOR_TEST_GH_TOKEN", "ghp_test")
		host := New(&config.GitHubConfig{TokenEnv: "CONVEYOR_TEST_GH_TOKEN", AgentPrincipal: "copilot"})
		_, ok := host.(*GitHubHost)
		assert.True(t, ok)
	})
}

func TestGitHubHost_CreateIssue(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]any
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/repos/acme/widgets/issues", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"number": 42, "title": "Add search", "state": "open",
			"html_url": "https://github.com/acme/widgets/issues/42",
		})
	}))

	issue, err := host.CreateIssue(context.Background(), testRepo, IssueInput{
		Title:  "Add search",
		Body:   "Full text search for widgets",
		Labels: []string{"agent:approved"},
	})
	require.NoError(t, err)
	assert.Equal(t, 42, issue.Number)
	assert.Equal(t, "open", issue.State)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "Add search", gotPayload["title"])
	assert.Equal(t, "Full text search for widgets", gotPayload["body"])
}

func TestGitHubHost_SetLabel(t *testing.T) {
	var deleted []string
	var applied []string
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/repos/acme/widgets/labels":
			// Label definition already exists on the repo.
			writeJSON(t, w, http.StatusUnprocessableEntity, map[string]any{"message": "Validation Failed"})
		case r.Method == http.MethodGet && r.URL.Path == "/repos/acme/widgets/issues/7/labels":
			writeJSON(t, w, http.StatusOK, []map[string]any{
				{"name": "agent:needs-info"},
				{"name": "bug"},
				{"name": "review:approved"},
			})
		case r.Method == http.MethodDelete:
			deleted = append(deleted, r.URL.Path)
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPost && r.URL.Path == "/repos/acme/widgets/issues/7/labels":
			var payload struct {
				Labels []string `json:"labels"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			applied = append(applied, payload.Labels...)
			writeJSON(t, w, http.StatusOK, []map[string]any{})
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))

	err := host.SetLabel(context.Background(), testRepo, 7, Label{Name: "agent:approved", Color: "0e8a16"})
	require.NoError(t, err)

	// Only the same-namespace label is removed; "bug" and "review:approved" stay.
	assert.Equal(t, []string{"/repos/acme/widgets/issues/7/labels/agent:needs-info"}, deleted)
	assert.Equal(t, []string{"agent:approved"}, applied)
}

func TestGitHubHost_RemoveLabel_MissingIsFine(t *testing.T) {
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]any{"message": "Label does not exist"})
	}))

	assert.NoError(t, host.RemoveLabel(context.Background(), testRepo, 7, "agent:approved"))
}

func TestGitHubHost_EnsureBranch(t *testing.T) {
	t.Run("existing branch no-ops", func(t *testing.T) {
		var created bool
		host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/repos/acme/widgets/git/ref/heads/attachments/request-7":
				writeJSON(t, w, http.StatusOK, map[string]any{"object": map[string]any{"sha": "abc123"}})
			case r.Method == http.MethodPost:
				created = true
				w.WriteHeader(http.StatusCreated)
			default:
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
		}))

		require.NoError(t, host.EnsureBranch(context.Background(), testRepo, "attachments/request-7", "main"))
		assert.False(t, created)
	})

	t.Run("missing branch created from base", func(t *testing.T) {
		var gotRef map[string]any
		host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/repos/acme/widgets/git/ref/heads/attachments/request-7":
				writeJSON(t, w, http.StatusNotFound, map[string]any{"message": "Not Found"})
			case r.Method == http.MethodGet && r.URL.Path == "/repos/acme/widgets/git/ref/heads/main":
				writeJSON(t, w, http.StatusOK, map[string]any{"object": map[string]any{"sha": "base-sha"}})
			case r.Method == http.MethodPost && r.URL.Path == "/repos/acme/widgets/git/refs":
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRef))
				w.WriteHeader(http.StatusCreated)
			default:
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
		}))

		require.NoError(t, host.EnsureBranch(context.Background(), testRepo, "attachments/request-7", "main"))
		assert.Equal(t, "refs/heads/attachments/request-7", gotRef["ref"])
		assert.Equal(t, "base-sha", gotRef["sha"])
	})
}

func TestGitHubHost_CommitFiles(t *testing.T) {
	t.Run("all files present no-ops", func(t *testing.T) {
		var wrote bool
		host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/repos/acme/widgets/git/trees/side":
				writeJSON(t, w, http.StatusOK, map[string]any{"tree": []map[string]any{
					{"path": "_temp-attachments/7/mock.png", "type": "blob", "sha": "s1", "size": 10},
				}})
			default:
				wrote = true
				w.WriteHeader(http.StatusOK)
			}
		}))

		files := []CommitFile{{Path: "_temp-attachments/7/mock.png", Content: []byte("png")}}
		require.NoError(t, host.CommitFiles(context.Background(), testRepo, "side", "Add attachments", files))
		assert.False(t, wrote)
	})

	t.Run("missing files committed once", func(t *testing.T) {
		var steps []string
		host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/repos/acme/widgets/git/trees/side":
				steps = append(steps, "tree-list")
				writeJSON(t, w, http.StatusOK, map[string]any{"tree": []map[string]any{}})
			case r.Method == http.MethodGet && r.URL.Path == "/repos/acme/widgets/git/ref/heads/side":
				steps = append(steps, "head-ref")
				writeJSON(t, w, http.StatusOK, map[string]any{"object": map[string]any{"sha": "head-sha"}})
			case r.Method == http.MethodGet && r.URL.Path == "/repos/acme/widgets/git/commits/head-sha":
				steps = append(steps, "head-commit")
				writeJSON(t, w, http.StatusOK, map[string]any{"tree": map[string]any{"sha": "tree-sha"}})
			case r.Method == http.MethodPost && r.URL.Path == "/repos/acme/widgets/git/blobs":
				steps = append(steps, "blob")
				writeJSON(t, w, http.StatusCreated, map[string]any{"sha": "blob-sha"})
			case r.Method == http.MethodPost && r.URL.Path == "/repos/acme/widgets/git/trees":
				steps = append(steps, "tree")
				writeJSON(t, w, http.StatusCreated, map[string]any{"sha": "new-tree"})
			case r.Method == http.MethodPost && r.URL.Path == "/repos/acme/widgets/git/commits":
				steps = append(steps, "commit")
				writeJSON(t, w, http.StatusCreated, map[string]any{"sha": "new-commit"})
			case r.Method == http.MethodPatch && r.URL.Path == "/repos/acme/widgets/git/refs/heads/side":
				steps = append(steps, "advance")
				writeJSON(t, w, http.StatusOK, map[string]any{})
			default:
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
		}))

		files := []CommitFile{
			{Path: "_temp-attachments/7/a.png", Content: []byte("a")},
			{Path: "_temp-attachments/7/b.png", Content: []byte("b")},
		}
		require.NoError(t, host.CommitFiles(context.Background(), testRepo, "side", "Add attachments", files))
		assert.Equal(t, []string{"tree-list", "head-ref", "head-commit", "blob", "blob", "tree", "commit", "advance"}, steps)
	})
}

func TestGitHubHost_RemovePathPrefix(t *testing.T) {
	var deleted []string
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/repos/acme/widgets/git/trees/feature":
			writeJSON(t, w, http.StatusOK, map[string]any{"tree": []map[string]any{
				{"path": "_temp-attachments/7/a.png", "type": "blob", "sha": "s1", "size": 3},
				{"path": "pkg/server/api.go", "type": "blob", "sha": "s2", "size": 900},
			}})
		case r.Method == http.MethodDelete:
			deleted = append(deleted, r.URL.Path)
			writeJSON(t, w, http.StatusOK, map[string]any{})
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))

	require.NoError(t, host.RemovePathPrefix(context.Background(), testRepo, "feature", "_temp-attachments/"))
	assert.Equal(t, []string{"/repos/acme/widgets/contents/_temp-attachments/7/a.png"}, deleted)
}

func TestGitHubHost_FindAgentPullRequest(t *testing.T) {
	pulls := []map[string]any{
		{
			"number": 30, "title": "Unrelated", "body": "cleanup",
			"state": "open", "head": map[string]any{"ref": "chore/tidy"},
			"user": map[string]any{"login": "human-dev"},
		},
		{
			"number": 31, "title": "Implement request", "body": "Fixes #123",
			"state": "open", "head": map[string]any{"ref": "copilot/fix-123"},
			"user": map[string]any{"login": "copilot-swe-agent[bot]"},
		},
		{
			"number": 32, "title": "Implement search", "body": "Fixes #12",
			"state": "open", "head": map[string]any{"ref": "copilot/fix-12"},
			"user": map[string]any{"login": "copilot-swe-agent[bot]"},
		},
	}
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/acme/widgets/pulls", r.URL.Path)
		writeJSON(t, w, http.StatusOK, pulls)
	}))

	t.Run("matches issue and author", func(t *testing.T) {
		pr, err := host.FindAgentPullRequest(context.Background(), testRepo, 12, "copilot")
		require.NoError(t, err)
		require.NotNil(t, pr)
		// "#12" must not match the PR whose body says "#123".
		assert.Equal(t, 32, pr.Number)
		assert.Equal(t, "copilot/fix-12", pr.HeadRef)
	})

	t.Run("author filter excludes humans", func(t *testing.T) {
		pr, err := host.FindAgentPullRequest(context.Background(), testRepo, 99, "copilot")
		require.NoError(t, err)
		assert.Nil(t, pr)
	})
}

func TestMentionsIssue(t *testing.T) {
	assert.True(t, mentionsIssue("Fixes #12", 12))
	assert.True(t, mentionsIssue("see #12.", 12))
	assert.False(t, mentionsIssue("Fixes #123", 12))
	assert.True(t, mentionsIssue("#123 and #12", 12))
	assert.False(t, mentionsIssue("no refs here", 12))
}

func TestGitHubHost_PullRequestDiff(t *testing.T) {
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, acceptDiff, r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("diff --git a/pkg/a.go b/pkg/a.go\n+new line\n"))
	}))

	diff, err := host.PullRequestDiff(context.Background(), testRepo, 31)
	require.NoError(t, err)
	assert.Contains(t, diff, "+new line")
}

func TestGitHubHost_MergePullRequest(t *testing.T) {
	var gotPayload map[string]any
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/repos/acme/widgets/pulls/31/merge", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		writeJSON(t, w, http.StatusOK, map[string]any{"merged": true})
	}))

	err := host.MergePullRequest(context.Background(), testRepo, 31, MergeInput{
		CommitTitle: "Implement search (#12)",
	})
	require.NoError(t, err)
	assert.Equal(t, "squash", gotPayload["merge_method"])
	assert.Equal(t, "Implement search (#12)", gotPayload["commit_title"])
}

func TestGitHubHost_UpdatePullRequestBranch_UpToDate(t *testing.T) {
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, map[string]any{
			"message": "There are no new commits on the base branch.",
		})
	}))

	assert.NoError(t, host.UpdatePullRequestBranch(context.Background(), testRepo, 31))
}

func TestGitHubHost_ListWorkflowRuns(t *testing.T) {
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/acme/widgets/actions/workflows/deploy-api.yml/runs", r.URL.Path)
		require.Equal(t, "main", r.URL.Query().Get("branch"))
		writeJSON(t, w, http.StatusOK, map[string]any{"workflow_runs": []map[string]any{
			{"id": 1001, "name": "deploy-api", "status": "completed", "conclusion": "success", "head_branch": "main"},
			{"id": 1000, "name": "deploy-api", "status": "completed", "conclusion": "failure", "head_branch": "main"},
		}})
	}))

	runs, err := host.ListWorkflowRuns(context.Background(), testRepo, "deploy-api.yml", "main", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, int64(1001), runs[0].ID)
	assert.Equal(t, "success", runs[0].Conclusion)
}

func TestGitHubHost_FileContent(t *testing.T) {
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, acceptRaw, r.Header.Get("Accept"))
		require.Equal(t, "/repos/acme/widgets/contents/pkg/server/api.go", r.URL.Path)
		require.Equal(t, "main", r.URL.Query().Get("ref"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("package server\n"))
	}))

	content, err := host.FileContent(context.Background(), testRepo, "pkg/server/api.go", "main")
	require.NoError(t, err)
	assert.Equal(t, "package server\n", content)
}

func TestGitHubHost_ErrorMapping(t *testing.T) {
	t.Run("404 wraps ErrNotFound", func(t *testing.T) {
		host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusNotFound, map[string]any{"message": "Not Found"})
		}))

		_, err := host.GetPullRequest(context.Background(), testRepo, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("5xx carries status code", func(t *testing.T) {
		host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusBadGateway, map[string]any{"message": "upstream hiccup"})
		}))

		_, err := host.GetPullRequest(context.Background(), testRepo, 31)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, StatusCode(err))
		assert.Contains(t, err.Error(), "upstream hiccup")
	})
}

func TestGitHubHost_AssignAgent(t *testing.T) {
	var assignees []string
	var comment string
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/acme/widgets/issues/12/assignees":
			var payload struct {
				Assignees []string `json:"assignees"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assignees = payload.Assignees
			writeJSON(t, w, http.StatusCreated, map[string]any{})
		case "/repos/acme/widgets/issues/12/comments":
			var payload struct {
				Body string `json:"body"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			comment = payload.Body
			writeJSON(t, w, http.StatusCreated, map[string]any{})
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))

	err := host.AssignAgent(context.Background(), testRepo, 12, AgentAssignment{
		Instructions: "## Approach\nAdd a search endpoint.",
		BaseBranch:   "main",
		Model:        "claude-sonnet-4-5",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"copilot"}, assignees)
	assert.Contains(t, comment, "@copilot")
	assert.Contains(t, comment, "Base branch: `main`")
	assert.Contains(t, comment, "Model: `claude-sonnet-4-5`")
	assert.Contains(t, comment, "## Approach")
}
