package codebase

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/pkg/codehost"
	"github.com/conveyor-dev/conveyor/pkg/config"
)

var testRepo = codehost.Repo{Owner: "acme", Name: "widgets"}

type fakeHost struct {
	codehost.NullHost

	tree  []codehost.TreeEntry
	files map[string]string

	treeCalls   atomic.Int32
	fileCalls   atomic.Int32
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	fetchDelay  time.Duration
	failingPath string
}

func (f *fakeHost) ListTree(_ context.Context, _ codehost.Repo, _ string) ([]codehost.TreeEntry, error) {
	f.treeCalls.Add(1)
	return f.tree, nil
}

func (f *fakeHost) FileContent(_ context.Context, _ codehost.Repo, path, _ string) (string, error) {
	f.fileCalls.Add(1)

	cur := f.inFlight.Add(1)
	for {
		peak := f.maxInFlight.Load()
		if cur <= peak || f.maxInFlight.CompareAndSwap(peak, cur) {
			break
		}
	}
	if f.fetchDelay > 0 {
		time.Sleep(f.fetchDelay)
	}
	f.inFlight.Add(-1)

	if path == f.failingPath {
		return "", fmt.Errorf("synthetic fetch failure")
	}
	content, ok := f.files[path]
	if !ok {
		return "", codehost.ErrNotFound
	}
	return content, nil
}

func TestService_Map(t *testing.T) {
	host := &fakeHost{tree: []codehost.TreeEntry{
		{Path: "pkg/server/api.go", Size: 4000},
		{Path: "pkg/server/handlers.go", Size: 12000},
		{Path: "web/src/App.tsx", Size: 2000},
		{Path: "README.md", Size: 10},
		{Path: "node_modules/left-pad/index.js", Size: 500},
		{Path: "vendor/dep/dep.go", Size: 500},
		{Path: ".git/HEAD", Size: 30},
		{Path: "migrations/0001_init.sql", Size: 800},
		{Path: "assets/logo.png", Size: 100000},
		{Path: "package-lock.json", Size: 900000},
		{Path: "pkg/server/api.go", Size: 4000},
	}}
	svc := NewService(host, nil)

	m, err := svc.Map(context.Background(), testRepo)
	require.NoError(t, err)

	t.Run("filters and dedupes", func(t *testing.T) {
		assert.Equal(t, 4, m.Len())
		assert.True(t, m.HasPath("pkg/server/api.go"))
		assert.True(t, m.HasPath("README.md"))
		assert.False(t, m.HasPath("node_modules/left-pad/index.js"))
		assert.False(t, m.HasPath("vendor/dep/dep.go"))
		assert.False(t, m.HasPath("migrations/0001_init.sql"))
		assert.False(t, m.HasPath("assets/logo.png"))
		assert.False(t, m.HasPath("package-lock.json"))
	})

	t.Run("estimates lines", func(t *testing.T) {
		rendered := m.Rendered()
		assert.Contains(t, rendered, "pkg/server/\n")
		assert.Contains(t, rendered, "api.go (~100 lines)")
		assert.Contains(t, rendered, "handlers.go (~300 lines)")
		// 10 bytes floors to 1 line.
		assert.Contains(t, rendered, "README.md (~1 lines)")
	})

	t.Run("serves from cache", func(t *testing.T) {
		_, err := svc.Map(context.Background(), testRepo)
		require.NoError(t, err)
		assert.Equal(t, int32(1), host.treeCalls.Load())
	})

	t.Run("invalidate forces refetch", func(t *testing.T) {
		svc.Invalidate(testRepo)
		_, err := svc.Map(context.Background(), testRepo)
		require.NoError(t, err)
		assert.Equal(t, int32(2), host.treeCalls.Load())
	})
}

func TestService_MapTTL(t *testing.T) {
	host := &fakeHost{tree: []codehost.TreeEntry{{Path: "main.go", Size: 40}}}
	svc := NewService(host, &config.CodebaseConfig{MapCacheTTL: time.Nanosecond})

	_, err := svc.Map(context.Background(), testRepo)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = svc.Map(context.Background(), testRepo)
	require.NoError(t, err)
	assert.Equal(t, int32(2), host.treeCalls.Load())
}

func TestService_Contents(t *testing.T) {
	host := &fakeHost{files: map[string]string{
		"pkg/a.go": "package a\n",
		"pkg/b.go": "package b\n",
		"pkg/c.go": "package c\n",
	}}
	svc := NewService(host, nil)

	t.Run("fetches in input order", func(t *testing.T) {
		files, err := svc.Contents(context.Background(), testRepo, []string{"pkg/b.go", "pkg/a.go"}, 0)
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "pkg/b.go", files[0].Path)
		assert.Equal(t, "package b\n", files[0].Content)
		assert.Equal(t, "pkg/a.go", files[1].Path)
	})

	t.Run("serves repeats from cache", func(t *testing.T) {
		before := host.fileCalls.Load()
		files, err := svc.Contents(context.Background(), testRepo, []string{"pkg/a.go", "pkg/b.go"}, 0)
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, before, host.fileCalls.Load())
	})

	t.Run("dedupes request paths", func(t *testing.T) {
		files, err := svc.Contents(context.Background(), testRepo, []string{"pkg/c.go", "pkg/c.go", ""}, 0)
		require.NoError(t, err)
		require.Len(t, files, 1)
	})

	t.Run("skips failed fetches", func(t *testing.T) {
		failing := &fakeHost{
			files:       map[string]string{"ok.go": "package ok\n"},
			failingPath: "broken.go",
		}
		svc := NewService(failing, nil)
		files, err := svc.Contents(context.Background(), testRepo, []string{"broken.go", "ok.go"}, 0)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "ok.go", files[0].Path)
	})
}

func TestService_ContentsCharBudget(t *testing.T) {
	host := &fakeHost{files: map[string]string{
		"a.md": "aaaaaaaaaa", // 10 chars
		"b.md": "bbbbbbbbbb",
		"c.md": "cccccccccc",
	}}
	svc := NewService(host, nil)

	files, err := svc.Contents(context.Background(), testRepo, []string{"a.md", "b.md", "c.md"}, 15)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "aaaaaaaaaa", files[0].Content)
	assert.False(t, files[0].Truncated)
	// Second file crosses the budget: cut to the remaining 5 chars.
	assert.Equal(t, "bbbbb", files[1].Content)
	assert.True(t, files[1].Truncated)
}

func TestService_ContentsThrottled(t *testing.T) {
	files := make(map[string]string)
	paths := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		p := fmt.Sprintf("pkg/f%02d.go", i)
		files[p] = "package f\n"
		paths = append(paths, p)
	}
	host := &fakeHost{files: files, fetchDelay: 2 * time.Millisecond}
	svc := NewService(host, &config.CodebaseConfig{MaxConcurrentFetches: 3})

	out, err := svc.Contents(context.Background(), testRepo, paths, 0)
	require.NoError(t, err)
	assert.Len(t, out, 20)
	assert.LessOrEqual(t, host.maxInFlight.Load(), int32(3))
}
