// Package codebase caches repository structure and file contents for
// the architect stage. Two caches, both process-wide and thread-safe:
// the repository map (15 minute TTL) and per-file contents (30 minute
// TTL). Expired entries are cleaned up lazily on read.
package codebase

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/conveyor-dev/conveyor/pkg/codehost"
	"github.com/conveyor-dev/conveyor/pkg/config"
)

const (
	defaultMapTTL     = 15 * time.Minute
	defaultContentTTL = 30 * time.Minute
	defaultFetchSlots = 5
)

// sourceExtensions is the allow-list for the repository map.
var sourceExtensions = map[string]bool{
	".go": true, ".ts": true, ".tsx": true, ".js": true, ".jsx": true,
	".py": true, ".rb": true, ".java": true, ".kt": true, ".cs": true,
	".sql": true, ".proto": true, ".graphql": true,
	".css": true, ".scss": true, ".html": true, ".vue": true, ".svelte": true,
	".md": true, ".yaml": true, ".yml": true, ".json": true, ".toml": true,
	".sh": true, ".tf": true,
}

// excludedPrefixes drops build outputs, vendored trees, generated
// migrations, and VCS internals from the map.
var excludedPrefixes = []string{
	".git/", ".idea/", ".vscode/",
	"node_modules/", "vendor/", "dist/", "build/", "out/", "bin/", "obj/", "target/",
	"coverage/", "__pycache__/", ".venv/",
	"migrations/", "db/migrations/",
}

// excludedFiles drops lockfiles that pass the extension allow-list.
var excludedFiles = map[string]bool{
	"package-lock.json": true,
	"yarn.lock":         true,
	"pnpm-lock.yaml":    true,
	"composer.lock":     true,
}

// FileInfo is one entry of the repository map.
type FileInfo struct {
	Path           string
	SizeBytes      int64
	EstimatedLines int
}

// RepoMap is the filtered, directory-grouped view of one repository.
type RepoMap struct {
	Files    []FileInfo
	rendered string
	paths    map[string]struct{}
}

// Rendered returns the directory-grouped listing for prompt embedding.
func (m *RepoMap) Rendered() string { return m.rendered }

// HasPath reports whether the repository contains the given file.
func (m *RepoMap) HasPath(p string) bool {
	_, ok := m.paths[p]
	return ok
}

// Len returns the number of files in the map.
func (m *RepoMap) Len() int { return len(m.Files) }

// File is one fetched file, possibly truncated by the character budget.
type File struct {
	Path      string
	Content   string
	Truncated bool
}

type mapEntry struct {
	m         *RepoMap
	fetchedAt time.Time
}

type contentEntry struct {
	text      string
	fetchedAt time.Time
}

// Service serves repository maps and file contents through the caches.
type Service struct {
	host codehost.Host

	mu       sync.RWMutex
	maps     map[string]*mapEntry
	contents map[string]*contentEntry

	mapTTL     time.Duration
	contentTTL time.Duration
	fetchSlots chan struct{}
}

// NewService creates the cache service over a code host.
func NewService(host codehost.Host, cfg *config.CodebaseConfig) *Service {
	mapTTL := defaultMapTTL
	contentTTL := defaultContentTTL
	slots := defaultFetchSlots
	if cfg != nil {
		if cfg.MapCacheTTL > 0 {
			mapTTL = cfg.MapCacheTTL
		}
		if cfg.ContentCacheTTL > 0 {
			contentTTL = cfg.ContentCacheTTL
		}
		if cfg.MaxConcurrentFetches > 0 {
			slots = cfg.MaxConcurrentFetches
		}
	}

	return &Service{
		host:       host,
		maps:       make(map[string]*mapEntry),
		contents:   make(map[string]*contentEntry),
		mapTTL:     mapTTL,
		contentTTL: contentTTL,
		fetchSlots: make(chan struct{}, slots),
	}
}

// Map returns the repository map, fetching the tree on a cache miss.
func (s *Service) Map(ctx context.Context, repo codehost.Repo) (*RepoMap, error) {
	key := repo.String()

	s.mu.RLock()
	entry, ok := s.maps[key]
	s.mu.RUnlock()
	if ok && time.Since(entry.fetchedAt) <= s.mapTTL {
		return entry.m, nil
	}

	tree, err := s.host.ListTree(ctx, repo, "HEAD")
	if err != nil {
		return nil, fmt.Errorf("fetch repository tree for %s: %w", repo, err)
	}

	m := buildMap(tree)

	s.mu.Lock()
	s.maps[key] = &mapEntry{m: m, fetchedAt: time.Now()}
	s.mu.Unlock()

	return m, nil
}

// Contents fetches the given files, deduplicated, in parallel under the
// global fetch limit. maxChars bounds the combined content size: the
// file that crosses the budget is truncated and the rest are dropped.
// Individual fetch failures are logged and skipped.
func (s *Service) Contents(ctx context.Context, repo codehost.Repo, paths []string, maxChars int) ([]File, error) {
	paths = dedupe(paths)
	if len(paths) == 0 {
		return nil, nil
	}

	texts := make([]string, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, p := range paths {
		cached, ok := s.cachedContent(repo, p)
		if ok {
			texts[i] = cached
			continue
		}

		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()

			select {
			case s.fetchSlots <- struct{}{}:
				defer func() { <-s.fetchSlots }()
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}

			text, err := s.host.FileContent(ctx, repo, p, "")
			if err != nil {
				errs[i] = err
				return
			}
			texts[i] = text
			s.storeContent(repo, p, text)
		}(i, p)
	}
	wg.Wait()

	var out []File
	used := 0
	for i, p := range paths {
		if errs[i] != nil {
			slog.Warn("Failed to fetch file content", "repo", repo.String(), "path", p, "error", errs[i])
			continue
		}
		text := texts[i]

		if maxChars > 0 {
			remaining := maxChars - used
			if remaining <= 0 {
				break
			}
			if len(text) > remaining {
				out = append(out, File{Path: p, Content: text[:remaining], Truncated: true})
				break
			}
		}
		used += len(text)
		out = append(out, File{Path: p, Content: text})
	}
	return out, nil
}

// Invalidate drops the map and every cached file for one repository.
func (s *Service) Invalidate(repo codehost.Repo) {
	key := repo.String()
	prefix := key + "/"

	s.mu.Lock()
	delete(s.maps, key)
	for k := range s.contents {
		if strings.HasPrefix(k, prefix) {
			delete(s.contents, k)
		}
	}
	s.mu.Unlock()
}

func (s *Service) cachedContent(repo codehost.Repo, p string) (string, bool) {
	key := repo.String() + "/" + p

	s.mu.RLock()
	entry, ok := s.contents[key]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}

	if time.Since(entry.fetchedAt) > s.contentTTL {
		s.mu.Lock()
		if current, ok := s.contents[key]; ok && time.Since(current.fetchedAt) > s.contentTTL {
			delete(s.contents, key)
		}
		s.mu.Unlock()
		return "", false
	}
	return entry.text, true
}

func (s *Service) storeContent(repo codehost.Repo, p, text string) {
	key := repo.String() + "/" + p
	s.mu.Lock()
	s.contents[key] = &contentEntry{text: text, fetchedAt: time.Now()}
	s.mu.Unlock()
}

// buildMap filters the raw tree down to source files and renders the
// directory-grouped listing.
func buildMap(tree []codehost.TreeEntry) *RepoMap {
	seen := make(map[string]struct{}, len(tree))
	files := make([]FileInfo, 0, len(tree))
	for _, e := range tree {
		if !includePath(e.Path) {
			continue
		}
		if _, dup := seen[e.Path]; dup {
			continue
		}
		seen[e.Path] = struct{}{}

		lines := int(e.Size / 40)
		if lines < 1 {
			lines = 1
		}
		files = append(files, FileInfo{Path: e.Path, SizeBytes: e.Size, EstimatedLines: lines})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return &RepoMap{
		Files:    files,
		rendered: renderMap(files),
		paths:    seen,
	}
}

func includePath(p string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(p, prefix) {
			return false
		}
	}
	if excludedFiles[path.Base(p)] {
		return false
	}
	return sourceExtensions[strings.ToLower(path.Ext(p))]
}

func renderMap(files []FileInfo) string {
	byDir := make(map[string][]FileInfo)
	for _, f := range files {
		dir := path.Dir(f.Path)
		byDir[dir] = append(byDir[dir], f)
	}

	dirs := make([]string, 0, len(byDir))
	for d := range byDir {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	var sb strings.Builder
	for _, d := range dirs {
		if d == "." {
			sb.WriteString("./\n")
		} else {
			sb.WriteString(d + "/\n")
		}
		for _, f := range byDir[d] {
			fmt.Fprintf(&sb, "  %s (~%d lines)\n", path.Base(f.Path), f.EstimatedLines)
		}
	}
	return sb.String()
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0:0]
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
