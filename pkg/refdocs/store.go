// Package refdocs loads the product reference documents that ground the
// triage and architect prompts. Documents live as markdown files in the
// config directory and are cached in memory; a change on disk is picked
// up on the next read via an mtime check, no restart required.
package refdocs

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/conveyor-dev/conveyor/pkg/config"
)

// docEntry holds one cached document plus the stat fingerprint used to
// detect on-disk changes.
type docEntry struct {
	path    string
	content string
	modTime time.Time
	size    int64
	loaded  bool
}

// Store serves the reference documents by name. Thread-safe.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*docEntry
}

// Document names served by the store.
const (
	DocProductObjectives = "product_objectives"
	DocSalesPositioning  = "sales_positioning"
)

// NewStore creates a store for the configured documents. Relative paths
// resolve against baseDir (the config directory). Missing files are not
// an error: the corresponding prompt sections are simply omitted.
func NewStore(cfg *config.RefDocsConfig, baseDir string) *Store {
	s := &Store{docs: make(map[string]*docEntry)}

	productPath := "product-objectives.md"
	salesPath := "sales-positioning.md"
	if cfg != nil {
		if cfg.ProductObjectives != "" {
			productPath = cfg.ProductObjectives
		}
		if cfg.SalesPositioning != "" {
			salesPath = cfg.SalesPositioning
		}
	}

	s.docs[DocProductObjectives] = &docEntry{path: resolvePath(baseDir, productPath)}
	s.docs[DocSalesPositioning] = &docEntry{path: resolvePath(baseDir, salesPath)}
	return s
}

// ProductObjectives returns the product objectives document, or "" when
// the file is absent.
func (s *Store) ProductObjectives() string {
	return s.Get(DocProductObjectives)
}

// SalesPositioning returns the sales positioning document, or "" when
// the file is absent.
func (s *Store) SalesPositioning() string {
	return s.Get(DocSalesPositioning)
}

// Get returns the named document's content, reloading from disk when the
// file changed since the last read. Unknown names and missing files
// return "".
func (s *Store) Get(name string) string {
	s.mu.RLock()
	entry, ok := s.docs[name]
	s.mu.RUnlock()
	if !ok {
		return ""
	}

	info, err := os.Stat(entry.path)
	if err != nil {
		// File gone (or never existed): drop any stale cached content.
		s.mu.Lock()
		entry.content = ""
		entry.loaded = false
		s.mu.Unlock()
		return ""
	}

	s.mu.RLock()
	fresh := entry.loaded && info.ModTime().Equal(entry.modTime) && info.Size() == entry.size
	content := entry.content
	s.mu.RUnlock()
	if fresh {
		return content
	}

	data, err := os.ReadFile(entry.path)
	if err != nil {
		slog.Warn("Failed to read reference document", "name", name, "path", entry.path, "error", err)
		return ""
	}

	s.mu.Lock()
	entry.content = string(data)
	entry.modTime = info.ModTime()
	entry.size = info.Size()
	entry.loaded = true
	s.mu.Unlock()

	return string(data)
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
