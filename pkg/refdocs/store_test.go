package refdocs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/pkg/config"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStore_Get(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "product-objectives.md", "# Objectives\nShip widgets.")

	store := NewStore(nil, dir)

	t.Run("loads and caches", func(t *testing.T) {
		assert.Contains(t, store.ProductObjectives(), "Ship widgets")
		assert.Contains(t, store.ProductObjectives(), "Ship widgets")
	})

	t.Run("missing file is empty", func(t *testing.T) {
		assert.Empty(t, store.SalesPositioning())
	})

	t.Run("unknown name is empty", func(t *testing.T) {
		assert.Empty(t, store.Get("deployment-runes"))
	})
}

func TestStore_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "product-objectives.md", "v1")
	store := NewStore(nil, dir)

	require.Equal(t, "v1", store.ProductObjectives())

	// Backdate then rewrite so the mtime fingerprint definitely differs.
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))
	require.Equal(t, "v1", store.ProductObjectives())

	require.NoError(t, os.WriteFile(path, []byte("v2 with more detail"), 0o644))
	assert.Equal(t, "v2 with more detail", store.ProductObjectives())
}

func TestStore_FileRemoved(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "sales-positioning.md", "pitch")
	store := NewStore(nil, dir)

	require.Equal(t, "pitch", store.SalesPositioning())

	require.NoError(t, os.Remove(path))
	assert.Empty(t, store.SalesPositioning())
}

func TestStore_ConfiguredPaths(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "objectives-eu.md", "regional objectives")

	abs := filepath.Join(t.TempDir(), "positioning.md")
	require.NoError(t, os.WriteFile(abs, []byte("absolute pitch"), 0o644))

	store := NewStore(&config.RefDocsConfig{
		ProductObjectives: "objectives-eu.md",
		SalesPositioning:  abs,
	}, dir)

	assert.Equal(t, "regional objectives", store.ProductObjectives())
	assert.Equal(t, "absolute pitch", store.SalesPositioning())
}
