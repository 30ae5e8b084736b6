package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/refdocs"
)

// newTestBuilder returns a Builder backed by real reference documents
// in a temp directory.
func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "product-objectives.md"),
		[]byte("Ship self-serve onboarding this quarter."), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "sales-positioning.md"),
		[]byte("We win on integration depth."), 0o644))
	return NewBuilder(refdocs.NewStore(nil, dir))
}

func featureRequest() *ent.Request {
	return &ent.Request{
		ID:          42,
		Title:       "Add dark mode",
		Description: "Users want a dark theme for the dashboard.",
		Kind:        request.KindFeature,
		Priority:    request.PriorityHigh,
		State:       request.StateNew,
	}
}

func strPtr(s string) *string { return &s }
