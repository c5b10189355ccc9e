package cache

import (
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forked-u/onex-preflight/internal/check"
)

// useTempStateDir points the XDG state directory at a per-test temp dir so
// tests never touch the real cache.
func useTempStateDir(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
}

func TestLoadEmptyCache(t *testing.T) {
	useTempStateDir(t)

	last, err := Load()
	require.NoError(t, err)
	assert.True(t, last.IsEmpty())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	useTempStateDir(t)

	report := &check.Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		System: []check.Result{
			{Name: "git", Outcome: check.Present},
			{Name: "nmap", Outcome: check.Missing},
		},
	}
	require.NoError(t, Save(report))

	last, err := Load()
	require.NoError(t, err)
	require.False(t, last.IsEmpty())
	assert.Equal(t, report.ID, last.Report.ID)
	assert.Equal(t, report.System, last.Report.System)
	assert.False(t, last.SavedAt.IsZero())
}

func TestIsStale(t *testing.T) {
	fresh := &LastRun{SavedAt: time.Now()}
	assert.False(t, fresh.IsStale(time.Hour))

	old := &LastRun{SavedAt: time.Now().Add(-48 * time.Hour)}
	assert.True(t, old.IsStale(24*time.Hour))
}
