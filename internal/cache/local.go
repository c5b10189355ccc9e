// Package cache keeps the most recent verification report on disk so it can
// be re-rendered without re-running the checks. Only the CLI writes here; the
// verification core itself never persists anything.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"

	"github.com/forked-u/onex-preflight/internal/check"
)

const lastRunFile = "preflight/last_run.json"

// LastRun wraps the stored report with the time it was saved.
type LastRun struct {
	SavedAt time.Time     `json:"saved_at"`
	Report  *check.Report `json:"report"`
}

// Path returns the cache file location under the XDG state directory,
// creating parent directories as needed.
func Path() (string, error) {
	return xdg.StateFile(lastRunFile)
}

// Load reads the cached last run. A missing cache is not an error; it returns
// an empty LastRun.
func Load() (*LastRun, error) {
	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cache path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LastRun{}, nil
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var last LastRun
	if err := json.Unmarshal(data, &last); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	return &last, nil
}

// Save stores report as the most recent run, with restricted permissions.
func Save(report *check.Report) error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("failed to resolve cache path: %w", err)
	}

	data, err := json.MarshalIndent(LastRun{SavedAt: time.Now().UTC(), Report: report}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// IsEmpty reports whether a run has ever been saved.
func (l *LastRun) IsEmpty() bool {
	return l.Report == nil
}

// IsStale reports whether the stored run is older than maxAge.
func (l *LastRun) IsStale(maxAge time.Duration) bool {
	return time.Since(l.SavedAt) > maxAge
}
