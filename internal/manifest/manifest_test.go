package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preflight.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
system:
  - git
  - nmap
  - wireshark
modules:
  - encoding/json
images:
  - nginx:1.25
`)

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"git", "nmap", "wireshark"}, m.System)
	assert.Equal(t, []string{"encoding/json"}, m.Modules)
	assert.Equal(t, []string{"nginx:1.25"}, m.Images)
	assert.False(t, m.IsEmpty())
}

func TestLoadPartialSections(t *testing.T) {
	m, err := Load(writeManifest(t, "system:\n  - git\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"git"}, m.System)
	assert.Empty(t, m.Modules)
	assert.Empty(t, m.Images)
}

func TestLoadUnknownKeyRejected(t *testing.T) {
	_, err := Load(writeManifest(t, "pakages:\n  - git\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeManifest(t, "system: [unterminated\n"))
	assert.Error(t, err)
}

func TestIsEmpty(t *testing.T) {
	m, err := Load(writeManifest(t, "system: []\n"))
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())
}
