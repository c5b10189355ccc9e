package system

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	info := Collect()

	assert.Equal(t, runtime.GOOS, info.OSType)
	assert.Equal(t, runtime.GOARCH, info.Arch)
}

func TestReadOSRelease(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "pretty name preferred",
			content: "NAME=\"Debian GNU/Linux\"\nPRETTY_NAME=\"Debian GNU/Linux 12 (bookworm)\"\n",
			want:    "Debian GNU/Linux 12 (bookworm)",
		},
		{
			name:    "falls back to name",
			content: "NAME=\"Alpine Linux\"\nID=alpine\n",
			want:    "Alpine Linux",
		},
		{
			name:    "ignores malformed lines",
			content: "garbage\nPRETTY_NAME=Fedora Linux 40\n",
			want:    "Fedora Linux 40",
		},
		{
			name:    "empty file",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "os-release")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			assert.Equal(t, tt.want, readOSRelease(path))
		})
	}
}

func TestReadOSReleaseMissingFile(t *testing.T) {
	assert.Empty(t, readOSRelease(filepath.Join(t.TempDir(), "nope")))
}
