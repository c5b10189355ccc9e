package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple package", "git", true},
		{"digits", "python3", true},
		{"dots and digits", "libssl1.1", true},
		{"plus signs", "g++", true},
		{"hyphenated", "qemu-user-static", true},
		{"underscore", "python3_venv", true},
		{"all allowed classes", "a.b_c+d-e9", true},
		{"empty string", "", false},
		{"semicolon injection", "bad;package", false},
		{"backtick injection", "hack`cmd`", false},
		{"pipe", "a|b", false},
		{"command substitution", "$(reboot)", false},
		{"space", "two words", false},
		{"tab", "a\tb", false},
		{"newline", "a\nb", false},
		{"control character", "a\x00b", false},
		{"leading whitespace", " git", false},
		{"slash", "../etc/passwd", false},
		{"non-ascii", "paqueté", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidName(tt.input))
		})
	}
}

func TestValidImageRef(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"bare image", "nginx", true},
		{"namespaced", "library/nginx", true},
		{"tagged", "nginx:1.25-alpine", true},
		{"registry with port-like colon", "gcr.io/project/image:v2", true},
		{"digest", "nginx@sha256:abc123", true},
		{"empty string", "", false},
		{"semicolon", "nginx;rm", false},
		{"backtick", "img`x`", false},
		{"whitespace", "nginx latest", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidImageRef(tt.input))
		})
	}
}
