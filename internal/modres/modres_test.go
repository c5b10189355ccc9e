package modres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoResolverStandardLibrary(t *testing.T) {
	r := NewGoResolver()

	for _, name := range []string{"fmt", "encoding/json", "net/http"} {
		found, err := r.Resolve(name)
		require.NoError(t, err, name)
		assert.True(t, found, name)
	}
}

func TestGoResolverMissing(t *testing.T) {
	r := NewGoResolver()

	found, err := r.Resolve("no/such/package/preflight-xyz")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestGoResolverMalformedName(t *testing.T) {
	r := NewGoResolver()

	// Names like this are rejected by validation before reaching a resolver,
	// but a resolver must still fail safe if handed one.
	found, _ := r.Resolve("bad name with spaces")
	assert.False(t, found)
}
