package imagecheck

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDaemon stubs the Docker API surface the checker uses.
type fakeDaemon struct {
	pingErr    error
	images     map[string]bool
	inspectErr error
}

func (f *fakeDaemon) Ping(_ context.Context) (types.Ping, error) {
	return types.Ping{}, f.pingErr
}

func (f *fakeDaemon) ImageInspectWithRaw(_ context.Context, ref string) (types.ImageInspect, []byte, error) {
	if f.inspectErr != nil {
		return types.ImageInspect{}, nil, f.inspectErr
	}
	if f.images[ref] {
		return types.ImageInspect{ID: "sha256:abc"}, nil, nil
	}
	return types.ImageInspect{}, nil, errdefs.NotFound(errors.New("no such image: " + ref))
}

func TestQueryPresent(t *testing.T) {
	c := &Checker{api: &fakeDaemon{images: map[string]bool{"nginx:1.25": true}}}

	present, err := c.Query(context.Background(), "nginx:1.25")
	require.NoError(t, err)
	assert.True(t, present)
}

func TestQueryNotFound(t *testing.T) {
	c := &Checker{api: &fakeDaemon{}}

	present, err := c.Query(context.Background(), "nginx:1.25")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestQueryDaemonError(t *testing.T) {
	c := &Checker{api: &fakeDaemon{inspectErr: errors.New("daemon unreachable")}}

	present, err := c.Query(context.Background(), "nginx:1.25")
	assert.Error(t, err)
	assert.False(t, present)
}

func TestIsAvailableNilChecker(t *testing.T) {
	var c *Checker
	assert.False(t, c.IsAvailable())
}
