// Package imagecheck verifies that container images are already present in
// the local image store. Presence-detection only: it never pulls and never
// contacts a registry.
package imagecheck

import (
	"context"
	"os/exec"

	"github.com/docker/docker/api/types"
	dockerclient "github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
)

// dockerAPI is the slice of the Docker client the checker needs; narrowed so
// tests can stub the daemon.
type dockerAPI interface {
	Ping(ctx context.Context) (types.Ping, error)
	ImageInspectWithRaw(ctx context.Context, imageID string) (types.ImageInspect, []byte, error)
}

// Checker answers whether container images exist locally.
type Checker struct {
	api dockerAPI
}

// New creates a checker connected to the local Docker daemon using the
// standard environment configuration.
func New() (*Checker, error) {
	cli, err := dockerclient.NewClientWithOpts(dockerclient.FromEnv, dockerclient.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}
	return &Checker{api: cli}, nil
}

// IsAvailable reports whether a container engine can answer image queries on
// this host: the docker binary exists and the daemon responds to a ping.
func (c *Checker) IsAvailable() bool {
	if c == nil || c.api == nil {
		return false
	}
	if _, err := exec.LookPath("docker"); err != nil {
		return false
	}
	_, err := c.api.Ping(context.Background())
	return err == nil
}

// Query reports whether the image reference exists in the local store. A
// not-found answer is conclusive; any other daemon error is returned so the
// caller can fail closed.
func (c *Checker) Query(ctx context.Context, ref string) (bool, error) {
	_, _, err := c.api.ImageInspectWithRaw(ctx, ref)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
