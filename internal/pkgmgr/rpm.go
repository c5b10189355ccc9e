package pkgmgr

import (
	"context"
	"os/exec"
)

// rpmManager queries the RPM database directly (RedHat/CentOS/Fedora/SUSE).
type rpmManager struct {
	r runner
}

func newRpm(r runner) rpmManager {
	return rpmManager{r: r}
}

func (rpmManager) Kind() Kind {
	return KindRpm
}

func (rpmManager) IsAvailable() bool {
	_, err := exec.LookPath("rpm")
	return err == nil
}

func (m rpmManager) Query(ctx context.Context, name string) (bool, error) {
	code, err := m.r.run(ctx, "rpm", "-q", name)
	if err != nil {
		return false, err
	}
	return code == 0, nil
}
