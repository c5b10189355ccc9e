package pkgmgr

import (
	"context"
	"os/exec"
)

// dpkgManager queries the Debian/Ubuntu package database.
type dpkgManager struct {
	r runner
}

func newDpkg(r runner) dpkgManager {
	return dpkgManager{r: r}
}

func (dpkgManager) Kind() Kind {
	return KindDpkg
}

func (dpkgManager) IsAvailable() bool {
	_, err := exec.LookPath("dpkg")
	return err == nil
}

func (m dpkgManager) Query(ctx context.Context, name string) (bool, error) {
	code, err := m.r.run(ctx, "dpkg", "-s", name)
	if err != nil {
		return false, err
	}
	return code == 0, nil
}
