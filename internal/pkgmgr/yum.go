package pkgmgr

import (
	"context"
	"os/exec"
)

// yumManager queries installed packages on older RedHat systems where dnf is
// not present. rpm usually answers first on those hosts; yum is the fallback.
type yumManager struct {
	r runner
}

func newYum(r runner) yumManager {
	return yumManager{r: r}
}

func (yumManager) Kind() Kind {
	return KindYum
}

func (yumManager) IsAvailable() bool {
	_, err := exec.LookPath("yum")
	return err == nil
}

func (m yumManager) Query(ctx context.Context, name string) (bool, error) {
	code, err := m.r.run(ctx, "yum", "list", "installed", name)
	if err != nil {
		return false, err
	}
	return code == 0, nil
}
