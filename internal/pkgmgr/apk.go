package pkgmgr

import (
	"context"
	"os/exec"
)

// apkManager queries the Alpine package database.
type apkManager struct {
	r runner
}

func newApk(r runner) apkManager {
	return apkManager{r: r}
}

func (apkManager) Kind() Kind {
	return KindApk
}

func (apkManager) IsAvailable() bool {
	_, err := exec.LookPath("apk")
	return err == nil
}

func (m apkManager) Query(ctx context.Context, name string) (bool, error) {
	code, err := m.r.run(ctx, "apk", "info", "-e", name)
	if err != nil {
		return false, err
	}
	return code == 0, nil
}
