// Package pkgmgr detects the native package managers available on a host and
// answers, per manager, whether a given system package is installed. It only
// ever invokes read-only query commands; nothing here installs, upgrades or
// removes anything.
package pkgmgr

import (
	"context"
	"time"

	"github.com/forked-u/onex-preflight/internal/check"
	"github.com/forked-u/onex-preflight/internal/logging"
)

// Kind identifies a package manager backend.
type Kind string

const (
	KindDpkg Kind = "dpkg"
	KindRpm  Kind = "rpm"
	KindApk  Kind = "apk"
	KindYum  Kind = "yum"
)

// DefaultTimeout bounds a single manager query subprocess.
const DefaultTimeout = 10 * time.Second

// Manager is one package-manager backend. Implementations must be safe for
// concurrent use: a Query spawns an independent subprocess per call and keeps
// no mutable state.
type Manager interface {
	Kind() Kind
	// IsAvailable reports whether the manager's query executable exists on
	// this host. It never spawns a process.
	IsAvailable() bool
	// Query reports whether the named package is installed. The returned
	// error marks the query as inconclusive (launch failure, timeout); a nil
	// error with false means the manager answered "not installed".
	Query(ctx context.Context, name string) (bool, error)
}

// All returns every supported backend, in the order they are tried.
func All() []Manager {
	r := realRunner{}
	return []Manager{
		newDpkg(r),
		newRpm(r),
		newApk(r),
		newYum(r),
	}
}

// Detect probes the host for available package managers. The result is
// computed once per verification run and shared read-only across all
// system-package checks.
func Detect() []Manager {
	return detectFrom(All())
}

func detectFrom(candidates []Manager) []Manager {
	log := logging.GetLogger("probe")

	var available []Manager
	for _, m := range candidates {
		if m.IsAvailable() {
			log.Debug().Str("manager", string(m.Kind())).Msg("package manager detected")
			available = append(available, m)
		}
	}
	if len(available) == 0 {
		log.Warn().Msg("no package manager detected; system packages cannot be verified")
	}
	return available
}

// Check asks each detected manager whether name is installed, bounding every
// query by timeout. Any manager answering "installed" yields Present. A query
// error is inconclusive for that manager and the next one is tried; if no
// manager confirms the package, the result is Missing — uncertainty is never
// reported as Present. An empty manager set yields UnknownManager.
func Check(ctx context.Context, name string, managers []Manager, timeout time.Duration) check.Outcome {
	if len(managers) == 0 {
		return check.UnknownManager
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	log := logging.GetLogger("syspkg")

	for _, m := range managers {
		queryCtx, cancel := context.WithTimeout(ctx, timeout)
		installed, err := m.Query(queryCtx, name)
		cancel()

		if err != nil {
			log.Debug().
				Str("manager", string(m.Kind())).
				Str("package", name).
				Err(err).
				Msg("query inconclusive, trying next manager")
			continue
		}
		if installed {
			return check.Present
		}
	}
	return check.Missing
}
