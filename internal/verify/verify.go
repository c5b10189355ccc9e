// Package verify orchestrates one pre-flight verification pass: validate every
// requested identifier, probe the host once, run the per-item checkers, and
// assemble a complete report. The orchestrator mutates nothing on the host, so
// repeated runs against an unchanged system yield identical results.
package verify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/forked-u/onex-preflight/internal/check"
	"github.com/forked-u/onex-preflight/internal/logging"
	"github.com/forked-u/onex-preflight/internal/modres"
	"github.com/forked-u/onex-preflight/internal/pkgmgr"
	"github.com/forked-u/onex-preflight/internal/system"
)

// ImageChecker answers container image presence queries. Satisfied by
// imagecheck.Checker; narrowed here so the orchestrator stays daemon-agnostic.
type ImageChecker interface {
	IsAvailable() bool
	Query(ctx context.Context, ref string) (bool, error)
}

// Request carries the ordered input lists for one verification run.
type Request struct {
	System  []string
	Modules []string
	Images  []string
}

// Options configure a Verifier. Zero values select the defaults: probe the
// host for managers, resolve modules against the Go build context, 10s query
// timeout, sequential checking, no image checking.
type Options struct {
	// Managers overrides host probing. nil means detect at run time; an
	// explicit empty slice means "no managers" and yields UnknownManager for
	// every system package.
	Managers []pkgmgr.Manager
	Resolver modres.Resolver
	Images   ImageChecker
	Timeout  time.Duration
	// Parallelism > 1 runs independent per-item checks concurrently. Results
	// are written by input index, so report order never depends on
	// completion order.
	Parallelism int
}

// Verifier runs verification passes. It holds only read-only collaborators
// and is safe to reuse across runs.
type Verifier struct {
	managers       []pkgmgr.Manager
	detectManagers bool
	resolver       modres.Resolver
	images         ImageChecker
	timeout        time.Duration
	parallelism    int
	log            zerolog.Logger
}

// New creates a Verifier from opts.
func New(opts Options) *Verifier {
	v := &Verifier{
		managers:       opts.Managers,
		detectManagers: opts.Managers == nil,
		resolver:       opts.Resolver,
		images:         opts.Images,
		timeout:        opts.Timeout,
		parallelism:    opts.Parallelism,
		log:            logging.GetLogger("verify"),
	}
	if v.resolver == nil {
		v.resolver = modres.NewGoResolver()
	}
	if v.timeout <= 0 {
		v.timeout = pkgmgr.DefaultTimeout
	}
	if v.parallelism < 1 {
		v.parallelism = 1
	}
	return v
}

// Verify checks the two ordered input lists and returns a complete report:
// one result per input item, in input order. No input aborts the run; the
// worst outcome for any item is Missing or Invalid.
func (v *Verifier) Verify(ctx context.Context, systemPackages, modules []string) *check.Report {
	return v.Run(ctx, Request{System: systemPackages, Modules: modules})
}

// Run is Verify extended with the optional image list.
func (v *Verifier) Run(ctx context.Context, req Request) *check.Report {
	report := &check.Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Host:        system.Collect(),
	}

	// Probe once; the detected set is shared read-only by every system check.
	managers := v.managers
	if v.detectManagers {
		managers = pkgmgr.Detect()
	}

	report.System = v.checkAll(ctx, req.System, check.ValidName, func(ctx context.Context, name string) check.Outcome {
		return pkgmgr.Check(ctx, name, managers, v.timeout)
	})

	report.Modules = v.checkAll(ctx, req.Modules, check.ValidName, v.checkModule)

	if len(req.Images) > 0 {
		// Probe the container engine once, like the manager set.
		available := v.images != nil && v.images.IsAvailable()
		report.Images = v.checkAll(ctx, req.Images, check.ValidImageRef, func(ctx context.Context, ref string) check.Outcome {
			return v.checkImage(ctx, ref, available)
		})
	}

	return report
}

// checkAll maps names to results positionally. Invalid identifiers are
// recorded in place and never reach fn, so no subprocess can see them.
func (v *Verifier) checkAll(ctx context.Context, names []string, valid func(string) bool, fn func(context.Context, string) check.Outcome) []check.Result {
	results := make([]check.Result, len(names))

	checkOne := func(i int, name string) {
		if !valid(name) {
			v.log.Warn().Str("name", name).Msg("invalid identifier, skipping check")
			results[i] = check.Result{Name: name, Outcome: check.Invalid}
			return
		}
		results[i] = check.Result{Name: name, Outcome: fn(ctx, name)}
	}

	if v.parallelism > 1 {
		g := new(errgroup.Group)
		g.SetLimit(v.parallelism)
		for i, name := range names {
			g.Go(func() error {
				checkOne(i, name)
				return nil
			})
		}
		_ = g.Wait() // checkOne never returns an error
	} else {
		for i, name := range names {
			checkOne(i, name)
		}
	}

	return results
}

func (v *Verifier) checkModule(_ context.Context, name string) check.Outcome {
	found, err := v.resolver.Resolve(name)
	if err != nil {
		v.log.Debug().Str("module", name).Err(err).Msg("module resolution failed")
		return check.Missing
	}
	if !found {
		return check.Missing
	}
	return check.Present
}

func (v *Verifier) checkImage(ctx context.Context, ref string, available bool) check.Outcome {
	if !available {
		return check.UnknownManager
	}
	present, err := v.images.Query(ctx, ref)
	if err != nil {
		v.log.Debug().Str("image", ref).Err(err).Msg("image query failed")
		return check.Missing
	}
	if !present {
		return check.Missing
	}
	return check.Present
}
