package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/forked-u/onex-preflight/internal/cache"
	"github.com/forked-u/onex-preflight/internal/display"
	"github.com/forked-u/onex-preflight/internal/imagecheck"
	"github.com/forked-u/onex-preflight/internal/logging"
	"github.com/forked-u/onex-preflight/internal/manifest"
	"github.com/forked-u/onex-preflight/internal/pkgmgr"
	"github.com/forked-u/onex-preflight/internal/verify"
)

var errUnmetRequirements = errors.New("unmet requirements")

var (
	manifestPath string
	pkgFlags     []string
	moduleFlags  []string
	imageFlags   []string
	exportFormat string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that declared requirements are present on this host",
	Long: `Verify checks every requested item and reports one outcome per item,
in the order given. Requirements come from a manifest file, flags, or both;
flag items are checked after the manifest's.

The exit code is 0 only when every item is present.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&manifestPath, "manifest", "f", "", "Manifest file listing requirements (YAML)")
	verifyCmd.Flags().StringArrayVar(&pkgFlags, "pkg", nil, "System package to check (repeatable)")
	verifyCmd.Flags().StringArrayVar(&moduleFlags, "module", nil, "Runtime module to check (repeatable)")
	verifyCmd.Flags().StringArrayVar(&imageFlags, "image", nil, "Container image to check (repeatable)")
	verifyCmd.Flags().Duration("timeout", pkgmgr.DefaultTimeout, "Per-query timeout for package manager calls")
	verifyCmd.Flags().Int("parallel", 1, "Number of checks to run concurrently")
	verifyCmd.Flags().StringVar(&exportFormat, "export", "", "Export report instead of rendering it (json, csv)")

	_ = viper.BindPFlag("timeout", verifyCmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("parallel", verifyCmd.Flags().Lookup("parallel"))
}

func runVerify(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cmd.verify")

	req, err := buildRequest(manifestPath, pkgFlags, moduleFlags, imageFlags)
	if err != nil {
		return err
	}
	if len(req.System) == 0 && len(req.Modules) == 0 && len(req.Images) == 0 {
		return errors.New("nothing to verify: pass a manifest or --pkg/--module/--image flags")
	}

	opts := verify.Options{
		Timeout:     viper.GetDuration("timeout"),
		Parallelism: viper.GetInt("parallel"),
	}

	// Only dial the container engine when images were actually requested.
	if len(req.Images) > 0 {
		checker, err := imagecheck.New()
		if err != nil {
			logger.Warn().Err(err).Msg("Container engine unavailable, image checks will be inconclusive")
		} else {
			opts.Images = checker
		}
	}

	report := verify.New(opts).Run(cmd.Context(), req)

	if exportFormat != "" {
		if err := display.Export(cmd.OutOrStdout(), report, exportFormat); err != nil {
			return err
		}
	} else {
		if err := display.NewRenderer(cmd.OutOrStdout(), noColor).Render(report); err != nil {
			return err
		}
	}

	// Best effort; a failed cache write never fails the run.
	if err := cache.Save(report); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache report")
	}

	if !report.Summary().Clean() {
		return errUnmetRequirements
	}
	return nil
}

// buildRequest merges the manifest (if any) with the flag lists, manifest
// items first. Order within each source is preserved.
func buildRequest(path string, pkgs, modules, images []string) (verify.Request, error) {
	var req verify.Request

	if path != "" {
		m, err := manifest.Load(path)
		if err != nil {
			return verify.Request{}, err
		}
		req.System = append(req.System, m.System...)
		req.Modules = append(req.Modules, m.Modules...)
		req.Images = append(req.Images, m.Images...)
	}

	req.System = append(req.System, pkgs...)
	req.Modules = append(req.Modules, modules...)
	req.Images = append(req.Images, images...)
	return req, nil
}

var managersCmd = &cobra.Command{
	Use:   "managers",
	Short: "List the package managers detected on this host",
	Run: func(cmd *cobra.Command, args []string) {
		managers := pkgmgr.Detect()
		if len(managers) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No supported package manager found.")
			return
		}
		for _, m := range managers {
			fmt.Fprintln(cmd.OutOrStdout(), m.Kind())
		}
	},
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the most recent verification report",
	RunE: func(cmd *cobra.Command, args []string) error {
		last, err := cache.Load()
		if err != nil {
			return err
		}
		if last.IsEmpty() {
			return errors.New("no cached report; run `preflight verify` first")
		}

		if last.IsStale(24 * time.Hour) {
			logger := logging.GetLogger("cmd.last")
			logger.Warn().
				Time("saved_at", last.SavedAt).
				Msg("Cached report is more than a day old")
		}
		return display.NewRenderer(cmd.OutOrStdout(), noColor).Render(last.Report)
	},
}
