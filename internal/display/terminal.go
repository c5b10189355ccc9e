// Package display renders verification reports for humans and exports them
// for machines. Rendering is read-only; it never changes the report.
package display

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/forked-u/onex-preflight/internal/check"
)

// outcome glyphs, one per terminal line
const (
	glyphPresent = "✓"
	glyphMissing = "✗"
	glyphInvalid = "!"
	glyphUnknown = "?"
)

// Renderer writes styled reports to a single writer.
type Renderer struct {
	w       io.Writer
	header  lipgloss.Style
	section lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	warn    lipgloss.Style
	dim     lipgloss.Style
}

// NewRenderer binds a renderer to w. With noColor the output is plain text;
// otherwise lipgloss picks a color profile from the writer.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	r := &Renderer{w: w}

	if noColor {
		plain := lipgloss.NewStyle()
		r.header, r.section, r.good, r.bad, r.warn, r.dim = plain, plain, plain, plain, plain, plain
		return r
	}

	lg := lipgloss.NewRenderer(w)
	r.header = lg.NewStyle().Bold(true)
	r.section = lg.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	r.good = lg.NewStyle().Foreground(lipgloss.Color("10"))
	r.bad = lg.NewStyle().Foreground(lipgloss.Color("9"))
	r.warn = lg.NewStyle().Foreground(lipgloss.Color("11"))
	r.dim = lg.NewStyle().Foreground(lipgloss.Color("240"))
	return r
}

// Render writes the full report: header, one line per checked item grouped by
// section, and a closing summary.
func (r *Renderer) Render(report *check.Report) error {
	fmt.Fprintln(r.w, r.header.Render("Pre-flight verification"))
	fmt.Fprintf(r.w, "%s\n", r.dim.Render(fmt.Sprintf("run %s · %s · %s %s",
		report.ID, report.GeneratedAt.Format("2006-01-02 15:04:05"),
		report.Host.OSType, report.Host.Arch)))
	fmt.Fprintln(r.w)

	r.renderSection("System packages", report.System)
	r.renderSection("Runtime modules", report.Modules)
	if report.Images != nil {
		r.renderSection("Container images", report.Images)
	}

	summary := report.Summary()
	if summary.Clean() {
		fmt.Fprintln(r.w, r.good.Render("All requirements satisfied."))
	} else {
		fmt.Fprintln(r.w, r.bad.Render(summaryLine(summary)))
	}
	return nil
}

func (r *Renderer) renderSection(title string, results []check.Result) {
	if len(results) == 0 {
		return
	}

	fmt.Fprintln(r.w, r.section.Render(title))
	for _, res := range results {
		var line string
		switch res.Outcome {
		case check.Present:
			line = r.good.Render(glyphPresent) + " " + res.Name
		case check.Missing:
			line = r.bad.Render(glyphMissing) + " " + res.Name
		case check.Invalid:
			line = r.warn.Render(glyphInvalid) + " " + res.Name + r.dim.Render(" (invalid name)")
		case check.UnknownManager:
			line = r.dim.Render(glyphUnknown) + " " + res.Name + r.dim.Render(" (no way to check)")
		}
		fmt.Fprintf(r.w, "  %s\n", line)
	}
	fmt.Fprintln(r.w)
}

func summaryLine(s check.Summary) string {
	var parts []string
	for _, sec := range []struct {
		name string
		sum  check.SectionSummary
	}{
		{"system", s.System},
		{"modules", s.Modules},
		{"images", s.Images},
	} {
		if sec.sum.Total() == 0 || sec.sum.Clean() {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %d missing, %d invalid, %d uncheckable",
			sec.name, sec.sum.Missing, sec.sum.Invalid, sec.sum.Unknown))
	}
	return "Unmet requirements — " + strings.Join(parts, "; ")
}

// Export writes the report in a machine-readable format: "json" or "csv".
func Export(w io.Writer, report *check.Report, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)

	case "csv":
		return exportCSV(w, report)

	default:
		return fmt.Errorf("unsupported export format: %s (supported: json, csv)", format)
	}
}

func exportCSV(w io.Writer, report *check.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"section", "name", "outcome"}); err != nil {
		return err
	}

	for _, sec := range []struct {
		name    string
		results []check.Result
	}{
		{"system", report.System},
		{"modules", report.Modules},
		{"images", report.Images},
	} {
		for _, res := range sec.results {
			if err := cw.Write([]string{sec.name, res.Name, string(res.Outcome)}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
