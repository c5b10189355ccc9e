// Package check defines the data model shared by the verification engine:
// per-item outcomes, the aggregate report, and the identifier validator that
// guards every name before it can reach a subprocess.
package check

import (
	"time"

	"github.com/google/uuid"

	"github.com/forked-u/onex-preflight/internal/system"
)

// Outcome is the result of checking a single requested item.
type Outcome string

const (
	// Present means the item is already satisfied on this host.
	Present Outcome = "present"
	// Missing means the item could not be found. Inconclusive checks
	// (timeouts, launch failures) also resolve to Missing: when in doubt,
	// report the dependency as not usable rather than falsely satisfied.
	Missing Outcome = "missing"
	// Invalid means the identifier failed validation and was never checked.
	Invalid Outcome = "invalid"
	// UnknownManager means no backend on this host could answer the query.
	UnknownManager Outcome = "unknown_manager"
)

// Result pairs a requested identifier with its outcome. Results are immutable
// once produced.
type Result struct {
	Name    string  `json:"name"`
	Outcome Outcome `json:"outcome"`
}

// Report aggregates all results of one verification run. Each section is
// ordered positionally: result i corresponds to input item i, with no items
// dropped or duplicated. A report covers exactly one run and carries no state
// beyond it.
type Report struct {
	ID          uuid.UUID       `json:"id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Host        system.HostInfo `json:"host"`
	System      []Result        `json:"system"`
	Modules     []Result        `json:"modules"`
	Images      []Result        `json:"images,omitempty"`
}

// SectionSummary counts outcomes within one report section.
type SectionSummary struct {
	Present int `json:"present"`
	Missing int `json:"missing"`
	Invalid int `json:"invalid"`
	Unknown int `json:"unknown"`
}

// Total returns the number of items in the section.
func (s SectionSummary) Total() int {
	return s.Present + s.Missing + s.Invalid + s.Unknown
}

// Clean reports whether every item in the section is present.
func (s SectionSummary) Clean() bool {
	return s.Missing == 0 && s.Invalid == 0 && s.Unknown == 0
}

// Summary is a pure projection of a report; it holds no state of its own.
type Summary struct {
	System  SectionSummary `json:"system"`
	Modules SectionSummary `json:"modules"`
	Images  SectionSummary `json:"images"`
}

// Clean reports whether every checked item across the report is present.
func (s Summary) Clean() bool {
	return s.System.Clean() && s.Modules.Clean() && s.Images.Clean()
}

// Summarize counts outcomes over a result slice.
func Summarize(results []Result) SectionSummary {
	var s SectionSummary
	for _, r := range results {
		switch r.Outcome {
		case Present:
			s.Present++
		case Missing:
			s.Missing++
		case Invalid:
			s.Invalid++
		case UnknownManager:
			s.Unknown++
		}
	}
	return s
}

// Summary projects the report into per-section outcome counts.
func (r *Report) Summary() Summary {
	return Summary{
		System:  Summarize(r.System),
		Modules: Summarize(r.Modules),
		Images:  Summarize(r.Images),
	}
}
