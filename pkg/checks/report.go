package checks

import (
	"fmt"
	"sort"
	"strings"
)

// Finding is one rule violation at one node.
type Finding struct {
	Address string `json:"address"` // Document-wide node coordinate
	Code    string `json:"code"`    // Short bug code, e.g. "cop-upos"
	Message string `json:"message"` // Human-readable description
}

// Report accumulates findings across sentences and documents.
// It replaces process-wide counters: a pass takes a Report, fills it, and
// the caller decides what to do with it.
type Report struct {
	Counts   map[string]int `json:"counts"`
	Findings []Finding      `json:"findings"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{Counts: make(map[string]int)}
}

// Add records a finding and increments its code's counter.
func (r *Report) Add(f Finding) {
	r.Findings = append(r.Findings, f)
	r.Counts[f.Code]++
}

// Merge folds other's findings into r. Used when per-file reports are
// combined into a corpus total.
func (r *Report) Merge(other *Report) {
	for _, f := range other.Findings {
		r.Add(f)
	}
}

// Total returns the number of findings.
func (r *Report) Total() int { return len(r.Findings) }

// String renders the frequency overview: one line per bug code sorted
// ascending by count (code as tie-breaker), followed by a TOTAL line.
func (r *Report) String() string {
	codes := make([]string, 0, len(r.Counts))
	for code := range r.Counts {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if r.Counts[codes[i]] != r.Counts[codes[j]] {
			return r.Counts[codes[i]] < r.Counts[codes[j]]
		}
		return codes[i] < codes[j]
	})

	var b strings.Builder
	for _, code := range codes {
		fmt.Fprintf(&b, "%20s %10d\n", code, r.Counts[code])
	}
	fmt.Fprintf(&b, "%20s %10d\n", "TOTAL", r.Total())
	return b.String()
}
