package domain

import "time"

// DocumentResult holds the per-person counts for one document.
type DocumentResult struct {
	Ref    DocumentRef
	Counts map[string]int
}

// Total returns the sum of all person counts in the document.
func (d DocumentResult) Total() int {
	total := 0
	for _, n := range d.Counts {
		total += n
	}
	return total
}

// ScanResult holds the outcome of one run.
// Totals[p] always equals the sum of Counts[p] over Documents.
type ScanResult struct {
	// RunID identifies the run.
	RunID string

	// Mode is what the run scanned.
	Mode ScanMode

	// Target is the folder or document ID the run started from.
	Target string

	// People are the configured people in mapping order.
	People []string

	// Documents are the scanned documents in scan order.
	Documents []DocumentResult

	// Totals are the per-person sums across all documents.
	Totals map[string]int

	StartedAt  time.Time
	FinishedAt time.Time
}

// NewScanResult creates an empty result with zero totals for every person.
func NewScanResult(runID string, mode ScanMode, target string, people []string) *ScanResult {
	totals := make(map[string]int, len(people))
	for _, p := range people {
		totals[p] = 0
	}
	return &ScanResult{
		RunID:  runID,
		Mode:   mode,
		Target: target,
		People: append([]string(nil), people...),
		Totals: totals,
	}
}

// Add folds one document into the result. Call it exactly once per document.
func (r *ScanResult) Add(doc DocumentResult) {
	r.Documents = append(r.Documents, doc)
	for person, n := range doc.Counts {
		r.Totals[person] += n
	}
}

// Total returns the number of cards across all people and documents.
func (r *ScanResult) Total() int {
	total := 0
	for _, n := range r.Totals {
		total += n
	}
	return total
}

// Duration returns how long the run took.
func (r *ScanResult) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
