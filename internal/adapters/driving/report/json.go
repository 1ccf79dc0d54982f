package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// JSONWriter outputs results in JSON format.
type JSONWriter struct {
	baseWriter
	indent string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// JSONReport is the JSON shape of a scan result.
type JSONReport struct {
	RunID       string             `json:"run_id"`
	Mode        string             `json:"mode"`
	Target      string             `json:"target"`
	StartedAt   time.Time          `json:"started_at"`
	FinishedAt  time.Time          `json:"finished_at"`
	People      []string           `json:"people"`
	Totals      map[string]int     `json:"totals"`
	Total       int                `json:"total"`
	Leaderboard []JSONLeaderEntry  `json:"leaderboard"`
	Documents   []JSONDocumentStat `json:"documents"`
}

// JSONLeaderEntry is one leaderboard row.
type JSONLeaderEntry struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	CardsCut int    `json:"cardsCut"`
}

// JSONDocumentStat holds the counts of one document.
type JSONDocumentStat struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// NewJSONReport converts a scan result to its JSON shape.
func NewJSONReport(result *domain.ScanResult) *JSONReport {
	board := result.Leaderboard()
	out := &JSONReport{
		RunID:       result.RunID,
		Mode:        string(result.Mode),
		Target:      result.Target,
		StartedAt:   result.StartedAt,
		FinishedAt:  result.FinishedAt,
		People:      result.People,
		Totals:      result.Totals,
		Total:       result.Total(),
		Leaderboard: make([]JSONLeaderEntry, len(board)),
		Documents:   make([]JSONDocumentStat, len(result.Documents)),
	}
	for i, e := range board {
		out.Leaderboard[i] = JSONLeaderEntry{Rank: e.Rank, Name: e.Person, Slug: e.Slug, CardsCut: e.Cards}
	}
	for i, d := range result.Documents {
		out.Documents[i] = JSONDocumentStat{
			ID:     d.Ref.ID,
			Name:   d.Ref.DisplayName(),
			Counts: d.Counts,
			Total:  d.Total(),
		}
	}
	return out
}

// Write outputs the result as a single JSON object followed by a newline.
func (w *JSONWriter) Write(result *domain.ScanResult) (int, error) {
	var (
		data []byte
		err  error
	)
	if w.indent != "" {
		data, err = json.MarshalIndent(NewJSONReport(result), "", w.indent)
	} else {
		data, err = json.Marshal(NewJSONReport(result))
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
