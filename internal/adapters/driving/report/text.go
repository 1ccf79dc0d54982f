package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/cardscan/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// TextWriter outputs results as plain text.
type TextWriter struct {
	baseWriter
	styles *styles.Styles
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithStyle enables coloured headers.
func WithStyle(enabled bool) TextWriterOption {
	return func(w *TextWriter) {
		if enabled {
			w.styles = styles.DefaultStyles()
		} else {
			w.styles = nil
		}
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the totals in leaderboard order, then one line per document.
func (w *TextWriter) Write(result *domain.ScanResult) (int, error) {
	var sb strings.Builder

	sb.WriteString(w.title(fmt.Sprintf("Scan of %s %s", result.Mode, result.Target)))
	sb.WriteString("\n")

	for _, e := range result.Leaderboard() {
		fmt.Fprintf(&sb, "Cards cut by %s: %d\n", e.Person, e.Cards)
	}

	if len(result.Documents) > 0 {
		sb.WriteString("\n")
		sb.WriteString(w.subtitle(fmt.Sprintf("Documents (%d)", len(result.Documents))))
		sb.WriteString("\n")
		for _, doc := range result.Documents {
			fmt.Fprintf(&sb, "%s (%s): %s\n",
				doc.Ref.DisplayName(), doc.Ref.ID, countsLine(result.People, doc.Counts))
		}
	}

	return io.WriteString(w.output, sb.String())
}

func (w *TextWriter) title(s string) string {
	if w.styles == nil {
		return s
	}
	return w.styles.Title.Render(s)
}

func (w *TextWriter) subtitle(s string) string {
	if w.styles == nil {
		return s
	}
	return w.styles.Subtitle.Render(s)
}
