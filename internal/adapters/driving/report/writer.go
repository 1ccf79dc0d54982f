package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// Format names an output format.
type Format string

const (
	// FormatText is the human-readable format.
	FormatText Format = "text"
	// FormatJSON is the machine-readable format.
	FormatJSON Format = "json"
	// FormatMarkdown is the Markdown format.
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatMarkdown}

// ParseFormat converts a format name. "md" is accepted for Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or markdown)", s)
	}
}

// Writer renders a scan result.
type Writer interface {
	// Write renders the result and returns the number of bytes written.
	Write(result *domain.ScanResult) (int, error)
}

// New returns a writer for the format.
func New(format Format, output io.Writer) (Writer, error) {
	switch format {
	case FormatText:
		return NewTextWriter(output, WithStyle(IsTerminal(output))), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// countsLine renders counts in mapping order as "alice=3, bob=0".
func countsLine(people []string, counts map[string]int) string {
	parts := make([]string, len(people))
	for i, p := range people {
		parts[i] = fmt.Sprintf("%s=%d", p, counts[p])
	}
	return strings.Join(parts, ", ")
}
