// Package markdown provides a Normaliser for Markdown exports. Escapes
// added by the exporter are removed and table rows are dropped; all other
// lines are kept verbatim so tag markers survive.
package markdown

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

var (
	escaped  = regexp.MustCompile("\\\\([\\\\`*_{}\\[\\]()#+\\-.!|<>~])")
	tableRow = regexp.MustCompile(`^\s*\|`)
)

// Normaliser handles Markdown documents.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise converts a Markdown document to one paragraph per line.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := strings.ReplaceAll(string(raw.Content), "\r\n", "\n")

	var paragraphs []string
	for _, line := range strings.SplitAfter(content, "\n") {
		if line == "" || tableRow.MatchString(line) {
			continue
		}
		paragraphs = append(paragraphs, escaped.ReplaceAllString(line, "$1"))
	}

	return &domain.Document{
		ID:    raw.Name,
		Title: extractMarkdownTitle(content, raw.Name),
		Body:  domain.NewTextBody(paragraphs...),
	}, nil
}

// extractMarkdownTitle returns the first H1 heading or falls back to filename.
func extractMarkdownTitle(content, name string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return escaped.ReplaceAllString(strings.TrimSpace(strings.TrimPrefix(line, "#")), "$1")
		}
	}

	filename := filepath.Base(name)
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
