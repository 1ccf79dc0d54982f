// Package plaintext provides the fallback Normaliser for plain text input,
// including stdin.
package plaintext

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/plain", "text/csv"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise splits the text into one paragraph per line. Line endings are
// kept on each paragraph so a match never spans two lines.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	text := strings.ReplaceAll(string(raw.Content), "\r\n", "\n")
	var paragraphs []string
	if text != "" {
		paragraphs = strings.SplitAfter(text, "\n")
	}

	return &domain.Document{
		ID:    raw.Name,
		Title: extractTitle(raw.Name),
		Body:  domain.NewTextBody(paragraphs...),
	}, nil
}

// extractTitle strips the directory and extension from a file name.
func extractTitle(name string) string {
	filename := filepath.Base(name)
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
