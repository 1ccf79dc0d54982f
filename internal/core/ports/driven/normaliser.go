package driven

import (
	"context"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// Normaliser parses a local export of a document into the document model
// used for Google Docs, so the same text extraction applies.
// Each normaliser handles specific MIME types (e.g., DOCX, HTML).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise parses raw into a document.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)
}
