package driven

import (
	"context"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// DocumentFetcher retrieves documents from the document API.
type DocumentFetcher interface {
	// GetDocument returns the document with nested tab content included.
	// Implementations must request child tab content explicitly, otherwise
	// the remote API silently omits it.
	GetDocument(ctx context.Context, documentID string) (*domain.Document, error)
}
