// Package docs fetches Google Docs documents with all of their tabs.
package docs

import (
	"context"
	"fmt"

	"google.golang.org/api/docs/v1"

	"github.com/custodia-labs/cardscan/internal/connectors/google"
	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.DocumentFetcher = (*Fetcher)(nil)

// Fetcher retrieves documents through the Docs API.
type Fetcher struct {
	svc         *docs.Service
	rateLimiter *google.RateLimiter
}

// NewFetcher creates a document fetcher backed by the given Docs service.
func NewFetcher(svc *docs.Service) *Fetcher {
	return &Fetcher{
		svc:         svc,
		rateLimiter: google.NewRateLimiter(google.ServiceDocs),
	}
}

// WithRateLimiter replaces the request pacer. Nil disables pacing.
func (f *Fetcher) WithRateLimiter(rl *google.RateLimiter) *Fetcher {
	f.rateLimiter = rl
	return f
}

// GetDocument fetches a document including the content of every tab.
func (f *Fetcher) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	if err := f.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	doc, err := f.svc.Documents.Get(documentID).
		IncludeTabsContent(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	out := DocumentToDomain(doc)
	if out.ID == "" {
		out.ID = documentID
	}
	return out, nil
}
