package drive

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/cardscan/internal/connectors/google"
	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.FolderLister = (*Lister)(nil)

// Lister lists folder children through the Drive API.
type Lister struct {
	svc         *drive.Service
	cfg         *Config
	rateLimiter *google.RateLimiter
}

// NewLister creates a folder lister backed by the given Drive service.
func NewLister(svc *drive.Service, cfg *Config) *Lister {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Lister{
		svc:         svc,
		cfg:         cfg,
		rateLimiter: google.NewRateLimiter(google.ServiceDrive),
	}
}

// WithRateLimiter replaces the request pacer. Nil disables pacing.
func (l *Lister) WithRateLimiter(rl *google.RateLimiter) *Lister {
	l.rateLimiter = rl
	return l
}

// ListFolder returns one page of the direct children of folderID.
// Shared drive items are included.
func (l *Lister) ListFolder(ctx context.Context, folderID, pageToken string) (*domain.FolderPage, error) {
	if err := l.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	call := l.svc.Files.List().
		Context(ctx).
		Q(ChildrenQuery(folderID)).
		Fields(listFields).
		PageSize(l.cfg.pageSize()).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	page := &domain.FolderPage{
		Entries:       make([]domain.FolderEntry, 0, len(resp.Files)),
		NextPageToken: resp.NextPageToken,
	}
	for _, f := range resp.Files {
		if f == nil {
			continue
		}
		page.Entries = append(page.Entries, FileToEntry(f))
	}
	return page, nil
}
