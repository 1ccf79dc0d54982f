package driven

import (
	"context"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// FolderLister lists the children of a folder one page at a time.
type FolderLister interface {
	// ListFolder returns the page of children of folderID that starts at
	// pageToken. An empty pageToken requests the first page. The returned
	// page carries an empty NextPageToken when it is the last one.
	ListFolder(ctx context.Context, folderID, pageToken string) (*domain.FolderPage, error)
}
