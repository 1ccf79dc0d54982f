package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driven"
	"github.com/custodia-labs/cardscan/internal/logger"
)

// FolderWalker collects the documents of a folder tree.
type FolderWalker struct {
	lister driven.FolderLister
	log    *logger.Logger
}

// NewFolderWalker creates a walker listing folders through lister.
func NewFolderWalker(lister driven.FolderLister, log *logger.Logger) *FolderWalker {
	return &FolderWalker{lister: lister, log: log}
}

// ListDocuments returns every document under folderID, recursing into
// subfolders in listing order. Each folder's listing is drained across all
// pages before its entries are processed. A folder reached twice is
// skipped so a circular shortcut structure cannot loop forever.
func (w *FolderWalker) ListDocuments(ctx context.Context, folderID string) ([]domain.DocumentRef, error) {
	visited := make(map[string]bool)
	return w.walk(ctx, folderID, visited, nil)
}

func (w *FolderWalker) walk(
	ctx context.Context, folderID string, visited map[string]bool, docs []domain.DocumentRef,
) ([]domain.DocumentRef, error) {
	if visited[folderID] {
		w.log.Warn("Skipping folder %s: already visited", folderID)
		return docs, nil
	}
	visited[folderID] = true

	entries, err := w.listAll(ctx, folderID)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		switch entry.Kind {
		case domain.EntryFolder:
			w.log.Debug("Descending into folder: %s (%s)", entry.Name, entry.ID)
			docs, err = w.walk(ctx, entry.ID, visited, docs)
			if err != nil {
				return nil, err
			}
		case domain.EntryDocument:
			docs = append(docs, domain.DocumentRef{ID: entry.ID, Name: entry.Name})
		default:
			w.log.Debug("Skipping non-document entry: %s (%s)", entry.Name, entry.ID)
		}
	}

	return docs, nil
}

// listAll follows continuation tokens until the folder is exhausted.
func (w *FolderWalker) listAll(ctx context.Context, folderID string) ([]domain.FolderEntry, error) {
	var entries []domain.FolderEntry
	pageToken := ""
	for {
		page, err := w.lister.ListFolder(ctx, folderID, pageToken)
		if err != nil {
			return nil, fmt.Errorf("list folder %s: %w", folderID, err)
		}
		entries = append(entries, page.Entries...)

		if page.NextPageToken == "" {
			return entries, nil
		}
		pageToken = page.NextPageToken
	}
}

// ListDocumentsInFolder is a convenience wrapper around FolderWalker
// without logging.
func ListDocumentsInFolder(ctx context.Context, lister driven.FolderLister, folderID string) ([]domain.DocumentRef, error) {
	return NewFolderWalker(lister, logger.Nop()).ListDocuments(ctx, folderID)
}
