package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// mockFetcher implements driven.DocumentFetcher for testing.
type mockFetcher struct {
	docs  map[string]*domain.Document
	errs  map[string]error
	calls []string
}

func newMockFetcher() *mockFetcher {
	return &mockFetcher{
		docs: make(map[string]*domain.Document),
		errs: make(map[string]error),
	}
}

func (m *mockFetcher) add(id, title string, text ...string) {
	m.docs[id] = &domain.Document{
		ID:    id,
		Title: title,
		Tabs: []domain.Tab{{
			Properties:  domain.TabProperties{ID: "t.0", Title: "Tab 1"},
			DocumentTab: &domain.DocumentTab{Body: domain.NewTextBody(text...)},
		}},
	}
}

func (m *mockFetcher) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	m.calls = append(m.calls, id)
	if err, ok := m.errs[id]; ok {
		return nil, err
	}
	doc, ok := m.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	return doc, nil
}

// mockLister implements driven.FolderLister for testing.
// pages maps a folder ID to its pages in order; page tokens are "p1", "p2", ...
type mockLister struct {
	pages map[string][][]domain.FolderEntry
	err   error
	calls []string
}

func newMockLister() *mockLister {
	return &mockLister{pages: make(map[string][][]domain.FolderEntry)}
}

func (m *mockLister) addPage(folderID string, entries ...domain.FolderEntry) {
	m.pages[folderID] = append(m.pages[folderID], entries)
}

func (m *mockLister) ListFolder(_ context.Context, folderID, pageToken string) (*domain.FolderPage, error) {
	m.calls = append(m.calls, folderID+"@"+pageToken)
	if m.err != nil {
		return nil, m.err
	}

	pages := m.pages[folderID]
	idx := 0
	if pageToken != "" {
		for i := range pages {
			if pageToken == pageTokenFor(i) {
				idx = i
			}
		}
	}
	if idx >= len(pages) {
		return &domain.FolderPage{}, nil
	}

	page := &domain.FolderPage{Entries: pages[idx]}
	if idx+1 < len(pages) {
		page.NextPageToken = pageTokenFor(idx + 1)
	}
	return page, nil
}

func pageTokenFor(i int) string {
	return "p" + string(rune('0'+i))
}

func folder(id, name string) domain.FolderEntry {
	return domain.FolderEntry{ID: id, Name: name, Kind: domain.EntryFolder}
}

func document(id, name string) domain.FolderEntry {
	return domain.FolderEntry{ID: id, Name: name, Kind: domain.EntryDocument}
}

func other(id, name string) domain.FolderEntry {
	return domain.FolderEntry{ID: id, Name: name, Kind: domain.EntryOther}
}
