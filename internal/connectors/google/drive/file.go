package drive

import (
	"strings"

	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// Google Workspace MIME types.
const (
	MimeTypeGoogleDoc    = "application/vnd.google-apps.document"
	MimeTypeGoogleSheet  = "application/vnd.google-apps.spreadsheet"
	MimeTypeGoogleSlides = "application/vnd.google-apps.presentation"
	MimeTypeFolder       = "application/vnd.google-apps.folder"
)

// listFields limits files.list responses to what the folder walk needs.
const listFields = "nextPageToken, files(id, name, mimeType)"

// EntryKindFor classifies a Drive MIME type.
func EntryKindFor(mimeType string) domain.EntryKind {
	switch mimeType {
	case MimeTypeFolder:
		return domain.EntryFolder
	case MimeTypeGoogleDoc:
		return domain.EntryDocument
	default:
		return domain.EntryOther
	}
}

// FileToEntry converts a Drive file to a folder entry.
func FileToEntry(file *drive.File) domain.FolderEntry {
	return domain.FolderEntry{
		ID:   file.Id,
		Name: file.Name,
		Kind: EntryKindFor(file.MimeType),
	}
}

// ChildrenQuery returns the files.list query for the non-trashed direct
// children of a folder.
func ChildrenQuery(folderID string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(folderID)
	return "'" + escaped + "' in parents and trashed = false"
}
