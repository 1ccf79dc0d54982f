package drive

import "strings"

// ResolveWebURL returns the browser URL for a Drive item.
// Documents open in the Docs editor, folders in Drive, everything else in
// the Drive file viewer.
func ResolveWebURL(id, mimeType string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	switch mimeType {
	case MimeTypeGoogleDoc:
		return "https://docs.google.com/document/d/" + id + "/edit"
	case MimeTypeFolder:
		return "https://drive.google.com/drive/folders/" + id
	default:
		return "https://drive.google.com/file/d/" + id + "/view"
	}
}
