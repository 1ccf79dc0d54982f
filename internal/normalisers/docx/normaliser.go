// Package docx provides a Normaliser for Word exports. Only top-level body
// paragraphs are read, so text inside tables is left out the same way the
// Docs scanner leaves it out.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driven"
)

// MIMEType is the Office Open XML word processing type.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles DOCX documents.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{MIMEType}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser
}

// Normalise converts a DOCX document to a document with one paragraph per
// top-level body paragraph.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a docx archive", domain.ErrInvalidInput, raw.Name)
	}

	content, err := readPart(reader, "word/document.xml")
	if err != nil {
		return nil, err
	}

	paragraphs, err := parseDocumentXML(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	return &domain.Document{
		ID:    raw.Name,
		Title: extractTitle(reader, raw.Name),
		Body:  domain.NewTextBody(paragraphs...),
	}, nil
}

var errPartMissing = errors.New("part missing")

// readPart returns the contents of the named archive member.
func readPart(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		return content, nil
	}
	return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, name, errPartMissing)
}

// parseDocumentXML returns the text of each paragraph that is a direct
// child of w:body, newline terminated. Tabs and breaks inside a paragraph
// become a space and a vertical tab, matching what the Docs API reports for
// the same content.
func parseDocumentXML(content []byte) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, fmt.Errorf("parse document.xml: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New("empty document.xml")
	}
	body := root.SelectElement("body")
	if body == nil {
		return nil, nil
	}

	var paragraphs []string
	for _, p := range body.SelectElements("p") {
		var b strings.Builder
		writeRuns(p, &b)
		b.WriteString("\n")
		paragraphs = append(paragraphs, b.String())
	}
	return paragraphs, nil
}

// writeRuns appends the text under el in document order.
func writeRuns(el *etree.Element, b *strings.Builder) {
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "t":
			b.WriteString(child.Text())
		case "tab":
			b.WriteString(" ")
		case "br", "cr":
			b.WriteString("\v")
		default:
			writeRuns(child, b)
		}
	}
}

// extractTitle extracts the title from docProps/core.xml or falls back to filename.
func extractTitle(reader *zip.Reader, name string) string {
	if content, err := readPart(reader, "docProps/core.xml"); err == nil {
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(content); err == nil && doc.Root() != nil {
			if el := doc.Root().SelectElement("title"); el != nil && strings.TrimSpace(el.Text()) != "" {
				return strings.TrimSpace(el.Text())
			}
		}
	}

	filename := filepath.Base(name)
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
