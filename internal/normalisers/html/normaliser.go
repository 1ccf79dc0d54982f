package html

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles HTML documents.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Normalise converts an HTML document to a document with one paragraph
// per line of visible text.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %v", domain.ErrInvalidInput, err)
	}

	title := extractHTMLTitle(doc, raw.Name)

	// Non-visible content and tables go entirely.
	doc.Find(hiddenSelector).Remove()

	var b strings.Builder
	walk(doc.Find("body"), &b)

	var paragraphs []string
	for _, line := range strings.Split(b.String(), "\n") {
		// Fields also splits on U+00A0 from &nbsp;.
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			paragraphs = append(paragraphs, line+"\n")
		}
	}

	return &domain.Document{
		ID:    raw.Name,
		Title: title,
		Body:  domain.NewTextBody(paragraphs...),
	}, nil
}

const hiddenSelector = "head, script, style, noscript, template, svg, table"

// sourceBreaks turns line breaks in markup source into spaces, as a browser
// renders them.
var sourceBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// blockElements start and end a line.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "figcaption": true,
	"figure": true, "footer": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"li": true, "main": true, "nav": true, "ol": true, "p": true,
	"pre": true, "section": true, "ul": true,
}

// walk writes the text under sel to b, with a newline at every block
// boundary and <br>.
func walk(sel *goquery.Selection, b *strings.Builder) {
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		switch name := goquery.NodeName(c); {
		case name == "#text":
			b.WriteString(sourceBreaks.Replace(c.Text()))
		case name == "br":
			b.WriteString("\n")
		case blockElements[name]:
			b.WriteString("\n")
			walk(c, b)
			b.WriteString("\n")
		case strings.HasPrefix(name, "#"):
			// comments and doctypes
		default:
			walk(c, b)
		}
	})
}

// extractHTMLTitle returns the <title> text or falls back to filename.
func extractHTMLTitle(doc *goquery.Document, name string) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}

	filename := filepath.Base(name)
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
