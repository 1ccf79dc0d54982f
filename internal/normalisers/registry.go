package normalisers

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driven"
	"github.com/custodia-labs/cardscan/internal/normalisers/docx"
	"github.com/custodia-labs/cardscan/internal/normalisers/html"
	"github.com/custodia-labs/cardscan/internal/normalisers/markdown"
	"github.com/custodia-labs/cardscan/internal/normalisers/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// fallbackMIMEType is used for text/* types with no dedicated normaliser.
const fallbackMIMEType = "text/plain"

// extensionTypes maps file extensions to MIME types. It is consulted before
// the system MIME table so results do not depend on the host.
var extensionTypes = map[string]string{
	".txt":      "text/plain",
	".text":     "text/plain",
	".csv":      "text/csv",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".htm":      "text/html",
	".html":     "text/html",
	".docx":     docx.MIMEType,
}

// Registry dispatches raw documents to normalisers by MIME type.
// Normalisers with higher priority win when several claim the same type.
type Registry struct {
	normalisers []driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Default returns a registry with every built-in normaliser registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(markdown.New())
	r.Register(html.New())
	r.Register(docx.New())
	return r
}

// Register adds a normaliser to the registry.
func (r *Registry) Register(n driven.Normaliser) {
	r.normalisers = append(r.normalisers, n)
	sort.SliceStable(r.normalisers, func(i, j int) bool {
		return r.normalisers[i].Priority() > r.normalisers[j].Priority()
	})
}

// SupportedMIMETypes returns all MIME types that can be normalised, sorted.
func (r *Registry) SupportedMIMETypes() []string {
	seen := make(map[string]bool)
	var types []string
	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}
	sort.Strings(types)
	return types
}

// Normalise parses raw with the highest priority normaliser for its MIME
// type. Unknown text/* types fall back to plain text; anything else is
// rejected with domain.ErrUnsupportedFormat.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	mimeType := raw.MIMEType
	if mimeType == "" {
		mimeType = DetectMIMEType(raw.Name)
	}
	mimeType = baseType(mimeType)

	n := r.find(mimeType)
	if n == nil && strings.HasPrefix(mimeType, "text/") {
		n = r.find(fallbackMIMEType)
	}
	if n == nil {
		return nil, fmt.Errorf("%w: %s (%s)", domain.ErrUnsupportedFormat, raw.Name, mimeType)
	}

	return n.Normalise(ctx, raw)
}

func (r *Registry) find(mimeType string) driven.Normaliser {
	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if t == mimeType {
				return n
			}
		}
	}
	return nil
}

// DetectMIMEType guesses a MIME type from a file name. Names without a
// known extension, including "-" for stdin, are treated as plain text.
func DetectMIMEType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	if ext != "" {
		if t := mime.TypeByExtension(ext); t != "" {
			return baseType(t)
		}
	}
	return fallbackMIMEType
}

// baseType drops parameters such as charset from a MIME type.
func baseType(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
