package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/services"
)

// createTestDOCX creates a minimal DOCX file in memory.
func createTestDOCX(t *testing.T, documentXML, coreXML string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	contentTypes, err := w.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = contentTypes.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`))
	require.NoError(t, err)

	if documentXML != "" {
		doc, err := w.Create("word/document.xml")
		require.NoError(t, err)
		_, err = doc.Write([]byte(documentXML))
		require.NoError(t, err)
	}

	if coreXML != "" {
		core, err := w.Create("docProps/core.xml")
		require.NoError(t, err)
		_, err = core.Write([]byte(coreXML))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return buf.Bytes()
}

func wrapBody(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`
}

func TestNormaliser_Metadata(t *testing.T) {
	n := New()

	assert.Equal(t, []string{MIMEType}, n.SupportedMIMETypes())
	assert.Equal(t, 50, n.Priority())
}

func TestNormalise(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantText string
	}{
		{
			name:     "paragraphs",
			body:     `<w:p><w:r><w:t>Card //alice</w:t></w:r></w:p><w:p><w:r><w:t>Card /al</w:t></w:r></w:p>`,
			wantText: "Card //alice\nCard /al\n",
		},
		{
			name:     "runs joined",
			body:     `<w:p><w:r><w:t>Card //</w:t></w:r><w:r><w:t>bob</w:t></w:r></w:p>`,
			wantText: "Card //bob\n",
		},
		{
			name:     "hyperlink runs kept in order",
			body:     `<w:p><w:r><w:t>see </w:t></w:r><w:hyperlink><w:r><w:t>link</w:t></w:r></w:hyperlink><w:r><w:t> //alice</w:t></w:r></w:p>`,
			wantText: "see link //alice\n",
		},
		{
			name: "tables skipped",
			body: `<w:p><w:r><w:t>before</w:t></w:r></w:p>` +
				`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>//alice</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
				`<w:p><w:r><w:t>after</w:t></w:r></w:p>`,
			wantText: "before\nafter\n",
		},
		{
			name:     "tab and break",
			body:     `<w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t></w:r></w:p>`,
			wantText: "a b\vc\n",
		},
		{
			name:     "empty paragraph",
			body:     `<w:p/>`,
			wantText: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := New().Normalise(context.Background(), &domain.RawDocument{
				Name:     "round1.docx",
				MIMEType: MIMEType,
				Content:  createTestDOCX(t, wrapBody(tt.body), ""),
			})

			require.NoError(t, err)
			assert.Equal(t, "round1.docx", doc.ID)
			assert.Equal(t, "round1", doc.Title)
			assert.Equal(t, tt.wantText, services.ExtractAllText(doc))
		})
	}
}

func TestNormalise_TitleFromCoreXML(t *testing.T) {
	core := `<?xml version="1.0" encoding="UTF-8"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
<dc:title> Aff Case </dc:title>
</cp:coreProperties>`

	doc, err := New().Normalise(context.Background(), &domain.RawDocument{
		Name:    "round1.docx",
		Content: createTestDOCX(t, wrapBody(`<w:p/>`), core),
	})

	require.NoError(t, err)
	assert.Equal(t, "Aff Case", doc.Title)
}

func TestNormalise_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  *domain.RawDocument
	}{
		{name: "nil", raw: nil},
		{name: "not a zip", raw: &domain.RawDocument{Name: "x.docx", Content: []byte("plain text")}},
		{name: "missing document part", raw: &domain.RawDocument{Name: "x.docx", Content: createTestDOCX(t, "", "")}},
		{name: "malformed xml", raw: &domain.RawDocument{Name: "x.docx", Content: createTestDOCX(t, wrapBody("<w:p><w:r><w:t>&bogus;</w:t></w:r></w:p>"), "")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Normalise(context.Background(), tt.raw)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
