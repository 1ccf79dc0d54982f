package domain

// Document is a fetched document. Tabbed documents populate Tabs; legacy
// documents only carry a flat Body.
type Document struct {
	// ID is the document identifier.
	ID string

	// Title is the human-readable title.
	Title string

	// Body is the flat body of a non-tabbed document.
	Body *Body

	// Tabs are the top-level tabs in declared order.
	Tabs []Tab
}

// Tab is a named section of a document. A tab owns its children.
type Tab struct {
	// Properties identifies the tab.
	Properties TabProperties

	// DocumentTab carries the tab body. Nil for non-document tabs.
	DocumentTab *DocumentTab

	// ChildTabs are nested tabs in declared order.
	ChildTabs []Tab
}

// TabProperties holds the identifying pair of a tab.
type TabProperties struct {
	ID    string
	Title string
}

// DocumentTab is the payload of a tab that holds document content.
type DocumentTab struct {
	Body *Body
}

// Body is an ordered sequence of structural elements.
type Body struct {
	Content []StructuralElement
}

// HasContent reports whether the body holds any structural element.
func (b *Body) HasContent() bool {
	return b != nil && len(b.Content) > 0
}

// ElementKind identifies the type of a structural element.
type ElementKind string

const (
	// ElementParagraph is a paragraph of text runs.
	ElementParagraph ElementKind = "paragraph"

	// ElementTable is a table. Its cell text is not extracted.
	ElementTable ElementKind = "table"

	// ElementSectionBreak is a section break.
	ElementSectionBreak ElementKind = "section_break"

	// ElementTableOfContents is a generated table of contents.
	ElementTableOfContents ElementKind = "table_of_contents"

	// ElementOther is any element kind not listed above.
	ElementOther ElementKind = "other"
)

// StructuralElement is one element of a body. Only paragraphs carry text.
type StructuralElement struct {
	Kind      ElementKind
	Paragraph *Paragraph
}

// Paragraph holds an ordered sequence of paragraph elements.
type Paragraph struct {
	Elements []ParagraphElement
}

// ParagraphElement is a run inside a paragraph. TextRun is nil for
// non-text runs such as inline images or page breaks.
type ParagraphElement struct {
	TextRun *TextRun
}

// TextRun is literal text content.
type TextRun struct {
	Content string
}

// NewTextBody builds a body of one paragraph per string, one run each.
// It is a convenience for fixtures and local inputs.
func NewTextBody(paragraphs ...string) *Body {
	body := &Body{Content: make([]StructuralElement, 0, len(paragraphs))}
	for _, p := range paragraphs {
		body.Content = append(body.Content, StructuralElement{
			Kind: ElementParagraph,
			Paragraph: &Paragraph{
				Elements: []ParagraphElement{{TextRun: &TextRun{Content: p}}},
			},
		})
	}
	return body
}

// DocumentRef identifies a document to scan.
type DocumentRef struct {
	ID   string
	Name string
}

// DisplayName returns the name, or the ID when the name is empty.
func (r DocumentRef) DisplayName() string {
	if r.Name == "" {
		return r.ID
	}
	return r.Name
}

// EntryKind classifies a folder listing entry.
type EntryKind int

const (
	// EntryOther is any file that is neither a folder nor a document.
	EntryOther EntryKind = iota

	// EntryFolder is a folder.
	EntryFolder

	// EntryDocument is a Google Doc.
	EntryDocument
)

// String returns the string representation.
func (k EntryKind) String() string {
	switch k {
	case EntryFolder:
		return "folder"
	case EntryDocument:
		return "document"
	default:
		return "other"
	}
}

// FolderEntry is one child of a folder.
type FolderEntry struct {
	ID   string
	Name string
	Kind EntryKind
}

// FolderPage is one page of a folder listing.
type FolderPage struct {
	Entries []FolderEntry

	// NextPageToken continues the listing. Empty on the last page.
	NextPageToken string
}
