package docs

import (
	"google.golang.org/api/docs/v1"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// DocumentToDomain converts a Docs API document to the domain tree.
// Nil entries in API slices are dropped.
func DocumentToDomain(doc *docs.Document) *domain.Document {
	if doc == nil {
		return nil
	}

	out := &domain.Document{
		ID:    doc.DocumentId,
		Title: doc.Title,
		Body:  bodyToDomain(doc.Body),
	}
	if len(doc.Tabs) > 0 {
		out.Tabs = tabsToDomain(doc.Tabs)
	}
	return out
}

func tabsToDomain(tabs []*docs.Tab) []domain.Tab {
	out := make([]domain.Tab, 0, len(tabs))
	for _, t := range tabs {
		if t == nil {
			continue
		}
		tab := domain.Tab{}
		if t.TabProperties != nil {
			tab.Properties = domain.TabProperties{
				ID:    t.TabProperties.TabId,
				Title: t.TabProperties.Title,
			}
		}
		if t.DocumentTab != nil {
			tab.DocumentTab = &domain.DocumentTab{Body: bodyToDomain(t.DocumentTab.Body)}
		}
		if len(t.ChildTabs) > 0 {
			tab.ChildTabs = tabsToDomain(t.ChildTabs)
		}
		out = append(out, tab)
	}
	return out
}

func bodyToDomain(body *docs.Body) *domain.Body {
	if body == nil {
		return nil
	}

	out := &domain.Body{Content: make([]domain.StructuralElement, 0, len(body.Content))}
	for _, el := range body.Content {
		if el == nil {
			continue
		}
		out.Content = append(out.Content, elementToDomain(el))
	}
	return out
}

func elementToDomain(el *docs.StructuralElement) domain.StructuralElement {
	switch {
	case el.Paragraph != nil:
		return domain.StructuralElement{
			Kind:      domain.ElementParagraph,
			Paragraph: paragraphToDomain(el.Paragraph),
		}
	case el.Table != nil:
		return domain.StructuralElement{Kind: domain.ElementTable}
	case el.SectionBreak != nil:
		return domain.StructuralElement{Kind: domain.ElementSectionBreak}
	case el.TableOfContents != nil:
		return domain.StructuralElement{Kind: domain.ElementTableOfContents}
	default:
		return domain.StructuralElement{Kind: domain.ElementOther}
	}
}

func paragraphToDomain(p *docs.Paragraph) *domain.Paragraph {
	out := &domain.Paragraph{Elements: make([]domain.ParagraphElement, 0, len(p.Elements))}
	for _, pe := range p.Elements {
		if pe == nil {
			continue
		}
		var run *domain.TextRun
		if pe.TextRun != nil {
			run = &domain.TextRun{Content: pe.TextRun.Content}
		}
		out.Elements = append(out.Elements, domain.ParagraphElement{TextRun: run})
	}
	return out
}
