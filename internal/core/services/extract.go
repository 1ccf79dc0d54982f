package services

import (
	"strings"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// MaxTabDepth bounds tab recursion. Deeper tabs are not visited.
const MaxTabDepth = 64

// TabVisit describes one tab reached by WalkTabs.
type TabVisit struct {
	// Tab is the visited tab.
	Tab *domain.Tab

	// Depth is 0 for top-level tabs.
	Depth int

	// HasBody is false for tabs without document content.
	HasBody bool
}

// ExtractAllText returns the plain text of every tab in the document,
// depth-first pre-order, with no separator between tabs. Only paragraph
// text runs contribute; tables and other elements are skipped. Documents
// without tabs fall back to their flat body.
func ExtractAllText(doc *domain.Document) string {
	if doc == nil {
		return ""
	}

	if len(doc.Tabs) == 0 {
		if !doc.Body.HasContent() {
			return ""
		}
		return ExtractBodyText(doc.Body)
	}

	var sb strings.Builder
	WalkTabs(doc, func(v TabVisit) {
		if v.HasBody {
			sb.WriteString(ExtractBodyText(v.Tab.DocumentTab.Body))
		}
	})
	return sb.String()
}

// ExtractBodyText concatenates the text runs of every paragraph in body.
func ExtractBodyText(body *domain.Body) string {
	if body == nil {
		return ""
	}

	var sb strings.Builder
	for i := range body.Content {
		para := body.Content[i].Paragraph
		if para == nil {
			continue
		}
		for j := range para.Elements {
			if run := para.Elements[j].TextRun; run != nil {
				sb.WriteString(run.Content)
			}
		}
	}
	return sb.String()
}

// WalkTabs calls fn for every tab of doc, parents before children,
// siblings in declared order.
func WalkTabs(doc *domain.Document, fn func(TabVisit)) {
	if doc == nil {
		return
	}
	for i := range doc.Tabs {
		walkTab(&doc.Tabs[i], 0, fn)
	}
}

func walkTab(tab *domain.Tab, depth int, fn func(TabVisit)) {
	if depth >= MaxTabDepth {
		return
	}

	fn(TabVisit{
		Tab:     tab,
		Depth:   depth,
		HasBody: tab.DocumentTab != nil && tab.DocumentTab.Body.HasContent(),
	})

	for i := range tab.ChildTabs {
		walkTab(&tab.ChildTabs[i], depth+1, fn)
	}
}
