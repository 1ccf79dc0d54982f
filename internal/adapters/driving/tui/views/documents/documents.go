// Package documents provides the per-document counts table for the TUI.
package documents

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/cardscan/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cardscan/internal/connectors/google/drive"
	"github.com/custodia-labs/cardscan/internal/core/domain"
)

const (
	chrome      = 6
	countWidth  = 8
	minNameSize = 16
)

// View lists every scanned document with a count column per person.
type View struct {
	styles *styles.Styles
	table  table.Model
	people []string
	docs   []domain.DocumentResult
	width  int
	height int
}

// NewView creates a new documents view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles: s,
		width:  80,
	}
	v.table = table.New(
		table.WithColumns(v.columns()),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(s.Table()),
	)
	return v
}

func (v *View) columns() []table.Column {
	name := v.width - countWidth*(len(v.people)+1)
	if name < minNameSize {
		name = minNameSize
	}

	cols := make([]table.Column, 0, len(v.people)+2)
	cols = append(cols, table.Column{Title: "Document", Width: name})
	for _, p := range v.people {
		w := len(p)
		if w < countWidth {
			w = countWidth
		}
		cols = append(cols, table.Column{Title: p, Width: w})
	}
	return append(cols, table.Column{Title: "Total", Width: countWidth})
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetResult replaces the columns and rows from result.
func (v *View) SetResult(result *domain.ScanResult) {
	v.people = nil
	v.docs = nil
	if result != nil {
		v.people = result.People
		v.docs = result.Documents
	}
	v.rebuild()
	if len(v.docs) > 0 {
		v.table.SetCursor(0)
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.table.SetWidth(width)
	if h := height - chrome; h > 0 {
		v.table.SetHeight(h)
	}
	v.rebuild()
}

// rebuild resets the rows before the columns since rows are rendered by
// column index.
func (v *View) rebuild() {
	v.table.SetRows(nil)
	v.table.SetColumns(v.columns())

	rows := make([]table.Row, len(v.docs))
	for i, d := range v.docs {
		row := make(table.Row, 0, len(v.people)+2)
		row = append(row, d.Ref.DisplayName())
		for _, p := range v.people {
			row = append(row, strconv.Itoa(d.Counts[p]))
		}
		rows[i] = append(row, strconv.Itoa(d.Total()))
	}
	v.table.SetRows(rows)
}

// Update handles key messages for row navigation.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the documents table and the link of the selected document.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Documents (%d)", len(v.docs))))
	b.WriteString("\n\n")

	if len(v.docs) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents scanned."))
		return b.String()
	}

	b.WriteString(v.table.View())
	if d, ok := v.Selected(); ok {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(drive.ResolveWebURL(d.Ref.ID, drive.MimeTypeGoogleDoc)))
	}
	return b.String()
}

// Documents returns the documents currently shown.
func (v *View) Documents() []domain.DocumentResult {
	return v.docs
}

// Selected returns the document under the cursor.
func (v *View) Selected() (domain.DocumentResult, bool) {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.docs) {
		return domain.DocumentResult{}, false
	}
	return v.docs[i], true
}
