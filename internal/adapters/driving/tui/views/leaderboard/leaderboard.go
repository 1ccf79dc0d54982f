// Package leaderboard provides the ranked people table for the TUI.
package leaderboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/cardscan/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// chrome is the number of lines used around the table.
const chrome = 5

// View shows people ranked by the cards they cut.
type View struct {
	styles  *styles.Styles
	table   table.Model
	entries []domain.LeaderboardEntry
	width   int
	height  int
}

// NewView creates a new leaderboard view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(s.Table()),
	)

	return &View{
		styles: s,
		table:  t,
		width:  80,
	}
}

func columns(width int) []table.Column {
	name := width - 6 - 8 - 24
	if name < 12 {
		name = 12
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: name},
		{Title: "Slug", Width: 16},
		{Title: "Cards", Width: 8},
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetResult replaces the table rows with the leaderboard of result.
func (v *View) SetResult(result *domain.ScanResult) {
	if result == nil {
		v.entries = nil
		v.table.SetRows(nil)
		return
	}

	v.entries = result.Leaderboard()
	v.applyRows()
	if len(v.entries) > 0 {
		v.table.SetCursor(0)
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	v.table.SetRows(nil)
	v.table.SetColumns(columns(width))
	v.table.SetWidth(width)
	if h := height - chrome; h > 0 {
		v.table.SetHeight(h)
	}
	v.applyRows()
}

func (v *View) applyRows() {
	rows := make([]table.Row, len(v.entries))
	for i, e := range v.entries {
		rows[i] = table.Row{strconv.Itoa(e.Rank), e.Person, e.Slug, strconv.Itoa(e.Cards)}
	}
	v.table.SetRows(rows)
}

// Update handles key messages for row navigation.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the leaderboard.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Leaderboard"))
	b.WriteString("\n")
	b.WriteString(v.leaderLine())
	b.WriteString("\n\n")

	if len(v.entries) == 0 {
		b.WriteString(v.styles.Muted.Render("No people configured."))
		return b.String()
	}

	b.WriteString(v.table.View())
	return b.String()
}

func (v *View) leaderLine() string {
	if len(v.entries) == 0 || v.entries[0].Cards == 0 {
		return v.styles.Muted.Render("No cards cut yet.")
	}

	var leaders []string
	for _, e := range v.entries {
		if e.Rank != 1 {
			break
		}
		leaders = append(leaders, e.Person)
	}
	return v.styles.Rank(1).Render(fmt.Sprintf("Top: %s with %d cards",
		strings.Join(leaders, ", "), v.entries[0].Cards))
}

// Entries returns the ranked entries currently shown.
func (v *View) Entries() []domain.LeaderboardEntry {
	return v.entries
}

// Selected returns the entry under the cursor.
func (v *View) Selected() (domain.LeaderboardEntry, bool) {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.entries) {
		return domain.LeaderboardEntry{}, false
	}
	return v.entries[i], true
}
