package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	for _, c := range []lipgloss.Color{
		theme.Primary, theme.Secondary, theme.Foreground, theme.Muted,
		theme.Error, theme.Border, theme.Gold, theme.Silver, theme.Bronze,
	} {
		assert.NotEmpty(t, string(c))
	}
}

func TestDefaultTheme_RankColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	assert.NotEqual(t, theme.Gold, theme.Silver)
	assert.NotEqual(t, theme.Silver, theme.Bronze)
	assert.NotEqual(t, theme.Gold, theme.Bronze)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestStyles_Rank(t *testing.T) {
	s := DefaultStyles()
	theme := s.Theme()

	tests := []struct {
		rank int
		want lipgloss.TerminalColor
	}{
		{1, theme.Gold},
		{2, theme.Silver},
		{3, theme.Bronze},
		{4, theme.Foreground},
		{0, theme.Foreground},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Rank(tt.rank).GetForeground(), "rank %d", tt.rank)
	}
}

func TestStyles_Table(t *testing.T) {
	s := DefaultStyles()

	ts := s.Table()

	assert.Equal(t, s.TableHeader.GetForeground(), ts.Header.GetForeground())
	assert.Equal(t, s.TableSelected.GetBackground(), ts.Selected.GetBackground())
}

func TestStyles_RenderNonEmpty(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Title.Render("Leaderboard"), "Leaderboard")
	assert.Contains(t, s.Rank(1).Render("1"), "1")
}
