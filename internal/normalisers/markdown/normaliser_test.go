package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/services"
)

func TestNormaliser_Metadata(t *testing.T) {
	n := New()

	assert.Contains(t, n.SupportedMIMETypes(), "text/markdown")
	assert.Equal(t, 50, n.Priority())
}

func TestNormalise_NilInput(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalise(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantText  string
	}{
		{
			name:      "heading title",
			input:     "# Round 1\n\nCard //alice\n",
			wantTitle: "Round 1",
			wantText:  "# Round 1\n\nCard //alice\n",
		},
		{
			name:      "filename title",
			input:     "Card /al",
			wantTitle: "round1",
			wantText:  "Card /al",
		},
		{
			name:      "escapes removed",
			input:     "Card //bob\\_smith and 1\\. item\n",
			wantTitle: "round1",
			wantText:  "Card //bob_smith and 1. item\n",
		},
		{
			name:      "table rows dropped",
			input:     "before\n| a | b |\n|---|---|\n| //alice | x |\nafter\n",
			wantTitle: "round1",
			wantText:  "before\nafter\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := New().Normalise(context.Background(), &domain.RawDocument{
				Name:    "round1.md",
				Content: []byte(tt.input),
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, doc.Title)
			assert.Equal(t, tt.wantText, services.ExtractAllText(doc))
		})
	}
}
