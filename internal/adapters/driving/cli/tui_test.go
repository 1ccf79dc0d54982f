package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
	assert.Contains(t, tuiCmd.Long, "Rescan")
}

func TestTUICmd_ValidatesBeforeStarting(t *testing.T) {
	base := isolate(t)
	svc := &mockScanService{}
	useScanner(t, svc)

	_, _, err := execute(t, "", append(base, "tui", "--doc", "d1", "--names", "alice")...)

	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}
