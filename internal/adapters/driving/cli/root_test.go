package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

func TestRootCmd_PersistentFlags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		def       string
	}{
		{"config", "", ""},
		{"env-file", "", ".env"},
		{"credentials", "", ""},
		{"doc", "", ""},
		{"folder", "", ""},
		{"tags", "", ""},
		{"names", "", ""},
		{"verbose", "v", "false"},
		{"page-size", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := rootCmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.def, flag.DefValue)
		})
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"scan", "count", "tui", "mcp", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestOverrides_OnlyChangedFlags(t *testing.T) {
	resetFlags(rootCmd)
	defer resetFlags(rootCmd)
	flags := rootCmd.PersistentFlags()

	o := overrides(flags)
	assert.Nil(t, o.DocumentID)
	assert.Nil(t, o.Debug)
	assert.Nil(t, o.PageSize)

	require.NoError(t, flags.Set("doc", "d1"))
	require.NoError(t, flags.Set("verbose", "true"))
	require.NoError(t, flags.Set("page-size", "50"))

	o = overrides(flags)
	require.NotNil(t, o.DocumentID)
	assert.Equal(t, "d1", *o.DocumentID)
	require.NotNil(t, o.Debug)
	assert.True(t, *o.Debug)
	require.NotNil(t, o.PageSize)
	assert.Equal(t, 50, *o.PageSize)
	assert.Nil(t, o.FolderID)
	assert.Nil(t, o.TagMapping)
}

func TestNewScanner_NoFactory(t *testing.T) {
	old := scannerFactory
	scannerFactory = nil
	defer func() { scannerFactory = old }()

	_, err := newScanner(rootCmd, domain.ScanConfig{DocumentID: "d1"}, nil)

	assert.ErrorIs(t, err, ErrScannerNotConfigured)
}
