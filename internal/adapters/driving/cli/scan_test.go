package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cardscan/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cardscan/internal/core/domain"
)

func TestScanCmd_Flags(t *testing.T) {
	flag := scanCmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "f", flag.Shorthand)
	assert.Equal(t, "text", flag.DefValue)
}

func TestScanCmd_Formats(t *testing.T) {
	tests := []struct {
		format   string
		contains []string
	}{
		{"text", []string{"Scan of document d1", "Cards cut by bob: 3", "Cards cut by alice: 2", "Round 1 (d1): alice=2, bob=3"}},
		{"json", []string{`"run_id"`, `"leaderboard"`, `"Round 1"`}},
		{"markdown", []string{"# Card Scan", "Leaderboard", "Round 1"}},
		{"md", []string{"# Card Scan"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			base := isolate(t)
			useScanner(t, &mockScanService{result: sampleResult()})

			out, _, err := execute(t, "", append(base,
				"scan", "--credentials", "creds.json", "--doc", "d1",
				"--tags", "alice:al|bob:bob", "--format", tt.format)...)

			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestScanCmd_PassesResolvedConfig(t *testing.T) {
	base := isolate(t)
	svc := &mockScanService{result: sampleResult()}
	useScanner(t, svc)

	_, _, err := execute(t, "", append(base,
		"scan", "--credentials", "creds.json", "--doc", "d1", "--folder", "f1",
		"--names", "alice, bob", "--page-size", "50")...)

	require.NoError(t, err)
	assert.Equal(t, domain.ScanModeFolder, svc.gotConfig.Mode())
	assert.Equal(t, "f1", svc.gotConfig.Target())
	assert.Equal(t, []string{"alice", "bob"}, svc.gotConfig.Mapping.People())
	assert.Equal(t, 50, svc.gotConfig.PageSize)
}

func TestScanCmd_FlagsOverrideEnvironment(t *testing.T) {
	base := isolate(t)
	t.Setenv(file.EnvCredentialsFile, "env.json")
	t.Setenv(file.EnvDocumentID, "env-doc")
	t.Setenv(file.EnvTagMapping, "carol:c")
	svc := &mockScanService{result: sampleResult()}
	useScanner(t, svc)

	_, _, err := execute(t, "", append(base, "scan", "--doc", "flag-doc")...)

	require.NoError(t, err)
	assert.Equal(t, "env.json", svc.gotConfig.CredentialsFile)
	assert.Equal(t, "flag-doc", svc.gotConfig.DocumentID)
	assert.Equal(t, []string{"carol"}, svc.gotConfig.Mapping.People())
}

func TestScanCmd_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no credentials", []string{"--doc", "d1", "--names", "alice"}, domain.ErrMissingCredentials},
		{"no target", []string{"--credentials", "c.json", "--names", "alice"}, domain.ErrMissingTarget},
		{"no mapping", []string{"--credentials", "c.json", "--doc", "d1"}, domain.ErrNoTagMapping},
		{"bad mapping", []string{"--credentials", "c.json", "--doc", "d1", "--tags", "alice:"}, domain.ErrInvalidTagMapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := isolate(t)
			svc := &mockScanService{result: sampleResult()}
			useScanner(t, svc)

			_, _, err := execute(t, "", append(append(base, "scan"), tt.args...)...)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, svc.gotConfig.Mapping, "scan must not run")
		})
	}
}

func TestScanCmd_UnknownFormat(t *testing.T) {
	base := isolate(t)
	useScanner(t, &mockScanService{result: sampleResult()})

	_, _, err := execute(t, "", append(base, "scan", "--format", "csv")...)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestScanCmd_ScanError(t *testing.T) {
	base := isolate(t)
	scanErr := errors.New("document d1: not found")
	useScanner(t, &mockScanService{err: scanErr})

	_, _, err := execute(t, "", append(base,
		"scan", "--credentials", "c.json", "--doc", "d1", "--names", "alice")...)

	require.Error(t, err)
	assert.ErrorIs(t, err, scanErr)
}

func TestScanCmd_VerboseLogsToStderr(t *testing.T) {
	base := isolate(t)
	useScanner(t, &mockScanService{result: sampleResult()})

	_, errOut, err := execute(t, "", append(base,
		"scan", "-v", "--credentials", "c.json", "--doc", "d1", "--names", "alice")...)

	require.NoError(t, err)
	assert.Contains(t, errOut, "[DEBUG] config: mode=document")
}

func TestScanCmd_RejectsArgs(t *testing.T) {
	base := isolate(t)

	_, _, err := execute(t, "", append(base, "scan", "extra")...)

	assert.Error(t, err)
}
