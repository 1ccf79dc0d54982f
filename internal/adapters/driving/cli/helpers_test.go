package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cardscan/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driving"
	"github.com/custodia-labs/cardscan/internal/logger"
)

// mockScanService implements driving.ScanService for command tests.
type mockScanService struct {
	gotConfig domain.ScanConfig
	result    *domain.ScanResult
	err       error
}

func (m *mockScanService) Scan(_ context.Context, cfg domain.ScanConfig) (*domain.ScanResult, error) {
	m.gotConfig = cfg
	return m.result, m.err
}

func (m *mockScanService) ScanDocument(
	_ context.Context, ref domain.DocumentRef, _ domain.TagMapping,
) (domain.DocumentResult, error) {
	return domain.DocumentResult{Ref: ref}, m.err
}

// useScanner installs a factory returning svc for the duration of the test.
func useScanner(t *testing.T, svc driving.ScanService) {
	t.Helper()
	old := scannerFactory
	scannerFactory = func(context.Context, domain.ScanConfig, *logger.Logger) (driving.ScanService, error) {
		return svc, nil
	}
	t.Cleanup(func() { scannerFactory = old })
}

// isolate blanks the environment and returns flags pointing at an empty
// config file and a missing dotenv file in a temp dir.
func isolate(t *testing.T) []string {
	t.Helper()
	for _, key := range []string{
		file.EnvCredentialsFile, file.EnvDocumentID, file.EnvFolderID,
		file.EnvTagMapping, file.EnvTargetNames, file.EnvDebug, file.EnvPageSize,
	} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o600))

	return []string{"--config", cfgPath, "--env-file", filepath.Join(dir, ".env")}
}

// resetFlags restores every flag to its default since rootCmd is shared
// between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs rootCmd with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(bytes.NewBufferString(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func sampleResult() *domain.ScanResult {
	r := domain.NewScanResult("run-1", domain.ScanModeDocument, "d1", []string{"alice", "bob"})
	r.Add(domain.DocumentResult{
		Ref:    domain.DocumentRef{ID: "d1", Name: "Round 1"},
		Counts: map[string]int{"alice": 2, "bob": 3},
	})
	return r
}
