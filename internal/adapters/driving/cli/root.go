// Package cli provides the cobra command tree for cardscan.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/cardscan/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driving"
	"github.com/custodia-labs/cardscan/internal/logger"
)

// version is set at build time.
var version = "dev"

// ErrScannerNotConfigured is returned when no scanner factory is set.
var ErrScannerNotConfigured = errors.New("scan service not configured")

// ScannerFactory builds the scan service for a resolved configuration.
type ScannerFactory func(ctx context.Context, cfg domain.ScanConfig, log *logger.Logger) (driving.ScanService, error)

var scannerFactory ScannerFactory

// Persistent flag values.
var (
	configPath  string
	envFile     string
	credentials string
	documentID  string
	folderID    string
	tagMapping  string
	names       string
	verbose     bool
	pageSize    int
)

var rootCmd = &cobra.Command{
	Use:   "cardscan",
	Short: "Count debate cards cut per person in Google Docs",
	Long: `cardscan scans a Google Doc, or every Google Doc under a Drive folder,
for tag markers such as "//alice" or "/al" and reports how many cards each
person has cut.

Configuration is read from flags, the environment, a .env file and
$XDG_CONFIG_HOME/cardscan/config.toml, in that order of precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (TOML or YAML)")
	pf.StringVar(&envFile, "env-file", file.DefaultEnvFile, "dotenv file")
	pf.StringVar(&credentials, "credentials", "", "service account JSON key file")
	pf.StringVar(&documentID, "doc", "", "Google Doc ID to scan")
	pf.StringVar(&folderID, "folder", "", "Drive folder ID to scan (takes priority over --doc)")
	pf.StringVar(&tagMapping, "tags", "", `tag mapping, e.g. "alice:al,alice|bob:bob"`)
	pf.StringVar(&names, "names", "", "comma separated names used as their own tags")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose logging to stderr")
	pf.IntVar(&pageSize, "page-size", 0, "Drive folder listing page size")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetScannerFactory sets how commands build the scan service.
func SetScannerFactory(f ScannerFactory) {
	scannerFactory = f
}

// overrides returns only the flags the user set, so unset flags do not
// shadow the environment or config file.
func overrides(flags *pflag.FlagSet) file.Overrides {
	var o file.Overrides
	if flags.Changed("credentials") {
		o.CredentialsFile = &credentials
	}
	if flags.Changed("doc") {
		o.DocumentID = &documentID
	}
	if flags.Changed("folder") {
		o.FolderID = &folderID
	}
	if flags.Changed("tags") {
		o.TagMapping = &tagMapping
	}
	if flags.Changed("names") {
		o.Names = &names
	}
	if flags.Changed("verbose") {
		o.Debug = &verbose
	}
	if flags.Changed("page-size") {
		o.PageSize = &pageSize
	}
	return o
}

// loadConfig resolves the configuration and builds the logger for cmd.
func loadConfig(cmd *cobra.Command) (domain.ScanConfig, *logger.Logger, error) {
	cfg, err := file.Load(file.Options{
		ConfigPath: configPath,
		EnvFile:    envFile,
		Overrides:  overrides(cmd.Flags()),
	})
	if err != nil {
		return domain.ScanConfig{}, nil, err
	}

	log := logger.New(cmd.ErrOrStderr(), cfg.Debug)
	log.Debug("config: mode=%s target=%q people=%v", cfg.Mode(), cfg.Target(), cfg.Mapping.People())
	return cfg, log, nil
}

func newScanner(cmd *cobra.Command, cfg domain.ScanConfig, log *logger.Logger) (driving.ScanService, error) {
	if scannerFactory == nil {
		return nil, ErrScannerNotConfigured
	}
	return scannerFactory(cmd.Context(), cfg, log)
}
