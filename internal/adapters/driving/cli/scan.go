package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cardscan/internal/adapters/driving/report"
)

var scanFormat string

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a document or folder and report cards per person",
	Long: `Scans the configured Google Doc, or every Google Doc under the configured
Drive folder including subfolders, and counts tag markers per person.

A folder takes priority over a document when both are configured.

Examples:
  cardscan scan --doc 1AbC --tags "alice:al,alice|bob:bob"
  cardscan scan --folder 0XyZ --names alice,bob --format markdown`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", string(report.FormatText),
		"output format: text, json or markdown")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	format, err := report.ParseFormat(scanFormat)
	if err != nil {
		return err
	}

	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	svc, err := newScanner(cmd, cfg, log)
	if err != nil {
		return err
	}

	result, err := svc.Scan(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	w, err := report.New(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if _, err := w.Write(result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
