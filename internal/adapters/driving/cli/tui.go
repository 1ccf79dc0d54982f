package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cardscan/internal/adapters/driving/tui"
	"github.com/custodia-labs/cardscan/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive leaderboard",
	Long: `Runs the configured scan with a progress spinner, then shows the
leaderboard and the per-document counts.

Controls:
  ↑/k, ↓/j - Move between rows
  Tab      - Switch leaderboard / documents
  r        - Rescan
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Log lines would corrupt the alternate screen.
	svc, err := newScanner(cmd, cfg, logger.Nop())
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(svc, cfg))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
