package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/cardscan/internal/adapters/driving/report"
	"github.com/custodia-labs/cardscan/internal/connectors/filesystem"
	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/services"
	"github.com/custodia-labs/cardscan/internal/logger"
	"github.com/custodia-labs/cardscan/internal/normalisers"
)

var (
	countFormat   string
	countMIMEType string
	countWatch    bool
)

var countCmd = &cobra.Command{
	Use:   "count [file|-]",
	Short: "Count tags in a local export",
	Long: `Counts tag markers in a local export, or stdin when the file is "-"
or omitted. No Google API call is made and no credentials are needed.

Plain text, Markdown, HTML and DOCX exports are understood. The format is
taken from the file extension unless --type is given; stdin is plain text
by default. Table content is ignored, as it is for Google Docs.

Examples:
  cardscan count notes.txt --tags "alice:al,alice|bob:bob"
  cardscan count "Round 1.docx" --names alice,bob
  cardscan count notes.md --names alice --watch
  pbpaste | cardscan count --names alice,bob`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCount,
}

func init() {
	countCmd.Flags().StringVarP(&countFormat, "format", "f", string(report.FormatText),
		"output format: text, json or markdown")
	countCmd.Flags().StringVar(&countMIMEType, "type", "",
		"input MIME type, e.g. text/html (default: detect from extension)")
	countCmd.Flags().BoolVarP(&countWatch, "watch", "w", false,
		"recount whenever the file changes")
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(countFormat)
	if err != nil {
		return err
	}
	watching := countWatch
	if watching && (len(args) == 0 || args[0] == "-") {
		return fmt.Errorf("%w: --watch needs a file, not stdin", domain.ErrInvalidInput)
	}

	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.ValidateMapping(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	if err := countOnce(cmd, args, cfg.Mapping, format, log); err != nil {
		return err
	}
	if !watching {
		return nil
	}
	return watchAndCount(cmd, args, cfg.Mapping, format, log)
}

// countOnce reads the input, counts it and writes one report.
func countOnce(
	cmd *cobra.Command, args []string, mapping domain.TagMapping, format report.Format, log *logger.Logger,
) error {
	ref, raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if countMIMEType != "" {
		raw.MIMEType = countMIMEType
	}

	doc, err := normalisers.Default().Normalise(cmd.Context(), raw)
	if err != nil {
		return fmt.Errorf("read %s: %w", ref.DisplayName(), err)
	}
	text := services.ExtractAllText(doc)
	log.Debug("counting %d bytes of %s from %s", len(text), raw.MIMEType, ref.DisplayName())

	started := time.Now()
	result := domain.NewScanResult(uuid.NewString(), domain.ScanModeDocument, ref.ID, mapping.People())
	result.StartedAt = started
	result.Add(domain.DocumentResult{
		Ref:    ref,
		Counts: services.CountMapping(text, mapping),
	})
	result.FinishedAt = time.Now()

	w, err := report.New(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if _, err := w.Write(result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// watchAndCount recounts the file each time it is saved, until the command
// context is cancelled. A save that cannot be read is reported and skipped.
func watchAndCount(
	cmd *cobra.Command, args []string, mapping domain.TagMapping, format report.Format, log *logger.Logger,
) error {
	watcher, err := filesystem.NewWatcher(args[0])
	if err != nil {
		return err
	}
	defer watcher.Close()

	changes, err := watcher.Watch(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes (Ctrl+C to stop)\n", watcher.Path())

	for change := range changes {
		if change.Type == filesystem.ChangeDeleted {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s was removed, waiting for it to come back\n", change.Path)
			continue
		}
		if err := countOnce(cmd, args, mapping, format, log); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Recount failed: %v\n", err)
		}
	}
	return nil
}

// readInput returns the reference and raw content of the file named in
// args, or of stdin.
func readInput(cmd *cobra.Command, args []string) (domain.DocumentRef, *domain.RawDocument, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return domain.DocumentRef{}, nil, fmt.Errorf("read stdin: %w", err)
		}
		ref := domain.DocumentRef{ID: "stdin"}
		return ref, &domain.RawDocument{Name: ref.ID, MIMEType: "text/plain", Content: data}, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return domain.DocumentRef{}, nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	ref := domain.DocumentRef{ID: args[0], Name: filepath.Base(args[0])}
	return ref, &domain.RawDocument{
		Name:     ref.Name,
		MIMEType: normalisers.DetectMIMEType(ref.Name),
		Content:  data,
	}, nil
}
