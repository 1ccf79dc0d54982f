// Command cardscan counts the debate cards each person has cut in Google Docs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/cardscan/internal/adapters/driving/cli"
	"github.com/custodia-labs/cardscan/internal/connectors/google"
	"github.com/custodia-labs/cardscan/internal/connectors/google/docs"
	"github.com/custodia-labs/cardscan/internal/connectors/google/drive"
	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driving"
	"github.com/custodia-labs/cardscan/internal/core/services"
	"github.com/custodia-labs/cardscan/internal/logger"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetScannerFactory(newScanner)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newScanner wires the Google connectors into a scanner for cfg.
func newScanner(ctx context.Context, cfg domain.ScanConfig, log *logger.Logger) (driving.ScanService, error) {
	ts, err := google.NewServiceAccountTokenSource(ctx, cfg.CredentialsFile, google.ReadOnlyScopes...)
	if err != nil {
		return nil, err
	}

	docsSvc, err := google.NewDocsService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("create docs service: %w", err)
	}
	driveSvc, err := google.NewDriveService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	fetcher := docs.NewFetcher(docsSvc).
		WithRateLimiter(google.NewRateLimiter(google.ServiceDocs))
	lister := drive.NewLister(driveSvc, drive.ConfigFromScan(cfg)).
		WithRateLimiter(google.NewRateLimiter(google.ServiceDrive))

	log.Debug("google services ready (page size %d)", cfg.EffectivePageSize())
	return services.NewScanner(fetcher, lister, log), nil
}
