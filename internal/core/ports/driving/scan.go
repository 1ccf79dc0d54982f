package driving

import (
	"context"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// ScanService scans documents for tag markers.
type ScanService interface {
	// Scan runs one full pass for cfg: the folder tree when a folder is
	// configured, otherwise the single document.
	Scan(ctx context.Context, cfg domain.ScanConfig) (*domain.ScanResult, error)

	// ScanDocument fetches and counts a single document.
	ScanDocument(ctx context.Context, ref domain.DocumentRef, mapping domain.TagMapping) (domain.DocumentResult, error)
}
