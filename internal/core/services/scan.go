package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driven"
	"github.com/custodia-labs/cardscan/internal/core/ports/driving"
	"github.com/custodia-labs/cardscan/internal/logger"
)

// Ensure Scanner implements the interface.
var _ driving.ScanService = (*Scanner)(nil)

// ErrFolderListingUnavailable is returned for folder scans when no folder
// lister is configured.
var ErrFolderListingUnavailable = errors.New("folder listing not configured")

// Scanner fetches documents one at a time and counts tag markers per person.
type Scanner struct {
	fetcher driven.DocumentFetcher
	lister  driven.FolderLister
	log     *logger.Logger
	now     func() time.Time
}

// NewScanner creates a scanner. lister may be nil when only single
// documents are scanned.
func NewScanner(fetcher driven.DocumentFetcher, lister driven.FolderLister, log *logger.Logger) *Scanner {
	if log == nil {
		log = logger.Nop()
	}
	return &Scanner{
		fetcher: fetcher,
		lister:  lister,
		log:     log,
		now:     time.Now,
	}
}

// Scan runs one sequential pass. Any fetch or listing failure aborts the
// run and no partial result is returned.
func (s *Scanner) Scan(ctx context.Context, cfg domain.ScanConfig) (*domain.ScanResult, error) {
	if err := cfg.ValidateTarget(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	if err := cfg.ValidateMapping(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	result := domain.NewScanResult(uuid.NewString(), cfg.Mode(), cfg.Target(), cfg.Mapping.People())
	result.StartedAt = s.now()

	refs, err := s.resolveTargets(ctx, cfg)
	if err != nil {
		return nil, err
	}

	matchers := compileMapping(cfg.Mapping)
	for i, ref := range refs {
		s.log.Section(fmt.Sprintf("Document %d/%d: %s", i+1, len(refs), ref.DisplayName()))

		doc, err := s.fetch(ctx, ref)
		if err != nil {
			return nil, err
		}
		if ref.Name == "" {
			ref.Name = doc.Title
		}

		result.Add(domain.DocumentResult{
			Ref:    ref,
			Counts: s.count(doc, matchers),
		})
	}

	result.FinishedAt = s.now()
	s.log.Info("Scanned %d document(s), %d card(s) in %s", len(result.Documents), result.Total(), result.Duration())
	return result, nil
}

// ScanDocument fetches one document and counts every person's cards in it.
func (s *Scanner) ScanDocument(
	ctx context.Context, ref domain.DocumentRef, mapping domain.TagMapping,
) (domain.DocumentResult, error) {
	doc, err := s.fetch(ctx, ref)
	if err != nil {
		return domain.DocumentResult{}, err
	}
	if ref.Name == "" {
		ref.Name = doc.Title
	}
	return domain.DocumentResult{
		Ref:    ref,
		Counts: s.count(doc, compileMapping(mapping)),
	}, nil
}

// resolveTargets lists the documents a run covers.
func (s *Scanner) resolveTargets(ctx context.Context, cfg domain.ScanConfig) ([]domain.DocumentRef, error) {
	if cfg.Mode() == domain.ScanModeDocument {
		return []domain.DocumentRef{{ID: cfg.DocumentID}}, nil
	}

	if s.lister == nil {
		return nil, ErrFolderListingUnavailable
	}

	s.log.Section("Listing folder " + cfg.FolderID)
	refs, err := NewFolderWalker(s.lister, s.log).ListDocuments(ctx, cfg.FolderID)
	if err != nil {
		return nil, err
	}
	s.log.Info("Found %d document(s) under folder %s", len(refs), cfg.FolderID)
	return refs, nil
}

func (s *Scanner) fetch(ctx context.Context, ref domain.DocumentRef) (*domain.Document, error) {
	doc, err := s.fetcher.GetDocument(ctx, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch document %s: %w", ref.ID, err)
	}
	return doc, nil
}

// count extracts the document text and counts each person's cards.
func (s *Scanner) count(doc *domain.Document, matchers []*PersonMatcher) map[string]int {
	s.logTabs(doc)
	text := ExtractAllText(doc)

	counts := make(map[string]int, len(matchers))
	for _, m := range matchers {
		counts[m.Person] = m.Count(text)
		s.log.Debug("%s: %d", m.Person, counts[m.Person])
	}
	return counts
}

// logTabs reports which tabs contribute text.
func (s *Scanner) logTabs(doc *domain.Document) {
	if !s.log.IsVerbose() {
		return
	}
	if len(doc.Tabs) == 0 {
		if doc.Body.HasContent() {
			s.log.Debug("Scanning single-tab document body")
		}
		return
	}
	WalkTabs(doc, func(v TabVisit) {
		title := v.Tab.Properties.Title
		if title == "" {
			title = "<untitled>"
		}
		if v.HasBody {
			s.log.Debug("Scanning tab: %s (%s)", title, v.Tab.Properties.ID)
		} else {
			s.log.Debug("Skipping non-document/empty tab: %s (%s)", title, v.Tab.Properties.ID)
		}
	})
}

func compileMapping(mapping domain.TagMapping) []*PersonMatcher {
	matchers := make([]*PersonMatcher, len(mapping))
	for i := range mapping {
		matchers[i] = NewPersonMatcher(mapping[i].Person, mapping[i].Tags)
	}
	return matchers
}
