package mcp

import (
	"context"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// mockScanService is a mock implementation of driving.ScanService.
type mockScanService struct {
	result    *domain.ScanResult
	docResult domain.DocumentResult
	err       error

	gotConfig  domain.ScanConfig
	gotRef     domain.DocumentRef
	gotMapping domain.TagMapping
}

func (m *mockScanService) Scan(_ context.Context, cfg domain.ScanConfig) (*domain.ScanResult, error) {
	m.gotConfig = cfg
	return m.result, m.err
}

func (m *mockScanService) ScanDocument(
	_ context.Context,
	ref domain.DocumentRef,
	mapping domain.TagMapping,
) (domain.DocumentResult, error) {
	m.gotRef = ref
	m.gotMapping = mapping
	return m.docResult, m.err
}

func testMapping() domain.TagMapping {
	return domain.TagMapping{
		{Person: "alice", Tags: []string{"alice", "al"}},
		{Person: "bob", Tags: []string{"bob"}},
	}
}
