package mcp

import (
	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driving"
)

// Ports aggregates what the MCP server needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scan runs document and folder scans.
	Scan driving.ScanService

	// Defaults is the configuration tool calls start from. Tool inputs
	// override its target and mapping.
	Defaults domain.ScanConfig
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Scan == nil {
		return ErrMissingScanService
	}
	return nil
}
