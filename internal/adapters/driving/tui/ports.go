// Package tui provides an interactive terminal user interface for cardscan.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/ports/driving"
)

// Ports aggregates what the TUI needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scan runs the scan shown by the TUI.
	Scan driving.ScanService

	// Config is the configuration every scan and rescan uses.
	Config domain.ScanConfig
}

// NewPorts creates a new Ports aggregate.
func NewPorts(scan driving.ScanService, cfg domain.ScanConfig) *Ports {
	return &Ports{
		Scan:   scan,
		Config: cfg,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Scan == nil {
		return ErrMissingScanService
	}
	return nil
}
