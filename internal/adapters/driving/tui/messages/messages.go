// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// ScanStarted is sent when a scan (or rescan) begins.
type ScanStarted struct{}

// ScanCompleted carries the scan result back to the model.
type ScanCompleted struct {
	Result *domain.ScanResult
	Err    error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred is sent when an error needs to be displayed.
type ErrorOccurred struct {
	Err error
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewScanning shows the spinner while a scan runs.
	ViewScanning ViewType = iota
	// ViewLeaderboard shows people ranked by cards.
	ViewLeaderboard
	// ViewDocuments shows per-document counts.
	ViewDocuments
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewScanning:
		return "scanning"
	case ViewLeaderboard:
		return "leaderboard"
	case ViewDocuments:
		return "documents"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}
