// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The text extraction and tag counting in this package are pure functions
// over already-fetched data; only Scanner and ListDocumentsInFolder call
// out through driven ports.
package services
