// Package domain defines the core business entities for cardscan.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A fetched Google Doc as a tree of tabs and bodies
//   - TagMapping: Which tags are attributed to which person
//   - ScanConfig: The explicit configuration for one run
//   - ScanResult: Per-document and aggregate card counts
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
