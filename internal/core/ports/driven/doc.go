// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentFetcher: Fetches a document with all of its tab content
//   - FolderLister: Lists one page of a folder's children
//   - Normaliser, NormaliserRegistry: Parse local exports for offline counting
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
