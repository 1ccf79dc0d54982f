// Package report renders scan results for humans and tools.
//
// Three formats are supported:
//   - text: per-person totals followed by one line per document
//   - json: the full result with run metadata and the leaderboard
//   - markdown: leaderboard and per-document tables
package report
