// Package mcp provides an MCP (Model Context Protocol) server adapter for cardscan.
// It lets AI assistants count tags in text and run document or folder scans.
package mcp

import "errors"

// ErrMissingScanService is returned when the scan service is not provided.
var ErrMissingScanService = errors.New("mcp: scan service is required")
