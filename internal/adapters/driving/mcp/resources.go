package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for cardscan resources.
	uriScheme = "cardscan://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "mapping",
		Name:        "mapping",
		Description: "The configured person to tags mapping",
		MIMEType:    "application/json",
	}, s.handleMappingResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document-counts",
		Description: "Card counts per person for a single document",
		MIMEType:    "application/json",
	}, s.handleDocumentResource)
}

// handleMappingResource returns the configured mapping.
func (s *Server) handleMappingResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type personInfo struct {
		Person string   `json:"person"`
		Tags   []string `json:"tags"`
	}

	mapping := s.ports.Defaults.Mapping
	infos := make([]personInfo, len(mapping))
	for i := range mapping {
		infos[i] = personInfo{Person: mapping[i].Person, Tags: mapping[i].Tags}
	}

	return jsonResource(req.Params.URI, infos)
}

// handleDocumentResource scans one document with the configured mapping.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract documentId from URI: cardscan://documents/{documentId}
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	mapping := s.ports.Defaults.Mapping
	if mapping.IsEmpty() {
		return nil, domain.ErrNoTagMapping
	}

	result, err := s.ports.Scan.ScanDocument(ctx, domain.DocumentRef{ID: docID}, mapping)
	if err != nil {
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	return jsonResource(req.Params.URI, documentOutput(result))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like cardscan://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
