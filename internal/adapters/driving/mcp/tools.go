package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/cardscan/internal/connectors/google/drive"
	"github.com/custodia-labs/cardscan/internal/core/domain"
	"github.com/custodia-labs/cardscan/internal/core/services"
	"github.com/custodia-labs/cardscan/internal/normalisers"
)

// CountTagsInput is the input schema for the count_tags tool.
type CountTagsInput struct {
	Text     string   `json:"text" jsonschema:"the text to count tags in"`
	MIMEType string   `json:"mime_type,omitempty" jsonschema:"format of text: text/plain (default), text/markdown or text/html"`
	Mapping  string   `json:"mapping,omitempty" jsonschema:"person to tags mapping as person:tag1,tag2|person2:tag3 (defaults to the configured mapping)"`
	Names    []string `json:"names,omitempty" jsonschema:"names that are each their own tag, used when no mapping is given"`
}

// CountTagsOutput is the output schema for the count_tags tool.
type CountTagsOutput struct {
	Counts      map[string]int      `json:"counts"`
	Total       int                 `json:"total"`
	Leaderboard []LeaderboardOutput `json:"leaderboard"`
}

// ScanInput is the input schema for the scan_documents tool.
type ScanInput struct {
	DocumentID string   `json:"document_id,omitempty" jsonschema:"a Google Docs document ID to scan"`
	FolderID   string   `json:"folder_id,omitempty" jsonschema:"a Google Drive folder ID to scan recursively (wins over document_id)"`
	Mapping    string   `json:"mapping,omitempty" jsonschema:"person to tags mapping as person:tag1,tag2|person2:tag3 (defaults to the configured mapping)"`
	Names      []string `json:"names,omitempty" jsonschema:"names that are each their own tag, used when no mapping is given"`
}

// ScanOutput is the output schema for the scan_documents tool.
type ScanOutput struct {
	RunID       string              `json:"run_id"`
	Mode        string              `json:"mode"`
	Target      string              `json:"target"`
	Totals      map[string]int      `json:"totals"`
	Total       int                 `json:"total"`
	Leaderboard []LeaderboardOutput `json:"leaderboard"`
	Documents   []DocumentOutput    `json:"documents"`
}

// LeaderboardOutput is one ranked person.
type LeaderboardOutput struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	CardsCut int    `json:"cardsCut"`
}

// DocumentOutput holds the counts of one scanned document.
type DocumentOutput struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	URL    string         `json:"url"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "count_tags",
		Description: "Count cards (//tag or /tag markers) per person in a piece of text",
	}, s.handleCountTags)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "scan_documents",
		Description: "Scan a Google Doc or a Drive folder and count cards per person",
	}, s.handleScan)
}

// handleCountTags handles the count_tags tool invocation.
func (s *Server) handleCountTags(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CountTagsInput,
) (*mcp.CallToolResult, CountTagsOutput, error) {
	mapping, err := s.resolveMapping(input.Mapping, input.Names)
	if err != nil {
		return nil, CountTagsOutput{}, err
	}

	text := input.Text
	if input.MIMEType != "" {
		doc, err := normalisers.Default().Normalise(ctx, &domain.RawDocument{
			Name:     "input",
			MIMEType: input.MIMEType,
			Content:  []byte(input.Text),
		})
		if err != nil {
			return nil, CountTagsOutput{}, err
		}
		text = services.ExtractAllText(doc)
	}

	counts := services.CountMapping(text, mapping)
	output := CountTagsOutput{
		Counts:      counts,
		Leaderboard: leaderboardOutput(domain.Leaderboard(mapping.People(), counts)),
	}
	for _, n := range counts {
		output.Total += n
	}
	return nil, output, nil
}

// handleScan handles the scan_documents tool invocation.
func (s *Server) handleScan(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScanInput,
) (*mcp.CallToolResult, ScanOutput, error) {
	mapping, err := s.resolveMapping(input.Mapping, input.Names)
	if err != nil {
		return nil, ScanOutput{}, err
	}

	cfg := s.ports.Defaults
	cfg.Mapping = mapping
	switch {
	case input.FolderID != "":
		cfg.FolderID = input.FolderID
	case input.DocumentID != "":
		cfg.FolderID = ""
		cfg.DocumentID = input.DocumentID
	}

	result, err := s.ports.Scan.Scan(ctx, cfg)
	if err != nil {
		return nil, ScanOutput{}, err
	}

	output := ScanOutput{
		RunID:       result.RunID,
		Mode:        string(result.Mode),
		Target:      result.Target,
		Totals:      result.Totals,
		Total:       result.Total(),
		Leaderboard: leaderboardOutput(result.Leaderboard()),
		Documents:   make([]DocumentOutput, len(result.Documents)),
	}
	for i, d := range result.Documents {
		output.Documents[i] = documentOutput(d)
	}
	return nil, output, nil
}

// resolveMapping picks the mapping string, then the names, then the
// configured mapping.
func (s *Server) resolveMapping(mapping string, names []string) (domain.TagMapping, error) {
	var (
		m   domain.TagMapping
		err error
	)
	switch {
	case mapping != "":
		m, err = domain.ParseTagMapping(mapping)
	case len(names) > 0:
		m, err = domain.MappingFromNames(names)
	default:
		m = s.ports.Defaults.Mapping
	}
	if err != nil {
		return nil, err
	}
	if m.IsEmpty() {
		return nil, domain.ErrNoTagMapping
	}
	return m, nil
}

func leaderboardOutput(entries []domain.LeaderboardEntry) []LeaderboardOutput {
	out := make([]LeaderboardOutput, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardOutput{Rank: e.Rank, Name: e.Person, Slug: e.Slug, CardsCut: e.Cards}
	}
	return out
}

func documentOutput(d domain.DocumentResult) DocumentOutput {
	return DocumentOutput{
		ID:     d.Ref.ID,
		Name:   d.Ref.DisplayName(),
		URL:    drive.ResolveWebURL(d.Ref.ID, drive.MimeTypeGoogleDoc),
		Counts: d.Counts,
		Total:  d.Total(),
	}
}
