package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/custodia-labs/cardscan/internal/connectors/google/drive"
	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// MarkdownWriter outputs results in Markdown format.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the run summary, the leaderboard and the per-document table.
func (w *MarkdownWriter) Write(result *domain.ScanResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeLeaderboard(md, result)
	w.writeDocuments(md, result)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *domain.ScanResult) {
	md.H1("Card Scan")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run", "`" + result.RunID + "`"},
			{"Mode", string(result.Mode)},
			{"Target", "`" + result.Target + "`"},
			{"Started", result.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", result.Duration().String()},
			{"Documents", strconv.Itoa(len(result.Documents))},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeLeaderboard(md *markdown.Markdown, result *domain.ScanResult) {
	md.H2("Leaderboard")
	md.PlainText("")

	board := result.Leaderboard()
	rows := make([][]string, len(board))
	for i, e := range board {
		rows[i] = []string{strconv.Itoa(e.Rank), e.Person, strconv.Itoa(e.Cards)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Name", "Cards Cut"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeDocuments(md *markdown.Markdown, result *domain.ScanResult) {
	md.H2("Documents")
	md.PlainText("")

	if len(result.Documents) == 0 {
		md.PlainText("No documents scanned.")
		md.PlainText("")
		return
	}

	header := append([]string{"Document"}, result.People...)
	header = append(header, "Total")

	rows := make([][]string, len(result.Documents))
	for i, d := range result.Documents {
		row := make([]string, 0, len(header))
		row = append(row, markdown.Link(d.Ref.DisplayName(), drive.ResolveWebURL(d.Ref.ID, drive.MimeTypeGoogleDoc)))
		for _, p := range result.People {
			row = append(row, strconv.Itoa(d.Counts[p]))
		}
		row = append(row, strconv.Itoa(d.Total()))
		rows[i] = row
	}

	md.Table(markdown.TableSet{Header: header, Rows: rows})
	md.PlainText("")
}
