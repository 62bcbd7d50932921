package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/task-tools/taskreport/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeListing(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Task Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Database", "`" + report.DatabasePath + "`"},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Status Filter", report.Status.String()},
		},
	})
	md.PlainText("")
}

// writeSummary writes the per-status count table.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	md.H2("Task Status Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Status", "Count"},
		Rows: [][]string{
			{"Ready (status 0)", strconv.Itoa(report.Summary.Ready)},
			{"Complete (status 1)", strconv.Itoa(report.Summary.Complete)},
			{"In Progress (status 4)", strconv.Itoa(report.Summary.InProgress)},
			{"Total", strconv.Itoa(report.Summary.Total)},
		},
	})
	md.PlainText("")
}

// writeListing writes the task entries as a table.
func (w *MarkdownWriter) writeListing(md *markdown.Markdown, report *model.Report) {
	md.H2(statusTitle(report.Status) + " Tasks (" + strconv.Itoa(len(report.Tasks)) + ")")
	md.PlainText("")

	if len(report.Tasks) == 0 {
		md.PlainText("No matching tasks found in the database.")
		return
	}

	rows := make([][]string, 0, len(report.Tasks))
	for _, task := range report.Tasks {
		rows = append(rows, []string{
			strconv.FormatInt(task.ID, 10),
			"`" + task.UUID + "`",
			FormatTimestamp(task.CreatedAt),
			FormatTimestamp(task.UpdatedAt),
			strconv.FormatInt(task.Order, 10),
			tableCell(task.PromptExcerpt(report.ExcerptLength)),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"ID", "UUID", "Created", updatedLabel(report.Status), "Order", "Prompt"},
		Rows:   rows,
	})
}

// tableCell makes arbitrary prompt text safe inside a markdown table cell.
func tableCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
