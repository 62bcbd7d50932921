package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/task-tools/taskreport/internal/model"
)

// bannerWidth is the width of the separator lines in the text report.
const bannerWidth = 80

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display and mirrors the layout the
// report has always had, so downstream greps keep working.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
type SimpleWriter struct {
	baseWriter

	// printer renders counts with locale-aware digit grouping, so a
	// six-figure backlog reads as 123,456 rather than 123456.
	printer *message.Printer
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
		printer:    message.NewPrinter(language.English),
	}
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeListing(&sb, report)
	w.writeSummary(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the banner and the filtered-count line.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("=", bannerWidth))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s TASKS QUERY RESULTS\n", strings.ToUpper(statusTitle(report.Status))))
	sb.WriteString(strings.Repeat("=", bannerWidth))
	sb.WriteString("\n\n")

	sb.WriteString(w.printer.Sprintf("Total %s Tasks: %d\n\n", statusTitle(report.Status), len(report.Tasks)))
}

// writeListing writes the numbered task entries.
func (w *SimpleWriter) writeListing(sb *strings.Builder, report *model.Report) {
	if len(report.Tasks) == 0 {
		if report.Status == model.StatusComplete {
			sb.WriteString("No completed tasks found in the database.\n")
		} else {
			sb.WriteString(fmt.Sprintf("No tasks with status %d found in the database.\n", int(report.Status)))
		}
		return
	}

	sb.WriteString(fmt.Sprintf("%s Task Details:\n", statusTitle(report.Status)))
	sb.WriteString(strings.Repeat("-", bannerWidth))
	sb.WriteString("\n")

	for idx, task := range report.Tasks {
		sb.WriteString(fmt.Sprintf("\nTask #%d:\n", idx+1))
		sb.WriteString(fmt.Sprintf("  ID: %d\n", task.ID))
		sb.WriteString(fmt.Sprintf("  UUID: %s\n", task.UUID))
		sb.WriteString(fmt.Sprintf("  Status: %s\n", task.Status))
		sb.WriteString(fmt.Sprintf("  Created: %s\n", FormatTimestamp(task.CreatedAt)))
		sb.WriteString(fmt.Sprintf("  %s: %s\n", updatedLabel(report.Status), FormatTimestamp(task.UpdatedAt)))
		sb.WriteString(fmt.Sprintf("  Order: %d\n", task.Order))
		sb.WriteString(fmt.Sprintf("  Prompt: %s\n", task.PromptExcerpt(report.ExcerptLength)))
	}
}

// writeSummary writes the per-status count block.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", bannerWidth))
	sb.WriteString("\n")
	sb.WriteString("Task Status Summary:\n")
	sb.WriteString(w.printer.Sprintf("  - Ready (status 0): %d tasks\n", report.Summary.Ready))
	sb.WriteString(w.printer.Sprintf("  - Complete (status 1): %d tasks\n", report.Summary.Complete))
	sb.WriteString(w.printer.Sprintf("  - In Progress (status 4): %d tasks\n", report.Summary.InProgress))
	sb.WriteString(w.printer.Sprintf("  - Total: %d tasks\n", report.Summary.Total))
	sb.WriteString(strings.Repeat("=", bannerWidth))
	sb.WriteString("\n")
}

// statusTitle returns the status label used in headings, e.g. "Completed"
// for the complete status to match the report's historical wording.
func statusTitle(status model.Status) string {
	if status == model.StatusComplete {
		return "Completed"
	}
	return status.Label()
}

// updatedLabel names the updatedat field in a listing entry. For completed
// tasks the last update is the completion time.
func updatedLabel(status model.Status) string {
	if status == model.StatusComplete {
		return "Completed"
	}
	return "Updated"
}
