package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/task-tools/taskreport/internal/model"
)

// TestJSONWriter tests the JSON report format.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact output decodes back to the report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.Write(fixtureReport()); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}

		var decoded model.Report
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode JSON output: %v", err)
		}

		if len(decoded.Tasks) != 3 {
			t.Errorf("decoded %d tasks, want 3", len(decoded.Tasks))
		}
		want := model.StatusSummary{Ready: 2, Complete: 3, InProgress: 1, Total: 6}
		if decoded.Summary != want {
			t.Errorf("decoded summary %+v, want %+v", decoded.Summary, want)
		}
		if decoded.Status != model.StatusComplete {
			t.Errorf("decoded status %d, want %d", decoded.Status, model.StatusComplete)
		}
	})

	t.Run("pretty print indents output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())

		if _, err := w.Write(fixtureReport()); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}

		if !strings.Contains(buf.String(), "\n  \"") {
			t.Error("expected indented JSON output")
		}
	})

	t.Run("raw timestamps are preserved", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(fixtureReport()); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}

		// JSON output is for machines: timestamps stay as stored, not
		// reformatted for display.
		if !strings.Contains(buf.String(), `"2024-01-15T10:30:00Z"`) {
			t.Error("expected raw timestamp string in JSON output")
		}
	})
}

// TestMarkdownWriter tests the markdown report format.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("contains summary and listing tables", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(fixtureReport()); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"# Task Report",
			"## Task Status Summary",
			"## Completed Tasks (3)",
			"Ready (status 0)",
			"`aaaa-1111`",
			"January 15, 2024 at 10:30:00",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("markdown report missing %q", want)
			}
		}
	})

	t.Run("prompt pipes are escaped in table cells", func(t *testing.T) {
		t.Parallel()

		r := fixtureReport()
		r.Tasks = []model.Task{{ID: 1, Status: model.StatusComplete, Prompt: "a | b\nc"}}

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(r); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}

		if !strings.Contains(buf.String(), `a \| b c`) {
			t.Error("expected escaped pipe and flattened newline in table cell")
		}
	})

	t.Run("empty listing prints placeholder", func(t *testing.T) {
		t.Parallel()

		r := fixtureReport()
		r.Tasks = nil

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(r); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}

		if !strings.Contains(buf.String(), "No matching tasks found in the database.") {
			t.Error("expected empty-listing placeholder")
		}
	})
}
