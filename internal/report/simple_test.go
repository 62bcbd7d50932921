package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/task-tools/taskreport/internal/model"
)

// fixtureReport returns a report matching a small known table:
// three completed rows, two ready, one in progress.
func fixtureReport() *model.Report {
	return &model.Report{
		DatabasePath:  "/app/shared_db/shared.sqlite3",
		GeneratedAt:   time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC),
		Status:        model.StatusComplete,
		ExcerptLength: model.DefaultExcerptLength,
		Tasks: []model.Task{
			{ID: 5, UUID: "aaaa-1111", Prompt: "summarize the quarterly numbers", Status: model.StatusComplete,
				CreatedAt: "2024-01-15T10:00:00Z", UpdatedAt: "2024-01-15T10:30:00Z", Order: 2},
			{ID: 2, UUID: "bbbb-2222", Prompt: "draft the release notes", Status: model.StatusComplete,
				CreatedAt: "2024-01-10T09:00:00Z", UpdatedAt: "2024-01-14T18:45:00Z", Order: 1},
			{ID: 7, UUID: "cccc-3333", Prompt: "triage open bug reports", Status: model.StatusComplete,
				CreatedAt: "", UpdatedAt: "", Order: 3},
		},
		Summary: model.StatusSummary{Ready: 2, Complete: 3, InProgress: 1, Total: 6},
	}
}

// TestSimpleWriter tests the human-readable text report.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("contains listing and summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		n, err := w.Write(fixtureReport())
		if err != nil {
			t.Fatalf("failed to write report: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("Write() returned %d, buffer has %d bytes", n, buf.Len())
		}

		out := buf.String()
		for _, want := range []string{
			"COMPLETED TASKS QUERY RESULTS",
			"Total Completed Tasks: 3",
			"Task #1:",
			"Task #3:",
			"  ID: 5",
			"  UUID: aaaa-1111",
			"  Status: 1 (Complete)",
			"  Completed: January 15, 2024 at 10:30:00",
			"  Created: N/A",
			"  Order: 2",
			"  Prompt: summarize the quarterly numbers",
			"Task Status Summary:",
			"  - Ready (status 0): 2 tasks",
			"  - Complete (status 1): 3 tasks",
			"  - In Progress (status 4): 1 tasks",
			"  - Total: 6 tasks",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("report missing %q\noutput:\n%s", want, out)
			}
		}
	})

	t.Run("entries appear once per task in order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		if _, err := w.Write(fixtureReport()); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}

		out := buf.String()
		if got := strings.Count(out, "Task #"); got != 3 {
			t.Errorf("expected 3 task entries, found %d", got)
		}
		if strings.Index(out, "ID: 5") > strings.Index(out, "ID: 2") {
			t.Error("tasks are not listed in report order")
		}
	})

	t.Run("empty listing prints placeholder", func(t *testing.T) {
		t.Parallel()

		r := fixtureReport()
		r.Tasks = nil

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(r); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "Total Completed Tasks: 0") {
			t.Error("expected zero count for empty listing")
		}
		if !strings.Contains(out, "No completed tasks found in the database.") {
			t.Error("expected empty-listing placeholder")
		}
	})

	t.Run("long prompts are truncated with marker", func(t *testing.T) {
		t.Parallel()

		r := fixtureReport()
		r.Tasks = []model.Task{{
			ID:     1,
			Status: model.StatusComplete,
			Prompt: strings.Repeat("x", model.DefaultExcerptLength+100),
		}}

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(r); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}

		out := buf.String()
		excerpt := strings.Repeat("x", model.DefaultExcerptLength) + model.ExcerptMarker
		if !strings.Contains(out, excerpt) {
			t.Error("expected truncated prompt with marker")
		}
		if strings.Contains(out, strings.Repeat("x", model.DefaultExcerptLength+1)) {
			t.Error("prompt was not truncated at the excerpt length")
		}
	})

	t.Run("non-default status filter changes headings only", func(t *testing.T) {
		t.Parallel()

		r := fixtureReport()
		r.Status = model.StatusReady
		r.Tasks = []model.Task{{ID: 4, UUID: "dddd-4444", Prompt: "waiting", Status: model.StatusReady}}

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(r); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "READY TASKS QUERY RESULTS") {
			t.Error("expected ready banner")
		}
		if !strings.Contains(out, "Total Ready Tasks: 1") {
			t.Error("expected ready count line")
		}
		if !strings.Contains(out, "  Status: 0 (Ready)") {
			t.Error("expected ready status label on entry")
		}
		if !strings.Contains(out, "  Updated: N/A") {
			t.Error("expected Updated label for non-complete status")
		}
		// The summary block never changes with the filter.
		if !strings.Contains(out, "Task Status Summary:") {
			t.Error("expected summary block")
		}
	})
}

// TestMultiWriter tests fan-out to several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	mw := NewMultiWriter(NewSimpleWriter(&a), NewSimpleWriter(&b))

	if _, err := mw.Write(fixtureReport()); err != nil {
		t.Fatalf("failed to write report: %v", err)
	}

	if a.String() != b.String() {
		t.Error("multi-writer outputs differ")
	}
	if a.Len() == 0 {
		t.Error("multi-writer produced no output")
	}
}
