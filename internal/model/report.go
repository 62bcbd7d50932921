package model

import "time"

// StatusSummary holds the row counts shown in the summary block.
//
// Ready, Complete, and InProgress are independent COUNT queries against
// their status values; Total counts every row. The three named counts need
// not sum to Total because the owning system uses status values this
// report does not classify.
type StatusSummary struct {
	// Ready is the number of rows with status 0.
	Ready int `json:"ready"`

	// Complete is the number of rows with status 1.
	Complete int `json:"complete"`

	// InProgress is the number of rows with status 4.
	InProgress int `json:"in_progress"`

	// Total is the number of rows regardless of status.
	Total int `json:"total"`
}

// Report is the aggregate result of one report run, handed to the
// report writers for output.
type Report struct {
	// DatabasePath is the path of the database the report was run against.
	DatabasePath string `json:"database_path"`

	// GeneratedAt is when the queries were executed.
	GeneratedAt time.Time `json:"generated_at"`

	// Status is the status value the listing was filtered by.
	Status Status `json:"status"`

	// Tasks are the listed rows, in query order (updatedat DESC, id ASC).
	Tasks []Task `json:"tasks"`

	// Summary holds the per-status counts.
	Summary StatusSummary `json:"summary"`

	// ExcerptLength is the prompt truncation limit used by the writers.
	ExcerptLength int `json:"-"`
}

// NewReport creates a Report for the given database path with the
// default status filter and excerpt length.
func NewReport(dbPath string) *Report {
	return &Report{
		DatabasePath:  dbPath,
		GeneratedAt:   time.Now(),
		Status:        StatusComplete,
		ExcerptLength: DefaultExcerptLength,
	}
}
