package model

import "strconv"

// Status represents the integer status flag on a task row.
// The values are defined by the external system that owns the tasks table;
// this program only interprets the three it reports on.
//
// Design decision: We use a typed integer rather than string constants
// because the column is an integer in the database and values outside the
// known set must survive a round trip unchanged.
type Status int

const (
	// StatusReady indicates a task that is queued and waiting to run.
	StatusReady Status = 0

	// StatusComplete indicates a task that finished successfully.
	StatusComplete Status = 1

	// StatusInProgress indicates a task that is currently being worked on.
	// The owning system skips values 2 and 3; they are reserved there.
	StatusInProgress Status = 4
)

// Label returns a human-readable label for the status.
// Values outside the known set are labeled "Unknown" but are still
// reported with their numeric value intact.
func (s Status) Label() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusComplete:
		return "Complete"
	case StatusInProgress:
		return "In Progress"
	default:
		return "Unknown"
	}
}

// String returns the numeric value with its label, e.g. "1 (Complete)".
func (s Status) String() string {
	return strconv.Itoa(int(s)) + " (" + s.Label() + ")"
}
