package model

// Task is a single row of the external tasks table.
// The table is owned and mutated by a different system; taskreport treats
// every field as read-only truth and enforces no invariants on it.
type Task struct {
	// ID is the primary identifier and the stable ordering tie-break.
	ID int64 `json:"id"`

	// UUID is the external correlation identifier.
	UUID string `json:"uuid"`

	// Prompt is the arbitrary-length text payload of the task.
	Prompt string `json:"prompt"`

	// Status is the integer status flag (see Status constants).
	Status Status `json:"status"`

	// CreatedAt is the raw creation timestamp string as stored.
	// May be empty; the owning system does not guarantee a format.
	CreatedAt string `json:"createdat"`

	// UpdatedAt is the raw last-update timestamp string as stored.
	// May be empty.
	UpdatedAt string `json:"updatedat"`

	// Order is the external sequencing hint.
	Order int64 `json:"order"`
}

// DefaultExcerptLength is the number of characters of the prompt shown
// in report listings before truncation.
const DefaultExcerptLength = 200

// ExcerptMarker is appended to a prompt excerpt when truncation occurred.
const ExcerptMarker = "..."

// PromptExcerpt returns the prompt limited to max characters, with
// ExcerptMarker appended when the prompt was longer. Characters are
// counted as runes so a multi-byte prompt is never split mid-character.
// A non-positive max falls back to DefaultExcerptLength.
func (t Task) PromptExcerpt(max int) string {
	if max <= 0 {
		max = DefaultExcerptLength
	}
	runes := []rune(t.Prompt)
	if len(runes) <= max {
		return t.Prompt
	}
	return string(runes[:max]) + ExcerptMarker
}
