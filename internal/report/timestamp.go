package report

import "time"

// displayLayout renders timestamps as "January 15, 2024 at 10:30:00".
const displayLayout = "January 02, 2006 at 15:04:05"

// timestampFormats contains the timestamp formats the owning system has
// been observed to store. The order matters: more specific formats
// should come first.
var timestampFormats = []string{
	time.RFC3339Nano,             // ISO 8601 with offset or Z, optional fraction
	"2006-01-02T15:04:05",        // ISO 8601 without timezone
	"2006-01-02T15:04:05.999999", // ISO 8601 with fraction, no timezone
	"2006-01-02 15:04:05Z07:00",  // space separator with offset
	"2006-01-02 15:04:05",        // space separator
	"2006-01-02 15:04:05.999999", // space separator with fraction
	"2006-01-02",                 // date only
}

// FormatTimestamp renders a stored timestamp string for display.
// An empty value renders as "N/A". A parseable value renders in
// displayLayout, with a trailing "Z" treated as the UTC offset. Any value
// that fails every format is shown verbatim: the cause of the failure is
// deliberately not distinguished, the raw string is more useful in a
// report than an error.
func FormatTimestamp(s string) string {
	if s == "" {
		return "N/A"
	}

	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t.Format(displayLayout)
		}
	}

	return s
}
