package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrEmptyDatabasePath is returned when no database path is configured.
	// This can only happen when the config file or --db flag sets it to
	// an empty string; the default is never empty.
	ErrEmptyDatabasePath = errors.New("empty database path: set --db or the database key in the config file")

	// ErrInvalidExcerptLength is returned when the excerpt length is not
	// positive. A zero or negative limit would make every listing empty.
	ErrInvalidExcerptLength = errors.New("invalid excerpt length: must be positive")

	// ErrInvalidStatus is returned when the status filter is negative.
	// The owning system only assigns non-negative status values.
	ErrInvalidStatus = errors.New("invalid status filter: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
