package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/task-tools/taskreport/internal/model"
)

// Default configuration values.
const (
	// DefaultDatabasePath is where the owning system keeps the shared
	// store. The path is fixed by that system's deployment, not by us;
	// it can be overridden with the --db flag or the config file for
	// local runs and tests.
	DefaultDatabasePath = "/app/shared_db/shared.sqlite3"

	// DefaultExcerptLength is how many characters of a prompt the
	// listing shows before truncating. 200 keeps an entry readable in a
	// terminal while still identifying the task.
	DefaultExcerptLength = model.DefaultExcerptLength

	// AppName is the application name used for XDG directory paths.
	AppName = "taskreport"
)

// Config holds all configuration options for taskreport.
// This struct is populated from CLI flags plus an optional config file and
// passed through the application via dependency injection rather than
// global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// DatabasePath is the filesystem path of the external SQLite store.
	// The file must exist; taskreport never creates or writes it.
	DatabasePath string

	// Status is the status value the listing is filtered by.
	// Defaults to complete (1); the summary block is unaffected.
	Status model.Status

	// ExcerptLength is the prompt truncation limit for listings.
	ExcerptLength int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .taskreport in the current
	// directory, the XDG config directory, and then the home directory.
	ConfigFilePath string

	// JSONReport enables JSON report output instead of human-readable text.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable text. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string
}

// NewConfig creates a new Config with default values.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (database path,
// excerpt length, status filter).
func NewConfig() *Config {
	return &Config{
		DatabasePath:  DefaultDatabasePath,
		Status:        model.StatusComplete,
		ExcerptLength: DefaultExcerptLength,
	}
}

// XDGConfigDir returns the XDG config directory for taskreport.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/taskreport
// On macOS: ~/Library/Application Support/taskreport
// On Windows: %APPDATA%\taskreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate once after CLI parsing, before opening the
// database, to fail fast with a clear message. The first error found is
// returned because fixing one often makes others irrelevant.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return ErrEmptyDatabasePath
	}

	if c.ExcerptLength <= 0 {
		return ErrInvalidExcerptLength
	}

	if c.Status < 0 {
		return ErrInvalidStatus
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
