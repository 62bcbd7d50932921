// Package main provides the entry point for the taskreport CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/task-tools/taskreport/internal/config"
)

// NewRootCmd creates the root command for taskreport.
// Running the root command with no arguments runs the full report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taskreport",
		Short: "Read-only report over the shared tasks database",
		Long: `taskreport prints a human-readable report over the shared tasks database.

It lists completed tasks (status = 1) ordered by last update, shows each
task's identifiers, timestamps, and a prompt excerpt, and finishes with
per-status counts. The database is opened read-only; taskreport never
creates, migrates, or writes it.

Examples:
  # Run the report against the configured database
  taskreport

  # Report against a local copy of the store
  taskreport --db ./shared.sqlite3

  # List ready tasks instead of completed ones
  taskreport --status 0

  # Machine-readable output
  taskreport --json
  taskreport --markdown -o report.md`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runReportCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Report flags
	cmd.Flags().StringP("db", "d", config.DefaultDatabasePath,
		"Path of the shared SQLite database file")
	cmd.Flags().IntP("status", "s", 1,
		"Status value to list (0=ready, 1=complete, 4=in progress)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .taskreport in current or home directory)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
