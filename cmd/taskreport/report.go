package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/task-tools/taskreport/internal/config"
	"github.com/task-tools/taskreport/internal/database"
	"github.com/task-tools/taskreport/internal/log"
	"github.com/task-tools/taskreport/internal/model"
	"github.com/task-tools/taskreport/internal/report"
)

// runReportCmd executes the report run.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	// Build config from flags and the optional config file
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling so an interrupted run still
	// closes the database connection
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runReport(ctx, cfg, logger, cmd.OutOrStdout())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// config file. Precedence: explicit flags > config file > defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the config file first so explicit flags can override it.
	// If the user explicitly specified a config file path, error if it
	// is not found; otherwise silently run on defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("db") {
		cfg.DatabasePath, err = cmd.Flags().GetString("db")
		if err != nil {
			return nil, err
		}
	}

	status, err := cmd.Flags().GetInt("status")
	if err != nil {
		return nil, err
	}
	cfg.Status = model.Status(status)

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// runReport opens the database, runs the queries, and writes the report.
// The listing and the four counts run sequentially on one connection; the
// connection is closed on every path.
func runReport(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	logger.Info("starting report",
		"database", cfg.DatabasePath,
		"status", int(cfg.Status),
	)

	db, err := database.Open(cfg.DatabasePath, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rep := model.NewReport(db.Path())
	rep.Status = cfg.Status
	rep.ExcerptLength = cfg.ExcerptLength

	if rep.Tasks, err = db.TasksByStatus(ctx, cfg.Status); err != nil {
		return err
	}
	if rep.Summary, err = db.Summary(ctx); err != nil {
		return err
	}

	logger.Debug("queries finished",
		"listed", len(rep.Tasks),
		"total", rep.Summary.Total,
	)

	return outputReport(cfg, rep, stdout)
}

// outputReport writes the report in the requested format.
func outputReport(cfg *config.Config, rep *model.Report, stdout io.Writer) error {
	// Determine output destination
	output := stdout
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewSimpleWriter(output)
	}

	if _, err := w.Write(rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
