package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/task-tools/taskreport/internal/model"
)

// TaskDB provides read-only access to the external tasks database.
//
// Design decision: We wrap database/sql rather than exposing it so every
// caller goes through the same read-only connection settings and the same
// row scanning. The schema is owned elsewhere; there is no createTables
// here on purpose.
type TaskDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures TaskDB behavior.
type Options struct {
	// ReadOnly opens the database with mode=ro, refusing writes at the
	// driver level. The report never writes, so this defaults to true;
	// tests that build fixture databases turn it off.
	ReadOnly bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		ReadOnly: true,
	}
}

// Open opens the tasks database at the specified path.
// The file must already exist: this program does not own the store and
// never creates it, so a missing file is an error, not a fresh database.
func Open(dbPath string, opts Options) (*TaskDB, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("database not found at %s", dbPath)
	} else if err != nil {
		return nil, fmt.Errorf("failed to check database path: %w", err)
	}

	// modernc.org/sqlite DSN: mode=ro refuses writes, mode=rw allows them
	// but still never creates a missing file.
	var dsn string
	if opts.ReadOnly {
		dsn = dbPath + "?mode=ro"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection is all a single report run needs, and it keeps the
	// five queries on the same SQLite snapshot behavior as a sequential
	// script would see.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	// sql.Open defers the actual file open; ping now so a corrupt or
	// unreadable file fails here rather than on the first query.
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &TaskDB{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (tdb *TaskDB) Close() error {
	return tdb.db.Close()
}

// Path returns the path of the open database file.
func (tdb *TaskDB) Path() string {
	return tdb.dbPath
}

// TasksByStatus returns all rows with the given status, ordered by last
// update descending with id ascending as the tie-break. The tie-break
// makes the listing deterministic when timestamps collide or are missing.
//
// The order column is quoted because ORDER is a reserved word in SQLite.
func (tdb *TaskDB) TasksByStatus(ctx context.Context, status model.Status) ([]model.Task, error) {
	query := `
	SELECT id, uuid, prompt, status, createdat, updatedat, "order"
	FROM tasks
	WHERE status = ?
	ORDER BY updatedat DESC, id ASC
	`

	rows, err := tdb.db.QueryContext(ctx, query, int(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var task model.Task
		var uuid, prompt, createdAt, updatedAt sql.NullString
		var order sql.NullInt64

		err := rows.Scan(
			&task.ID,
			&uuid,
			&prompt,
			&task.Status,
			&createdAt,
			&updatedAt,
			&order,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}

		// NULL text columns collapse to the empty string; the report
		// renders missing timestamps as "N/A" downstream.
		task.UUID = uuid.String
		task.Prompt = prompt.String
		task.CreatedAt = createdAt.String
		task.UpdatedAt = updatedAt.String
		task.Order = order.Int64

		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// CountByStatus returns the number of rows with the given status.
func (tdb *TaskDB) CountByStatus(ctx context.Context, status model.Status) (int, error) {
	var count int
	err := tdb.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tasks WHERE status = ?", int(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks with status %d: %w", int(status), err)
	}
	return count, nil
}

// CountAll returns the total number of rows regardless of status.
func (tdb *TaskDB) CountAll(ctx context.Context) (int, error) {
	var count int
	err := tdb.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}

// Summary runs the four count queries and returns the per-status counts.
// The queries are issued sequentially and untransacted, so consistency
// across them is whatever SQLite's default isolation provides; a store
// being written concurrently may yield counts that do not line up.
func (tdb *TaskDB) Summary(ctx context.Context) (model.StatusSummary, error) {
	var summary model.StatusSummary
	var err error

	if summary.Complete, err = tdb.CountByStatus(ctx, model.StatusComplete); err != nil {
		return model.StatusSummary{}, err
	}
	if summary.Ready, err = tdb.CountByStatus(ctx, model.StatusReady); err != nil {
		return model.StatusSummary{}, err
	}
	if summary.InProgress, err = tdb.CountByStatus(ctx, model.StatusInProgress); err != nil {
		return model.StatusSummary{}, err
	}
	if summary.Total, err = tdb.CountAll(ctx); err != nil {
		return model.StatusSummary{}, err
	}

	return summary, nil
}
