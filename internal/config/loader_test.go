package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfigFile tests yaml config file loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads database path and excerpt length", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".taskreport")
		content := "database: /tmp/test.sqlite3\nexcerpt_length: 120\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("failed to load config file: %v", err)
		}

		if cf.Database != "/tmp/test.sqlite3" {
			t.Errorf("Database = %q, want %q", cf.Database, "/tmp/test.sqlite3")
		}
		if cf.ExcerptLength != 120 {
			t.Errorf("ExcerptLength = %d, want 120", cf.ExcerptLength)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed yaml returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".taskreport")
		if err := os.WriteFile(path, []byte("database: [unterminated"), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}

// TestFileApply tests overriding config values from a file.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("set keys override defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cf := &File{Database: "/data/tasks.db", ExcerptLength: 80}
		cf.Apply(cfg)

		if cfg.DatabasePath != "/data/tasks.db" {
			t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/tasks.db")
		}
		if cfg.ExcerptLength != 80 {
			t.Errorf("ExcerptLength = %d, want 80", cfg.ExcerptLength)
		}
	})

	t.Run("unset keys keep defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{}).Apply(cfg)

		if cfg.DatabasePath != DefaultDatabasePath {
			t.Errorf("DatabasePath = %q, want default", cfg.DatabasePath)
		}
		if cfg.ExcerptLength != DefaultExcerptLength {
			t.Errorf("ExcerptLength = %d, want default", cfg.ExcerptLength)
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		var cf *File
		cf.Apply(cfg)

		if cfg.DatabasePath != DefaultDatabasePath {
			t.Error("nil file modified the config")
		}
	})
}

// TestFindConfigFile tests explicit-path config discovery.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("database: /x\n"), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("FindConfigFile() = %q, want empty", got)
		}
	})
}
