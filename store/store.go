// Package store archives finished runs in SQLite so the gavel CLI can list
// and inspect them after the fact.
//
// The store sits outside the harness core: the driver itself does no I/O.
// Callers build a RunRecord from an Outcome and hand it to SaveRun when
// they want the run kept.
package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/gavel/trace"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound is returned by GetRun when no run has the given ID.
var ErrNotFound = errors.New("run not found")

// Run verdicts as stored in the archive.
const (
	VerdictPassed = "passed"
	VerdictFailed = "failed"
)

// RunRecord is one archived run: the outcome's terminal facts plus the
// recorded trace, with the harness's generic event type already rendered
// away into payload strings.
type RunRecord struct {
	ID        string
	Name      string
	Verdict   string // VerdictPassed or VerdictFailed
	Fault     string // rendered fault diagnostic; empty on a pass
	Turns     int
	CreatedAt time.Time
	Events    []trace.Event
}

// Store provides durable storage for archived runs.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite archive at the given path.
// Applies required pragmas and the schema automatically; safe to call on an
// existing archive.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying sql.DB for direct queries.
// Use with caution - prefer the Store methods when available.
func (s *Store) DB() *sql.DB {
	return s.db
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// validate checks a record before it is written.
func (r *RunRecord) validate() error {
	if r.ID == "" {
		return fmt.Errorf("run id is required")
	}
	if r.Verdict != VerdictPassed && r.Verdict != VerdictFailed {
		return fmt.Errorf("unknown verdict %q", r.Verdict)
	}
	if r.Turns < 0 {
		return fmt.Errorf("negative turn count %d", r.Turns)
	}
	return nil
}
