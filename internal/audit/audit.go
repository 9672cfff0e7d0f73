package audit

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one executed-command record. Entries are append-only: the trail
// exists for security review and never feeds back into translation.
type Entry struct {
	ID          string
	RunAt       time.Time
	Instruction string
	Command     string
	ExitCode    int
	Confirmed   bool
}

// Log stores the audit trail of executed commands.
type Log interface {
	Record(ctx context.Context, e *Entry) error
	Recent(ctx context.Context, limit int) ([]*Entry, error)
	Close() error
}

type sqliteLog struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS audit_log (
	id TEXT PRIMARY KEY,
	run_at TEXT NOT NULL,
	instruction TEXT NOT NULL,
	command TEXT NOT NULL,
	exit_code INTEGER NOT NULL,
	confirmed INTEGER NOT NULL
)`

// Open opens a SQLite-backed audit log at the given path, creating the
// parent directory and schema as needed. ":memory:" is supported for tests.
func Open(path string) (Log, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating audit directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening audit database: %w", err)
	}
	if path == ":memory:" {
		// A second pooled connection would see its own empty database.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating audit schema: %w", err)
	}

	return &sqliteLog{db: db}, nil
}

func (l *sqliteLog) Record(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.RunAt.IsZero() {
		e.RunAt = time.Now().UTC()
	}

	query := `INSERT INTO audit_log (id, run_at, instruction, command, exit_code, confirmed)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := l.db.ExecContext(ctx, query,
		e.ID,
		e.RunAt.Format(time.RFC3339),
		e.Instruction,
		e.Command,
		e.ExitCode,
		boolToInt(e.Confirmed),
	)
	if err != nil {
		return fmt.Errorf("inserting audit entry: %w", err)
	}
	return nil
}

func (l *sqliteLog) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	query := `SELECT id, run_at, instruction, command, exit_code, confirmed
		FROM audit_log ORDER BY run_at DESC, id LIMIT ?`
	rows, err := l.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var runAt string
		var confirmed int
		if err := rows.Scan(&e.ID, &runAt, &e.Instruction, &e.Command, &e.ExitCode, &confirmed); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}
		t, err := time.Parse(time.RFC3339, runAt)
		if err != nil {
			return nil, fmt.Errorf("parsing audit timestamp: %w", err)
		}
		e.RunAt = t
		e.Confirmed = confirmed != 0
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (l *sqliteLog) Close() error { return l.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
