package store

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DB wraps a pure-Go embedded SQLite connection holding planning jobs.
type DB struct {
	conn   *sql.DB
	closed atomic.Bool
}

// Open creates or opens the SQLite database at path and ensures its
// schema exists. A single writer connection is enforced, matching
// SQLite's one-writer model.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	Logger().Info("store opened", "path", path)

	return db, nil
}

// Close closes the underlying connection. Subsequent calls are no-ops.
func (db *DB) Close() error {
	if !db.closed.CompareAndSwap(false, true) {
		return nil
	}

	return db.conn.Close()
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			input_json TEXT NOT NULL,
			output_json TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`)

	return err
}

// Save inserts a new job and returns its generated public id.
func (db *DB) Save(name string, input, output []byte, status Status, jobErr string) (string, error) {
	if db.closed.Load() {
		return "", ErrClosed
	}

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := db.conn.Exec(
		`INSERT INTO jobs (id, name, input_json, output_json, status, error, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, name, input, output, string(status), jobErr, now, now,
	)
	if err != nil {
		return "", fmt.Errorf("store: save job: %w", err)
	}
	Logger().Debug("job saved", "id", id, "name", name, "status", status)

	return id, nil
}

// Load retrieves a job by its public id. Returns ErrNotFound if absent.
func (db *DB) Load(id string) (*Job, error) {
	if db.closed.Load() {
		return nil, ErrClosed
	}

	row := db.conn.QueryRow(
		`SELECT id, name, input_json, output_json, status, error, created_at, updated_at
		 FROM jobs WHERE id = ?`, id,
	)

	var j Job
	var status string
	if err := row.Scan(&j.ID, &j.Name, &j.Input, &j.Output, &status, &j.Error, &j.CreatedAt, &j.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: load job: %w", err)
	}
	j.Status = Status(status)

	return &j, nil
}

// DeleteOlderThan removes jobs whose created_at is before cutoff and
// returns the number of rows removed. Used by the retention package's
// scheduled pruning job.
func (db *DB) DeleteOlderThan(cutoff time.Time) (int64, error) {
	if db.closed.Load() {
		return 0, ErrClosed
	}

	res, err := db.conn.Exec(`DELETE FROM jobs WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("store: prune jobs: %w", err)
	}

	return res.RowsAffected()
}
