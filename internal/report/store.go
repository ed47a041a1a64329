// SPDX-License-Identifier: MIT

package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/thanhbinhnd2002/multi-agent-streamlit/diffusion"
)

// schema is executed on every open; IF NOT EXISTS keeps it idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS support_results (
    file          TEXT    NOT NULL,
    alpha         TEXT    NOT NULL,
    position      INTEGER NOT NULL,
    total_support INTEGER NOT NULL,
    epsilon       REAL    NOT NULL,
    delta         REAL    NOT NULL,
    max_iter      INTEGER NOT NULL,
    tol           REAL    NOT NULL,
    anchors       INTEGER NOT NULL,
    created_at    TEXT    NOT NULL,
    PRIMARY KEY (file, alpha, epsilon, delta, max_iter, tol, anchors)
);
`

// Store keeps support results in a local SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// OpenStore opens (or creates) the database at path and ensures the schema.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("report: open database: %w", err)
	}

	// SQLite has a single writer; batch workers share this one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("report: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("report: create schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Save records rows for file under p in one transaction. A row with the same
// file, alpha and parameters replaces the earlier one.
func (s *Store) Save(ctx context.Context, file string, p diffusion.Params, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("report: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	const q = `
		INSERT OR REPLACE INTO support_results
			(file, alpha, position, total_support, epsilon, delta, max_iter, tol, anchors, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return fmt.Errorf("report: prepare insert: %w", err)
	}
	defer stmt.Close()

	created := s.now().UTC().Format(time.RFC3339)
	for i, r := range rows {
		if _, err := stmt.ExecContext(ctx, file, r.Alpha, i, r.TotalSupport,
			p.Epsilon, p.Delta, p.MaxIter, p.Tol, p.Anchors, created); err != nil {
			return fmt.Errorf("report: insert %s/%s: %w", file, r.Alpha, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("report: commit: %w", err)
	}

	return nil
}

// Results returns the rows stored for file under p, in the order they were saved.
func (s *Store) Results(ctx context.Context, file string, p diffusion.Params) ([]Row, error) {
	const q = `
		SELECT alpha, total_support FROM support_results
		WHERE file = ? AND epsilon = ? AND delta = ? AND max_iter = ? AND tol = ? AND anchors = ?
		ORDER BY position`
	rs, err := s.db.QueryContext(ctx, q, file, p.Epsilon, p.Delta, p.MaxIter, p.Tol, p.Anchors)
	if err != nil {
		return nil, fmt.Errorf("report: query %s: %w", file, err)
	}
	defer rs.Close()

	var rows []Row
	for rs.Next() {
		var r Row
		if err := rs.Scan(&r.Alpha, &r.TotalSupport); err != nil {
			return nil, fmt.Errorf("report: scan: %w", err)
		}
		rows = append(rows, r)
	}

	return rows, rs.Err()
}

// Files lists the distinct input files with stored results, sorted by name.
func (s *Store) Files(ctx context.Context) ([]string, error) {
	rs, err := s.db.QueryContext(ctx, "SELECT DISTINCT file FROM support_results ORDER BY file")
	if err != nil {
		return nil, fmt.Errorf("report: list files: %w", err)
	}
	defer rs.Close()

	var files []string
	for rs.Next() {
		var f string
		if err := rs.Scan(&f); err != nil {
			return nil, fmt.Errorf("report: scan: %w", err)
		}
		files = append(files, f)
	}

	return files, rs.Err()
}
