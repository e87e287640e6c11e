// SPDX-License-Identifier: EPL-2.0

// Package store persists finalized analysis reports to SQLite so
// earlier runs can be looked up by content hash.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/sumingyd/yydb-analyzer/analysis"
)

var ErrNotFound = fmt.Errorf("report not found")

// History is a SQLite-backed report archive.
type History struct {
	db *sql.DB
}

// Open creates a connection to the database at path and runs the
// schema migration.
func Open(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	history := &History{db: db}
	if err := history.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return history, nil
}

// Close releases the database connection.
func (h *History) Close() error {
	return h.db.Close()
}

// Save inserts the report.  Features and breakdown are stored as JSON
// documents, the scalar columns exist for querying.
func (h *History) Save(report *analysis.Report) error {
	features, err := json.Marshal(report.Features)
	if err != nil {
		return fmt.Errorf("failed to encode features: %w", err)
	}
	breakdown, err := json.Marshal(report.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to encode breakdown: %w", err)
	}

	_, err = h.db.Exec(`
		INSERT INTO reports (id, path, file_name, size_bytes, hash, duration_seconds,
			sample_rate, features, breakdown, composite, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		report.ID.String(), report.Path, report.FileName, report.SizeBytes,
		report.Hash, report.DurationSeconds, report.SampleRate,
		string(features), string(breakdown), report.Composite,
		report.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// FindByHash returns the most recent report for a file with the given
// content hash, or ErrNotFound.
func (h *History) FindByHash(hash string) (*analysis.Report, error) {
	row := h.db.QueryRow(`
		SELECT id, path, file_name, size_bytes, hash, duration_seconds,
			sample_rate, features, breakdown, composite, created_at
		FROM reports
		WHERE hash = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, hash)

	report, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return report, nil
}

// Recent returns up to limit reports, newest first.
func (h *History) Recent(limit int) ([]*analysis.Report, error) {
	if limit < 1 {
		limit = 10
	}

	rows, err := h.db.Query(`
		SELECT id, path, file_name, size_bytes, hash, duration_seconds,
			sample_rate, features, breakdown, composite, created_at
		FROM reports
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load reports: %w", err)
	}
	defer rows.Close()

	var reports []*analysis.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (*analysis.Report, error) {
	var (
		report    analysis.Report
		id        string
		features  string
		breakdown string
		createdAt string
	)
	err := row.Scan(&id, &report.Path, &report.FileName, &report.SizeBytes,
		&report.Hash, &report.DurationSeconds, &report.SampleRate,
		&features, &breakdown, &report.Composite, &createdAt)
	if err != nil {
		return nil, err
	}

	report.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("bad report id %q: %w", id, err)
	}
	if err := json.Unmarshal([]byte(features), &report.Features); err != nil {
		return nil, fmt.Errorf("bad features document: %w", err)
	}
	if err := json.Unmarshal([]byte(breakdown), &report.Breakdown); err != nil {
		return nil, fmt.Errorf("bad breakdown document: %w", err)
	}
	report.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("bad report timestamp %q: %w", createdAt, err)
	}
	return &report, nil
}

func (h *History) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		file_name TEXT NOT NULL,
		size_bytes INTEGER NOT NULL,
		hash TEXT NOT NULL,
		duration_seconds REAL NOT NULL,
		sample_rate INTEGER NOT NULL,
		features TEXT NOT NULL,
		breakdown TEXT NOT NULL,
		composite INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reports_hash ON reports(hash);
	`
	if _, err := h.db.Exec(query); err != nil {
		return err
	}
	return nil
}
