package db

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides access to the export history database.
type Store struct {
	db *sql.DB
}

// DefaultDBPath returns the database path under the given data dir.
func DefaultDBPath(dataDir string) string {
	return filepath.Join(dataDir, "exports.sqlite")
}

// Open opens the database, creating the schema if needed.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS export_runs (
			id TEXT PRIMARY KEY,
			recordingKey TEXT NOT NULL,
			foot TEXT NOT NULL,
			wholeSegments INTEGER NOT NULL,
			halfSegments INTEGER NOT NULL,
			skippedSlices INTEGER NOT NULL,
			createdAt REAL NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordExport inserts one run row per exported foot.
func (s *Store) RecordExport(runs []ExportRun) error {
	for _, r := range runs {
		_, err := s.db.Exec(`
			INSERT INTO export_runs (id, recordingKey, foot, wholeSegments, halfSegments, skippedSlices, createdAt)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, r.ID, r.RecordingKey, r.Foot, r.WholeSegments, r.HalfSegments, r.SkippedSlices, unixFromTime(r.CreatedAt))
		if err != nil {
			return fmt.Errorf("insert export run: %w", err)
		}
	}
	return nil
}

// LastExport returns the most recent run for a recording, or nil if the
// recording was never exported.
func (s *Store) LastExport(recordingKey string) (*ExportRun, error) {
	row := s.db.QueryRow(`
		SELECT id, recordingKey, foot, wholeSegments, halfSegments, skippedSlices, createdAt
		FROM export_runs
		WHERE recordingKey = ?
		ORDER BY createdAt DESC
		LIMIT 1
	`, recordingKey)

	var r ExportRun
	var createdAt float64
	if err := row.Scan(&r.ID, &r.RecordingKey, &r.Foot, &r.WholeSegments,
		&r.HalfSegments, &r.SkippedSlices, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan export run: %w", err)
	}
	r.CreatedAt = timeFromUnix(createdAt)
	return &r, nil
}

// RunsForRecording returns all runs for a recording, newest first.
func (s *Store) RunsForRecording(recordingKey string) ([]ExportRun, error) {
	rows, err := s.db.Query(`
		SELECT id, recordingKey, foot, wholeSegments, halfSegments, skippedSlices, createdAt
		FROM export_runs
		WHERE recordingKey = ?
		ORDER BY createdAt DESC
	`, recordingKey)
	if err != nil {
		return nil, fmt.Errorf("query export runs: %w", err)
	}
	defer rows.Close()

	var runs []ExportRun
	for rows.Next() {
		var r ExportRun
		var createdAt float64
		if err := rows.Scan(&r.ID, &r.RecordingKey, &r.Foot, &r.WholeSegments,
			&r.HalfSegments, &r.SkippedSlices, &createdAt); err != nil {
			return nil, fmt.Errorf("scan export run: %w", err)
		}
		r.CreatedAt = timeFromUnix(createdAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func timeFromUnix(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

func unixFromTime(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
