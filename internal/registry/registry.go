// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry persists a record of acquired resources and completed
// datasets in a local SQLite database, so `nuclide-data status` can report
// what has been fetched without re-hashing anything.
package registry

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "datasets.db"

// Resource is one recorded remote fetch.
type Resource struct {
	URL       string
	Checksum  string
	Path      string
	Size      int64
	FetchedAt time.Time
	// Outcome is "downloaded" when bytes moved over the network and
	// "cached" when the checksum gate skipped the fetch.
	Outcome string
}

// Dataset is one completed assembler run.
type Dataset struct {
	Name        string
	CompletedAt time.Time
	Files       int
}

// Store manages the acquisition registry database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the registry database at dataDir/datasets.db,
// creating the schema if needed.
func Open(dataDir string) (*Store, error) {
	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening registry database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating registry schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS resources (
			url TEXT PRIMARY KEY,
			checksum TEXT NOT NULL,
			path TEXT NOT NULL,
			size INTEGER NOT NULL,
			fetched_at TEXT NOT NULL,
			outcome TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS datasets (
			name TEXT PRIMARY KEY,
			completed_at TEXT NOT NULL,
			files INTEGER NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordResource upserts one fetched resource.
func (s *Store) RecordResource(r Resource) error {
	_, err := s.db.Exec(
		`INSERT INTO resources (url, checksum, path, size, fetched_at, outcome)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET
			checksum = excluded.checksum,
			path = excluded.path,
			size = excluded.size,
			fetched_at = excluded.fetched_at,
			outcome = excluded.outcome`,
		r.URL, r.Checksum, r.Path, r.Size, r.FetchedAt.UTC().Format(time.RFC3339), r.Outcome,
	)
	if err != nil {
		return fmt.Errorf("recording resource %s: %w", r.URL, err)
	}
	return nil
}

// RecordDataset upserts one completed dataset run.
func (s *Store) RecordDataset(d Dataset) error {
	_, err := s.db.Exec(
		`INSERT INTO datasets (name, completed_at, files)
		 VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			completed_at = excluded.completed_at,
			files = excluded.files`,
		d.Name, d.CompletedAt.UTC().Format(time.RFC3339), d.Files,
	)
	if err != nil {
		return fmt.Errorf("recording dataset %s: %w", d.Name, err)
	}
	return nil
}

// Resources returns all recorded resources ordered by URL.
func (s *Store) Resources() ([]Resource, error) {
	rows, err := s.db.Query(
		`SELECT url, checksum, path, size, fetched_at, outcome FROM resources ORDER BY url`)
	if err != nil {
		return nil, fmt.Errorf("querying resources: %w", err)
	}
	defer rows.Close()

	var out []Resource
	for rows.Next() {
		var r Resource
		var fetchedAt string
		if err := rows.Scan(&r.URL, &r.Checksum, &r.Path, &r.Size, &fetchedAt, &r.Outcome); err != nil {
			return nil, fmt.Errorf("scanning resource row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, fetchedAt); parseErr == nil {
			r.FetchedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Datasets returns all recorded dataset completions ordered by name.
func (s *Store) Datasets() ([]Dataset, error) {
	rows, err := s.db.Query(
		`SELECT name, completed_at, files FROM datasets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying datasets: %w", err)
	}
	defer rows.Close()

	var out []Dataset
	for rows.Next() {
		var d Dataset
		var completedAt string
		if err := rows.Scan(&d.Name, &completedAt, &d.Files); err != nil {
			return nil, fmt.Errorf("scanning dataset row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, completedAt); parseErr == nil {
			d.CompletedAt = t
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
