// Package duckdb persists analysis results in an append-only DuckDB
// database, so repeated runs over a cohort stay queryable with SQL.
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vibe-mut/internal/analyze"
)

// Store manages a DuckDB connection for storing analysis results.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS analysis_results (
		name VARCHAR,
		dna_mutation VARCHAR,
		dna_index BIGINT,
		protein_mutation VARCHAR,
		wild_protein VARCHAR,
		patient_protein VARCHAR,
		changed_positions VARCHAR,
		wild_orf_length BIGINT,
		patient_orf_length BIGINT,
		analyzed_at TIMESTAMP DEFAULT current_timestamp
	)`)
	return err
}

// InsertResult appends one analysis result under the given pair name.
func (s *Store) InsertResult(name string, r *analyze.Result) error {
	changed := make([]string, len(r.AAChanges))
	for i, c := range r.AAChanges {
		changed[i] = fmt.Sprintf("%c%d%c", c.Wild, c.Pos, c.Patient)
	}

	_, err := s.db.Exec(`INSERT INTO analysis_results
		(name, dna_mutation, dna_index, protein_mutation,
		 wild_protein, patient_protein, changed_positions,
		 wild_orf_length, patient_orf_length)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name,
		r.DNAType.String(),
		r.DNAIndex,
		r.AAType.String(),
		r.WildProtein,
		r.PatientProtein,
		strings.Join(changed, ","),
		len(r.WildORF),
		len(r.PatientORF),
	)
	if err != nil {
		return fmt.Errorf("insert analysis result: %w", err)
	}
	return nil
}

// Count returns the number of stored results.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT count(*) FROM analysis_results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count analysis results: %w", err)
	}
	return n, nil
}
