// Package storage persists extraction runs in SQLite and serves word
// lookups over the accumulated lexicon.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/konstantinosKokos/lassy-tlg-extraction/results"
)

// Store handles SQLite database operations for the lexicon.
type Store struct {
	db *sql.DB
}

// Open opens the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		corpus TEXT NOT NULL,
		workers INTEGER NOT NULL,
		compute_time REAL NOT NULL,
		status TEXT NOT NULL,
		error TEXT
	);

	CREATE TABLE IF NOT EXISTS samples (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		name TEXT NOT NULL,
		status TEXT NOT NULL,
		error TEXT,
		sentence TEXT,
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);

	CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sample_id INTEGER NOT NULL,
		lexicon INTEGER NOT NULL,
		position INTEGER NOT NULL,
		word TEXT NOT NULL,
		type TEXT NOT NULL,
		FOREIGN KEY (sample_id) REFERENCES samples(id)
	);

	CREATE INDEX IF NOT EXISTS idx_samples_run ON samples(run_id);
	CREATE INDEX IF NOT EXISTS idx_entries_sample ON entries(sample_id);
	CREATE INDEX IF NOT EXISTS idx_entries_word ON entries(word);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection for custom queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// SaveExtraction stores a run record in a single transaction. Words are
// stored lowercased, matching the lexicon key convention.
func (s *Store) SaveExtraction(e *results.Extraction) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, timestamp, corpus, workers, compute_time, status, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Metadata.RunID, e.Metadata.Timestamp.UTC(), e.Metadata.Corpus,
		e.Metadata.Workers, e.Metadata.ComputeTime, e.Metadata.Status, e.Metadata.Error,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	insertSample, err := tx.Prepare(
		`INSERT INTO samples (run_id, name, status, error, sentence) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare sample insert: %w", err)
	}
	defer insertSample.Close()

	insertEntry, err := tx.Prepare(
		`INSERT INTO entries (sample_id, lexicon, position, word, type) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare entry insert: %w", err)
	}
	defer insertEntry.Close()

	for _, sample := range e.Samples {
		res, err := insertSample.Exec(
			e.Metadata.RunID, sample.Name, sample.Status, sample.Error, sample.Sentence)
		if err != nil {
			return fmt.Errorf("insert sample %s: %w", sample.Name, err)
		}
		sampleID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert sample %s: %w", sample.Name, err)
		}

		for li, lex := range sample.Lexica {
			for pi, entry := range lex {
				_, err := insertEntry.Exec(
					sampleID, li, pi, strings.ToLower(entry.Word), entry.Type)
				if err != nil {
					return fmt.Errorf("insert entry %s/%s: %w", sample.Name, entry.Word, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// TypeCount is one distinct type assigned to a word with its occurrence
// count across the stored corpus.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// LookupWord returns the distinct types of a word, most frequent first,
// ties broken lexicographically. The lookup is case-insensitive.
func (s *Store) LookupWord(word string) ([]TypeCount, error) {
	rows, err := s.db.Query(
		`SELECT type, COUNT(*) AS n FROM entries WHERE word = ?
		 GROUP BY type ORDER BY n DESC, type`, strings.ToLower(word),
	)
	if err != nil {
		return nil, fmt.Errorf("query word %q: %w", word, err)
	}
	defer rows.Close()

	var counts []TypeCount
	for rows.Next() {
		var tc TypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan word %q: %w", word, err)
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

// WordsWithPrefix returns up to limit distinct stored words starting with
// prefix, in lexicographic order. A non-positive limit returns all.
func (s *Store) WordsWithPrefix(prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = -1
	}
	pattern := likeEscape(strings.ToLower(prefix)) + "%"
	rows, err := s.db.Query(
		`SELECT DISTINCT word FROM entries WHERE word LIKE ? ESCAPE '\'
		 ORDER BY word LIMIT ?`, pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query prefix %q: %w", prefix, err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan prefix %q: %w", prefix, err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func likeEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Stats summarizes the database contents.
type Stats struct {
	Runs    int `json:"runs"`
	Samples int `json:"samples"`
	Entries int `json:"entries"`
	Words   int `json:"words"` // distinct
}

// Stats counts the stored runs, samples, entries and distinct words.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	row := s.db.QueryRow(`SELECT
		(SELECT COUNT(*) FROM runs),
		(SELECT COUNT(*) FROM samples),
		(SELECT COUNT(*) FROM entries),
		(SELECT COUNT(DISTINCT word) FROM entries)`)
	if err := row.Scan(&st.Runs, &st.Samples, &st.Entries, &st.Words); err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}
	return st, nil
}
