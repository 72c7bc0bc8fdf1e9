package diagnostics

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store persists a log of analysis runs so a host (e.g. the CLI's
// `sessions` subcommand, or the out-of-scope web front-end) can list
// past runs without re-parsing their source.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if necessary) a sqlite-backed run log at
// path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open diagnostics store: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source_hash TEXT NOT NULL,
		started_at TEXT NOT NULL,
		error_count INTEGER NOT NULL,
		errors_json TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init diagnostics store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Run is one logged analysis invocation.
type Run struct {
	ID         string
	SourceHash string
	StartedAt  time.Time
	ErrorCount int
	Errors     []Record
}

// RecordRun logs one analyze() invocation and returns its generated id.
func (s *Store) RecordRun(source string, records []Record) (string, error) {
	id := uuid.NewString()
	sum := sha256.Sum256([]byte(source))
	hash := hex.EncodeToString(sum[:])
	payload, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal diagnostics: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO runs (id, source_hash, started_at, error_count, errors_json) VALUES (?, ?, ?, ?, ?)`,
		id, hash, time.Now().UTC().Format(time.RFC3339Nano), len(records), string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first, up to limit.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, source_hash, started_at, error_count, errors_json FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var startedAt, errorsJSON string
		if err := rows.Scan(&r.ID, &r.SourceHash, &startedAt, &r.ErrorCount, &errorsJSON); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
		_ = json.Unmarshal([]byte(errorsJSON), &r.Errors)
		out = append(out, r)
	}
	return out, rows.Err()
}
