// Package outcome persists pipeline runs, generation attempts,
// evaluation scores, and judge verdicts in SQLite for later
// inspection. Insert-only: rows are never updated or deleted by the
// pipeline.
package outcome

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #endregion

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id            TEXT PRIMARY KEY,
    dataset_path  TEXT NOT NULL,
    chart_type    TEXT NOT NULL,
    started_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS generation_attempts (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id        TEXT NOT NULL,
    kind          TEXT NOT NULL,
    attempt_num   INTEGER NOT NULL,
    failure_kind  TEXT NOT NULL DEFAULT '',
    detail        TEXT NOT NULL DEFAULT '',
    created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS evaluations (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id        TEXT NOT NULL,
    artifact      TEXT NOT NULL,
    scores_json   TEXT NOT NULL,
    comments_json TEXT NOT NULL,
    created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS verdicts (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id        TEXT NOT NULL,
    image         TEXT NOT NULL,
    verdict_text  TEXT NOT NULL,
    created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_generation_attempts_run
ON generation_attempts(run_id, kind, attempt_num);
`

// #endregion schema

// #region records

// RunRecord is one pipeline invocation.
type RunRecord struct {
	ID          string
	DatasetPath string
	ChartType   string
	StartedAt   time.Time
}

// AttemptRecord is a single row for generation_attempts. An empty
// FailureKind marks the successful attempt.
type AttemptRecord struct {
	RunID       string
	Kind        string // "chart_code" | "qa_pairs"
	AttemptNum  int
	FailureKind string
	Detail      string
	CreatedAt   time.Time
}

// EvaluationRecord stores one heuristic evaluation result.
type EvaluationRecord struct {
	RunID     string
	Artifact  string // "chart" | "qa"
	Scores    map[string]float64
	Comments  []string
	CreatedAt time.Time
}

// VerdictRecord stores one judge verdict, keyed by image file name.
type VerdictRecord struct {
	RunID     string
	Image     string
	Text      string
	CreatedAt time.Time
}

// #endregion records

// #region store

// Store persists pipeline outcomes in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the outcome database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open outcome db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init outcome schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for inspection tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store

// #region inserts

// RecordRun persists a new pipeline run.
func (s *Store) RecordRun(rec RunRecord) error {
	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, dataset_path, chart_type, started_at) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.DatasetPath, rec.ChartType, rec.StartedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// RecordAttempt persists a single generation attempt.
func (s *Store) RecordAttempt(rec AttemptRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO generation_attempts (run_id, kind, attempt_num, failure_kind, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Kind, rec.AttemptNum, rec.FailureKind, rec.Detail,
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// RecordEvaluation persists one heuristic evaluation result.
func (s *Store) RecordEvaluation(rec EvaluationRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	scores, err := json.Marshal(rec.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	comments, err := json.Marshal(rec.Comments)
	if err != nil {
		return fmt.Errorf("marshal comments: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO evaluations (run_id, artifact, scores_json, comments_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.RunID, rec.Artifact, string(scores), string(comments),
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record evaluation: %w", err)
	}
	return nil
}

// RecordVerdict persists one judge verdict.
func (s *Store) RecordVerdict(rec VerdictRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO verdicts (run_id, image, verdict_text, created_at) VALUES (?, ?, ?, ?)`,
		rec.RunID, rec.Image, rec.Text, rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record verdict: %w", err)
	}
	return nil
}

// #endregion inserts

// #region queries

// RecentRuns returns the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, dataset_path, chart_type, started_at FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var startedAt string
		if err := rows.Scan(&rec.ID, &rec.DatasetPath, &rec.ChartType, &startedAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
			rec.StartedAt = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// AttemptsForRun returns all generation attempts of a run in order.
func (s *Store) AttemptsForRun(runID string) ([]AttemptRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, kind, attempt_num, failure_kind, detail, created_at
		 FROM generation_attempts WHERE run_id = ? ORDER BY kind, attempt_num`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		var createdAt string
		if err := rows.Scan(&rec.RunID, &rec.Kind, &rec.AttemptNum, &rec.FailureKind, &rec.Detail, &createdAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion queries
