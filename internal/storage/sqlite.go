// Package storage provides SQLite-based persistence for the run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished chapter attempt.
type RunRecord struct {
	ID          int64
	Chapter     int
	Grade       string
	GradeRank   int // Higher is better; used for ordering
	Cleared     bool
	ElapsedSecs int
	Score       int
	Runner1     string
	Runner2     string
	FinishedBy  string
	CreatedAt   time.Time
}

// ChapterStats contains aggregated statistics for a chapter.
type ChapterStats struct {
	Chapter    int
	Attempts   int
	Clears     int
	BestGrade  string
	HighScore  int
	LongestRun int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			chapter INTEGER NOT NULL,
			grade TEXT NOT NULL,
			grade_rank INTEGER NOT NULL,
			cleared INTEGER NOT NULL DEFAULT 0,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			runner1 TEXT NOT NULL,
			runner2 TEXT NOT NULL,
			finished_by TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_chapter ON runs(chapter);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(chapter, grade_rank DESC, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished attempt and returns its ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (chapter, grade, grade_rank, cleared, elapsed_secs, score, runner1, runner2, finished_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Chapter, r.Grade, r.GradeRank, boolToInt(r.Cleared), r.ElapsedSecs, r.Score,
		r.Runner1, r.Runner2, r.FinishedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const runColumns = `id, chapter, grade, grade_rank, cleared, elapsed_secs, score,
	runner1, runner2, finished_by, created_at`

// RecentRuns returns the latest attempts across all chapters, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
}

// BestRuns returns the best attempts for a chapter: highest grade first,
// then highest score, then the longest survival.
func (s *Store) BestRuns(chapter, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 WHERE chapter = ?
		 ORDER BY grade_rank DESC, score DESC, elapsed_secs DESC, id ASC
		 LIMIT ?`,
		chapter, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Chapter,
			&r.Grade,
			&r.GradeRank,
			&r.Cleared,
			&r.ElapsedSecs,
			&r.Score,
			&r.Runner1,
			&r.Runner2,
			&r.FinishedBy,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// ChapterStats returns aggregated statistics for a chapter. A chapter with
// no attempts yields zero counts and an empty best grade.
func (s *Store) ChapterStats(chapter int) (*ChapterStats, error) {
	stats := &ChapterStats{Chapter: chapter}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(cleared), 0), COALESCE(MAX(score), 0), COALESCE(MAX(elapsed_secs), 0)
		 FROM runs WHERE chapter = ?`,
		chapter,
	).Scan(&stats.Attempts, &stats.Clears, &stats.HighScore, &stats.LongestRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get chapter stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT grade FROM runs WHERE chapter = ? ORDER BY grade_rank DESC, id ASC LIMIT 1`,
		chapter,
	).Scan(&stats.BestGrade)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get best grade: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE chapter = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		chapter,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTime handles both time.Time and the SQLite text form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
