// Package storage provides SQLite-based persistence for finished runs.
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

// Run sources.
const (
	SourcePlay     = "play"
	SourceSSH      = "ssh"
	SourceSimulate = "simulate"
)

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished (or abandoned) run with its pool diagnostics.
type RunRecord struct {
	ID           int64
	Source       string
	Preset       string
	Seed         int64
	Ticks        int
	Distance     int
	Landings     int
	FellIntoVoid bool
	FallTick     int // Tick of the void fall, 0 if the player never fell
	Created      int // Platforms ever created by the pool
	PeakActive   int
	Spawns       int
	Recycles     int
	CreatedAt    time.Time
}

// RunStats contains aggregated statistics over the run log.
type RunStats struct {
	Runs         int
	BestDistance int
	AvgDistance  float64
	MaxCreated   int // Worst pool size ever observed
	TotalTicks   int64
	LastPlayed   time.Time
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
			source TEXT NOT NULL,
			preset TEXT NOT NULL DEFAULT 'classic',
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			distance INTEGER NOT NULL,
			landings INTEGER NOT NULL DEFAULT 0,
			fell INTEGER NOT NULL DEFAULT 0,
			fall_tick INTEGER NOT NULL DEFAULT 0,
			platforms_created INTEGER NOT NULL,
			peak_active INTEGER NOT NULL,
			spawns INTEGER NOT NULL,
			recycles INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_distance ON runs(distance DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
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

// SaveRun records a run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.Source == "" {
		return 0, errors.New("storage: run source is required")
	}
	if r.Preset == "" {
		r.Preset = "classic"
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (source, preset, seed, ticks, distance, landings, fell, fall_tick,
		  platforms_created, peak_active, spawns, recycles)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Source, r.Preset, r.Seed, r.Ticks, r.Distance, r.Landings, r.FellIntoVoid, r.FallTick,
		r.Created, r.PeakActive, r.Spawns, r.Recycles,
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

const runColumns = `id, source, preset, seed, ticks, distance, landings, fell, fall_tick,
	platforms_created, peak_active, spawns, recycles, created_at`

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
}

// LongestRuns retrieves the runs that covered the most distance.
// An empty source matches every source.
func (s *Store) LongestRuns(source string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 WHERE ? = '' OR source = ?
		 ORDER BY distance DESC, id ASC
		 LIMIT ?`,
		source, source, limit,
	)
}

// RunByID retrieves one run. Returns nil if it does not exist.
func (s *Store) RunByID(id int64) (*RunRecord, error) {
	runs, err := s.queryRuns(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
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
			&r.ID, &r.Source, &r.Preset, &r.Seed, &r.Ticks, &r.Distance, &r.Landings,
			&r.FellIntoVoid, &r.FallTick,
			&r.Created, &r.PeakActive, &r.Spawns, &r.Recycles, &createdAt,
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

// BestDistance returns the longest recorded distance.
// Returns 0 if no runs exist.
func (s *Store) BestDistance() (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(distance) FROM runs").Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best distance: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return int(best.Int64), nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(distance), 0), COALESCE(AVG(distance), 0),
		        COALESCE(MAX(platforms_created), 0), COALESCE(SUM(ticks), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.BestDistance, &stats.AvgDistance, &stats.MaxCreated, &stats.TotalTicks)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM runs ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes every run from the given source, or all runs when source is empty.
func (s *Store) ClearRuns(source string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR source = ?", source, source)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
