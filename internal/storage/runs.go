package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one finished run.
type Run struct {
	ID         string
	Mode       string // game id, e.g. "river_zen"
	Seed       int64
	Score      int
	Distance   float64
	Coins      int
	Gems       int
	NearMisses int
	MaxCombo   int
	DurationMs int64
	CreatedAt  time.Time
}

// RunStats aggregates every stored run of a mode.
type RunStats struct {
	Runs         int
	BestScore    int
	BestDistance float64
	TotalCoins   int
	TotalGems    int
	TotalMs      int64
}

const runColumns = `id, mode, seed, score, distance, coins, gems, near_misses, max_combo, duration_ms, created_at`

// SaveRun records r and returns its id. Empty ids get a fresh UUID and a
// zero CreatedAt is set to the current time.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Mode, r.Seed, r.Score, r.Distance, r.Coins, r.Gems,
		r.NearMisses, r.MaxCombo, r.DurationMs, r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

// TopRuns returns the best limit runs of mode by score, newest first on
// ties. limit <= 0 means 10.
func (s *Store) TopRuns(mode string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC, created_at DESC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdMs int64
		if err := rows.Scan(&r.ID, &r.Mode, &r.Seed, &r.Score, &r.Distance, &r.Coins, &r.Gems,
			&r.NearMisses, &r.MaxCombo, &r.DurationMs, &createdMs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.CreatedAt = time.UnixMilli(createdMs)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// HighScore returns the best score of mode, or 0 without runs.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs WHERE mode = ?", mode).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(score.Int64), nil
}

// Stats aggregates the runs of mode.
func (s *Store) Stats(mode string) (RunStats, error) {
	var st RunStats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(distance), 0),
		        COALESCE(SUM(coins), 0), COALESCE(SUM(gems), 0), COALESCE(SUM(duration_ms), 0)
		 FROM runs WHERE mode = ?`,
		mode,
	).Scan(&st.Runs, &st.BestScore, &st.BestDistance, &st.TotalCoins, &st.TotalGems, &st.TotalMs)
	if err != nil {
		return RunStats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// ClearRuns deletes every run of mode.
func (s *Store) ClearRuns(mode string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
