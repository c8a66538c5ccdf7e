package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/deadzone/internal/core"
)

// Run is one finished survival run.
type Run struct {
	ID        string
	Map       string
	Character string
	Round     int
	Kills     int
	Points    int
	Duration  time.Duration
	CreatedAt time.Time
}

const runColumns = `id, map, character, round, kills, points, duration_ms, created_at`

// SaveRun records a finished run and returns its generated identifier.
func (s *Store) SaveRun(sum core.RunSummary) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, map, character, round, kills, points, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, sum.Map, sum.Character, sum.Round, sum.Kills, sum.Points, int64(sum.Millis),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// RecentRuns returns the latest runs across every map.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
}

// BestRuns returns a map's runs ordered by round reached, then kills.
func (s *Store) BestRuns(mapID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE map = ? ORDER BY round DESC, kills DESC LIMIT ?`,
		mapID, limit,
	)
}

// RunByID returns a single run, or nil when no run has that identifier.
func (s *Store) RunByID(id string) (*Run, error) {
	runs, err := s.queryRuns(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// RunStats aggregates the run history of one map.
type RunStats struct {
	Map        string
	Runs       int
	BestRound  int
	TotalKills int64
	PlayTime   time.Duration
}

// GetRunStats aggregates every run on a map.
func (s *Store) GetRunStats(mapID string) (*RunStats, error) {
	stats := &RunStats{Map: mapID}
	var millis int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(round), 0), COALESCE(SUM(kills), 0), COALESCE(SUM(duration_ms), 0)
		 FROM runs WHERE map = ?`,
		mapID,
	).Scan(&stats.Runs, &stats.BestRound, &stats.TotalKills, &millis)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.PlayTime = time.Duration(millis) * time.Millisecond
	return stats, nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var millis int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Map, &r.Character, &r.Round, &r.Kills, &r.Points, &millis, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.Duration = time.Duration(millis) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
