// Package storage persists runner results: the per-game high score and the
// history of finished runs. SQLite is the default backend; PostgreSQL and a
// gdata save file are available for shared servers and desktop installs.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultPath is where the SQLite database lives unless --db says otherwise.
const DefaultPath = "~/.arcade/runner.db"

// HighScores reads and writes the best score of each game.
type HighScores interface {
	HighScore(gameID string) (int, error)
	// SetHighScore records score unless a higher value is already stored.
	SetHighScore(gameID string, score int) error
}

// Backend is a complete score store. Implementations are safe for
// concurrent use by several sessions.
type Backend interface {
	HighScores
	SaveRun(run RunRecord) error
	TopScores(gameID string, limit int) ([]ScoreEntry, error)
	Stats(gameID string) (*GameStats, error)
	ClearScores(gameID string) error
	Close() error
}

// RunRecord describes one finished run.
type RunRecord struct {
	RunID    uuid.UUID
	GameID   string
	Score    int
	Duration time.Duration
}

// ScoreEntry is a stored run as returned by queries.
type ScoreEntry struct {
	ID        int64
	RunID     string
	GameID    string
	Score     int
	Duration  time.Duration
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID        string
	GamesCount    int
	HighScore     int
	AvgScore      float64
	TotalScore    int64
	TotalPlaytime time.Duration
	LastPlayed    time.Time
}

// Open picks a backend from the DSN: postgres:// and postgresql:// URLs go
// to PostgreSQL, anything else is a SQLite file path.
func Open(dsn string) (Backend, error) {
	if dsn == "" {
		dsn = DefaultPath
	}
	if IsPostgresDSN(dsn) {
		pg, err := OpenPostgres(dsn)
		if err != nil {
			return nil, err
		}
		return pg, nil
	}
	st, err := OpenSQLite(dsn)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// IsPostgresDSN reports whether dsn is a PostgreSQL connection URL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// WithHighScores returns a backend that keeps run history in b but reads and
// writes high scores through hs.
func WithHighScores(b Backend, hs HighScores) Backend {
	return &splitBackend{Backend: b, scores: hs}
}

type splitBackend struct {
	Backend
	scores HighScores
}

func (s *splitBackend) HighScore(gameID string) (int, error) {
	return s.scores.HighScore(gameID)
}

func (s *splitBackend) SetHighScore(gameID string, score int) error {
	return s.scores.SetHighScore(gameID, score)
}

// GameHighScore binds a HighScores store to one game.
type GameHighScore struct {
	store  HighScores
	gameID string
}

// HighScoreKey adapts hs to the single-game high-score interface the engine
// consumes.
func HighScoreKey(hs HighScores, gameID string) *GameHighScore {
	return &GameHighScore{store: hs, gameID: gameID}
}

// HighScore returns the stored best score.
func (k *GameHighScore) HighScore() (int, error) {
	return k.store.HighScore(k.gameID)
}

// SetHighScore stores a new best score.
func (k *GameHighScore) SetHighScore(score int) error {
	return k.store.SetHighScore(k.gameID, score)
}

// parseTimestamp converts a driver timestamp value into time.Time.
// SQLite may hand back either time.Time or its text form.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
