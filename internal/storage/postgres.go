package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS scores (
    id BIGSERIAL PRIMARY KEY,
    run_id TEXT NOT NULL,
    game_id TEXT NOT NULL,
    score INTEGER NOT NULL,
    duration_ms BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

CREATE TABLE IF NOT EXISTS high_scores (
    game_id TEXT PRIMARY KEY,
    score INTEGER NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// queryTimeout bounds every PostgreSQL round trip made through Backend.
const queryTimeout = 5 * time.Second

// PostgresStore implements Backend using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Backend = (*PostgresStore)(nil)

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: cannot connect to postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// OpenPostgres connects with a bounded startup timeout.
func OpenPostgres(databaseURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*queryTimeout)
	defer cancel()
	return NewPostgresStore(ctx, databaseURL)
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// SaveRun records a finished run.
func (s *PostgresStore) SaveRun(run RunRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO scores (run_id, game_id, score, duration_ms) VALUES ($1, $2, $3, $4)`,
		run.RunID.String(), run.GameID, run.Score, run.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

// TopScores retrieves the top N runs for the given game.
func (s *PostgresStore) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT id, run_id, game_id, score, duration_ms, created_at
		 FROM scores
		 WHERE game_id = $1
		 ORDER BY score DESC, id ASC
		 LIMIT $2`, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		e, err := scanScoreEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the larger of the recorded high score and the best run.
func (s *PostgresStore) HighScore(gameID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var score int
	err := s.pool.QueryRow(ctx,
		`SELECT GREATEST(
			COALESCE((SELECT score FROM high_scores WHERE game_id = $1), 0),
			COALESCE((SELECT MAX(score) FROM scores WHERE game_id = $1), 0)
		)`, gameID).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SetHighScore records score unless a higher one is already stored.
func (s *PostgresStore) SetHighScore(gameID string, score int) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO high_scores (game_id, score, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (game_id) DO UPDATE SET
			score = GREATEST(high_scores.score, EXCLUDED.score),
			updated_at = NOW()`, gameID, score)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ClearScores deletes all runs and the high score for the given game.
func (s *PostgresStore) ClearScores(gameID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM scores WHERE game_id = $1`, gameID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM high_scores WHERE game_id = $1`, gameID)
		return err
	})
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific game.
func (s *PostgresStore) Stats(gameID string) (*GameStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	stats := &GameStats{GameID: gameID}
	var totalMS int64
	var lastPlayed *time.Time
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(score), 0)::float8, COALESCE(SUM(score), 0)::bigint,
		        COALESCE(SUM(duration_ms), 0)::bigint, MAX(created_at)
		 FROM scores WHERE game_id = $1`, gameID).
		Scan(&stats.GamesCount, &stats.AvgScore, &stats.TotalScore, &totalMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.TotalPlaytime = time.Duration(totalMS) * time.Millisecond
	if lastPlayed != nil {
		stats.LastPlayed = *lastPlayed
	}

	if stats.HighScore, err = s.HighScore(gameID); err != nil {
		return nil, err
	}
	return stats, nil
}

func scanScoreEntry(row pgx.Row) (ScoreEntry, error) {
	var e ScoreEntry
	var durationMS int64
	if err := row.Scan(&e.ID, &e.RunID, &e.GameID, &e.Score, &durationMS, &e.CreatedAt); err != nil {
		return ScoreEntry{}, err
	}
	e.Duration = time.Duration(durationMS) * time.Millisecond
	return e, nil
}
