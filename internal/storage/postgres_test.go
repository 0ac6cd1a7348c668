package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestDatabaseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL integration test")
	}
	return url
}

func setupPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()
	url := getTestDatabaseURL(t)
	ctx := context.Background()

	s, err := NewPostgresStore(ctx, url)
	require.NoError(t, err)

	_, err = s.pool.Exec(ctx, "DELETE FROM scores WHERE game_id LIKE 'test-%'")
	require.NoError(t, err)
	_, err = s.pool.Exec(ctx, "DELETE FROM high_scores WHERE game_id LIKE 'test-%'")
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestPostgresStore_SaveRunAndTopScores(t *testing.T) {
	s := setupPostgresStore(t)

	saveRun(t, s, "test-runner", 100, 10*time.Second)
	saveRun(t, s, "test-runner", 300, 30*time.Second)
	saveRun(t, s, "test-runner", 200, 20*time.Second)

	scores, err := s.TopScores("test-runner", 2)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, 300, scores[0].Score)
	assert.Equal(t, 30*time.Second, scores[0].Duration)
	assert.Equal(t, 200, scores[1].Score)
	assert.False(t, scores[0].CreatedAt.IsZero())
}

func TestPostgresStore_HighScoreNeverDrops(t *testing.T) {
	s := setupPostgresStore(t)

	high, err := s.HighScore("test-high")
	require.NoError(t, err)
	assert.Zero(t, high)

	require.NoError(t, s.SetHighScore("test-high", 120))
	require.NoError(t, s.SetHighScore("test-high", 80))

	high, err = s.HighScore("test-high")
	require.NoError(t, err)
	assert.Equal(t, 120, high)
}

func TestPostgresStore_StatsAndClear(t *testing.T) {
	s := setupPostgresStore(t)

	saveRun(t, s, "test-stats", 100, 10*time.Second)
	saveRun(t, s, "test-stats", 300, 20*time.Second)

	stats, err := s.Stats("test-stats")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200, stats.AvgScore, 1e-9)
	assert.Equal(t, int64(400), stats.TotalScore)
	assert.Equal(t, 30*time.Second, stats.TotalPlaytime)

	require.NoError(t, s.ClearScores("test-stats"))
	stats, err = s.Stats("test-stats")
	require.NoError(t, err)
	assert.Zero(t, stats.GamesCount)
	assert.Zero(t, stats.HighScore)
	assert.True(t, stats.LastPlayed.IsZero())
}
