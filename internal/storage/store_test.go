package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems struct {
	items   map[string][]byte
	saveErr error
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.items == nil {
		m.items = make(map[string][]byte)
	}
	m.items[key] = data
	return nil
}

func TestIsPostgresDSN(t *testing.T) {
	tests := []struct {
		dsn      string
		expected bool
	}{
		{"postgres://user@localhost/runner", true},
		{"postgresql://localhost:5432/runner?sslmode=disable", true},
		{"~/.arcade/runner.db", false},
		{"/tmp/postgres.db", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPostgresDSN(tt.dsn))
		})
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/runner")

	got, err := ExpandHome("~/.arcade/runner.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/runner", ".arcade", "runner.db"), got)

	got, err = ExpandHome("/var/lib/runner.db")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/runner.db", got)
}

func TestGDataStoreHighScore(t *testing.T) {
	items := &memItems{}
	s := &GDataStore{items: items}

	high, err := s.HighScore("runner")
	require.NoError(t, err)
	assert.Zero(t, high)

	require.NoError(t, s.SetHighScore("runner", 150))
	require.NoError(t, s.SetHighScore("runner", 90))

	high, err = s.HighScore("runner")
	require.NoError(t, err)
	assert.Equal(t, 150, high)
	assert.JSONEq(t, `{"score":150}`, string(items.items["runner_high_score"]))
}

func TestGDataStoreErrors(t *testing.T) {
	items := &memItems{items: map[string][]byte{"runner_high_score": []byte("not json")}}
	s := &GDataStore{items: items}

	_, err := s.HighScore("runner")
	assert.Error(t, err)

	items.items = nil
	items.saveErr = errors.New("disk full")
	assert.Error(t, s.SetHighScore("runner", 10))
}

func TestWithHighScores(t *testing.T) {
	db := openTestStore(t)
	items := &memItems{}
	b := WithHighScores(db, &GDataStore{items: items})

	require.NoError(t, b.SetHighScore("runner", 70))
	saveRun(t, b, "runner", 40, time.Second)

	high, err := b.HighScore("runner")
	require.NoError(t, err)
	assert.Equal(t, 70, high)

	dbHigh, err := db.HighScore("runner")
	require.NoError(t, err)
	assert.Equal(t, 40, dbHigh, "high score write went to save data only")

	scores, err := b.TopScores("runner", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 1, "run history still goes to the database")
}

func TestHighScoreKey(t *testing.T) {
	db := openTestStore(t)
	key := HighScoreKey(db, "runner")

	require.NoError(t, key.SetHighScore(120))
	high, err := key.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 120, high)

	other, err := db.HighScore("other")
	require.NoError(t, err)
	assert.Zero(t, other)
}
