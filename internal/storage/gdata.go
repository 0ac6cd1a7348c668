package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/quasilyte/gdata"
)

// itemStore is the subset of *gdata.Manager used for high scores.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// GDataStore keeps high scores in the platform's per-user save data
// directory. It has no run history; pair it with a Backend via WithHighScores.
type GDataStore struct {
	mu    sync.Mutex
	items itemStore
}

var _ HighScores = (*GDataStore)(nil)

type savedHighScore struct {
	Score int `json:"score"`
}

// OpenGData opens the save data of appName.
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save data: %w", err)
	}
	return &GDataStore{items: m}, nil
}

func highScoreItem(gameID string) string {
	return gameID + "_high_score"
}

// HighScore returns the saved best score, or 0 when nothing has been saved.
func (s *GDataStore) HighScore(gameID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(gameID)
}

// SetHighScore saves score unless the saved value is already higher.
func (s *GDataStore) SetHighScore(gameID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(gameID)
	if err != nil {
		return err
	}
	if score <= current {
		return nil
	}

	data, err := json.Marshal(savedHighScore{Score: score})
	if err != nil {
		return fmt.Errorf("storage: cannot encode high score: %w", err)
	}
	if err := s.items.SaveItem(highScoreItem(gameID), data); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

func (s *GDataStore) load(gameID string) (int, error) {
	data, err := s.items.LoadItem(highScoreItem(gameID))
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score: %w", err)
	}
	if len(data) == 0 {
		return 0, nil
	}

	var saved savedHighScore
	if err := json.Unmarshal(data, &saved); err != nil {
		return 0, fmt.Errorf("storage: cannot parse high score: %w", err)
	}
	return saved.Score, nil
}
