package runner

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// scriptedRandom replays values in order and then repeats the last one.
type scriptedRandom struct {
	values []float64
	pos    int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.pos]
	if r.pos < len(r.values)-1 {
		r.pos++
	}
	return v
}

type memStore struct {
	high    int
	saved   []int
	loadErr error
	saveErr error
}

func (s *memStore) HighScore() (int, error) {
	if s.loadErr != nil {
		return 0, s.loadErr
	}
	return s.high, nil
}

func (s *memStore) SetHighScore(score int) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.high = score
	s.saved = append(s.saved, score)
	return nil
}

var errStoreDown = errors.New("store unavailable")

func newTestConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

// newTestGame builds a game whose spawner always yields obstacles.
func newTestGame(opts ...Option) (*Game, *core.ManualClock) {
	clock := core.NewManualClock(epoch)
	base := []Option{WithRandom(&scriptedRandom{values: []float64{0.9}})}
	return New(newTestConfig(), clock, append(base, opts...)...), clock
}

func frameDuration() time.Duration {
	return newTestConfig().Timing.ReferenceFrame()
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func pressed(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

func holding(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a, true)
	}
	return in
}
