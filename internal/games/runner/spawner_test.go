package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestSpawnerInterval(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSpawner(cfg.Spawner, cfg.PlayArea, &scriptedRandom{values: []float64{0.9}})

	_, ok := s.MaybeSpawn(epoch)
	require.True(t, ok, "first call of a run spawns immediately")

	tests := []struct {
		name   string
		after  time.Duration
		spawns bool
	}{
		{"within interval", time.Second, false},
		{"exactly at interval", 2 * time.Second, false},
		{"just past interval", 2*time.Second + time.Millisecond, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Reset()
			_, ok := s.MaybeSpawn(epoch)
			require.True(t, ok)

			_, ok = s.MaybeSpawn(epoch.Add(tt.after))
			assert.Equal(t, tt.spawns, ok)
		})
	}
}

func TestSpawnerAtMostOnePerWindow(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSpawner(cfg.Spawner, cfg.PlayArea, &scriptedRandom{values: []float64{0.9}})

	count := 0
	for ms := 0; ms <= 6000; ms += 16 {
		if _, ok := s.MaybeSpawn(epoch.Add(time.Duration(ms) * time.Millisecond)); ok {
			count++
		}
	}
	// Spawns at 0ms, 2016ms and 4032ms; the next would need more than 6032ms
	assert.Equal(t, 3, count)
}

func TestSpawnerKinds(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	groundY := cfg.PlayArea.GroundY()

	t.Run("low roll is power-up", func(t *testing.T) {
		s := NewSpawner(cfg.Spawner, cfg.PlayArea, &scriptedRandom{values: []float64{0.1}})
		e, ok := s.MaybeSpawn(epoch)
		require.True(t, ok)
		assert.Equal(t, KindPowerUp, e.Kind)
		assert.Equal(t, 25.0, e.Width)
		assert.Equal(t, 25.0, e.Height)
		assert.Equal(t, 800.0, e.X)
		assert.Equal(t, groundY-25, e.Y)
	})

	t.Run("roll at chance is obstacle", func(t *testing.T) {
		s := NewSpawner(cfg.Spawner, cfg.PlayArea, &scriptedRandom{values: []float64{0.15, 0.5}})
		e, ok := s.MaybeSpawn(epoch)
		require.True(t, ok)
		assert.Equal(t, KindObstacle, e.Kind)
		assert.InDelta(t, 40.0, e.Width, 1e-9)
		assert.Equal(t, e.Width, e.Height)
		assert.InDelta(t, groundY-40, e.Y, 1e-9)
	})

	t.Run("obstacle size stays in range", func(t *testing.T) {
		for _, roll := range []float64{0, 0.25, 0.999999} {
			s := NewSpawner(cfg.Spawner, cfg.PlayArea, &scriptedRandom{values: []float64{0.9, roll}})
			e, _ := s.MaybeSpawn(epoch)
			assert.GreaterOrEqual(t, e.Width, 30.0)
			assert.Less(t, e.Width, 50.0)
			assert.InDelta(t, groundY, e.Y+e.Height, 1e-9, "obstacle rests on the ground")
		}
	})
}

func TestSpawnerLastSpawn(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSpawner(cfg.Spawner, cfg.PlayArea, &scriptedRandom{values: []float64{0.9}})

	_, ok := s.LastSpawn()
	assert.False(t, ok)

	s.MaybeSpawn(epoch)
	last, ok := s.LastSpawn()
	assert.True(t, ok)
	assert.Equal(t, epoch, last)

	s.Reset()
	_, ok = s.LastSpawn()
	assert.False(t, ok)
}
