package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg RunnerConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultRunnerConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRunnerPartialOverride(t *testing.T) {
	path := writeConfig(t, `
player:
  speed: 8
spawner:
  power_up_chance: 0.5
`)

	cfg, err := LoadRunner(path)
	require.NoError(t, err)

	assert.Equal(t, 8.0, cfg.Player.Speed)
	assert.Equal(t, 0.5, cfg.Spawner.PowerUpChance)
	// Untouched keys keep their defaults
	assert.Equal(t, 60.0, cfg.Player.Width)
	assert.Equal(t, 2000, cfg.Spawner.IntervalMS)
	assert.Len(t, cfg.Difficulty.Tiers, 3)
}

func TestLoadRunnerMissingFile(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoadRunnerBadYAML(t *testing.T) {
	path := writeConfig(t, "player: [unterminated")
	_, err := LoadRunner(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadRunnerInvalidValues(t *testing.T) {
	path := writeConfig(t, `
jump:
  duration_ms: 0
difficulty:
  tiers:
    - after_ms: 0
      speed: 5
    - after_ms: 1000
      speed: 3
`)
	_, err := LoadRunner(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jump: duration_ms must be positive")
	assert.Contains(t, err.Error(), "is below previous")
}

func TestDifficultyValidate(t *testing.T) {
	tests := []struct {
		name    string
		tiers   []SpeedTier
		wantErr bool
	}{
		{"defaults", DefaultRunnerConfig().Difficulty.Tiers, false},
		{"single tier", []SpeedTier{{0, 4}}, false},
		{"empty", nil, true},
		{"first tier not at zero", []SpeedTier{{100, 3}}, true},
		{"unsorted thresholds", []SpeedTier{{0, 3}, {5000, 5}, {5000, 7}}, true},
		{"decreasing speed", []SpeedTier{{0, 3}, {5000, 2}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := DifficultyConfig{Enabled: true, Tiers: tc.tiers}.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	t.Run("fixed disables progression", func(t *testing.T) {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, DifficultyFixed)
		assert.False(t, cfg.Difficulty.Enabled)
	})

	t.Run("hard halves thresholds", func(t *testing.T) {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, DifficultyHard)
		assert.True(t, cfg.Difficulty.Enabled)
		assert.Equal(t, []SpeedTier{{0, 3}, {5000, 5}, {10000, 7}}, cfg.Difficulty.Tiers)
	})

	t.Run("easy stretches thresholds", func(t *testing.T) {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, DifficultyEasy)
		assert.Equal(t, []SpeedTier{{0, 3}, {15000, 5}, {30000, 7}}, cfg.Difficulty.Tiers)
	})

	t.Run("preset does not alias defaults", func(t *testing.T) {
		base := DefaultRunnerConfig()
		cfg := base
		ApplyRunnerPreset(&cfg, DifficultyHard)
		assert.Equal(t, 10000, base.Difficulty.Tiers[1].AfterMS)
	})

	t.Run("normal and empty leave config alone", func(t *testing.T) {
		for _, p := range []DifficultyPreset{"", DifficultyNormal} {
			cfg := DefaultRunnerConfig()
			ApplyRunnerPreset(&cfg, p)
			assert.Equal(t, DefaultRunnerConfig(), cfg)
		}
	})
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestDurationsAndGround(t *testing.T) {
	cfg := DefaultRunnerConfig()
	assert.Equal(t, 360.0, cfg.PlayArea.GroundY())
	assert.Equal(t, "600ms", cfg.Jump.Duration().String())
	assert.Equal(t, "2s", cfg.Spawner.Interval().String())
	assert.Equal(t, "3s", cfg.Boost.Duration().String())
	assert.Equal(t, "16.666666ms", cfg.Timing.ReferenceFrame().String())
}
