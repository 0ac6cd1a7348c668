package config

import (
	"errors"
	"fmt"
	"time"
)

// DifficultyConfig defines the speed tiers a run climbs through.
type DifficultyConfig struct {
	Enabled bool        `yaml:"enabled"` // When false the run stays on the first tier
	Tiers   []SpeedTier `yaml:"tiers"`
}

// SpeedTier sets the obstacle speed from AfterMS of run time onward.
type SpeedTier struct {
	AfterMS int     `yaml:"after_ms"`
	Speed   float64 `yaml:"speed"`
}

// After returns the tier threshold as a duration.
func (t SpeedTier) After() time.Duration {
	return time.Duration(t.AfterMS) * time.Millisecond
}

// Validate checks that tiers form a non-decreasing step function starting at 0.
func (d DifficultyConfig) Validate() error {
	if len(d.Tiers) == 0 {
		return errors.New("difficulty: at least one tier is required")
	}
	if d.Tiers[0].AfterMS != 0 {
		return fmt.Errorf("difficulty: first tier must start at 0ms, got %dms", d.Tiers[0].AfterMS)
	}
	for i := 1; i < len(d.Tiers); i++ {
		prev, cur := d.Tiers[i-1], d.Tiers[i]
		if cur.AfterMS <= prev.AfterMS {
			return fmt.Errorf("difficulty: tier %d threshold %dms is not after %dms", i, cur.AfterMS, prev.AfterMS)
		}
		if cur.Speed < prev.Speed {
			return fmt.Errorf("difficulty: tier %d speed %v is below previous %v", i, cur.Speed, prev.Speed)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// thresholdScale returns how a preset stretches tier thresholds.
func thresholdScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.5
	default:
		return 1.0
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	scale := thresholdScale(preset)
	if scale == 1.0 {
		return
	}

	tiers := make([]SpeedTier, len(cfg.Difficulty.Tiers))
	for i, t := range cfg.Difficulty.Tiers {
		tiers[i] = SpeedTier{AfterMS: int(float64(t.AfterMS) * scale), Speed: t.Speed}
	}
	cfg.Difficulty.Tiers = tiers
}
