package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var defaultDifficulty = NewDifficulty(config.DefaultRunnerConfig().Difficulty)

// Difficulty maps elapsed run time to obstacle speed.
type Difficulty struct {
	tiers   []config.SpeedTier
	enabled bool
}

// NewDifficulty builds a controller from validated tiers.
func NewDifficulty(cfg config.DifficultyConfig) Difficulty {
	tiers := make([]config.SpeedTier, len(cfg.Tiers))
	copy(tiers, cfg.Tiers)
	return Difficulty{tiers: tiers, enabled: cfg.Enabled}
}

// SpeedFor returns the speed of the last tier whose threshold elapsed has
// reached. Negative elapsed time counts as zero.
func (d Difficulty) SpeedFor(elapsed time.Duration) float64 {
	if len(d.tiers) == 0 {
		return 0
	}
	if !d.enabled {
		return d.tiers[0].Speed
	}

	speed := d.tiers[0].Speed
	for _, t := range d.tiers[1:] {
		if elapsed < t.After() {
			break
		}
		speed = t.Speed
	}
	return speed
}

// Base returns the speed a run starts with.
func (d Difficulty) Base() float64 {
	return d.SpeedFor(0)
}

// SpeedFor uses the default tiers: 3 below 10s, 5 below 20s, 7 afterwards.
func SpeedFor(elapsed time.Duration) float64 {
	return defaultDifficulty.SpeedFor(elapsed)
}
