// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for the runner.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RunnerConfig contains all tunables of the runner simulation.
// Distances are play-area pixels; speeds are pixels per reference frame.
type RunnerConfig struct {
	PlayArea   PlayAreaConfig   `yaml:"play_area"`
	Player     PlayerConfig     `yaml:"player"`
	Jump       JumpConfig       `yaml:"jump"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Boost      BoostConfig      `yaml:"boost"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayAreaConfig defines the logical canvas.
type PlayAreaConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance from bottom edge to ground line
}

// GroundY returns the y coordinate of the ground line.
func (p PlayAreaConfig) GroundY() float64 {
	return p.Height - p.GroundOffset
}

// PlayerConfig defines the player sprite and its horizontal movement.
type PlayerConfig struct {
	StartX          float64 `yaml:"start_x"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
}

// JumpConfig defines the parabolic jump.
type JumpConfig struct {
	Height     float64 `yaml:"height"`
	DurationMS int     `yaml:"duration_ms"`
}

// Duration returns the total airtime of a jump.
func (j JumpConfig) Duration() time.Duration {
	return time.Duration(j.DurationMS) * time.Millisecond
}

// SpawnerConfig defines entity spawning.
type SpawnerConfig struct {
	IntervalMS      int     `yaml:"interval_ms"`
	PowerUpChance   float64 `yaml:"power_up_chance"`
	PowerUpSize     float64 `yaml:"power_up_size"`
	ObstacleMinSize float64 `yaml:"obstacle_min_size"`
	ObstacleMaxSize float64 `yaml:"obstacle_max_size"`
}

// Interval returns the minimum time between two spawns.
func (s SpawnerConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// BoostConfig defines the power-up speed boost.
type BoostConfig struct {
	DurationMS  int     `yaml:"duration_ms"`
	ScrollBonus float64 `yaml:"scroll_bonus"` // Added to obstacle speed while boosted
}

// Duration returns how long a boost lasts after a collect.
func (b BoostConfig) Duration() time.Duration {
	return time.Duration(b.DurationMS) * time.Millisecond
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	ObstacleCleared int `yaml:"obstacle_cleared"`
}

// TimingConfig defines how real elapsed time maps onto per-frame motion.
type TimingConfig struct {
	ReferenceFPS  int     `yaml:"reference_fps"`   // Frame rate the per-frame speeds were tuned for
	MaxFrameScale float64 `yaml:"max_frame_scale"` // Cap on frames simulated by one tick
}

// ReferenceFrame returns the duration of one reference frame.
func (t TimingConfig) ReferenceFrame() time.Duration {
	fps := t.ReferenceFPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// Validate reports every inconsistency in the configuration.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.PlayArea.Width > 0 && c.PlayArea.Height > 0, "play_area: size must be positive, got %vx%v", c.PlayArea.Width, c.PlayArea.Height)
	check(c.PlayArea.GroundOffset >= 0 && c.PlayArea.GroundOffset < c.PlayArea.Height, "play_area: ground_offset %v outside play area", c.PlayArea.GroundOffset)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player: size must be positive")
	check(c.Player.Width <= c.PlayArea.Width, "player: width %v exceeds play area width %v", c.Player.Width, c.PlayArea.Width)
	check(c.Player.StartX >= 0 && c.Player.StartX <= c.PlayArea.Width-c.Player.Width, "player: start_x %v outside [0, %v]", c.Player.StartX, c.PlayArea.Width-c.Player.Width)
	check(c.Player.Speed >= 0, "player: speed must not be negative")
	check(c.Player.BoostMultiplier >= 1, "player: boost_multiplier must be at least 1")
	check(c.Jump.Height >= 0, "jump: height must not be negative")
	check(c.Jump.DurationMS > 0, "jump: duration_ms must be positive")
	check(c.Spawner.IntervalMS > 0, "spawner: interval_ms must be positive")
	check(c.Spawner.PowerUpChance >= 0 && c.Spawner.PowerUpChance <= 1, "spawner: power_up_chance %v outside [0, 1]", c.Spawner.PowerUpChance)
	check(c.Spawner.PowerUpSize > 0, "spawner: power_up_size must be positive")
	check(c.Spawner.ObstacleMinSize > 0 && c.Spawner.ObstacleMinSize <= c.Spawner.ObstacleMaxSize,
		"spawner: obstacle size range [%v, %v) is invalid", c.Spawner.ObstacleMinSize, c.Spawner.ObstacleMaxSize)
	check(c.Boost.DurationMS >= 0, "boost: duration_ms must not be negative")
	check(c.Boost.ScrollBonus >= 0, "boost: scroll_bonus must not be negative")
	check(c.Scoring.ObstacleCleared >= 0, "scoring: obstacle_cleared must not be negative")
	check(c.Timing.MaxFrameScale > 0, "timing: max_frame_scale must be positive")

	if err := c.Difficulty.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
