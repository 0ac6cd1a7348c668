package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		PlayArea: PlayAreaConfig{
			Width:        800,
			Height:       400,
			GroundOffset: 40,
		},
		Player: PlayerConfig{
			StartX:          50,
			Width:           60,
			Height:          80,
			Speed:           5,
			BoostMultiplier: 1.5,
		},
		Jump: JumpConfig{
			Height:     100,
			DurationMS: 600,
		},
		Spawner: SpawnerConfig{
			IntervalMS:      2000,
			PowerUpChance:   0.15,
			PowerUpSize:     25,
			ObstacleMinSize: 30,
			ObstacleMaxSize: 50,
		},
		Boost: BoostConfig{
			DurationMS:  3000,
			ScrollBonus: 3,
		},
		Scoring: ScoringConfig{
			ObstacleCleared: 10,
		},
		Timing: TimingConfig{
			ReferenceFPS:  60,
			MaxFrameScale: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Tiers: []SpeedTier{
				{AfterMS: 0, Speed: 3},
				{AfterMS: 10000, Speed: 5},
				{AfterMS: 20000, Speed: 7},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
