package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Spawner decides when to add an entity and what it looks like.
type Spawner struct {
	cfg      config.SpawnerConfig
	area     config.PlayAreaConfig
	rng      RandomSource
	last     time.Time
	spawned  bool // false until the first spawn of a run
	interval time.Duration
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.SpawnerConfig, area config.PlayAreaConfig, rng RandomSource) *Spawner {
	return &Spawner{
		cfg:      cfg,
		area:     area,
		rng:      rng,
		interval: cfg.Interval(),
	}
}

// Reset forgets the last spawn time, so the next call to MaybeSpawn fires.
func (s *Spawner) Reset() {
	s.last = time.Time{}
	s.spawned = false
}

// LastSpawn returns the time of the most recent spawn and whether one happened.
func (s *Spawner) LastSpawn() (time.Time, bool) {
	return s.last, s.spawned
}

// MaybeSpawn returns a new entity when more than the spawn interval has passed
// since the previous one. At most one entity is produced per interval window.
func (s *Spawner) MaybeSpawn(now time.Time) (Entity, bool) {
	if s.spawned && now.Sub(s.last) <= s.interval {
		return Entity{}, false
	}
	s.last = now
	s.spawned = true

	if s.rng.Float64() < s.cfg.PowerUpChance {
		return s.powerUp(), true
	}
	return s.obstacle(), true
}

// powerUp builds a fixed-size power-up sitting on the ground at the right edge.
func (s *Spawner) powerUp() Entity {
	size := s.cfg.PowerUpSize
	return Entity{
		X:      s.area.Width,
		Y:      s.area.GroundY() - size,
		Width:  size,
		Height: size,
		Kind:   KindPowerUp,
	}
}

// obstacle builds a square obstacle with a size uniform in [min, max).
func (s *Spawner) obstacle() Entity {
	size := s.cfg.ObstacleMinSize + s.rng.Float64()*(s.cfg.ObstacleMaxSize-s.cfg.ObstacleMinSize)
	return Entity{
		X:      s.area.Width,
		Y:      s.area.GroundY() - size,
		Width:  size,
		Height: size,
		Kind:   KindObstacle,
	}
}
