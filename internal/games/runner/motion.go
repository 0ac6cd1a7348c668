package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the runner controlled by the user.
type Player struct {
	X              float64   // Left edge, within [0, playAreaWidth-playerWidth]
	VerticalOffset float64   // Height above the ground, >= 0
	Jumping        bool      // Whether a jump is in flight
	JumpStart      time.Time // Zero when not jumping
	Boosted        bool      // Whether a power-up boost is active
	BoostEnd       time.Time // Zero when not boosted
}

// Motion advances entity and player positions.
type Motion struct {
	area     config.PlayAreaConfig
	player   config.PlayerConfig
	jump     config.JumpConfig
	boost    config.BoostConfig
	frame    time.Duration
	maxScale float64
}

// NewMotion creates a kinematics engine for the given configuration.
func NewMotion(cfg config.RunnerConfig) Motion {
	return Motion{
		area:     cfg.PlayArea,
		player:   cfg.Player,
		jump:     cfg.Jump,
		boost:    cfg.Boost,
		frame:    cfg.Timing.ReferenceFrame(),
		maxScale: cfg.Timing.MaxFrameScale,
	}
}

// Frames converts real elapsed time into reference frames.
// Negative time counts as zero; long stalls are capped.
func (m Motion) Frames(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return core.ClampF(float64(elapsed)/float64(m.frame), 0, m.maxScale)
}

// ScrollSpeed returns the per-frame entity speed for the current tier.
func (m Motion) ScrollSpeed(speed float64, boosted bool) float64 {
	if boosted {
		return speed + m.boost.ScrollBonus
	}
	return speed
}

// Advance moves every entity left, moves the player horizontally according to
// held input, updates the jump arc, and drops entities that left the screen.
// It returns the surviving entities and how many obstacles scrolled off.
func (m Motion) Advance(entities []Entity, p *Player, in core.InputFrame, speed float64, now time.Time, frames float64) ([]Entity, int) {
	dx := m.ScrollSpeed(speed, p.Boosted) * frames
	for i := range entities {
		entities[i].X -= dx
	}

	m.MovePlayer(p, in, frames)
	m.UpdateJump(p, now)

	return RemoveOffscreen(entities)
}

// MovePlayer applies horizontal input. Left takes precedence over right.
func (m Motion) MovePlayer(p *Player, in core.InputFrame, frames float64) {
	step := m.player.Speed * frames
	if p.Boosted {
		step *= m.player.BoostMultiplier
	}

	maxX := m.area.Width - m.player.Width
	switch {
	case in.Holding(core.ActionMoveLeft):
		p.X = core.ClampF(p.X-step, 0, maxX)
	case in.Holding(core.ActionMoveRight):
		p.X = core.ClampF(p.X+step, 0, maxX)
	}
}

// StartJump begins a jump unless one is already in flight.
func (m Motion) StartJump(p *Player, now time.Time) bool {
	if p.Jumping {
		return false
	}
	p.Jumping = true
	p.JumpStart = now
	p.VerticalOffset = 0
	return true
}

// UpdateJump recomputes the vertical offset from the time since takeoff and
// lands the player once the jump duration has passed.
func (m Motion) UpdateJump(p *Player, now time.Time) {
	if !p.Jumping {
		p.VerticalOffset = 0
		return
	}

	elapsed := now.Sub(p.JumpStart)
	if elapsed >= m.jump.Duration() {
		p.Jumping = false
		p.JumpStart = time.Time{}
		p.VerticalOffset = 0
		return
	}
	p.VerticalOffset = JumpOffset(m.jump.Height, m.jump.Duration(), elapsed)
}

// JumpOffset is the parabola height*4*t*(1-t) with t = elapsed/duration
// clamped to [0, 1]. It peaks at height when t = 0.5.
func JumpOffset(height float64, duration, elapsed time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	t := core.ClampF(float64(elapsed)/float64(duration), 0, 1)
	return height * 4 * t * (1 - t)
}

// RemoveOffscreen filters out entities with X+Width < 0 in place and returns
// the number of obstacles removed. Power-ups that scroll away are not counted.
func RemoveOffscreen(entities []Entity) ([]Entity, int) {
	cleared := 0
	kept := entities[:0]
	for _, e := range entities {
		if e.Offscreen() {
			if e.Kind == KindObstacle {
				cleared++
			}
			continue
		}
		kept = append(kept, e)
	}
	return kept, cleared
}
