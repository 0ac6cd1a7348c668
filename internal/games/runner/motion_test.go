package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestMotionFrames(t *testing.T) {
	m := NewMotion(config.DefaultRunnerConfig())

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected float64
	}{
		{"one reference frame", frameDuration(), 1},
		{"two reference frames", 2 * frameDuration(), 2},
		{"zero", 0, 0},
		{"negative skew", -time.Second, 0},
		{"stall is capped", time.Second, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, m.Frames(tt.elapsed), 1e-9)
		})
	}
}

func TestAdvanceScrollsEntities(t *testing.T) {
	m := NewMotion(config.DefaultRunnerConfig())
	frames := m.Frames(frameDuration())

	tests := []struct {
		name     string
		boosted  bool
		expected float64
	}{
		{"normal speed", false, 397},
		{"boosted speed", true, 394},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := []Entity{{X: 400, Y: 320, Width: 40, Height: 40, Kind: KindObstacle}}
			p := Player{X: 50, Boosted: tt.boosted}

			entities, cleared := m.Advance(entities, &p, noInput(), 3, epoch, frames)
			require.Len(t, entities, 1)
			assert.InDelta(t, tt.expected, entities[0].X, 1e-9)
			assert.Zero(t, cleared)
		})
	}
}

func TestMovePlayer(t *testing.T) {
	m := NewMotion(config.DefaultRunnerConfig())

	tests := []struct {
		name     string
		start    float64
		boosted  bool
		in       core.InputFrame
		expected float64
	}{
		{"right", 50, false, holding(core.ActionMoveRight), 55},
		{"left", 50, false, holding(core.ActionMoveLeft), 45},
		{"boosted right", 50, true, holding(core.ActionMoveRight), 57.5},
		{"left wins over right", 50, false, holding(core.ActionMoveLeft, core.ActionMoveRight), 45},
		{"clamped at left edge", 2, false, holding(core.ActionMoveLeft), 0},
		{"clamped at right edge", 738, false, holding(core.ActionMoveRight), 740},
		{"no input", 50, false, noInput(), 50},
		{"press without hold does not move", 50, false, pressed(core.ActionMoveRight), 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{X: tt.start, Boosted: tt.boosted}
			m.MovePlayer(&p, tt.in, 1)
			assert.InDelta(t, tt.expected, p.X, 1e-9)
		})
	}
}

func TestJumpArc(t *testing.T) {
	m := NewMotion(config.DefaultRunnerConfig())
	p := Player{X: 50}

	require.True(t, m.StartJump(&p, epoch))
	assert.False(t, m.StartJump(&p, epoch.Add(100*time.Millisecond)), "no double jump")
	assert.Equal(t, epoch, p.JumpStart)

	m.UpdateJump(&p, epoch.Add(150*time.Millisecond))
	assert.InDelta(t, 75, p.VerticalOffset, 1e-9)

	m.UpdateJump(&p, epoch.Add(300*time.Millisecond))
	assert.InDelta(t, 100, p.VerticalOffset, 1e-9, "peak at half the duration")

	m.UpdateJump(&p, epoch.Add(599*time.Millisecond))
	assert.True(t, p.Jumping)
	assert.Greater(t, p.VerticalOffset, 0.0)

	m.UpdateJump(&p, epoch.Add(600*time.Millisecond))
	assert.False(t, p.Jumping)
	assert.Zero(t, p.VerticalOffset)
	assert.True(t, p.JumpStart.IsZero())

	assert.True(t, m.StartJump(&p, epoch.Add(700*time.Millisecond)), "can jump again after landing")
}

func TestJumpOffset(t *testing.T) {
	d := 600 * time.Millisecond
	assert.Zero(t, JumpOffset(100, d, 0))
	assert.InDelta(t, 100, JumpOffset(100, d, 300*time.Millisecond), 1e-9)
	assert.Zero(t, JumpOffset(100, d, d))
	assert.Zero(t, JumpOffset(100, d, 2*d), "t is clamped to 1")
	assert.Zero(t, JumpOffset(100, d, -d), "t is clamped to 0")
	assert.Zero(t, JumpOffset(100, 0, time.Second))
}

func TestRemoveOffscreen(t *testing.T) {
	entities := []Entity{
		{X: -41, Width: 40, Kind: KindObstacle},
		{X: -40, Width: 40, Kind: KindObstacle}, // right edge exactly at 0 stays
		{X: -30, Width: 25, Kind: KindPowerUp},
		{X: 100, Width: 40, Kind: KindObstacle},
		{X: -60, Width: 30, Kind: KindObstacle},
	}

	kept, cleared := RemoveOffscreen(entities)
	assert.Equal(t, 2, cleared, "only obstacles are counted")
	require.Len(t, kept, 2)
	assert.Equal(t, -40.0, kept[0].X)
	assert.Equal(t, 100.0, kept[1].X)
}
