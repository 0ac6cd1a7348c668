package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// DrawCall is one filled rectangle in play-area pixels.
type DrawCall struct {
	Rect  core.RectF
	Color core.Color
	Glow  bool // Draw a halo around the rectangle
}

// Frame is everything a renderer needs to draw one tick. Calls are ordered
// back to front: entities in spawn order, then the player.
type Frame struct {
	Width          float64
	Height         float64
	GroundY        float64
	Calls          []DrawCall
	Phase          Phase
	Score          int
	HighScore      int
	Speed          float64
	Boosted        bool
	BoostRemaining time.Duration
	Duration       time.Duration
}

// Frame builds the draw list for the current state. It does not mutate the game.
func (g *Game) Frame() Frame {
	area := g.cfg.PlayArea
	f := Frame{
		Width:          area.Width,
		Height:         area.Height,
		GroundY:        area.GroundY(),
		Calls:          make([]DrawCall, 0, len(g.entities)+1),
		Phase:          g.run.Phase,
		Score:          g.run.Score,
		HighScore:      g.run.HighScore,
		Speed:          g.run.ObstacleSpeed,
		Boosted:        g.player.Boosted,
		BoostRemaining: g.BoostRemaining(),
		Duration:       g.Duration(),
	}

	for _, e := range g.entities {
		switch e.Kind {
		case KindPowerUp:
			f.Calls = append(f.Calls, DrawCall{Rect: e.Rect(), Color: core.ColorGold, Glow: true})
		default:
			f.Calls = append(f.Calls, DrawCall{Rect: e.Rect(), Color: core.ColorGray})
		}
	}

	playerColor := core.ColorCyan
	if g.player.Boosted {
		playerColor = core.ColorYellow
	}
	f.Calls = append(f.Calls, DrawCall{
		Rect:  PlayerHitbox(g.player, area, g.cfg.Player),
		Color: playerColor,
	})
	return f
}
