package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Kind distinguishes what happens when the player touches an entity.
type Kind int

const (
	KindObstacle Kind = iota // Ends the run on contact
	KindPowerUp              // Grants a speed boost on contact
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "Obstacle"
	case KindPowerUp:
		return "PowerUp"
	default:
		return "Unknown"
	}
}

// Entity is an obstacle or power-up scrolling across the play area.
type Entity struct {
	X, Y          float64 // Top-left corner in play-area pixels
	Width, Height float64
	Kind          Kind
}

// Rect returns the collision rectangle for this entity.
func (e Entity) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, e.Width, e.Height)
}

// Offscreen reports whether the entity has fully left the play area on the left.
func (e Entity) Offscreen() bool {
	return e.X+e.Width < 0
}
