package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// EffectKind is the outcome of the player touching an entity.
type EffectKind int

const (
	EffectCollect EffectKind = iota // Power-up picked up
	EffectHit                       // Obstacle struck
)

// Effect is produced by Detect for one overlapping entity.
type Effect struct {
	Kind  EffectKind
	Index int // Position of the entity in the slice passed to Detect
}

// PlayerHitbox returns the player's collision rectangle. The box stands on the
// ground line and rises with the jump offset.
func PlayerHitbox(p Player, area config.PlayAreaConfig, pc config.PlayerConfig) core.RectF {
	return core.NewRectF(p.X, area.GroundY()-pc.Height-p.VerticalOffset, pc.Width, pc.Height)
}

// Detect tests the hitbox against every entity in order. Overlapping power-ups
// yield Collect effects; the first overlapping obstacle yields a Hit and ends
// the scan. Entities are not modified.
func Detect(hitbox core.RectF, entities []Entity) []Effect {
	var effects []Effect
	for i, e := range entities {
		if !hitbox.Intersects(e.Rect()) {
			continue
		}
		if e.Kind == KindPowerUp {
			effects = append(effects, Effect{Kind: EffectCollect, Index: i})
			continue
		}
		effects = append(effects, Effect{Kind: EffectHit, Index: i})
		break
	}
	return effects
}

// RemoveMarked returns entities without the ones whose index is marked,
// preserving order.
func RemoveMarked(entities []Entity, marked map[int]bool) []Entity {
	if len(marked) == 0 {
		return entities
	}
	kept := entities[:0]
	for i, e := range entities {
		if !marked[i] {
			kept = append(kept, e)
		}
	}
	return kept
}
