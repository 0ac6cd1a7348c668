package gui

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Glow alpha bounds and the time one half of the pulse takes, in seconds.
const (
	glowMin    float32 = 0.25
	glowMax    float32 = 0.7
	glowPeriod float32 = 0.6
)

// Pulse drives the power-up halo alpha back and forth between two bounds.
type Pulse struct {
	tween  *gween.Tween
	rising bool
	value  float32
}

// NewPulse creates a pulse starting at the dim end.
func NewPulse() *Pulse {
	p := &Pulse{value: glowMin}
	p.flip()
	return p
}

func (p *Pulse) flip() {
	p.rising = !p.rising
	if p.rising {
		p.tween = gween.New(glowMin, glowMax, glowPeriod, ease.InOutSine)
		return
	}
	p.tween = gween.New(glowMax, glowMin, glowPeriod, ease.InOutSine)
}

// Update advances the pulse by dt seconds and returns the current alpha.
func (p *Pulse) Update(dt float32) float32 {
	v, done := p.tween.Update(dt)
	p.value = v
	if done {
		p.flip()
	}
	return p.value
}

// Value returns the current alpha.
func (p *Pulse) Value() float32 {
	return p.value
}

// haloColor returns c with its alpha scaled by a, premultiplied as ebiten expects.
func haloColor(c core.Color, a float32) color.RGBA {
	a = min(max(a, 0), 1)
	rgba := c.RGBA()
	scale := func(v uint8) uint8 { return uint8(float32(v) * a) }
	return color.RGBA{scale(rgba.R), scale(rgba.G), scale(rgba.B), scale(rgba.A)}
}
