package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// KeySource reports keyboard state. The window reads ebiten directly;
// tests script it.
type KeySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Key bindings, mirroring the terminal frontend.
var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}
	jumpKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	startKeys   = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

func anyPressed(src KeySource, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.Pressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(src KeySource, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.JustPressed(k) {
			return true
		}
	}
	return false
}

// readInput samples held directions and edge-triggered actions into frame.
// Windows report real key-up, so held state needs no emulation here.
func readInput(src KeySource, frame *core.InputFrame) {
	frame.Hold(core.ActionMoveLeft, anyPressed(src, leftKeys))
	frame.Hold(core.ActionMoveRight, anyPressed(src, rightKeys))

	edges := []struct {
		action core.Action
		keys   []ebiten.Key
	}{
		{core.ActionJump, jumpKeys},
		{core.ActionStart, startKeys},
		{core.ActionRestart, restartKeys},
		{core.ActionQuit, quitKeys},
	}
	for _, e := range edges {
		if anyJustPressed(src, e.keys) {
			frame.Press(e.action)
		}
	}
}
