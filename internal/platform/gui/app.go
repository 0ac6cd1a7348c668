// Package gui runs the runner in a desktop window using ebiten.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

const (
	haloPad    = 4  // Halo extends this many pixels around a glowing entity
	glyphW     = 6  // Debug font cell width
	glyphH     = 16 // Debug font line height
	hudMargin  = 8
	groundLine = 2
)

var (
	backgroundColor = color.RGBA{0x2e, 0x34, 0x40, 0xff}
	groundColor     = color.RGBA{0x3b, 0x42, 0x52, 0xff}
)

// App implements ebiten.Game around a runner.Game.
type App struct {
	game     *runner.Game
	backend  storage.Backend
	logger   *log.Logger
	keys     KeySource
	input    core.InputFrame
	pulse    *Pulse
	tps      int
	gen      uint64
	runSaved bool
}

// NewApp creates a window frontend. backend may be nil.
func NewApp(game *runner.Game, backend storage.Backend, cfg core.RuntimeConfig, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tps := cfg.TickRate
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &App{
		game:    game,
		backend: backend,
		logger:  logger,
		keys:    ebitenKeys{},
		input:   core.NewInputFrame(),
		pulse:   NewPulse(),
		tps:     tps,
	}
}

// Update reads input and advances the simulation by one tick.
func (a *App) Update() error {
	readInput(a.keys, &a.input)
	defer a.input.ClearEdges()

	a.pulse.Update(1 / float32(a.tps))

	switch {
	case a.input.Has(core.ActionQuit):
		return ebiten.Termination
	case a.input.Has(core.ActionStart):
		if gen, ok := a.game.Start(); ok {
			a.beginRun(gen)
		}
	case a.input.Has(core.ActionRestart):
		if gen, ok := a.game.Restart(); ok {
			a.beginRun(gen)
		}
	}

	if !a.game.Ticking() {
		return nil
	}
	if res := a.game.Tick(a.gen, a.input); res.GameOver {
		a.saveRun()
	}
	return nil
}

func (a *App) beginRun(gen uint64) {
	a.gen = gen
	a.runSaved = false
}

// saveRun records the finished run once. Failures are logged and ignored.
func (a *App) saveRun() {
	if a.runSaved {
		return
	}
	a.runSaved = true
	if a.backend == nil {
		return
	}

	st := a.game.State()
	record := storage.RunRecord{
		RunID:    st.RunID,
		GameID:   a.game.ID(),
		Score:    st.Score,
		Duration: a.game.Duration(),
	}
	if err := a.backend.SaveRun(record); err != nil {
		a.logger.Warn("could not save run", "run", st.RunID, "error", err)
		return
	}
	a.logger.Info("run saved", "run", st.RunID, "score", st.Score, "duration", record.Duration.Round(time.Millisecond))
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	f := a.game.Frame()
	screen.Fill(backgroundColor)

	ground := float32(f.GroundY)
	vector.DrawFilledRect(screen, 0, ground, float32(f.Width), float32(f.Height-f.GroundY), groundColor, false)
	vector.DrawFilledRect(screen, 0, ground, float32(f.Width), groundLine, core.ColorGreen.RGBA(), false)

	alpha := a.pulse.Value()
	for _, c := range f.Calls {
		r := c.Rect
		if c.Glow {
			vector.DrawFilledRect(screen,
				float32(r.X-haloPad), float32(r.Y-haloPad),
				float32(r.W+2*haloPad), float32(r.H+2*haloPad),
				haloColor(c.Color, alpha), true)
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.Color.RGBA(), false)
	}

	a.drawHUD(screen, f)
	a.drawOverlay(screen, f)
}

func (a *App) drawHUD(screen *ebiten.Image, f runner.Frame) {
	line := fmt.Sprintf("SCORE %d   BEST %d   SPEED %.0f   TIME %.1fs",
		f.Score, f.HighScore, f.Speed, f.Duration.Seconds())
	if f.Boosted {
		line += fmt.Sprintf("   BOOST %.1fs", f.BoostRemaining.Seconds())
	}
	ebitenutil.DebugPrintAt(screen, line, hudMargin, hudMargin)
}

func (a *App) drawOverlay(screen *ebiten.Image, f runner.Frame) {
	var lines []string
	switch f.Phase {
	case runner.PhaseIdle:
		lines = []string{"SIDE RUNNER", "", "press enter to start"}
		if f.HighScore > 0 {
			lines = append(lines, fmt.Sprintf("best %d", f.HighScore))
		}
	case runner.PhaseGameOver:
		lines = []string{
			"GAME OVER",
			"",
			fmt.Sprintf("score %d   best %d", f.Score, f.HighScore),
			"press r to restart",
		}
	default:
		return
	}

	top := int(f.Height)/2 - len(lines)*glyphH/2
	for i, l := range lines {
		x := (int(f.Width) - len(l)*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, l, x, top+i*glyphH)
	}
}

// Layout keeps the logical screen at the play area size; ebiten scales it
// to the window.
func (a *App) Layout(_, _ int) (int, int) {
	cfg := a.game.Config().PlayArea
	return int(cfg.Width), int(cfg.Height)
}

// Run opens the window and blocks until it is closed.
func Run(game *runner.Game, backend storage.Backend, cfg core.RuntimeConfig, logger *log.Logger) error {
	app := NewApp(game, backend, cfg, logger)
	area := game.Config().PlayArea

	ebiten.SetWindowSize(int(area.Width), int(area.Height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.tps)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
