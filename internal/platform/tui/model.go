package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// chromeRows is the space below the play area: HUD line and help footer.
const chromeRows = 2

// Model is the Bubble Tea model for playing the runner.
type Model struct {
	game     *runner.Game
	screen   *core.Screen
	backend  storage.Backend
	config   core.RuntimeConfig
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	holds    *HoldTracker
	input    core.InputFrame
	width    int
	quitting bool
	runSaved bool // Whether the finished run has been recorded
}

// NewModel creates a Bubble Tea model driving game. backend may be nil, in
// which case finished runs are not recorded.
func NewModel(game *runner.Game, backend storage.Backend, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		backend: backend,
		config:  cfg,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    h,
		holds:   NewHoldTracker(cfg.HoldWindow),
		input:   core.NewInputFrame(),
		width:   cfg.ScreenW,
	}
}

func playRows(height int) int {
	return max(height-chromeRows, 1)
}

// Init waits on the title screen; the tick loop starts with the first run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.game.Clock().Now()

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		if gen, ok := m.game.Start(); ok {
			return m.beginRun(gen)
		}

	case core.ActionRestart:
		if gen, ok := m.game.Restart(); ok {
			return m.beginRun(gen)
		}

	case core.ActionMoveLeft, core.ActionMoveRight:
		m.holds.Press(action, now)
		m.input.Press(action)

	case core.ActionJump:
		m.input.Press(action)
	}

	return m, nil
}

func (m Model) beginRun(gen uint64) (tea.Model, tea.Cmd) {
	m.runSaved = false
	m.holds.Reset()
	m.input.ClearEdges()
	return m, tickCmd(gen, m.config.TickInterval())
}

// handleTick runs one simulation step. Ticks from a stopped or replaced
// loop are dropped without rescheduling.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.game.Ticking() || msg.Gen != m.game.Generation() {
		return m, nil
	}

	m.holds.Apply(&m.input, m.game.Clock().Now())
	res := m.game.Tick(msg.Gen, m.input)
	m.input.ClearEdges()

	if res.GameOver {
		m.saveRun()
		return m, nil
	}
	return m, tickCmd(msg.Gen, m.config.TickInterval())
}

// saveRun records the finished run once. Failures are logged and ignored.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	st := m.game.State()
	if m.backend == nil {
		return
	}
	record := storage.RunRecord{
		RunID:    st.RunID,
		GameID:   m.game.ID(),
		Score:    st.Score,
		Duration: m.game.Duration(),
	}
	if err := m.backend.SaveRun(record); err != nil {
		m.logger.Warn("could not save run", "run", st.RunID, "error", err)
		return
	}
	m.logger.Info("run saved", "run", st.RunID, "score", st.Score, "duration", record.Duration.Round(time.Millisecond))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	f := m.game.Frame()
	Rasterize(m.screen, f)
	return RenderScreen(m.screen) + "\n" + HUD(f, m.width) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game *runner.Game, backend storage.Backend, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, backend, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
