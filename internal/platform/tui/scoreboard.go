package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

const (
	scoreboardLimit = 100 // Runs loaded into the table
	tableChromeRows = 10  // Title, stats line, borders and help
)

var (
	scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreboardFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
	scoreboardEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Italic(true).
				Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Refresh, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// scoresLoadedMsg carries the result of a backend query.
type scoresLoadedMsg struct {
	scores []storage.ScoreEntry
	stats  *storage.GameStats
	err    error
}

// ScoreboardModel lists the best runs of one game.
type ScoreboardModel struct {
	backend  storage.Backend
	gameID   string
	title    string
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	err      error
	loading  bool
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard for gameID. Scores load when the
// program starts.
func NewScoreboardModel(backend storage.Backend, gameID, title string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		backend: backend,
		gameID:  gameID,
		title:   title,
		loading: true,
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		width:   width,
		height:  height,
	}
	m.help.Width = width
	m.table = newScoreTable(height)
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Time", Width: 8},
			{Title: "Run", Width: 10},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-tableChromeRows, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// loadScores queries the backend off the update loop.
func loadScores(backend storage.Backend, gameID string) tea.Cmd {
	return func() tea.Msg {
		if backend == nil {
			return scoresLoadedMsg{err: fmt.Errorf("no scores database")}
		}
		scores, err := backend.TopScores(gameID, scoreboardLimit)
		if err != nil {
			return scoresLoadedMsg{err: err}
		}
		stats, err := backend.Stats(gameID)
		return scoresLoadedMsg{scores: scores, stats: stats, err: err}
	}
}

func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		runID := s.RunID
		if len(runID) > 8 {
			runID = runID[:8]
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%.1fs", s.Duration.Seconds()),
			runID,
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init starts loading scores.
func (m ScoreboardModel) Init() tea.Cmd {
	return loadScores(m.backend, m.gameID)
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, loadScores(m.backend, m.gameID)
		}

	case scoresLoadedMsg:
		m.loading = false
		m.scores, m.stats, m.err = msg.scores, msg.stats, msg.err
		m.table.SetRows(scoreRows(m.scores))
		m.table.GotoTop()
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-tableChromeRows, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(scoreboardTitleStyle.Render("BEST RUNS - "+m.title), m.width))
	b.WriteString("\n\n")
	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText(scoreboardFrameStyle.Render(m.body()), m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return hudLabelStyle.Render(fmt.Sprintf(
		"runs %d   best %d   avg %.0f   played %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.TotalPlaytime.Round(time.Second),
	))
}

func (m ScoreboardModel) body() string {
	switch {
	case m.loading:
		return scoreboardEmptyStyle.Render("Loading...")
	case m.err != nil:
		return scoreboardEmptyStyle.Render("Could not load scores:\n" + m.err.Error())
	case len(m.scores) == 0:
		return scoreboardEmptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func centerText(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// RunScoreboard shows the scoreboard until the user quits.
func RunScoreboard(backend storage.Backend, gameID, title string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(backend, gameID, title, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
