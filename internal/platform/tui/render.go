package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorWhite; c++ {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}()

var (
	hudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boostStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const (
	fillRune   = '█'
	powerRune  = '◆'
	glowRune   = '░'
	groundRune = '▀'
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// cellMapper scales play-area pixels to screen cells.
type cellMapper struct {
	sx, sy float64
}

func newCellMapper(f runner.Frame, cols, rows int) cellMapper {
	return cellMapper{
		sx: float64(cols) / f.Width,
		sy: float64(rows) / f.Height,
	}
}

// rect covers every cell the pixel rectangle touches; it is never empty.
func (m cellMapper) rect(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * m.sx))
	y0 := int(math.Floor(r.Y * m.sy))
	x1 := int(math.Ceil(r.Right() * m.sx))
	y1 := int(math.Ceil(r.Bottom() * m.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func (m cellMapper) row(y float64) int {
	return int(math.Ceil(y * m.sy))
}

// Rasterize draws a frame onto the screen, scaling the play area to fill it.
func Rasterize(s *core.Screen, f runner.Frame) {
	s.Clear()
	if s.Width() == 0 || s.Height() == 0 || f.Width <= 0 || f.Height <= 0 {
		return
	}
	m := newCellMapper(f, s.Width(), s.Height())

	// Halos go under the ground line and every fill.
	for _, c := range f.Calls {
		if !c.Glow {
			continue
		}
		s.FillRect(m.rect(c.Rect).Grow(1), glowRune, c.Color)
	}
	s.DrawHLine(0, m.row(f.GroundY), s.Width(), groundRune, core.ColorGreen)
	for _, c := range f.Calls {
		fill := fillRune
		if c.Glow {
			fill = powerRune
		}
		s.FillRect(m.rect(c.Rect), fill, c.Color)
	}

	mid := s.Height() / 2
	switch f.Phase {
	case runner.PhaseIdle:
		s.DrawTextCentered(mid-1, "SIDE RUNNER", core.ColorYellow)
		s.DrawTextCentered(mid+1, "press enter to start", core.ColorWhite)
		if f.HighScore > 0 {
			s.DrawTextCentered(mid+2, fmt.Sprintf("best %d", f.HighScore), core.ColorGray)
		}
	case runner.PhaseGameOver:
		s.DrawTextCentered(mid-1, "GAME OVER", core.ColorRed)
		s.DrawTextCentered(mid+1, fmt.Sprintf("score %d   best %d", f.Score, f.HighScore), core.ColorWhite)
		s.DrawTextCentered(mid+2, "press r to restart", core.ColorGray)
	}
}

// HUD renders the status line shown under the play area.
func HUD(f runner.Frame, width int) string {
	field := func(label, value string) string {
		return hudLabelStyle.Render(label+" ") + hudStyle.Render(value)
	}

	parts := []string{
		field("score", fmt.Sprintf("%d", f.Score)),
		field("best", fmt.Sprintf("%d", f.HighScore)),
		field("speed", fmt.Sprintf("%.0f", f.Speed)),
		field("time", fmt.Sprintf("%.1fs", f.Duration.Seconds())),
	}
	if f.Boosted {
		parts = append(parts, boostStyle.Render(fmt.Sprintf("BOOST %.1fs", f.BoostRemaining.Seconds())))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, "   "))
}
