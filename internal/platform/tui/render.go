package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/autosnake/internal/core"
)

// colorStyles maps palette slots to terminal colors.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorBoard:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorFood:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorSnakeHead: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorSnakeBody: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBanner:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of same-colored cells in a row is styled once.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		run = run[:0]
		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				sb.WriteString(styleFor(current).Render(string(run)))
				run, current = run[:0], cell.Color
			}
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(styleFor(current).Render(string(run)))
		}
	}
	return sb.String()
}

// HUD is the status line shown above the board.
type HUD struct {
	Title    string
	Scores   Scores
	State    core.GameState
	Interval time.Duration
}

// RenderHUD formats the status line.
func RenderHUD(h HUD) string {
	field := func(label string, value any) string {
		return labelStyle.Render(label+" ") + valueStyle.Render(fmt.Sprint(value))
	}

	parts := []string{
		titleStyle.Render(h.Title),
		field("score", h.Scores.Current),
		field("high", h.Scores.High),
		field("avg", h.Scores.Average),
		field("lives", h.State.Lives),
		field("tick", h.Interval),
		phaseStyle[h.State.Phase].Render(h.State.Phase.String()),
	}
	if h.State.Autopilot {
		parts = append(parts, autoStyle.Render("AUTO"))
	}
	return strings.Join(parts, "  ")
}
