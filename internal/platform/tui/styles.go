package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/autosnake/internal/core"
)

// Styles shared by the HUD and the scoreboard.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	autoStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Padding(0, 1)
)

// phaseStyle colors the lifecycle label.
var phaseStyle = map[core.Phase]lipgloss.Style{
	core.PhaseRunning:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.PhasePaused:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.PhaseGameOver: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
}
