package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("94")).
			Padding(0, 1)

	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("94")).
			Padding(1, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(26)

	cardSelectedStyle = cardStyle.Copy().
				BorderForeground(lipgloss.Color("208")).
				Bold(false)

	headerStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	soldOutStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// statusStyle mapeo fijo de colores del tablero de pedidos; cualquier
// estado no reconocido cae al gris.
func statusStyle(s entity.Status) lipgloss.Style {
	var color lipgloss.Color
	switch s.Color() {
	case "red":
		color = lipgloss.Color("196")
	case "orange":
		color = lipgloss.Color("208")
	case "green":
		color = lipgloss.Color("42")
	default:
		color = lipgloss.Color("245")
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
