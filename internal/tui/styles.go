package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	buttonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)

	markerStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedMarkerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	valueStyle = lipgloss.NewStyle().Bold(true)

	popupStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1)

	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func swatch(hex string, width int) string {
	if width <= 0 {
		return ""
	}
	cells := make([]byte, width)
	for i := range cells {
		cells[i] = ' '
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(string(cells))
}
