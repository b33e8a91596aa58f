package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/interaction"
)

func plainStyle() lipgloss.Style {
	return lipgloss.NewStyle()
}

var hitRegion = interaction.Region{X: 0, Y: 0, Width: 10, Height: 1}

func mouseMotion(x, y int) tea.Msg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func mousePress(x, y int) tea.Msg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func mouseRelease(x, y int) tea.Msg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func keyEnter() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// click delivers a full press-release gesture inside the region.
func click(update func(tea.Msg)) {
	update(mousePress(1, 0))
	update(mouseRelease(1, 0))
}
