package gallery

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/weftui/weft/theme"
)

// Update handles Bubble Tea messages and routes them to the showcased
// components.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			if !m.input.Focused() {
				m.quitting = true
				return m, tea.Quit
			}
		case "tab":
			m.input.Blur()
			m.cycleFocus(1)
			return m, nil
		case "shift+tab":
			m.input.Blur()
			m.cycleFocus(-1)
			return m, nil
		case "i":
			if !m.input.Focused() {
				return m, m.input.Focus()
			}
		case "esc":
			if m.input.Focused() {
				m.input.Blur()
				return m, nil
			}
		case "l":
			if !m.input.Focused() {
				m.skeleton.SetLoading(!m.skeleton.Loading())
				return m, m.skeleton.Init()
			}
		}
	}

	var cmds []tea.Cmd

	if m.input.Focused() {
		if cmd := m.input.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	} else {
		m.button.Update(msg)
		m.alert.Update(msg)
		m.collapsible.Update(msg)
		m.dialog.Update(msg)
		m.radio.Update(msg)
		m.picker.Update(msg)
	}

	if cmd := m.skeleton.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	m.applyThemeSelection()
	return m, tea.Batch(cmds...)
}

func (m *Model) cycleFocus(step int) {
	if len(m.focusables) == 0 {
		return
	}
	if m.focusIdx >= 0 {
		m.focusables[m.focusIdx].Blur()
	}
	m.focusIdx = (m.focusIdx + step + len(m.focusables)) % len(m.focusables)
	m.focusables[m.focusIdx].Focus()
}

// applyThemeSelection follows the radio group, but only on an actual change
// so a custom theme passed at launch survives until the user picks another.
func (m *Model) applyThemeSelection() {
	choice := m.radio.Value()
	if choice == m.themeChoice {
		return
	}
	m.themeChoice = choice

	switch choice {
	case "dark":
		m.theme = theme.Dark()
	default:
		m.theme = theme.Default()
	}
	m.log.WithTheme(m.theme.Name).Debug("theme switched")
}
