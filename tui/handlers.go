package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *promptModel) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	// Global
	if key == "ctrl+c" {
		m.aborted = true
		return tea.Quit
	}

	switch m.mode {
	case MenuMode:
		return m.handleMenuKeys(key)
	case InputMode, PathMode:
		return m.handleInputKeys(msg)
	case ConfirmMode:
		return m.handleConfirmKeys(key)
	case PauseMode:
		m.done = true
		return tea.Quit
	}

	return nil
}

func (m *promptModel) handleMenuKeys(key string) tea.Cmd {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.options) - 1
		}
		m.notice = ""
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
		m.notice = ""
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = len(m.options) - 1
	case "enter":
		return m.choose(m.cursor + 1)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.options) {
			m.cursor = n - 1
			return m.choose(n)
		}
		m.notice = fmt.Sprintf("Invalid selection %q. Please enter a number between 1 and %d.", key, len(m.options))
	}
	return nil
}

func (m *promptModel) choose(n int) tea.Cmd {
	m.choice = n
	m.done = true
	return tea.Quit
}

func (m *promptModel) handleInputKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		value := m.input.Value()
		if m.validate != nil {
			if err := m.validate(value); err != nil {
				m.notice = err.Error()
				return nil
			}
		}
		m.value = value
		m.done = true
		return tea.Quit

	case "ctrl+o":
		if m.browser != nil {
			m.browser.ToggleHidden()
			m.input.SetSuggestions(m.browser.Suggestions())
		}
		return nil
	}

	m.notice = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *promptModel) handleConfirmKeys(key string) tea.Cmd {
	switch key {
	case "y", "Y":
		m.answer = true
	case "n", "N":
		m.answer = false
	default:
		m.notice = "Please answer y or n."
		return nil
	}
	m.done = true
	return tea.Quit
}
