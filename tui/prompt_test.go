package tui

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame() frame {
	return frame{
		header: DefaultHeader,
		title:  "Main Menu",
		body:   "Choose an option:",
		theme:  NewTheme(io.Discard),
		layout: NewLayout(80),
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *promptModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestMenuPromptCursor(t *testing.T) {
	m := newMenuPrompt(testFrame(), []string{"Add", "Update", "Exit"})

	press(m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"))
	assert.Equal(t, 2, m.cursor)

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.cursor, "down wraps to the top")

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, m.cursor, "up wraps to the bottom")

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.True(t, m.done)
	assert.Equal(t, 3, m.choice)
}

func TestMenuPromptDigitShortcut(t *testing.T) {
	m := newMenuPrompt(testFrame(), []string{"Add", "Update", "Exit"})

	press(m, runes("9"))
	assert.False(t, m.done)
	assert.Contains(t, m.notice, "between 1 and 3")

	press(m, runes("2"))
	assert.True(t, m.done)
	assert.Equal(t, 2, m.choice)
}

func TestPromptCtrlCAborts(t *testing.T) {
	for _, m := range []*promptModel{
		newMenuPrompt(testFrame(), []string{"Add"}),
		newInputPrompt(testFrame(), "Title", nil),
		newConfirmPrompt(testFrame(), "Exit?"),
		newPausePrompt(testFrame()),
	} {
		cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
		assert.NotNil(t, cmd, m.mode.String())
		assert.True(t, m.aborted, m.mode.String())
		assert.False(t, m.done, m.mode.String())
	}
}

func TestInputPromptCollectsText(t *testing.T) {
	m := newInputPrompt(testFrame(), "Title", nil)

	press(m, runes("Up"), runes("!"), tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "Up", m.input.Value())

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.done)
	assert.Equal(t, "Up", m.value)
}

func TestInputPromptValidation(t *testing.T) {
	m := newInputPrompt(testFrame(), "Year", func(s string) error {
		if s != "2009" {
			return errors.New("Please enter a whole number.")
		}
		return nil
	})

	press(m, runes("abc"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.done)
	assert.Equal(t, "Please enter a whole number.", m.notice)
	assert.Contains(t, m.View(), "Please enter a whole number.")

	m.input.SetValue("")
	press(m, runes("2009"))
	assert.Empty(t, m.notice, "typing clears the notice")

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.done)
	assert.Equal(t, "2009", m.value)
}

func TestConfirmPrompt(t *testing.T) {
	m := newConfirmPrompt(testFrame(), "Are you sure you want to exit?")

	press(m, runes("x"))
	assert.False(t, m.done)
	assert.Equal(t, "Please answer y or n.", m.notice)

	press(m, runes("Y"))
	assert.True(t, m.done)
	assert.True(t, m.answer)

	m = newConfirmPrompt(testFrame(), "Overwrite?")
	press(m, runes("n"))
	assert.True(t, m.done)
	assert.False(t, m.answer)
}

func TestPausePromptAnyKey(t *testing.T) {
	m := newPausePrompt(testFrame())
	press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.done)
}

func TestPromptWindowResize(t *testing.T) {
	m := newInputPrompt(testFrame(), "Title", nil)

	press(m, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60, m.layout.Width())
	assert.Equal(t, 56, m.input.Width)

	press(m, tea.WindowSizeMsg{Width: 10, Height: 20})
	assert.Equal(t, MinWidth, m.layout.Width())
}

func TestPromptView(t *testing.T) {
	f := testFrame()
	f.transcript = []string{"Title: Up"}
	m := newMenuPrompt(f, []string{"Add a Movie", "Exit"})

	view := m.View()
	assert.Contains(t, view, DefaultHeader)
	assert.Contains(t, view, "Main Menu")
	assert.Contains(t, view, "Choose an option:")
	assert.Contains(t, view, "Title: Up")
	assert.Contains(t, view, "1. Add a Movie")
	assert.Contains(t, view, "2. Exit")
	assert.Contains(t, view, "ctrl+c")
}

func TestPathPromptBrowser(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "movies.csv"), []byte("Title\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.csv"), []byte("Title\n"), 0644))

	m := newPathPrompt(testFrame(), "File path", dir)
	assert.Contains(t, m.View(), "movies.csv")
	assert.NotContains(t, m.View(), ".hidden.csv")

	press(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Contains(t, m.View(), ".hidden.csv")

	press(m, runes("movies.csv"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.done)
	assert.Equal(t, "movies.csv", m.value)
}

func TestTerminalScreenResetsTranscript(t *testing.T) {
	term := NewTerminal(nil, io.Discard)
	term.Screen("Add a Movie", "Please enter the movie details:")
	term.record("Title", "Up")

	f := term.frame()
	assert.Equal(t, "Add a Movie", f.title)
	assert.Equal(t, []string{"Title: Up"}, f.transcript)

	term.Screen("Movie Added", "")
	assert.Empty(t, term.frame().transcript)
}
