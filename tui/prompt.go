package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const browserLimit = 10

// promptModel is a bubbletea model that asks a single question and quits
// once it has an answer or the user presses ctrl+c.
type promptModel struct {
	frame
	mode     Mode
	question string

	// menu
	options []string
	cursor  int
	choice  int

	// input and path
	input    textinput.Model
	validate func(string) error
	browser  *FileBrowser
	value    string

	answer  bool
	notice  string
	done    bool
	aborted bool
}

func newMenuPrompt(f frame, options []string) *promptModel {
	return &promptModel{frame: f, mode: MenuMode, options: options}
}

func newInputPrompt(f frame, question string, validate func(string) error) *promptModel {
	ti := textinput.New()
	ti.Prompt = IconArrowRight + " "
	ti.Width = f.layout.Width() - 4
	ti.Focus()

	return &promptModel{
		frame:    f,
		mode:     InputMode,
		question: question,
		input:    ti,
		validate: validate,
	}
}

func newPathPrompt(f frame, question, dir string) *promptModel {
	m := newInputPrompt(f, question, nil)
	m.mode = PathMode
	m.browser = NewFileBrowser(dir)
	m.input.ShowSuggestions = true
	m.input.SetSuggestions(m.browser.Suggestions())
	return m
}

func newConfirmPrompt(f frame, question string) *promptModel {
	return &promptModel{frame: f, mode: ConfirmMode, question: question}
}

func newPausePrompt(f frame) *promptModel {
	return &promptModel{frame: f, mode: PauseMode}
}

func (m *promptModel) Init() tea.Cmd {
	if m.mode == InputMode || m.mode == PathMode {
		return tea.Batch(tea.ClearScreen, textinput.Blink)
	}
	return tea.ClearScreen
}

func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		if m.mode == InputMode || m.mode == PathMode {
			m.input.Width = m.layout.Width() - 4
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)
	}

	if m.mode == InputMode || m.mode == PathMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *promptModel) View() string {
	var b strings.Builder
	theme := m.theme

	b.WriteString(RenderScreen(m.header, m.title, m.body, m.layout.Width(), theme))
	b.WriteString("\n")

	for _, line := range m.transcript {
		b.WriteString(theme.MutedTextStyle.Render(line))
		b.WriteString("\n")
	}

	switch m.mode {
	case MenuMode:
		for i, option := range m.options {
			number := theme.MenuNumberStyle.Render(strconv.Itoa(i+1) + ".")
			if i == m.cursor {
				b.WriteString(IconArrowRight + " " + number + " " + theme.SelectedItemStyle.Render(option))
			} else {
				b.WriteString("  " + number + " " + theme.NormalTextStyle.Render(option))
			}
			b.WriteString("\n")
		}

	case InputMode:
		b.WriteString(theme.PromptStyle.Render(m.question + ":"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")

	case PathMode:
		b.WriteString(m.browser.Listing(browserLimit, theme))
		b.WriteString("\n\n")
		b.WriteString(theme.PromptStyle.Render(m.question + ":"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")

	case ConfirmMode:
		b.WriteString(theme.PromptStyle.Render(m.question + " (y/n)"))
		b.WriteString("\n")

	case PauseMode:
		b.WriteString(theme.PromptStyle.Render("Press any key to continue..."))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(ErrorText(m.notice, theme))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help())
	return b.String()
}

func (m *promptModel) help() string {
	var keys []string
	switch m.mode {
	case MenuMode:
		keys = append(keys,
			KeyHelp("↑/↓", "move", m.theme),
			KeyHelp("1-"+strconv.Itoa(len(m.options)), "choose", m.theme),
			KeyHelp("enter", "select", m.theme))
	case InputMode:
		keys = append(keys, KeyHelp("enter", "submit", m.theme))
	case PathMode:
		keys = append(keys,
			KeyHelp("tab", "complete", m.theme),
			KeyHelp("ctrl+o", "hidden files", m.theme),
			KeyHelp("enter", "submit", m.theme))
	case ConfirmMode:
		keys = append(keys, KeyHelp("y/n", "answer", m.theme))
	}
	keys = append(keys, KeyHelp("ctrl+c", "quit", m.theme))
	return strings.Join(keys, "  ")
}
