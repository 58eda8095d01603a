package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"movieShelf/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Terminal is a full-screen Prompter. Each question runs its own bubbletea
// program that redraws the current screen with the answers given so far.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	theme  *Theme
	layout *Layout
	header string

	title      string
	body       string
	transcript []string
}

func NewTerminal(in io.Reader, out io.Writer, opts ...Option) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	s := newSettings(opts)
	return &Terminal{
		in:     in,
		out:    out,
		theme:  NewTheme(out),
		layout: NewLayout(s.width),
		header: s.header,
	}
}

func (t *Terminal) Screen(title, body string) {
	t.title = title
	t.body = body
	t.transcript = nil
}

func (t *Terminal) Menu(options []string) (int, error) {
	m := newMenuPrompt(t.frame(), options)
	if err := t.run(m); err != nil {
		return 0, err
	}
	logrus.WithField("choice", menuLabel(options, m.choice)).Debug("menu choice")
	return m.choice, nil
}

func (t *Terminal) YesNo(question string) (bool, error) {
	m := newConfirmPrompt(t.frame(), question)
	if err := t.run(m); err != nil {
		return false, err
	}

	answer := "no"
	if m.answer {
		answer = "yes"
	}
	t.record(question+" (y/n)", answer)
	return m.answer, nil
}

func (t *Terminal) String(question string) (string, error) {
	m := newInputPrompt(t.frame(), question, nil)
	if err := t.run(m); err != nil {
		return "", err
	}
	t.record(question, m.value)
	return m.value, nil
}

func (t *Terminal) Number(question string, wantFloat bool) (float64, error) {
	m := newInputPrompt(t.frame(), question, func(text string) error {
		if _, err := parseNumber(text, wantFloat); err != nil {
			if wantFloat {
				return errors.New("Please enter a number.")
			}
			return errors.New("Please enter a whole number.")
		}
		return nil
	})
	if err := t.run(m); err != nil {
		return 0, err
	}

	n, _ := parseNumber(m.value, wantFloat)
	t.record(question, m.value)
	return n, nil
}

func (t *Terminal) Path(question, dir string) (string, error) {
	m := newPathPrompt(t.frame(), question, dir)
	if err := t.run(m); err != nil {
		return "", err
	}
	t.record(question, m.value)
	return m.value, nil
}

func (t *Terminal) Continue() error {
	return t.run(newPausePrompt(t.frame()))
}

func (t *Terminal) frame() frame {
	return frame{
		header:     t.header,
		title:      t.title,
		body:       t.body,
		transcript: t.transcript,
		theme:      t.theme,
		layout:     t.layout,
	}
}

func (t *Terminal) record(question, answer string) {
	t.transcript = append(t.transcript, question+": "+answer)
}

func (t *Terminal) run(m *promptModel) error {
	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out))
	if _, err := p.Run(); err != nil {
		logrus.WithField("mode", m.mode).WithError(err).Error("prompt failed")
		return fmt.Errorf("%w: %v", session.ErrInputClosed, err)
	}
	if m.aborted || !m.done {
		return session.ErrInputClosed
	}
	logrus.WithFields(logrus.Fields{"mode": m.mode, "title": t.title}).Debug("prompt answered")
	return nil
}

func menuLabel(options []string, choice int) string {
	if choice < 1 || choice > len(options) {
		return strconv.Itoa(choice)
	}
	return options[choice-1]
}
