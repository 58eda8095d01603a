package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"movieShelf/session"

)

const clearSequence = "\x1b[H\x1b[2J"

// Console is a line-oriented Prompter. It reads answers one line at a time
// and works on any reader and writer, so it also serves pipes and tests.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	theme  *Theme
	layout *Layout
	header string
	clear  bool
}

func NewConsole(in io.Reader, out io.Writer, opts ...Option) *Console {
	s := newSettings(opts)
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		theme:  NewTheme(out),
		layout: NewLayout(s.width),
		header: s.header,
		clear:  s.clear,
	}
}

func (c *Console) Screen(title, body string) {
	if c.clear {
		fmt.Fprint(c.out, clearSequence)
	}
	fmt.Fprintln(c.out, RenderScreen(c.header, title, body, c.layout.Width(), c.theme))
}

func (c *Console) Menu(options []string) (int, error) {
	for i, option := range options {
		fmt.Fprintf(c.out, "  %s %s\n", c.theme.MenuNumberStyle.Render(strconv.Itoa(i+1)+"."), option)
	}

	for {
		line, err := c.ask(fmt.Sprintf("Select an option [1-%d]", len(options)))
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 1 && choice <= len(options) {
			return choice, nil
		}
		c.notice(fmt.Sprintf("Invalid selection %q. Please enter a number between 1 and %d.", strings.TrimSpace(line), len(options)))
	}
}

func (c *Console) YesNo(question string) (bool, error) {
	for {
		line, err := c.ask(question + " (y/n)")
		if err != nil {
			return false, err
		}

		if answer, ok := parseYesNo(line); ok {
			return answer, nil
		}
		c.notice("Please answer y or n.")
	}
}

func (c *Console) String(question string) (string, error) {
	return c.ask(question)
}

func (c *Console) Number(question string, wantFloat bool) (float64, error) {
	for {
		line, err := c.ask(question)
		if err != nil {
			return 0, err
		}

		if n, err := parseNumber(line, wantFloat); err == nil {
			return n, nil
		}
		if wantFloat {
			c.notice("Please enter a number.")
		} else {
			c.notice("Please enter a whole number.")
		}
	}
}

// Path lists the CSV files in dir before asking for a path.
func (c *Console) Path(question, dir string) (string, error) {
	fb := NewFileBrowser(dir)
	fmt.Fprintln(c.out, fb.Listing(10, c.theme))
	return c.ask(question)
}

func (c *Console) Continue() error {
	_, err := c.ask("Press Enter to continue...")
	return err
}

// ask prints a prompt and returns the answer without its line ending.
func (c *Console) ask(prompt string) (string, error) {
	if !strings.HasSuffix(prompt, "...") {
		prompt += ":"
	}
	fmt.Fprint(c.out, c.theme.PromptStyle.Render(prompt)+" ")

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		fmt.Fprintln(c.out)
		if errors.Is(err, io.EOF) {
			return "", session.ErrInputClosed
		}
		return "", fmt.Errorf("%w: %v", session.ErrInputClosed, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) notice(text string) {
	fmt.Fprintln(c.out, ErrorText(text, c.theme))
}

func parseYesNo(answer string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

func parseNumber(text string, wantFloat bool) (float64, error) {
	text = strings.TrimSpace(text)
	if wantFloat {
		return strconv.ParseFloat(text, 64)
	}
	n, err := strconv.Atoi(text)
	return float64(n), err
}
