package session

import "errors"

// ErrInputClosed is returned by a Prompter when its input ends, for example
// on EOF or Ctrl+C. It is the only way a session stops without a confirmed exit.
var ErrInputClosed = errors.New("input closed")

// Prompter draws screens and collects validated input. Every method blocks
// until the user answers; invalid answers are re-prompted, never returned.
type Prompter interface {
	Screen(title, body string)
	// Menu shows a numbered list and returns a choice in [1, len(options)].
	Menu(options []string) (int, error)
	YesNo(question string) (bool, error)
	String(question string) (string, error)
	Number(question string, wantFloat bool) (float64, error)
	Continue() error
}

// PathPrompter is implemented by prompters that can offer the files in dir
// while asking for a path.
type PathPrompter interface {
	Path(question, dir string) (string, error)
}
