package tui

// Mode is the kind of answer a prompt collects.
type Mode int

const (
	MenuMode Mode = iota
	InputMode
	PathMode
	ConfirmMode
	PauseMode
)

func (m Mode) String() string {
	switch m {
	case MenuMode:
		return "menu"
	case InputMode:
		return "input"
	case PathMode:
		return "path"
	case ConfirmMode:
		return "confirm"
	case PauseMode:
		return "pause"
	}
	return "unknown"
}

// frame is the screen a prompt is drawn under. It stays the same for every
// prompt until the session shows the next screen.
type frame struct {
	header     string
	title      string
	body       string
	transcript []string
	theme      *Theme
	layout     *Layout
}
