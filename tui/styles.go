package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#3B82F6") // Blue
	ColorAccent    = lipgloss.Color("#10B981") // Green

	// Status colors
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red

	// UI colors
	ColorBorder    = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F9FAFB") // Almost white
	ColorTextMuted = lipgloss.Color("#9CA3AF") // Gray
	ColorHighlight = lipgloss.Color("#8B5CF6") // Light purple
)

type Theme struct {
	HeaderStyle     lipgloss.Style
	RuleStyle       lipgloss.Style
	TitleStyle      lipgloss.Style
	BodyStyle       lipgloss.Style
	NormalTextStyle lipgloss.Style
	MutedTextStyle  lipgloss.Style
	PromptStyle     lipgloss.Style

	MenuNumberStyle   lipgloss.Style
	SelectedItemStyle lipgloss.Style
	ErrorStyle        lipgloss.Style
	SuccessStyle      lipgloss.Style
	WarningStyle      lipgloss.Style
	HelpStyle         lipgloss.Style
}

// NewTheme returns the default theme with colour support detected from w.
func NewTheme(w io.Writer) *Theme {
	return DefaultTheme(lipgloss.NewRenderer(w))
}

// DefaultTheme builds styles bound to r so colour support is detected from
// the writer the theme renders to.
func DefaultTheme(r *lipgloss.Renderer) *Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Theme{
		HeaderStyle: r.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		RuleStyle: r.NewStyle().
			Foreground(ColorBorder),

		TitleStyle: r.NewStyle().
			Bold(true).
			Foreground(ColorHighlight),

		BodyStyle: r.NewStyle().
			Foreground(ColorText),

		NormalTextStyle: r.NewStyle().
			Foreground(ColorText),

		MutedTextStyle: r.NewStyle().
			Foreground(ColorTextMuted),

		PromptStyle: r.NewStyle().
			Foreground(ColorSecondary).
			Bold(true),

		MenuNumberStyle: r.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		SelectedItemStyle: r.NewStyle().
			Foreground(ColorText).
			Background(lipgloss.Color("#312E81")). // Dark purple
			Bold(true),

		ErrorStyle: r.NewStyle().
			Foreground(ColorError).
			Bold(true),

		SuccessStyle: r.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),

		WarningStyle: r.NewStyle().
			Foreground(ColorWarning).
			Bold(true),

		HelpStyle: r.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true),
	}
}

const (
	IconCheck      = "✓"
	IconCross      = "✗"
	IconArrowRight = "▶"
	IconFolder     = "📁"
	IconFile       = "📄"
)

func SuccessText(text string, theme *Theme) string {
	return theme.SuccessStyle.Render(IconCheck + " " + text)
}

func ErrorText(text string, theme *Theme) string {
	return theme.ErrorStyle.Render(IconCross + " " + text)
}

func WarningText(text string, theme *Theme) string {
	return theme.WarningStyle.Render("⚠ " + text)
}

func KeyHelp(key, description string, theme *Theme) string {
	keyStyle := theme.MenuNumberStyle.Copy().Padding(0, 1)
	return keyStyle.Render(key) + " " + theme.HelpStyle.Render(description)
}

func Separator(width int, char string, style lipgloss.Style) string {
	if width < 1 {
		width = 1
	}
	return style.Render(strings.Repeat(char, width))
}
