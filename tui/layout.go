package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultWidth = 135
	MinWidth     = 40
)

// Layout tracks the configured screen width and, when known, the terminal
// size. The effective width never exceeds the terminal.
type Layout struct {
	ConfiguredWidth int
	WindowWidth     int
	WindowHeight    int
}

func NewLayout(width int) *Layout {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Layout{ConfiguredWidth: width}
}

func (l *Layout) Update(width, height int) {
	l.WindowWidth = width
	l.WindowHeight = height
}

func (l *Layout) Width() int {
	width := l.ConfiguredWidth
	if l.WindowWidth > 0 {
		width = min(width, l.WindowWidth)
	}
	return max(width, MinWidth)
}

// RenderScreen draws the header, title and body sections:
//
//	=====================
//	|      header       |
//	=====================
//
//	       title
//	---------------------
//
//	body
func RenderScreen(header, title, body string, width int, theme *Theme) string {
	var lines []string

	lines = append(lines, Separator(width, "=", theme.RuleStyle))
	lines = append(lines, theme.RuleStyle.Render("|")+
		theme.HeaderStyle.Render(lipgloss.PlaceHorizontal(width-2, lipgloss.Center, header))+
		theme.RuleStyle.Render("|"))
	lines = append(lines, Separator(width, "=", theme.RuleStyle))
	lines = append(lines, "")

	lines = append(lines, theme.TitleStyle.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, title)))
	lines = append(lines, Separator(width, "-", theme.RuleStyle))
	lines = append(lines, "")

	if body != "" {
		lines = append(lines, theme.BodyStyle.Copy().Width(width).Render(body))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
