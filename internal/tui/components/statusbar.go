package components

import (
	"strings"

	"github.com/theirongolddev/budgetcut/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and source info on the right.
func RenderStatusBar(width int, source string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [←/→]tabs  [?]help  [q]uit"
	right := ""
	if source != "" {
		right = source + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
