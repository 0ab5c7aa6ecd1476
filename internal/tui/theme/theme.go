// Package theme defines color themes for the budgetcut TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Surface      lipgloss.Color // Card/panel backgrounds
	Border       lipgloss.Color
	BorderAccent lipgloss.Color // Focused card borders
	TextDim      lipgloss.Color // Hints, axis labels
	TextMuted    lipgloss.Color // Labels, metadata
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	Good         lipgloss.Color // Goal reached
	Warn         lipgloss.Color // Goal missed
	Series       []lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Surface:      lipgloss.Color("#1C1B1A"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Good:         lipgloss.Color("#879A39"),
	Warn:         lipgloss.Color("#DA702C"),
	Series: []lipgloss.Color{
		"#3AA99F", "#4385BE", "#DA702C", "#8B7EC8", "#D0A215", "#879A39", "#CE5D97",
	},
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Surface:      lipgloss.Color("#24283B"),
	Border:       lipgloss.Color("#565F89"),
	BorderAccent: lipgloss.Color("#7AA2F7"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7AA2F7"),
	AccentBright: lipgloss.Color("#A9C1FF"),
	Good:         lipgloss.Color("#9ECE6A"),
	Warn:         lipgloss.Color("#FF9E64"),
	Series: []lipgloss.Color{
		"#7AA2F7", "#9ECE6A", "#FF9E64", "#BB9AF7", "#E0AF68", "#7DCFFF", "#F7768E",
	},
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:         "terminal",
	Surface:      lipgloss.Color("0"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Good:         lipgloss.Color("2"),
	Warn:         lipgloss.Color("3"),
	Series:       []lipgloss.Color{"6", "4", "3", "5", "2", "1", "14"},
}

// All available themes.
var All = []Theme{FlexokiDark, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// SeriesColor returns the i-th series color, cycling.
func (t Theme) SeriesColor(i int) lipgloss.Color {
	return t.Series[i%len(t.Series)]
}
