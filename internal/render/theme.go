package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used for banners, entries and messages.
type Theme struct {
	Name string

	Border  string
	Title   string
	Index   string
	Text    string
	Muted   string
	Success string
	Danger  string
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Title)).
			Bold(true),

		Index: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Index)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
	}
}

// Styles holds the resolved lipgloss styles for a theme.
type Styles struct {
	Border  lipgloss.Style
	Title   lipgloss.Style
	Index   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Danger  lipgloss.Style
}

var themes = map[string]Theme{
	"Dracula":  draculaTheme(),
	"Nightfox": nightfoxTheme(),
	"Paper":    paperTheme(),
}

var themeOrder = []string{"Dracula", "Nightfox", "Paper"}

// GetTheme returns a theme by name, falling back to Dracula.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the theme name following current in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

func draculaTheme() Theme {
	return Theme{
		Name:    "Dracula",
		Border:  "#BD93F9",
		Title:   "#FF79C6",
		Index:   "#8BE9FD",
		Text:    "#F8F8F2",
		Muted:   "#6272A4",
		Success: "#50FA7B",
		Danger:  "#FF5555",
	}
}

func nightfoxTheme() Theme {
	return Theme{
		Name:    "Nightfox",
		Border:  "#719CD6",
		Title:   "#9D79D6",
		Index:   "#63CDCF",
		Text:    "#CDCECF",
		Muted:   "#71839B",
		Success: "#81B29A",
		Danger:  "#C94F6D",
	}
}

func paperTheme() Theme {
	return Theme{
		Name:    "Paper",
		Border:  "#5F5F87",
		Title:   "#8700AF",
		Index:   "#005F87",
		Text:    "#444444",
		Muted:   "#878787",
		Success: "#008700",
		Danger:  "#D70000",
	}
}
