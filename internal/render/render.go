// Package render turns ordered entry listings into colored terminal
// banners. It is pure string building: callers decide where the output
// goes, and the core packages never import it.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 60

// Renderer formats titles and entry listings for one terminal width.
type Renderer struct {
	theme  Theme
	styles Styles
	width  int
}

// New returns a Renderer using the named theme. A width of zero or
// less selects the default banner width.
func New(themeName string, width int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	theme := GetTheme(themeName)
	return &Renderer{theme: theme, styles: theme.Styles(), width: width}
}

// Log renders a banner with the centered title followed by the
// numbered entries, one per line, in the given order.
func (r *Renderer) Log(title string, entries []string) string {
	var b strings.Builder
	b.WriteString(r.banner(title))
	b.WriteByte('\n')

	if len(entries) == 0 {
		b.WriteString(r.styles.Muted.Render("(empty)"))
		b.WriteByte('\n')
		return b.String()
	}

	for i, entry := range entries {
		index := r.styles.Index.Render(fmt.Sprintf("%3d.", i+1))
		b.WriteString(index)
		b.WriteByte(' ')
		b.WriteString(r.styles.Text.Render(entry))
		b.WriteByte('\n')
	}
	return b.String()
}

// Names renders the log-collection listing under a fixed banner.
func (r *Renderer) Names(names []string) string {
	var b strings.Builder
	b.WriteString(r.banner("logs"))
	b.WriteByte('\n')

	if len(names) == 0 {
		b.WriteString(r.styles.Muted.Render("(no logs)"))
		b.WriteByte('\n')
		return b.String()
	}

	for _, name := range names {
		b.WriteString(r.styles.Text.Render(name))
		b.WriteByte('\n')
	}
	return b.String()
}

// Message renders a success line.
func (r *Renderer) Message(text string) string {
	return r.styles.Success.Render(text)
}

// Error renders a failure line.
func (r *Renderer) Error(text string) string {
	return r.styles.Danger.Render(text)
}

// banner draws a full-width rule above and below the centered title.
func (r *Renderer) banner(title string) string {
	rule := r.styles.Border.Render(strings.Repeat("─", r.width))
	centered := lipgloss.PlaceHorizontal(r.width, lipgloss.Center, r.styles.Title.Render(title))
	return rule + "\n" + centered + "\n" + rule
}
