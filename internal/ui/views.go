package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderOverlay renders the active prompt or confirm line, if any.
func (m Model) renderOverlay() string {
	switch {
	case m.prompt == promptCreate:
		return m.styles.Title.Render("create log: ") + m.promptInput.View()

	case m.prompt == promptAppend:
		return m.styles.Title.Render("add to "+m.openLog+": ") + m.promptInput.View()

	case m.confirm == confirmComplete:
		question := fmt.Sprintf("complete %q? [y/N]", m.confirmPreview)
		return m.styles.Danger.Render(question)

	case m.confirm == confirmDelete:
		question := fmt.Sprintf("delete log %q and all its entries? [y/N]", m.confirmTarget)
		return m.styles.Danger.Render(question)
	}
	return ""
}

// renderFooter renders the status line and key hints.
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.lastErr != nil:
		left = m.styles.Danger.Render(m.lastErr.Error())
	case m.status != "":
		left = m.styles.Success.Render(m.status)
	}

	hints := "enter open · n new · d delete · c complete · ? help · q quit"
	if m.currentView == ViewEntries {
		hints = "a add · c complete · J/K move · esc back · ? help · q quit"
	}
	right := m.styles.Muted.Render(hints)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

type helpItem struct {
	keys string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	sections := []helpSection{
		{
			title: "Collection",
			items: []helpItem{
				{"enter", "Open log"},
				{"n", "New log"},
				{"d", "Delete log"},
				{"c", "Complete first entry"},
				{"/", "Filter logs"},
			},
		},
		{
			title: "Entries",
			items: []helpItem{
				{"a", "Add entry"},
				{"c", "Complete first entry"},
				{"J/K", "Move entry down/up"},
				{"esc", "Back to collection"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("tasklog help"))
	b.WriteString("\n\n")
	for _, section := range sections {
		b.WriteString(m.styles.Index.Render(section.title))
		b.WriteByte('\n')
		for _, item := range section.items {
			fmt.Fprintf(&b, "  %s  %s\n",
				m.styles.Text.Render(fmt.Sprintf("%-10s", item.keys)),
				m.styles.Muted.Render(item.desc))
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.styles.Muted.Render("press any key to close"))
	return b.String()
}
