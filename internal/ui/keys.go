package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the interactive mode.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Collection actions
	Open   key.Binding
	Create key.Binding
	Delete key.Binding

	// Log actions
	Append   key.Binding
	Complete key.Binding
	SwapUp   key.Binding
	SwapDown key.Binding

	// Prompts
	Confirm key.Binding
	Decline key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open log"),
		),
		Create: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New log"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete log"),
		),
		Append: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add entry"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Complete first entry"),
		),
		SwapUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "Move entry up"),
		),
		SwapDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "Move entry down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "Confirm"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "Cancel"),
		),
	}
}
