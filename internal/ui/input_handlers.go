package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marolt/tasklog/internal/prefs"
	"github.com/marolt/tasklog/internal/render"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.prompt != promptNone {
		return m.handlePromptKey(msg)
	}
	if m.confirm != confirmNone {
		return m.handleConfirmKey(msg)
	}

	// While the list filter input is active all keys belong to it.
	if m.activeList().FilterState() == list.Filtering {
		return m.updateActiveList(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = render.GetTheme(render.NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.currentView == ViewEntries {
			m.currentView = ViewCollection
			m.openLog = ""
		}
		return m, nil
	}

	switch m.currentView {
	case ViewCollection:
		return m.handleCollectionKey(msg)
	case ViewEntries:
		return m.handleEntriesKey(msg)
	}
	return m, nil
}

func (m Model) handleCollectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open):
		if name, ok := m.selectedLog(); ok {
			return m, loadEntriesCmd(m.engine, name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Create):
		m.prompt = promptCreate
		m.promptInput.Placeholder = "new log name"
		m.promptInput.SetValue("")
		return m, m.promptInput.Focus()

	case key.Matches(msg, m.keys.Delete):
		if name, ok := m.selectedLog(); ok {
			m.confirm = confirmDelete
			m.confirmTarget = name
		}
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		if name, ok := m.selectedLog(); ok {
			return m.openCompleteConfirm(name)
		}
		return m, nil
	}
	return m.updateActiveList(msg)
}

func (m Model) handleEntriesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Append):
		m.prompt = promptAppend
		m.promptInput.Placeholder = "new entry"
		m.promptInput.SetValue("")
		return m, m.promptInput.Focus()

	case key.Matches(msg, m.keys.Complete):
		return m.openCompleteConfirm(m.openLog)

	case key.Matches(msg, m.keys.SwapUp):
		// Swap positions come from the item itself; the list index is
		// a display row, not a log position.
		if item, ok := m.entryList.SelectedItem().(entryItem); ok && item.index > 1 {
			m.entryList.Select(m.entryList.Index() - 1)
			return m, swapCmd(m.engine, m.openLog, item.index, item.index-1)
		}
		return m, nil

	case key.Matches(msg, m.keys.SwapDown):
		if item, ok := m.entryList.SelectedItem().(entryItem); ok && item.index < len(m.entryList.Items()) {
			m.entryList.Select(m.entryList.Index() + 1)
			return m, swapCmd(m.engine, m.openLog, item.index, item.index+1)
		}
		return m, nil
	}
	return m.updateActiveList(msg)
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompt = promptNone
		m.promptInput.Blur()
		return m, nil

	case "enter":
		value := m.promptInput.Value()
		kind := m.prompt
		m.prompt = promptNone
		m.promptInput.Blur()

		switch kind {
		case promptCreate:
			name := strings.TrimSpace(value)
			if name == "" {
				return m, nil
			}
			return m, createLogCmd(m.store, name)
		case promptAppend:
			if value == "" {
				return m, nil
			}
			return m, appendEntryCmd(m.engine, m.openLog, value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kind := m.confirm
	target := m.confirmTarget

	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.confirm = confirmNone
		m.confirmTarget = ""
		m.confirmPreview = ""
		switch kind {
		case confirmComplete:
			return m, completeFirstCmd(m.engine, target)
		case confirmDelete:
			cmd := deleteLogCmd(m.store, target)
			if m.currentView == ViewEntries && m.openLog == target {
				m.currentView = ViewCollection
				m.openLog = ""
			}
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Decline):
		m.confirm = confirmNone
		m.confirmTarget = ""
		m.confirmPreview = ""
		m.status = "cancelled"
		return m, nil
	}
	return m, nil
}

// openCompleteConfirm previews the first entry and opens the confirm
// overlay.
func (m Model) openCompleteConfirm(name string) (tea.Model, tea.Cmd) {
	entry, err := m.engine.CompleteFirst(name)
	if err != nil {
		m.lastErr = err
		return m, nil
	}
	m.confirm = confirmComplete
	m.confirmTarget = name
	m.confirmPreview = entry
	m.lastErr = nil
	return m, nil
}

func (m Model) selectedLog() (string, bool) {
	item, ok := m.logList.SelectedItem().(logItem)
	if !ok {
		return "", false
	}
	return item.name, true
}

func (m *Model) activeList() *list.Model {
	if m.currentView == ViewEntries {
		return &m.entryList
	}
	return &m.logList
}

func (m Model) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.currentView == ViewEntries {
		m.entryList, cmd = m.entryList.Update(msg)
	} else {
		m.logList, cmd = m.logList.Update(msg)
	}
	return m, cmd
}

func (m *Model) resizeLists() {
	// One line is reserved for the footer, one for overlays.
	height := m.height - 2
	if height < 1 {
		height = 1
	}
	m.logList.SetSize(m.width, height)
	m.entryList.SetSize(m.width, height)
}
