// Package ui provides the interactive Bubble Tea mode for tasklog.
//
// Two views are available: the collection view (all logs with their
// entry counts) and the entry view (one log's ordered entries). All
// mutations run as Bubble Tea commands against the engine and store;
// after each one the collection snapshot is refreshed so both views
// stay consistent. Destructive actions (complete-first, delete) go
// through an explicit confirm overlay and never auto-confirm.
package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marolt/tasklog/internal/engine"
	"github.com/marolt/tasklog/internal/prefs"
	"github.com/marolt/tasklog/internal/render"
	"github.com/marolt/tasklog/internal/state"
	"github.com/marolt/tasklog/internal/store"
)

// View represents the current active view.
type View int

const (
	ViewCollection View = iota
	ViewEntries
)

// promptKind identifies which text prompt is open, if any.
type promptKind int

const (
	promptNone promptKind = iota
	promptCreate
	promptAppend
)

// confirmKind identifies which confirm overlay is open, if any.
type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmComplete
	confirmDelete
)

// Options configures the interactive mode.
type Options struct {
	Context   context.Context
	Store     *store.Store
	Engine    *engine.Engine
	Snapshots *state.Store
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	store     *store.Store
	engine    *engine.Engine
	snapshots *state.Store
	prefsPath string

	keys   keyMap
	theme  render.Theme
	styles render.Styles

	currentView View
	width       int
	height      int
	ready       bool

	logList   list.Model
	entryList list.Model
	openLog   string

	prompt      promptKind
	promptInput textinput.Model

	confirm        confirmKind
	confirmTarget  string
	confirmPreview string

	status   string
	lastErr  error
	showHelp bool
}

// logItem is a collection-view row.
type logItem struct {
	name    string
	entries int
}

func (i logItem) Title() string { return i.name }
func (i logItem) Description() string {
	if i.entries == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", i.entries)
}
func (i logItem) FilterValue() string { return i.name }

// entryItem is an entry-view row.
type entryItem struct {
	index int
	text  string
}

func (i entryItem) Title() string       { return fmt.Sprintf("%d. %s", i.index, i.text) }
func (i entryItem) Description() string { return "" }
func (i entryItem) FilterValue() string { return i.text }

// New creates the interactive model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}
	theme := render.GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	snapshots := opts.Snapshots
	if snapshots == nil {
		snapshots = &state.Store{}
	}

	logDelegate := list.NewDefaultDelegate()
	logList := list.New(nil, logDelegate, 0, 0)
	logList.Title = "logs"
	logList.SetShowHelp(false)
	logList.SetShowStatusBar(false)

	entryDelegate := list.NewDefaultDelegate()
	entryDelegate.ShowDescription = false
	entryDelegate.SetSpacing(0)
	entryList := list.New(nil, entryDelegate, 0, 0)
	entryList.SetShowHelp(false)
	entryList.SetShowStatusBar(false)
	// Entries are reordered in place; a narrowed view would hide where
	// an entry lands, so the entry list is never filtered.
	entryList.SetFilteringEnabled(false)

	input := textinput.New()
	input.CharLimit = 256

	return Model{
		store:       opts.Store,
		engine:      opts.Engine,
		snapshots:   snapshots,
		prefsPath:   prefsPath,
		keys:        DefaultKeyMap(),
		theme:       theme,
		styles:      theme.Styles(),
		currentView: ViewCollection,
		logList:     logList,
		entryList:   entryList,
		promptInput: input,
	}
}

// Run starts the interactive mode and blocks until the user quits or
// the context is cancelled.
func Run(opts Options) error {
	teaOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		teaOpts = append(teaOpts, tea.WithContext(opts.Context))
	}
	program := tea.NewProgram(New(opts), teaOpts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run interactive mode: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return refreshCollectionCmd(m.store, m.engine, m.snapshots)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeLists()
		return m, nil

	case collectionMsg:
		snap := state.Snapshot(msg)
		if snap.LastError != nil {
			m.lastErr = snap.LastError
		}
		items := make([]list.Item, len(snap.Logs))
		for i, l := range snap.Logs {
			items[i] = logItem{name: l.Name, entries: l.Entries}
		}
		return m, m.logList.SetItems(items)

	case entriesMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			m.currentView = ViewCollection
			return m, nil
		}
		m.openLog = msg.name
		m.entryList.Title = msg.name
		m.currentView = ViewEntries
		items := make([]list.Item, len(msg.entries))
		for i, entry := range msg.entries {
			items[i] = entryItem{index: i + 1, text: entry}
		}
		return m, m.entryList.SetItems(items)

	case opDoneMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		if msg.status != "" {
			m.status = msg.status
		}
		cmds := []tea.Cmd{refreshCollectionCmd(m.store, m.engine, m.snapshots)}
		if m.currentView == ViewEntries {
			cmds = append(cmds, loadEntriesCmd(m.engine, m.openLog))
		}
		return m, tea.Batch(cmds...)

	default:
		// Component-internal messages (filter matches, cursor blinks)
		// must reach the component that is waiting for them.
		if m.prompt != promptNone {
			var cmd tea.Cmd
			m.promptInput, cmd = m.promptInput.Update(msg)
			return m, cmd
		}
		return m.updateActiveList(msg)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var body string
	switch m.currentView {
	case ViewEntries:
		body = m.entryList.View()
	default:
		body = m.logList.View()
	}

	sections := []string{body}
	if overlay := m.renderOverlay(); overlay != "" {
		sections = append(sections, overlay)
	}
	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
