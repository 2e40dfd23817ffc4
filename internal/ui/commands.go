package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marolt/tasklog/internal/engine"
	"github.com/marolt/tasklog/internal/state"
	"github.com/marolt/tasklog/internal/store"
)

// collectionMsg carries a refreshed log-collection snapshot.
type collectionMsg state.Snapshot

// entriesMsg carries the full entry listing of one log.
type entriesMsg struct {
	name    string
	entries []string
	err     error
}

// opDoneMsg reports the outcome of a mutating operation.
type opDoneMsg struct {
	status string
	err    error
}

// refreshCollectionCmd scans the store and publishes a new snapshot.
func refreshCollectionCmd(st *store.Store, eng *engine.Engine, snap *state.Store) tea.Cmd {
	return func() tea.Msg {
		names, err := st.List()
		if err != nil {
			snap.Update(nil, err)
			return collectionMsg(snap.Snapshot())
		}
		logs := make([]state.LogSummary, 0, len(names))
		for _, name := range names {
			count, err := eng.Len(name)
			if err != nil {
				snap.Update(nil, err)
				return collectionMsg(snap.Snapshot())
			}
			logs = append(logs, state.LogSummary{Name: name, Entries: count})
		}
		snap.Update(logs, nil)
		return collectionMsg(snap.Snapshot())
	}
}

// loadEntriesCmd reads one log's entries for the entry view.
func loadEntriesCmd(eng *engine.Engine, name string) tea.Cmd {
	return func() tea.Msg {
		entries, err := eng.ReadAll(name)
		return entriesMsg{name: name, entries: entries, err: err}
	}
}

func createLogCmd(st *store.Store, name string) tea.Cmd {
	return func() tea.Msg {
		if _, err := st.Create(name); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "created " + name}
	}
}

func deleteLogCmd(st *store.Store, name string) tea.Cmd {
	return func() tea.Msg {
		if err := st.Delete(name); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "deleted " + name}
	}
}

func appendEntryCmd(eng *engine.Engine, name, entry string) tea.Cmd {
	return func() tea.Msg {
		if err := eng.Append(name, entry); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "added entry to " + name}
	}
}

func completeFirstCmd(eng *engine.Engine, name string) tea.Cmd {
	return func() tea.Msg {
		if err := eng.CommitCompleteFirst(name); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "completed first entry of " + name}
	}
}

func swapCmd(eng *engine.Engine, name string, i, j int) tea.Cmd {
	return func() tea.Msg {
		if err := eng.Swap(name, i, j); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{}
	}
}
