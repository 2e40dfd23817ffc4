// Package app is the composition root for tasklog. It loads the
// config and prefs, wires the store, engine and renderer together,
// and executes exactly one command per invocation.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marolt/tasklog/internal/config"
	"github.com/marolt/tasklog/internal/engine"
	"github.com/marolt/tasklog/internal/prefs"
	"github.com/marolt/tasklog/internal/render"
	"github.com/marolt/tasklog/internal/state"
	"github.com/marolt/tasklog/internal/store"
	"github.com/marolt/tasklog/internal/ui"
)

// Verb selects the operation an invocation performs.
type Verb int

const (
	VerbCreate Verb = iota
	VerbRead
	VerbComplete
	VerbAppend
	VerbDelete
	VerbSwap
	VerbList
	VerbInteractive
)

// Command is one parsed CLI operation.
type Command struct {
	Verb  Verb
	Name  string
	Entry string
	I, J  int
}

// Options configure a tasklog invocation.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tasklog/prefs.toml
	Width      int    // banner width; zero uses the renderer default

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Command Command
}

// Run executes one command. Outcome messages are written to the
// configured streams; the returned error only signals the exit code.
// Existence failures (not found, already exists, empty log) go to
// stdout, everything else to stderr.
func Run(ctx context.Context, opts Options) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "tasklog: %v\n", err)
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logs := store.New(cfg.StorageRoot)
	eng := engine.New(logs)
	renderer := render.New(userPrefs.Theme, opts.Width)

	if err := execute(ctx, opts, logs, eng, renderer, userPrefs.Theme); err != nil {
		report(opts, renderer, err)
		return err
	}
	return nil
}

func execute(ctx context.Context, opts Options, logs *store.Store, eng *engine.Engine, renderer *render.Renderer, themeName string) error {
	cmd := opts.Command

	switch cmd.Verb {
	case VerbCreate:
		if _, err := logs.Create(cmd.Name); err != nil {
			return err
		}
		fmt.Fprintln(opts.Stdout, renderer.Message("created log "+cmd.Name))
		return nil

	case VerbRead:
		return showLog(opts.Stdout, eng, renderer, cmd.Name)

	case VerbComplete:
		return completeWithPrompt(opts, eng, renderer, cmd.Name)

	case VerbAppend:
		if err := eng.Append(cmd.Name, cmd.Entry); err != nil {
			return err
		}
		return showLog(opts.Stdout, eng, renderer, cmd.Name)

	case VerbDelete:
		if err := logs.Delete(cmd.Name); err != nil {
			return err
		}
		fmt.Fprintln(opts.Stdout, renderer.Message("deleted log "+cmd.Name))
		return nil

	case VerbSwap:
		if err := eng.Swap(cmd.Name, cmd.I, cmd.J); err != nil {
			return err
		}
		return showLog(opts.Stdout, eng, renderer, cmd.Name)

	case VerbList:
		names, err := logs.List()
		if err != nil {
			return err
		}
		fmt.Fprint(opts.Stdout, renderer.Names(names))
		return nil

	case VerbInteractive:
		return ui.Run(ui.Options{
			Context:   ctx,
			Store:     logs,
			Engine:    eng,
			Snapshots: &state.Store{},
			ThemeName: themeName,
			PrefsPath: opts.PrefsPath,
		})
	}

	return fmt.Errorf("unknown command")
}

// showLog reads the named log and renders it as a titled banner.
func showLog(w io.Writer, eng *engine.Engine, renderer *render.Renderer, name string) error {
	entries, err := eng.ReadAll(name)
	if err != nil {
		return err
	}
	fmt.Fprint(w, renderer.Log(name, entries))
	return nil
}

// completeWithPrompt previews the first entry, asks for confirmation
// on stdin, and commits the removal only on an explicit yes.
func completeWithPrompt(opts Options, eng *engine.Engine, renderer *render.Renderer, name string) error {
	entry, err := eng.CompleteFirst(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.Stdout, "complete %q? [y/N] ", entry)
	answer, err := bufio.NewReader(opts.Stdin).ReadString('\n')
	if err != nil && answer == "" {
		answer = "n"
	}

	switch strings.TrimSpace(answer) {
	case "y", "Y":
		if err := eng.CommitCompleteFirst(name); err != nil {
			return err
		}
		return showLog(opts.Stdout, eng, renderer, name)
	default:
		fmt.Fprintln(opts.Stdout, renderer.Message("left "+name+" unchanged"))
		return nil
	}
}

// report prints a failed operation's message: existence conditions go
// to stdout, real errors to stderr.
func report(opts Options, renderer *render.Renderer, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrAlreadyExists),
		errors.Is(err, engine.ErrEmptyLog):
		fmt.Fprintln(opts.Stdout, renderer.Error(err.Error()))
	default:
		fmt.Fprintf(opts.Stderr, "tasklog: %v\n", err)
	}
}
