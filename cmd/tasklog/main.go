package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/marolt/tasklog/internal/app"
)

const usage = `tasklog - personal task logs as flat files

Usage:
  tasklog -n <log>                create a log
  tasklog -r <log>                show a log
  tasklog -u <log>                complete the first entry (asks first)
  tasklog -a <log> <entry>        add an entry
  tasklog -d <log>                delete a log
  tasklog -s <log> <i> <j>        swap entries i and j
  tasklog -l                      list all logs
  tasklog -i                      interactive mode
  tasklog -h                      show this help

Options:
  -config <path>                  override config path (optional)
  -width <cols>                   banner width (optional)
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd, opts, ok := parse(args)
	if !ok {
		return 1
	}
	if cmd == nil {
		return 0 // -h
	}
	opts.Command = *cmd

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		return 1
	}
	return 0
}

// parse maps the verb flag and its positional arguments onto a
// Command. A nil Command with ok=true means help was requested.
func parse(args []string) (*app.Command, app.Options, bool) {
	var opts app.Options

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return nil, opts, false
	}

	// Leading option flags before the verb.
options:
	for len(args) >= 2 {
		switch args[0] {
		case "-config":
			opts.ConfigPath = args[1]
			args = args[2:]
		case "-width":
			width, err := strconv.Atoi(args[1])
			if err != nil || width < 1 {
				fmt.Fprintln(os.Stderr, "tasklog: -width takes a positive integer")
				return nil, opts, false
			}
			opts.Width = width
			args = args[2:]
		default:
			break options
		}
	}

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return nil, opts, false
	}

	verb, rest := args[0], args[1:]
	switch verb {
	case "-n":
		if !wantArgs(verb, rest, 1) {
			return nil, opts, false
		}
		return &app.Command{Verb: app.VerbCreate, Name: rest[0]}, opts, true

	case "-r":
		if !wantArgs(verb, rest, 1) {
			return nil, opts, false
		}
		return &app.Command{Verb: app.VerbRead, Name: rest[0]}, opts, true

	case "-u":
		if !wantArgs(verb, rest, 1) {
			return nil, opts, false
		}
		return &app.Command{Verb: app.VerbComplete, Name: rest[0]}, opts, true

	case "-a":
		if !wantArgs(verb, rest, 2) {
			return nil, opts, false
		}
		return &app.Command{Verb: app.VerbAppend, Name: rest[0], Entry: rest[1]}, opts, true

	case "-d":
		if !wantArgs(verb, rest, 1) {
			return nil, opts, false
		}
		return &app.Command{Verb: app.VerbDelete, Name: rest[0]}, opts, true

	case "-s":
		if !wantArgs(verb, rest, 3) {
			return nil, opts, false
		}
		i, errI := strconv.Atoi(rest[1])
		j, errJ := strconv.Atoi(rest[2])
		if errI != nil || errJ != nil {
			fmt.Fprintln(os.Stderr, "tasklog: -s takes two integer positions")
			return nil, opts, false
		}
		return &app.Command{Verb: app.VerbSwap, Name: rest[0], I: i, J: j}, opts, true

	case "-l":
		if !wantArgs(verb, rest, 0) {
			return nil, opts, false
		}
		return &app.Command{Verb: app.VerbList}, opts, true

	case "-i":
		if !wantArgs(verb, rest, 0) {
			return nil, opts, false
		}
		return &app.Command{Verb: app.VerbInteractive}, opts, true

	case "-h", "-help", "--help":
		fmt.Fprint(os.Stdout, usage)
		return nil, opts, true

	default:
		fmt.Fprintf(os.Stderr, "tasklog: Invalid option %q\n", verb)
		fmt.Fprint(os.Stderr, usage)
		return nil, opts, false
	}
}

func wantArgs(verb string, rest []string, n int) bool {
	if len(rest) == n {
		return true
	}
	fmt.Fprintf(os.Stderr, "tasklog: %s takes %d argument(s), got %d\n", verb, n, len(rest))
	return false
}
