package main

import (
	"reflect"
	"testing"

	"github.com/marolt/tasklog/internal/app"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.Command
	}{
		{"create", []string{"-n", "chores"}, app.Command{Verb: app.VerbCreate, Name: "chores"}},
		{"read", []string{"-r", "chores"}, app.Command{Verb: app.VerbRead, Name: "chores"}},
		{"complete", []string{"-u", "chores"}, app.Command{Verb: app.VerbComplete, Name: "chores"}},
		{"append", []string{"-a", "chores", "buy milk"}, app.Command{Verb: app.VerbAppend, Name: "chores", Entry: "buy milk"}},
		{"delete", []string{"-d", "chores"}, app.Command{Verb: app.VerbDelete, Name: "chores"}},
		{"swap", []string{"-s", "chores", "1", "3"}, app.Command{Verb: app.VerbSwap, Name: "chores", I: 1, J: 3}},
		{"list", []string{"-l"}, app.Command{Verb: app.VerbList}},
		{"interactive", []string{"-i"}, app.Command{Verb: app.VerbInteractive}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, ok := parse(tt.args)
			if !ok {
				t.Fatalf("parse(%v) failed", tt.args)
			}
			if cmd == nil {
				t.Fatalf("parse(%v) returned no command", tt.args)
			}
			if !reflect.DeepEqual(*cmd, tt.want) {
				t.Fatalf("parse(%v) = %+v, want %+v", tt.args, *cmd, tt.want)
			}
		})
	}
}

func TestParse_LeadingOptions(t *testing.T) {
	cmd, opts, ok := parse([]string{"-config", "/tmp/c.toml", "-width", "72", "-l"})
	if !ok || cmd == nil {
		t.Fatal("parse failed")
	}
	if opts.ConfigPath != "/tmp/c.toml" {
		t.Fatalf("ConfigPath = %q", opts.ConfigPath)
	}
	if opts.Width != 72 {
		t.Fatalf("Width = %d, want 72", opts.Width)
	}
	if cmd.Verb != app.VerbList {
		t.Fatalf("Verb = %v, want VerbList", cmd.Verb)
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"unknown flag", []string{"-x", "chores"}},
		{"missing name", []string{"-n"}},
		{"append missing entry", []string{"-a", "chores"}},
		{"swap non-integer", []string{"-s", "chores", "one", "2"}},
		{"swap missing index", []string{"-s", "chores", "1"}},
		{"list with extra arg", []string{"-l", "chores"}},
		{"bad width", []string{"-width", "zero", "-l"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := parse(tt.args); ok {
				t.Fatalf("parse(%v) succeeded, want failure", tt.args)
			}
		})
	}
}

func TestParse_Help(t *testing.T) {
	cmd, _, ok := parse([]string{"-h"})
	if !ok {
		t.Fatal("parse(-h) reported failure")
	}
	if cmd != nil {
		t.Fatalf("parse(-h) returned command %+v, want nil", cmd)
	}
}
