package engine

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/marolt/tasklog/internal/store"
)

// newLog creates a log seeded with entries and returns the store,
// engine and backing path.
func newLog(t *testing.T, name string, entries ...string) (*store.Store, *Engine, string) {
	t.Helper()
	s := store.New(t.TempDir())
	path, err := s.Create(name)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(entries) > 0 {
		content := strings.Join(entries, "\n") + "\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return s, New(s), path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(content)
}

func TestReadAll(t *testing.T) {
	_, eng, _ := newLog(t, "chores", "water plants", "  spaced entry  ", "file taxes")

	entries, err := eng.ReadAll("chores")
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	want := []string{"water plants", "  spaced entry  ", "file taxes"}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("ReadAll = %v, want %v", entries, want)
	}
}

func TestReadAll_EmptyLog(t *testing.T) {
	_, eng, _ := newLog(t, "chores")

	entries, err := eng.ReadAll("chores")
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("ReadAll = %v, want empty", entries)
	}
}

func TestAppendRoundTrip(t *testing.T) {
	_, eng, _ := newLog(t, "chores")

	want := []string{"first", "second", "third", "fourth"}
	for _, entry := range want {
		if err := eng.Append("chores", entry); err != nil {
			t.Fatalf("Append(%q) returned error: %v", entry, err)
		}
	}

	entries, err := eng.ReadAll("chores")
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("ReadAll = %v, want %v", entries, want)
	}
}

func TestAppend_PreservesPriorEntries(t *testing.T) {
	_, eng, _ := newLog(t, "chores", "a", "b")

	if err := eng.Append("chores", "c"); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	entries, err := eng.ReadAll("chores")
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(entries, want) {
		t.Fatalf("ReadAll = %v, want %v", entries, want)
	}
}

func TestAppend_RepairsMissingFinalNewline(t *testing.T) {
	_, eng, path := newLog(t, "chores")

	// Simulate a hand-edited file whose last line lost its terminator.
	if err := os.WriteFile(path, []byte("dangling"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := eng.Append("chores", "new entry"); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	if got, want := readFile(t, path), "dangling\nnew entry\n"; got != want {
		t.Fatalf("file content = %q, want %q", got, want)
	}
}

func TestAppend_RejectsEmbeddedLineBreaks(t *testing.T) {
	_, eng, path := newLog(t, "chores", "a")
	before := readFile(t, path)

	for _, entry := range []string{"two\nlines", "cr\rhere"} {
		if err := eng.Append("chores", entry); !errors.Is(err, ErrInvalidEntry) {
			t.Fatalf("Append(%q) error = %v, want ErrInvalidEntry", entry, err)
		}
	}

	if got := readFile(t, path); got != before {
		t.Fatalf("file changed by rejected Append: %q -> %q", before, got)
	}
}

func TestSwap(t *testing.T) {
	_, eng, _ := newLog(t, "chores", "A", "B", "C")

	if err := eng.Swap("chores", 1, 3); err != nil {
		t.Fatalf("Swap(1, 3) returned error: %v", err)
	}
	entries, err := eng.ReadAll("chores")
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if want := []string{"C", "B", "A"}; !reflect.DeepEqual(entries, want) {
		t.Fatalf("ReadAll = %v, want %v", entries, want)
	}

	// Equal positions succeed without changing anything.
	if err := eng.Swap("chores", 2, 2); err != nil {
		t.Fatalf("Swap(2, 2) returned error: %v", err)
	}
	entries, err = eng.ReadAll("chores")
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if want := []string{"C", "B", "A"}; !reflect.DeepEqual(entries, want) {
		t.Fatalf("ReadAll after no-op swap = %v, want %v", entries, want)
	}
}

func TestSwap_InvalidIndexLeavesLogByteIdentical(t *testing.T) {
	_, eng, path := newLog(t, "chores", "A", "B", "C")
	before := readFile(t, path)

	tests := []struct {
		name string
		i, j int
	}{
		{"zero", 0, 2},
		{"negative", -1, 2},
		{"beyond length", 1, 4},
		{"both invalid", 0, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := eng.Swap("chores", tt.i, tt.j); !errors.Is(err, ErrInvalidIndex) {
				t.Fatalf("Swap(%d, %d) error = %v, want ErrInvalidIndex", tt.i, tt.j, err)
			}
			if got := readFile(t, path); got != before {
				t.Fatalf("file changed by failed swap: %q -> %q", before, got)
			}
		})
	}
}

func TestSwap_LeavesNoTempFiles(t *testing.T) {
	s, eng, _ := newLog(t, "chores", "A", "B")

	if err := eng.Swap("chores", 1, 2); err != nil {
		t.Fatalf("Swap returned error: %v", err)
	}

	dirEntries, err := os.ReadDir(s.Root())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, de := range dirEntries {
		if strings.HasPrefix(de.Name(), ".tasklog-") {
			t.Fatalf("temp file %q left behind", de.Name())
		}
	}
}

func TestCompleteFirst_PreviewDoesNotMutate(t *testing.T) {
	_, eng, path := newLog(t, "chores", "A", "B", "C")
	before := readFile(t, path)

	entry, err := eng.CompleteFirst("chores")
	if err != nil {
		t.Fatalf("CompleteFirst returned error: %v", err)
	}
	if entry != "A" {
		t.Fatalf("CompleteFirst = %q, want %q", entry, "A")
	}
	if got := readFile(t, path); got != before {
		t.Fatalf("preview mutated the log: %q -> %q", before, got)
	}
}

func TestCommitCompleteFirst(t *testing.T) {
	_, eng, _ := newLog(t, "chores", "A", "B", "C")

	if err := eng.CommitCompleteFirst("chores"); err != nil {
		t.Fatalf("CommitCompleteFirst returned error: %v", err)
	}

	entries, err := eng.ReadAll("chores")
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(entries, want) {
		t.Fatalf("ReadAll = %v, want %v", entries, want)
	}
}

func TestCommitCompleteFirst_LastEntryLeavesEmptyLog(t *testing.T) {
	s, eng, _ := newLog(t, "chores", "only")

	if err := eng.CommitCompleteFirst("chores"); err != nil {
		t.Fatalf("CommitCompleteFirst returned error: %v", err)
	}

	if !s.Exists("chores") {
		t.Fatal("log vanished; completing the last entry must keep the log")
	}
	count, err := eng.Len("chores")
	if err != nil {
		t.Fatalf("Len returned error: %v", err)
	}
	if count != 0 {
		t.Fatalf("Len = %d, want 0", count)
	}
}

func TestCompleteFirst_EmptyLog(t *testing.T) {
	_, eng, _ := newLog(t, "chores")

	if _, err := eng.CompleteFirst("chores"); !errors.Is(err, ErrEmptyLog) {
		t.Fatalf("CompleteFirst error = %v, want ErrEmptyLog", err)
	}
	if err := eng.CommitCompleteFirst("chores"); !errors.Is(err, ErrEmptyLog) {
		t.Fatalf("CommitCompleteFirst error = %v, want ErrEmptyLog", err)
	}
}

func TestOperationsOnAbsentLogFailWithNotFound(t *testing.T) {
	root := t.TempDir()
	eng := New(store.New(root))

	tests := []struct {
		name string
		op   func() error
	}{
		{"ReadAll", func() error { _, err := eng.ReadAll("ghost"); return err }},
		{"Append", func() error { return eng.Append("ghost", "x") }},
		{"CompleteFirst", func() error { _, err := eng.CompleteFirst("ghost"); return err }},
		{"CommitCompleteFirst", func() error { return eng.CommitCompleteFirst("ghost") }},
		{"Swap", func() error { return eng.Swap("ghost", 1, 2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.op(); !errors.Is(err, store.ErrNotFound) {
				t.Fatalf("error = %v, want ErrNotFound", err)
			}
		})
	}

	// None of the failed calls may create anything under the root.
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(dirEntries) != 0 {
		t.Fatalf("failed operations created files: %v", dirEntries)
	}
}

func TestLen(t *testing.T) {
	_, eng, _ := newLog(t, "chores", "a", "b", "c")

	count, err := eng.Len("chores")
	if err != nil {
		t.Fatalf("Len returned error: %v", err)
	}
	if count != 3 {
		t.Fatalf("Len = %d, want 3", count)
	}
}

func TestSwapThenCompleteSequence(t *testing.T) {
	_, eng, _ := newLog(t, "chores", "low", "mid", "urgent")

	// Promote the urgent entry to the front, then complete it.
	if err := eng.Swap("chores", 1, 3); err != nil {
		t.Fatalf("Swap returned error: %v", err)
	}
	entry, err := eng.CompleteFirst("chores")
	if err != nil {
		t.Fatalf("CompleteFirst returned error: %v", err)
	}
	if entry != "urgent" {
		t.Fatalf("CompleteFirst = %q, want %q", entry, "urgent")
	}
	if err := eng.CommitCompleteFirst("chores"); err != nil {
		t.Fatalf("CommitCompleteFirst returned error: %v", err)
	}

	entries, err := eng.ReadAll("chores")
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if want := []string{"mid", "low"}; !reflect.DeepEqual(entries, want) {
		t.Fatalf("ReadAll = %v, want %v", entries, want)
	}
}

func TestReplaceKeepsEntriesNewlineTerminated(t *testing.T) {
	_, eng, path := newLog(t, "chores", "A", "B")

	if err := eng.Swap("chores", 1, 2); err != nil {
		t.Fatalf("Swap returned error: %v", err)
	}
	if got, want := readFile(t, path), "B\nA\n"; got != want {
		t.Fatalf("file content = %q, want %q", got, want)
	}
}
