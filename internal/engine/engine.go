package engine

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marolt/tasklog/internal/store"
)

var (
	// ErrEmptyLog is returned when completing from a log with no entries.
	ErrEmptyLog = errors.New("log is empty")
	// ErrInvalidIndex is returned when a position is outside [1, length].
	ErrInvalidIndex = errors.New("invalid entry index")
	// ErrInvalidEntry is returned for entry text with an embedded line break.
	ErrInvalidEntry = errors.New("invalid entry")
)

// Engine performs ordered-entry operations on one existing log at a
// time. Entry positions are 1-based and dense; position is the only
// identity an entry has.
type Engine struct {
	store *store.Store
}

// New returns an Engine backed by s.
func New(s *store.Store) *Engine {
	return &Engine{store: s}
}

// ReadAll returns every entry of the named log in stored order. It
// fails with store.ErrNotFound if the log is absent and never mutates
// the log.
func (e *Engine) ReadAll(name string) ([]string, error) {
	path, err := e.resolve(name)
	if err != nil {
		return nil, err
	}
	return readLines(path)
}

// Len returns the current entry count of the named log.
func (e *Engine) Len(name string) (int, error) {
	entries, err := e.ReadAll(name)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// Append adds entry as the new last element of the named log. Existing
// positions are unchanged. Entries containing a line break are
// rejected with ErrInvalidEntry; leading and trailing whitespace is
// preserved as given.
func (e *Engine) Append(name, entry string) error {
	if strings.ContainsAny(entry, "\n\r") {
		return fmt.Errorf("%w: entry contains a line break", ErrInvalidEntry)
	}
	path, err := e.resolve(name)
	if err != nil {
		return err
	}

	// If the file's last line lost its terminator (e.g. it was edited
	// by hand), appending directly would glue the new entry onto it.
	repair, err := missingFinalNewline(path)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}

	text := entry + "\n"
	if repair {
		text = "\n" + text
	}
	if _, err := file.WriteString(text); err != nil {
		file.Close()
		return fmt.Errorf("append entry: %w", err)
	}
	// Close reports delayed write failures, so its error counts as an
	// append failure rather than being discarded.
	if err := file.Close(); err != nil {
		return fmt.Errorf("close log: %w", err)
	}
	return nil
}

// CompleteFirst previews the entry at position 1 without removing it.
// Removal happens only via CommitCompleteFirst, so callers control the
// confirmation boundary for this irreversible operation.
func (e *Engine) CompleteFirst(name string) (string, error) {
	entries, err := e.ReadAll(name)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyLog, name)
	}
	return entries[0], nil
}

// CommitCompleteFirst removes the entry at position 1; the remaining
// entries shift up by one. The removed entry is not retained anywhere.
func (e *Engine) CommitCompleteFirst(name string) error {
	path, err := e.resolve(name)
	if err != nil {
		return err
	}
	entries, err := readLines(path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyLog, name)
	}
	return replace(path, entries[1:])
}

// Swap exchanges the entries at positions i and j. Both must be within
// [1, length]; bounds are checked before any write, so a failed call
// leaves the log untouched. i == j succeeds without rewriting.
func (e *Engine) Swap(name string, i, j int) error {
	path, err := e.resolve(name)
	if err != nil {
		return err
	}
	entries, err := readLines(path)
	if err != nil {
		return err
	}
	if i < 1 || i > len(entries) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidIndex, i, len(entries))
	}
	if j < 1 || j > len(entries) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidIndex, j, len(entries))
	}
	if i == j {
		return nil
	}
	entries[i-1], entries[j-1] = entries[j-1], entries[i-1]
	return replace(path, entries)
}

// resolve maps name to its backing path, failing with
// store.ErrNotFound when the log does not exist.
func (e *Engine) resolve(name string) (string, error) {
	if err := store.ValidateName(name); err != nil {
		return "", err
	}
	if !e.store.Exists(name) {
		return "", fmt.Errorf("%w: %s", store.ErrNotFound, name)
	}
	return e.store.Path(name), nil
}

// readLines reads every line of the file at path in order.
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

// missingFinalNewline reports whether the file at path is non-empty
// and its last byte is not a line terminator.
func missingFinalNewline(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return false, fmt.Errorf("stat log: %w", err)
	}
	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	if _, err := file.ReadAt(last, info.Size()-1); err != nil {
		return false, fmt.Errorf("read log: %w", err)
	}
	return last[0] != '\n', nil
}

// replace atomically rewrites the file at path to hold exactly
// entries, one per newline-terminated line, via a temporary file and
// rename. Readers never observe a partially written log.
func replace(path string, entries []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tasklog-*")
	if err != nil {
		return fmt.Errorf("create temp log: %w", err)
	}
	tmpPath := tmp.Name()

	writer := bufio.NewWriter(tmp)
	for _, entry := range entries {
		if _, err := writer.WriteString(entry + "\n"); err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("write temp log: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("flush temp log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp log: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace log: %w", err)
	}
	return nil
}
