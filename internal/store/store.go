// Package store maps log names to their backing files and manages
// log existence under a single storage root.
//
// A log exists iff its file exists; there is no separate metadata
// record. Files are named <name>_bashlog.csv under the root.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// fileSuffix is the storage naming convention for log files. The
// suffix is kept for compatibility with existing log directories;
// the content is plain newline-separated lines, not CSV.
const fileSuffix = "_bashlog.csv"

var (
	// ErrAlreadyExists is returned when creating a log whose name is taken.
	ErrAlreadyExists = errors.New("log already exists")
	// ErrNotFound is returned when an operation targets an absent log.
	ErrNotFound = errors.New("log not found")
	// ErrInvalidName is returned for names that are empty or not filesystem-safe.
	ErrInvalidName = errors.New("invalid log name")
)

// Store resolves log names to files under one storage root.
type Store struct {
	root string
}

// New returns a Store rooted at dir. The directory is created lazily
// on the first Create call.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the storage root directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the backing file path for name. It does not check
// existence or validity.
func (s *Store) Path(name string) string {
	return filepath.Join(s.root, name+fileSuffix)
}

// ValidateName reports whether name is usable as a log name: non-empty
// and restricted to letters, digits, '-', '_' and '.'.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, r)
		}
	}
	return nil
}

// Exists reports whether a log named name is present. No side effects.
func (s *Store) Exists(name string) bool {
	info, err := os.Stat(s.Path(name))
	return err == nil && !info.IsDir()
}

// Create makes a new, empty log and returns its file path. It fails
// with ErrAlreadyExists if the name is taken, checked before any
// write. A missing storage root is created transparently.
func (s *Store) Create(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	path := s.Path(name)
	if s.Exists(name) {
		return "", fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("create storage root: %w", err)
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrAlreadyExists, name)
		}
		return "", fmt.Errorf("create log file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close log file: %w", err)
	}
	return path, nil
}

// Delete removes the log named name. It fails with ErrNotFound if the
// log is absent.
func (s *Store) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if !s.Exists(name) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err := os.Remove(s.Path(name)); err != nil {
		return fmt.Errorf("delete log file: %w", err)
	}
	return nil
}

// List enumerates all existing log names by scanning the storage root
// for files matching the naming convention. Names are sorted lexically
// for reproducible output. A missing root means no logs yet.
func (s *Store) List() ([]string, error) {
	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan storage root: %w", err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		base := de.Name()
		if !strings.HasSuffix(base, fileSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(base, fileSuffix))
	}
	sort.Strings(names)
	return names, nil
}
