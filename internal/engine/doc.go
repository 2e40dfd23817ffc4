// Package engine reads and mutates the ordered entry sequence of one
// existing log at a time.
//
// # Data Model
//
// A log is a plain text file: one entry per newline-terminated line,
// in order. Positions are 1-based and dense; a position is valid iff
// 1 <= position <= length. Position is the only identity an entry has,
// so every mutation is defined purely in terms of positions.
//
// # Operations
//
//   - ReadAll: full ordered listing, never mutates
//   - Append: new last entry, prior positions unchanged
//   - CompleteFirst / CommitCompleteFirst: two-phase removal of the
//     first entry (preview, then explicit commit)
//   - Swap: exchange two valid positions, length unchanged
//
// # Atomicity
//
// Multi-step edits (commit, swap) never touch the live file line by
// line. They read the full sequence, mutate it in memory and replace
// the file through a temporary file plus rename, so a crash or a
// failed write leaves either the old content or the new content,
// never a partial mix. Append is a single write; when the file's last
// line has lost its terminator the missing newline is written first so
// the existing entry cannot be corrupted by concatenation.
//
// # Confirmation Boundary
//
// Completing is destructive and irreversible (removed entries are not
// retained anywhere), so the engine exposes it as two calls instead of
// embedding a prompt: callers show CompleteFirst's preview however
// they like and call CommitCompleteFirst only on an explicit yes.
//
// Concurrent invocations against the same log are unsupported and may
// race; callers needing multi-process access must serialize externally.
package engine
