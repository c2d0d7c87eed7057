// Package diag implements the scoped diagnostic sink consumed by the rest
// of the parser: a parse attempt opens a sub-scope, buffers
// whatever warnings/errors it raises, and only flushes them into the real
// logger once the caller decides the attempt is worth reporting.
package diag

import "go.uber.org/zap"

// Level distinguishes a buffered entry's severity.
type Level int

const (
	LevelWarning Level = iota
	LevelError
)

// Entry is one buffered diagnostic.
type Entry struct {
	Level   Level
	Message string
}

// Sink is a scoped diagnostic log, backed by a real *zap.Logger that
// entries are flushed into once the scope decides to report. Buffering
// (rather than emitting immediately) is what lets a parse attempt discard
// everything it logged when it ultimately backtracks past that attempt.
type Sink struct {
	logger  *zap.Logger
	entries []Entry
}

// NewRoot creates the top-level sink for one parseExpression/parseEvent
// call, backed by logger.
func NewRoot(logger *zap.Logger) *Sink {
	return &Sink{logger: logger}
}

// StartSub opens a nested scope sharing the same backing logger. Call
// StopSub when the scope concludes; nothing the sub logs reaches the
// backing logger until the caller explicitly flushes it via PrintLog or
// PrintErrors.
func (s *Sink) StartSub() *Sink {
	return &Sink{logger: s.logger}
}

// StopSub exists only for symmetry with StartSub; a sub-sink's entries
// already live entirely within it until flushed or discarded.
func (s *Sink) StopSub(*Sink) {}

// Warning buffers a warning-level diagnostic.
func (s *Sink) Warning(msg string) {
	s.entries = append(s.entries, Entry{Level: LevelWarning, Message: msg})
}

// Error buffers an error-level diagnostic.
func (s *Sink) Error(msg string) {
	s.entries = append(s.entries, Entry{Level: LevelError, Message: msg})
}

// HasErrors reports whether any error-level diagnostic was buffered.
func (s *Sink) HasErrors() bool {
	for _, e := range s.entries {
		if e.Level == LevelError {
			return true
		}
	}
	return false
}

// GetLastError returns the most recently buffered error message, or "" if
// none was buffered.
func (s *Sink) GetLastError() string {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Level == LevelError {
			return s.entries[i].Message
		}
	}
	return ""
}

// PrintLog flushes every buffered entry to the backing logger and clears
// the buffer.
func (s *Sink) PrintLog() {
	for _, e := range s.entries {
		switch e.Level {
		case LevelWarning:
			s.logger.Warn(e.Message)
		case LevelError:
			s.logger.Error(e.Message)
		}
	}
	s.entries = nil
}

// PrintErrors flushes the log if it holds any error, otherwise emits
// defaultMsg (when non-empty) as a single error. Used at the end of a
// failed candidate search, after the ranked best error (if any) has been
// buffered as an error, so defaultMsg is emitted only when there was none.
func (s *Sink) PrintErrors(defaultMsg string) {
	if s.HasErrors() {
		s.PrintLog()
		return
	}
	if defaultMsg != "" {
		s.logger.Error(defaultMsg)
	}
}
