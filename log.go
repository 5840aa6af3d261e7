package solstudio

import (
	"fmt"
	"sync"
	"time"
)

// LogKind classifies a log entry for display.
type LogKind uint8

const (
	// KindInfo marks routine progress messages.
	KindInfo LogKind = iota

	// KindError marks failures.
	KindError

	// KindSuccess marks completed steps.
	KindSuccess
)

// String returns the display name of the kind.
func (k LogKind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindSuccess:
		return "success"
	default:
		return "info"
	}
}

// stampLayout is the local-time format shown next to each entry.
const stampLayout = "15:04:05"

// LogEntry is one immutable record on the activity log.
type LogEntry struct {
	Kind    LogKind
	Message string

	// Stamp is the formatted local time of creation, as displayed.
	Stamp string

	// Time is the full creation time, retained for callers that need more
	// than the display form.
	Time time.Time
}

// LogSink is the shared, newest-first activity log. Every component of the
// studio writes to it; entries are never mutated after creation and only
// removed by Clear. Safe for concurrent use.
type LogSink struct {
	mu      sync.Mutex
	entries []LogEntry
	now     func() time.Time
}

// NewLogSink creates an empty log.
func NewLogSink() *LogSink {
	return &LogSink{now: time.Now}
}

// Info records a routine progress message.
func (l *LogSink) Info(format string, args ...any) {
	l.push(KindInfo, format, args...)
}

// Error records a failure.
func (l *LogSink) Error(format string, args ...any) {
	l.push(KindError, format, args...)
}

// Success records a completed step.
func (l *LogSink) Success(format string, args ...any) {
	l.push(KindSuccess, format, args...)
}

// push prepends a new entry; the newest entry is always at index 0.
func (l *LogSink) push(kind LogKind, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry := LogEntry{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Stamp:   now.Format(stampLayout),
		Time:    now,
	}

	l.entries = append(l.entries, LogEntry{})
	copy(l.entries[1:], l.entries)
	l.entries[0] = entry
}

// Entries returns a snapshot of the log, newest first.
func (l *LogSink) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *LogSink) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear empties the log.
func (l *LogSink) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
