package solstudio

import (
	"fmt"
	"testing"
	"time"
)

func TestLogKindString(t *testing.T) {
	tests := []struct {
		kind LogKind
		want string
	}{
		{KindInfo, "info"},
		{KindError, "error"},
		{KindSuccess, "success"},
		{LogKind(200), "info"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("LogKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestLogSinkNewestFirst(t *testing.T) {
	l := NewLogSink()

	for i := 0; i < 5; i++ {
		l.Info("entry %d", i)
	}

	entries := l.Entries()
	if len(entries) != 5 {
		t.Fatalf("Expected 5 entries, got %d", len(entries))
	}

	// Newest at index 0, ordering of the rest unchanged.
	for i, e := range entries {
		want := fmt.Sprintf("entry %d", 4-i)
		if e.Message != want {
			t.Errorf("entries[%d].Message = %q, want %q", i, e.Message, want)
		}
	}

	// Adding one more shifts the existing entries without reordering them.
	l.Error("entry 5")
	entries = l.Entries()
	if entries[0].Message != "entry 5" {
		t.Errorf("Newest entry should be at index 0, got %q", entries[0].Message)
	}
	if entries[0].Kind != KindError {
		t.Errorf("Expected error kind, got %v", entries[0].Kind)
	}
	for i := 1; i < len(entries); i++ {
		want := fmt.Sprintf("entry %d", 5-i)
		if entries[i].Message != want {
			t.Errorf("entries[%d].Message = %q, want %q", i, entries[i].Message, want)
		}
	}
}

func TestLogSinkStamp(t *testing.T) {
	l := NewLogSink()
	fixed := time.Date(2024, 6, 1, 13, 45, 9, 0, time.Local)
	l.now = func() time.Time { return fixed }

	l.Success("done")

	e := l.Entries()[0]
	if e.Stamp != "13:45:09" {
		t.Errorf("Expected stamp 13:45:09, got %q", e.Stamp)
	}
	if !e.Time.Equal(fixed) {
		t.Error("Entry should retain the full creation time")
	}
}

func TestLogSinkClear(t *testing.T) {
	l := NewLogSink()
	l.Info("one")
	l.Info("two")

	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Expected empty log after Clear, got %d entries", l.Len())
	}

	// The sink stays usable after clearing.
	l.Info("three")
	if l.Len() != 1 {
		t.Errorf("Expected 1 entry after re-logging, got %d", l.Len())
	}
}

func TestLogSinkSnapshotIsolation(t *testing.T) {
	l := NewLogSink()
	l.Info("original")

	entries := l.Entries()
	entries[0].Message = "mutated"

	if l.Entries()[0].Message != "original" {
		t.Error("Mutating a snapshot must not affect the sink")
	}
}
