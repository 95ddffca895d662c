package tui

import (
	"testing"
)

func TestSaveStatusTracker_InitialState(t *testing.T) {
	tracker := NewSaveStatusTracker()

	if tracker.Status() != StatusSaved {
		t.Errorf("Expected initial status Saved, got %v", tracker.Status())
	}
	if tracker.Pending() {
		t.Error("New tracker should have no pending window")
	}
}

func TestSaveStatusTracker_EditFlipsToEditingImmediately(t *testing.T) {
	tracker := NewSaveStatusTracker()

	cmd := tracker.OnContentChanged(1)
	if cmd == nil {
		t.Fatal("OnContentChanged with positive length should schedule a debounce window")
	}
	if tracker.Status() != StatusEditing {
		t.Errorf("Expected status Editing, got %v", tracker.Status())
	}
	if !tracker.Pending() {
		t.Error("Expected a pending window after an edit")
	}
}

func TestSaveStatusTracker_OnlyLastWindowSettles(t *testing.T) {
	tracker := NewSaveStatusTracker()

	// Three rapid edits, each superseding the previous window
	tracker.OnContentChanged(1)
	firstSeq := tracker.seq
	tracker.OnContentChanged(2)
	secondSeq := tracker.seq
	tracker.OnContentChanged(3)
	lastSeq := tracker.seq

	// Superseded windows fire but are dropped
	if tracker.OnSettled(SaveSettledMsg{Seq: firstSeq}) {
		t.Error("Stale window should not settle the status")
	}
	if tracker.OnSettled(SaveSettledMsg{Seq: secondSeq}) {
		t.Error("Stale window should not settle the status")
	}
	if tracker.Status() != StatusEditing {
		t.Errorf("Expected status still Editing, got %v", tracker.Status())
	}

	// Only the window from the final edit settles
	if !tracker.OnSettled(SaveSettledMsg{Seq: lastSeq}) {
		t.Error("Latest window should settle the status")
	}
	if tracker.Status() != StatusSaved {
		t.Errorf("Expected status Saved, got %v", tracker.Status())
	}
	if tracker.Pending() {
		t.Error("No window should be pending after settling")
	}
}

func TestSaveStatusTracker_ZeroLengthIsNoOp(t *testing.T) {
	tracker := NewSaveStatusTracker()

	if cmd := tracker.OnContentChanged(0); cmd != nil {
		t.Error("Zero length should not schedule a window")
	}
	if tracker.Status() != StatusSaved {
		t.Errorf("Expected status unchanged, got %v", tracker.Status())
	}
}

func TestSaveStatusTracker_ZeroLengthDoesNotCancelPendingWindow(t *testing.T) {
	tracker := NewSaveStatusTracker()

	tracker.OnContentChanged(5)
	seq := tracker.seq

	// Clearing all text neither cancels the window nor changes status
	if cmd := tracker.OnContentChanged(0); cmd != nil {
		t.Error("Zero length should not schedule a window")
	}
	if tracker.Status() != StatusEditing {
		t.Errorf("Expected status still Editing, got %v", tracker.Status())
	}
	if !tracker.Pending() {
		t.Error("Pending window should survive a zero-length event")
	}

	// The untouched window still settles
	if !tracker.OnSettled(SaveSettledMsg{Seq: seq}) {
		t.Error("Pending window should settle after a zero-length event")
	}
	if tracker.Status() != StatusSaved {
		t.Errorf("Expected status Saved, got %v", tracker.Status())
	}
}

func TestSaveStatusTracker_SettleIsIdempotent(t *testing.T) {
	tracker := NewSaveStatusTracker()

	tracker.OnContentChanged(1)
	seq := tracker.seq

	if !tracker.OnSettled(SaveSettledMsg{Seq: seq}) {
		t.Fatal("First settle should change the status")
	}
	if tracker.OnSettled(SaveSettledMsg{Seq: seq}) {
		t.Error("Second settle of the same window should be a no-op")
	}
}

func TestSaveStatusTracker_Dispose(t *testing.T) {
	tracker := NewSaveStatusTracker()

	tracker.OnContentChanged(1)
	seq := tracker.seq

	tracker.Dispose()

	if tracker.OnSettled(SaveSettledMsg{Seq: seq}) {
		t.Error("No window may settle after Dispose")
	}
	if cmd := tracker.OnContentChanged(10); cmd != nil {
		t.Error("No window may be scheduled after Dispose")
	}
	if tracker.Status() != StatusEditing {
		t.Errorf("Dispose should freeze the status, got %v", tracker.Status())
	}

	// Disposing twice is fine
	tracker.Dispose()
}

func TestSaveStatus_String(t *testing.T) {
	if StatusSaved.String() != "Saved" {
		t.Errorf("Expected %q, got %q", "Saved", StatusSaved.String())
	}
	if StatusEditing.String() != "Editing" {
		t.Errorf("Expected %q, got %q", "Editing", StatusEditing.String())
	}
}
