package tui

import (
	"testing"
	"time"
)

func TestFeedbackManager_Success(t *testing.T) {
	fm := NewFeedbackManager()

	cmd := fm.Success("All good")
	if cmd == nil {
		t.Error("Success should return a clear command")
	}
	if fm.Current == nil {
		t.Fatal("Current should be set after Success")
	}
	if fm.Current.Level != FeedbackSuccess {
		t.Errorf("Expected level FeedbackSuccess, got %v", fm.Current.Level)
	}
}

func TestFeedbackManager_ActiveAndExpiry(t *testing.T) {
	fm := NewFeedbackManager()

	if fm.Active() {
		t.Error("New manager should not be active")
	}

	fm.Saved("essay")
	if !fm.Active() {
		t.Error("Manager should be active after showing a message")
	}

	view, ok := fm.View()
	if !ok {
		t.Fatal("View should report an active message")
	}
	if view != "✓ Saved: essay" {
		t.Errorf("Expected %q, got %q", "✓ Saved: essay", view)
	}

	// Expire it
	fm.Current.ShowUntil = time.Now().Add(-time.Second)
	if fm.Active() {
		t.Error("Expired message should not be active")
	}
	if fm.Current != nil {
		t.Error("Expired message should be dropped")
	}
}

func TestFeedbackManager_Clear(t *testing.T) {
	fm := NewFeedbackManager()

	fm.Warning("Careful")
	fm.Clear()

	if fm.Current != nil {
		t.Error("Current should be nil after Clear")
	}
	if _, ok := fm.View(); ok {
		t.Error("View should report nothing after Clear")
	}
}
