package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FeedbackLevel classifies a transient message.
type FeedbackLevel int

const (
	FeedbackSuccess FeedbackLevel = iota
	FeedbackWarning
	FeedbackError
)

// Feedback is a short-lived message shown in the editor footer, e.g.
// after a save or a failed clipboard copy.
type Feedback struct {
	Message   string
	Icon      string
	ShowUntil time.Time
	Level     FeedbackLevel
}

// ClearFeedbackMsg asks the view to drop an expired feedback message.
type ClearFeedbackMsg struct{}

// FeedbackManager owns the currently visible transient message.
type FeedbackManager struct {
	Current  *Feedback
	Duration time.Duration
}

func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{
		Duration: 2 * time.Second,
	}
}

func (fm *FeedbackManager) show(icon, message string, level FeedbackLevel) tea.Cmd {
	fm.Current = &Feedback{
		Message:   message,
		Icon:      icon,
		ShowUntil: time.Now().Add(fm.Duration),
		Level:     level,
	}

	return tea.Tick(fm.Duration, func(time.Time) tea.Msg {
		return ClearFeedbackMsg{}
	})
}

// Success shows a success message
func (fm *FeedbackManager) Success(message string) tea.Cmd {
	return fm.show("✓", message, FeedbackSuccess)
}

// Warning shows a warning message
func (fm *FeedbackManager) Warning(message string) tea.Cmd {
	return fm.show("⚠", message, FeedbackWarning)
}

// Error shows an error message
func (fm *FeedbackManager) Error(message string) tea.Cmd {
	return fm.show("×", message, FeedbackError)
}

// Saved shows the post-save confirmation for a draft.
func (fm *FeedbackManager) Saved(name string) tea.Cmd {
	return fm.Success(fmt.Sprintf("Saved: %s", name))
}

// Clear drops the current message.
func (fm *FeedbackManager) Clear() {
	fm.Current = nil
}

// Active reports whether a message should be visible right now,
// expiring stale messages as a side effect.
func (fm *FeedbackManager) Active() bool {
	if fm.Current == nil {
		return false
	}
	if time.Now().After(fm.Current.ShowUntil) {
		fm.Current = nil
		return false
	}
	return true
}

// View returns the rendered message if one is active.
func (fm *FeedbackManager) View() (string, bool) {
	if !fm.Active() {
		return "", false
	}
	return fmt.Sprintf("%s %s", fm.Current.Icon, fm.Current.Message), true
}
