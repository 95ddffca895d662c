package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/draftpad/draftpad-cli/pkg/files"
)

// Update routes a message through the editor view.
func (m *EditorModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case SaveSettledMsg:
		m.Tracker.OnSettled(msg)
		return nil

	case ClearFeedbackMsg:
		m.Feedback.Clear()
		return nil
	}

	return m.updateTextarea(msg)
}

func (m *EditorModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+s":
		return m.saveDraft()

	case "esc":
		return m.requestExit()

	case "ctrl+j":
		m.MoveSelection(1)
		return nil

	case "ctrl+k":
		m.MoveSelection(-1)
		return nil
	}

	m.exitArmed = false
	return m.updateTextarea(msg)
}

// updateTextarea feeds a message to the textarea and, when the content
// actually changed, recomputes metrics and suggestions and notifies the
// save-status tracker.
func (m *EditorModel) updateTextarea(msg tea.Msg) tea.Cmd {
	before := m.Textarea.Value()

	var taCmd tea.Cmd
	m.Textarea, taCmd = m.Textarea.Update(msg)

	after := m.Textarea.Value()
	if after == before {
		return taCmd
	}

	m.dirty = (after != m.savedContent)
	m.refreshCoach(after)

	trackCmd := m.Tracker.OnContentChanged(m.Metrics.Length)
	return tea.Batch(taCmd, trackCmd)
}

// saveDraft writes the draft to disk and confirms via the footer.
// Persistence is deliberately decoupled from the Editing/Saved
// indicator, which only reflects typing activity.
func (m *EditorModel) saveDraft() tea.Cmd {
	content := m.Textarea.Value()

	if err := files.WriteDraft(m.DraftName, content); err != nil {
		return m.Feedback.Error(err.Error())
	}

	m.savedContent = content
	m.dirty = false
	return m.Feedback.Saved(m.DraftName)
}

// requestExit leaves the editor, demanding a second esc when unsaved
// changes would be discarded.
func (m *EditorModel) requestExit() tea.Cmd {
	if m.dirty && !m.exitArmed {
		m.exitArmed = true
		return m.Feedback.Warning("Unsaved changes - esc again to discard, ctrl+s to save")
	}

	m.Close()
	return func() tea.Msg {
		return SwitchViewMsg{view: draftListView}
	}
}
