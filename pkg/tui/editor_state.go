package tui

import (
	"github.com/charmbracelet/bubbles/textarea"

	"github.com/draftpad/draftpad-cli/pkg/coach"
	"github.com/draftpad/draftpad-cli/pkg/metrics"
)

// EditorModel manages the state of the draft editor view: a plain-text
// textarea, the writing coach sidebar derived from it, and the
// debounced save indicator.
type EditorModel struct {
	Textarea  textarea.Model
	DraftName string

	// savedContent is the content as last written to disk; dirty
	// tracks divergence from it. The save indicator is independent of
	// both (it reflects typing activity, not persistence).
	savedContent string
	dirty        bool

	Metrics     metrics.Metrics
	Suggestions []coach.Suggestion

	// selectedID is the highlighted coach card. It is a per-batch id;
	// when a recompute drops it, the highlight resets to none.
	selectedID string

	Tracker  *SaveStatusTracker
	Feedback *FeedbackManager

	ShowCoach bool

	width, height int

	// exitArmed is set after esc is pressed with unsaved changes;
	// a second esc discards them.
	exitArmed bool
}

// NewEditorModel creates an editor with no draft loaded.
func NewEditorModel() *EditorModel {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(20)

	return &EditorModel{
		Textarea:  ta,
		Tracker:   NewSaveStatusTracker(),
		Feedback:  NewFeedbackManager(),
		ShowCoach: true,
	}
}

// StartEditing loads a draft into the editor and begins a fresh
// save-status session.
func (m *EditorModel) StartEditing(name, content string) {
	m.DraftName = name
	m.savedContent = content
	m.dirty = false
	m.exitArmed = false
	m.selectedID = ""

	m.Textarea.SetValue(content)
	m.Textarea.Focus()

	m.Tracker = NewSaveStatusTracker()
	m.refreshCoach(content)
}

// Close ends the editing session. The tracker is disposed so no
// in-flight debounce window can mutate state afterwards.
func (m *EditorModel) Close() {
	m.Tracker.Dispose()
	m.Textarea.Blur()
	m.Textarea.Reset()
	m.DraftName = ""
	m.savedContent = ""
	m.dirty = false
	m.exitArmed = false
	m.selectedID = ""
}

// Content returns the current draft text.
func (m *EditorModel) Content() string {
	return m.Textarea.Value()
}

// Dirty reports whether the draft diverges from its on-disk copy.
func (m *EditorModel) Dirty() bool {
	return m.dirty
}

// SetSize resizes the editor and its panes.
func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	editorWidth := width - 4
	if m.ShowCoach {
		editorWidth -= coachSidebarWidth + 1
	}
	if editorWidth < 20 {
		editorWidth = 20
	}

	editorHeight := height - 6 // borders, status bar, help line
	if editorHeight < 3 {
		editorHeight = 3
	}

	m.Textarea.SetWidth(editorWidth)
	m.Textarea.SetHeight(editorHeight)
}

// refreshCoach recomputes metrics and suggestions wholesale from the
// given text and reconciles the highlight against the new batch.
func (m *EditorModel) refreshCoach(text string) {
	m.Metrics = metrics.Compute(text)
	m.Suggestions = coach.Select(m.Metrics.Length, m.Metrics.Paragraphs)

	if m.selectedID != "" && m.selectionIndex() < 0 {
		m.selectedID = ""
	}
}

// selectionIndex resolves the highlighted card's position in the
// current batch, or -1 when nothing is highlighted.
func (m *EditorModel) selectionIndex() int {
	if m.selectedID == "" {
		return -1
	}
	for i, s := range m.Suggestions {
		if s.ID == m.selectedID {
			return i
		}
	}
	return -1
}

// MoveSelection moves the coach highlight by delta, clamped to the
// batch. With no current highlight it starts at the first card.
func (m *EditorModel) MoveSelection(delta int) {
	if len(m.Suggestions) == 0 {
		m.selectedID = ""
		return
	}

	idx := m.selectionIndex()
	if idx < 0 {
		idx = 0
	} else {
		idx += delta
		if idx < 0 {
			idx = 0
		}
		if idx >= len(m.Suggestions) {
			idx = len(m.Suggestions) - 1
		}
	}

	m.selectedID = m.Suggestions[idx].ID
}

// SelectedSuggestion returns the highlighted card, if any.
func (m *EditorModel) SelectedSuggestion() (coach.Suggestion, bool) {
	idx := m.selectionIndex()
	if idx < 0 {
		return coach.Suggestion{}, false
	}
	return m.Suggestions[idx], true
}
