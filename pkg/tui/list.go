package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/draftpad/draftpad-cli/pkg/files"
	"github.com/draftpad/draftpad-cli/pkg/metrics"
)

// DraftListModel manages the state of the draft list view.
type DraftListModel struct {
	drafts []string
	cursor int

	// preview holds the selected draft's content; previewErr is shown
	// in its place when loading fails.
	preview    string
	previewErr string

	confirmDelete bool

	width, height int
}

func NewDraftListModel() *DraftListModel {
	m := &DraftListModel{}
	m.loadDrafts()
	return m
}

func (m *DraftListModel) Init() tea.Cmd {
	return nil
}

func (m *DraftListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *DraftListModel) loadDrafts() {
	names, err := files.ListDrafts()
	if err != nil {
		m.drafts = nil
		m.previewErr = err.Error()
		return
	}

	m.drafts = names
	if m.cursor >= len(m.drafts) {
		m.cursor = len(m.drafts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.loadPreview()
}

func (m *DraftListModel) loadPreview() {
	m.preview = ""
	m.previewErr = ""

	if len(m.drafts) == 0 {
		return
	}

	draft, err := files.ReadDraft(m.drafts[m.cursor])
	if err != nil {
		m.previewErr = err.Error()
		return
	}
	m.preview = draft.Content
}

func (m *DraftListModel) selectedName() string {
	if len(m.drafts) == 0 {
		return ""
	}
	return m.drafts[m.cursor]
}

func (m *DraftListModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.confirmDelete {
		return m.handleDeleteConfirm(keyMsg)
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.loadPreview()
		}

	case "down", "j":
		if m.cursor < len(m.drafts)-1 {
			m.cursor++
			m.loadPreview()
		}

	case "enter":
		return m.openSelected()

	case "n":
		return m.createDraft()

	case "a":
		m.archiveSelected()

	case "d":
		if len(m.drafts) > 0 {
			m.confirmDelete = true
		}

	case "r":
		m.loadDrafts()

	case "q":
		return tea.Quit
	}

	return nil
}

func (m *DraftListModel) handleDeleteConfirm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y":
		if name := m.selectedName(); name != "" {
			if err := files.DeleteDraft(name); err != nil {
				m.previewErr = err.Error()
			}
		}
		m.confirmDelete = false
		m.loadDrafts()

	case "n", "esc":
		m.confirmDelete = false
	}

	return nil
}

func (m *DraftListModel) openSelected() tea.Cmd {
	name := m.selectedName()
	if name == "" {
		return nil
	}

	draft, err := files.ReadDraft(name)
	if err != nil {
		m.previewErr = err.Error()
		return nil
	}

	return func() tea.Msg {
		return SwitchViewMsg{
			view:      editorView,
			draftName: draft.Name,
			content:   draft.Content,
		}
	}
}

// createDraft writes an empty draft under the first free untitled name
// and opens it.
func (m *DraftListModel) createDraft() tea.Cmd {
	name := "untitled"
	for i := 2; draftExists(name, m.drafts); i++ {
		name = fmt.Sprintf("untitled-%d", i)
	}

	if err := files.WriteDraft(name, ""); err != nil {
		m.previewErr = err.Error()
		return nil
	}

	m.loadDrafts()
	return func() tea.Msg {
		return SwitchViewMsg{view: editorView, draftName: name}
	}
}

func (m *DraftListModel) archiveSelected() {
	name := m.selectedName()
	if name == "" {
		return
	}
	if err := files.ArchiveDraft(name); err != nil {
		m.previewErr = err.Error()
		return
	}
	m.loadDrafts()
}

func draftExists(name string, drafts []string) bool {
	for _, d := range drafts {
		if d == name {
			return true
		}
	}
	return false
}

// previewSummary condenses the selected draft's metrics for the
// preview pane header.
func (m *DraftListModel) previewSummary() string {
	stats := metrics.Compute(m.preview)
	return fmt.Sprintf("%s chars · %s words · %d paragraphs · %d%% of target",
		metrics.FormatCount(stats.Length),
		metrics.FormatCount(stats.Words),
		stats.Paragraphs,
		metrics.Progress(stats.Length),
	)
}
