package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/draftpad/draftpad-cli/pkg/coach"
	"github.com/draftpad/draftpad-cli/pkg/metrics"
)

// coachSidebarWidth is the outer width of the coach pane.
const coachSidebarWidth = 34

// View renders the editor: draft pane on the left, coach sidebar on
// the right, status and help lines below.
func (m *EditorModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()

	editorPane := ActiveBorderStyle.Render(m.Textarea.View())

	body := editorPane
	if m.ShowCoach {
		sidebar := m.renderCoachSidebar()
		body = lipgloss.JoinHorizontal(lipgloss.Top, editorPane, " ", sidebar)
	}

	statusBar := m.renderStatusBar()
	help := HelpStyle.Render("ctrl+s save · ctrl+j/k coach cards · esc back · ctrl+c quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		statusBar,
		help,
	)
}

func (m *EditorModel) renderHeader() string {
	name := m.DraftName
	if m.dirty {
		name += " *"
	}
	return HeaderStyle.PaddingLeft(1).Render(name)
}

// renderStatusBar shows the save indicator, the document metrics, and
// any transient feedback.
func (m *EditorModel) renderStatusBar() string {
	var status string
	if m.Tracker.Status() == StatusEditing {
		status = StatusEditingStyle.Render("● Editing")
	} else {
		status = StatusSavedStyle.Render("● Saved")
	}

	counts := DimStyle.Render(fmt.Sprintf(
		"%s chars · %s words · %d paragraphs · %d%%",
		metrics.FormatCount(m.Metrics.Length),
		metrics.FormatCount(m.Metrics.Words),
		m.Metrics.Paragraphs,
		metrics.Progress(m.Metrics.Length),
	))

	line := fmt.Sprintf(" %s  %s", status, counts)

	if feedback, ok := m.Feedback.View(); ok {
		line += "  " + NormalStyle.Render(feedback)
	}

	return line
}

// renderCoachSidebar renders the current suggestion batch as cards.
func (m *EditorModel) renderCoachSidebar() string {
	innerWidth := coachSidebarWidth - 4

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("WRITING COACH"))
	b.WriteString("\n\n")

	if len(m.Suggestions) == 0 {
		b.WriteString(EmptyStateStyle.Render("Start typing to get suggestions"))
	}

	selectedIdx := m.selectionIndex()
	for i, s := range m.Suggestions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderCoachCard(s, i == selectedIdx, innerWidth))
		b.WriteString("\n")
	}

	style := InactiveBorderStyle.Width(coachSidebarWidth - 2).Padding(0, 1)
	return style.Render(b.String())
}

func renderCoachCard(s coach.Suggestion, selected bool, width int) string {
	accent := lipgloss.NewStyle().Foreground(toneColor(string(s.Tone))).Bold(true)

	title := accent.Render(s.Title)
	if selected {
		title = SelectedStyle.Render(s.Title)
	}

	meta := fmt.Sprintf("%s · %s", s.Tone, priorityLabel(s.Priority))

	var b strings.Builder
	b.WriteString(wordwrap.String(title, width))
	b.WriteString("\n")
	b.WriteString(priorityStyle(s.Priority).Render(meta))
	if selected {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(DimStyle.Render(s.Description), width))
	}

	return b.String()
}

// priorityLabel treats a missing priority as low, for display only.
func priorityLabel(p coach.Priority) string {
	if p == "" {
		return string(coach.PriorityLow)
	}
	return string(p)
}

func priorityStyle(p coach.Priority) lipgloss.Style {
	switch p {
	case coach.PriorityHigh:
		return PriorityHighStyle
	case coach.PriorityMid:
		return PriorityMidStyle
	}
	return PriorityLowStyle
}
