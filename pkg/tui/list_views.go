package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// View renders the draft list beside a preview of the selected draft.
func (m *DraftListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	previewWidth := m.width - listWidth - 4
	if previewWidth < 10 {
		previewWidth = 10
	}

	paneHeight := m.height - 4
	if paneHeight < 3 {
		paneHeight = 3
	}

	listPane := ActiveBorderStyle.
		Width(listWidth).
		Height(paneHeight).
		Render(m.renderList())

	previewPane := InactiveBorderStyle.
		Width(previewWidth).
		Height(paneHeight).
		Render(m.renderPreview(previewWidth - 2))

	body := lipgloss.JoinHorizontal(lipgloss.Top, listPane, " ", previewPane)

	help := HelpStyle.Render("enter open · n new · a archive · d delete · r reload · q quit")
	if m.confirmDelete {
		help = HelpStyle.Foreground(lipgloss.Color(ColorDanger)).
			Render("Delete '" + m.selectedName() + "'? y/n")
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

func (m *DraftListModel) renderList() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("DRAFTS"))
	b.WriteString("\n\n")

	if len(m.drafts) == 0 {
		b.WriteString(EmptyStateStyle.Render("No drafts yet - press n to start one"))
		return b.String()
	}

	for i, name := range m.drafts {
		line := "  " + name
		if i == m.cursor {
			line = SelectedStyle.Render("> " + name)
		} else {
			line = NormalStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m *DraftListModel) renderPreview(width int) string {
	if m.previewErr != "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger)).
			Render(m.previewErr)
	}

	if len(m.drafts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(DimStyle.Render(m.previewSummary()))
	b.WriteString("\n\n")

	preview := m.preview
	if preview == "" {
		b.WriteString(EmptyStateStyle.Render("Empty draft"))
		return b.String()
	}

	b.WriteString(wordwrap.String(preview, width))
	return b.String()
}
