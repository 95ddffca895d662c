package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/draftpad/draftpad-cli/pkg/files"
	"github.com/draftpad/draftpad-cli/pkg/models"
)

type sessionState int

const (
	draftListView sessionState = iota
	editorView
)

// SwitchViewMsg moves the app between the draft list and the editor.
type SwitchViewMsg struct {
	view      sessionState
	draftName string
	content   string
}

type App struct {
	state  sessionState
	list   *DraftListModel
	editor *EditorModel
	width  int
	height int
}

func NewApp() *App {
	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	editor := NewEditorModel()
	editor.ShowCoach = settings.UI.ShowCoach

	return &App{
		state:  draftListView,
		list:   NewDraftListModel(),
		editor: editor,
	}
}

// OpenDraft starts the app directly in the editor on the given draft,
// skipping the draft list.
func (a *App) OpenDraft(name, content string) {
	a.state = editorView
	a.editor.StartEditing(name, content)
}

func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height)
		a.editor.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case SwitchViewMsg:
		switch msg.view {
		case draftListView:
			a.state = draftListView
			a.list.loadDrafts()
			return a, a.list.Init()
		case editorView:
			a.state = editorView
			a.editor.StartEditing(msg.draftName, msg.content)
			a.editor.SetSize(a.width, a.height)
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case draftListView:
		cmd = a.list.Update(msg)
	case editorView:
		cmd = a.editor.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	switch a.state {
	case draftListView:
		return a.list.View()
	case editorView:
		return a.editor.View()
	}
	return "Unknown view"
}
