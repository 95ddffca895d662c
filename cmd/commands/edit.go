package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/internal/cli"
	"github.com/draftpad/draftpad-cli/pkg/files"
	"github.com/draftpad/draftpad-cli/pkg/tui"
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <draft>",
		Short: "Open a draft in your editor",
		Long: `Open a draft in the editor named by $EDITOR (falling back to vi).

With editor.prefer_internal set in config.yaml, this opens the built-in
editor with the writing coach instead.

Examples:
  # Edit with $EDITOR
  draftpad edit my-essay`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runEdit,
	}

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	name := args[0]

	draft, err := files.ReadDraft(name)
	if err != nil {
		return err
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	settings := ctx.LoadSettingsWithDefault()

	if settings.Editor.PreferInternal {
		app := tui.NewApp()
		app.OpenDraft(draft.Name, draft.Content)
		p := tea.NewProgram(app, tea.WithAltScreen())
		_, err := p.Run()
		return err
	}

	launcher := cli.NewEditorLauncher()
	if settings.Editor.Command != "" {
		launcher.DefaultEditor = settings.Editor.Command
	}
	return launcher.OpenFile(files.DraftPath(name))
}
