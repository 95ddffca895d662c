package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/internal/cli"
)

var showArchived bool

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <draft>",
		Short: "Display a draft's content",
		Long: `Display the content of a draft on stdout.

Examples:
  # Show a draft
  draftpad show my-essay

  # Show an archived draft
  draftpad show my-essay --archived`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runShow,
	}

	cmd.Flags().BoolVar(&showArchived, "archived", false, "Show an archived draft")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	draft, err := readDraftMaybeArchived(name, showArchived)
	if err != nil {
		return err
	}

	fmt.Print(draft.Content)
	if draft.Content != "" && draft.Content[len(draft.Content)-1] != '\n' {
		fmt.Println()
	}
	return nil
}
