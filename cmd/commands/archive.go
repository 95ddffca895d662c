package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/internal/cli"
	"github.com/draftpad/draftpad-cli/pkg/files"
)

// NewArchiveCommand creates the archive command
func NewArchiveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <draft>",
		Short: "Move a draft to the archive",
		Long: `Move a draft out of the active list into the archive. Archived
drafts keep their content and can be restored later.

Examples:
  # Archive a draft
  draftpad archive my-essay

  # See what is archived
  draftpad list --archived`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runArchive,
	}

	return cmd
}

func runArchive(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := files.ArchiveDraft(name); err != nil {
		return err
	}

	fmt.Printf("✓ Archived draft %s\n", name)
	return nil
}
