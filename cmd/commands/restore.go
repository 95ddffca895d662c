package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/internal/cli"
	"github.com/draftpad/draftpad-cli/pkg/files"
)

// NewRestoreCommand creates the restore command
func NewRestoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <draft>",
		Short: "Restore a draft from the archive",
		Long: `Move an archived draft back into the active list.

Examples:
  # Restore an archived draft
  draftpad restore my-essay`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runRestore,
	}

	return cmd
}

func runRestore(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := files.RestoreDraft(name); err != nil {
		return err
	}

	fmt.Printf("✓ Restored draft %s\n", name)
	return nil
}
