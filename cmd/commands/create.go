package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/internal/cli"
	"github.com/draftpad/draftpad-cli/pkg/files"
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new empty draft",
		Long: `Create a new empty draft with the given name.

Draft names may contain letters, digits, hyphens, and underscores.

Examples:
  # Create a draft
  draftpad create my-essay

  # Then open the TUI to write it
  draftpad`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runCreate,
	}

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := cli.ValidateDraftName(name); err != nil {
		return err
	}

	if _, err := os.Stat(files.DraftPath(name)); err == nil {
		return fmt.Errorf("draft %s already exists", name)
	}

	if err := files.WriteDraft(name, ""); err != nil {
		return err
	}

	fmt.Printf("✓ Created draft %s\n", name)
	return nil
}
