package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/internal/cli"
	"github.com/draftpad/draftpad-cli/pkg/files"
)

var deleteForce bool

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <draft>",
		Short: "Delete a draft permanently",
		Long: `Delete a draft permanently. Consider 'draftpad archive' instead if
you might want the draft back later.

Examples:
  # Delete with confirmation
  draftpad delete my-essay

  # Delete without confirmation
  draftpad delete my-essay --force`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"rm"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runDelete,
	}

	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	if _, err := files.ReadDraft(name); err != nil {
		return err
	}

	if !deleteForce {
		fmt.Printf("Delete draft '%s' permanently? [y/N] ", name)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := files.DeleteDraft(name); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted draft %s\n", name)
	return nil
}
