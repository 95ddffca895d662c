package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/internal/cli"
	"github.com/draftpad/draftpad-cli/pkg/metrics"
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard <draft>",
		Short: "Copy a draft's content to the clipboard",
		Long: `Copy a draft's composed content to the system clipboard, ready to
paste into a document or email.

Examples:
  # Copy a draft
  draftpad clipboard my-essay
  draftpad clip my-essay`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip", "copy"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runClipboard,
	}

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	name := args[0]

	draft, err := readDraftMaybeArchived(name, false)
	if err != nil {
		return err
	}

	composed := composeDraft(name, draft.Content)
	if err := clipboard.WriteAll(composed); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	m := metrics.Compute(draft.Content)
	fmt.Printf("✓ Copied %s to clipboard (%s words)\n", name, metrics.FormatCount(m.Words))
	return nil
}
