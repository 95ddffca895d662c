package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/internal/cli"
	"github.com/draftpad/draftpad-cli/pkg/coach"
	"github.com/draftpad/draftpad-cli/pkg/metrics"
)

// NewCoachCommand creates the coach command
func NewCoachCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach <draft>",
		Short: "Print writing suggestions for a draft",
		Long: `Print the writing coach's suggestions for a draft.

Suggestions are derived from the draft's length and paragraph count,
the same way the TUI sidebar derives them.

Examples:
  # Get suggestions for a draft
  draftpad coach my-essay`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runCoach,
	}

	return cmd
}

func runCoach(cmd *cobra.Command, args []string) error {
	name := args[0]

	draft, err := readDraftMaybeArchived(name, false)
	if err != nil {
		return err
	}

	m := metrics.Compute(draft.Content)
	suggestions := coach.Select(m.Length, m.Paragraphs)

	fmt.Print(cli.FormatSuggestions(name, suggestions))
	return nil
}
