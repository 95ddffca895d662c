package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/internal/cli"
	"github.com/draftpad/draftpad-cli/pkg/metrics"
)

var statsArchived bool

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <draft>",
		Short: "Show writing statistics for a draft",
		Long: `Show character, word, paragraph, and sentence counts for a draft,
along with an estimated reading time, a readability grade, and progress
toward the target length.

Examples:
  # Stats for a draft
  draftpad stats my-essay

  # Stats for an archived draft
  draftpad stats my-essay --archived`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runStats,
	}

	cmd.Flags().BoolVar(&statsArchived, "archived", false, "Read from the archive")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	name := args[0]

	draft, err := readDraftMaybeArchived(name, statsArchived)
	if err != nil {
		return err
	}

	m := metrics.Compute(draft.Content)
	grade, ageRange := metrics.Readability(draft.Content)

	fmt.Print(cli.FormatStats(name, m, grade, ageRange))
	return nil
}
