package commands

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/internal/cli"
	"github.com/draftpad/draftpad-cli/pkg/files"
	"github.com/draftpad/draftpad-cli/pkg/metrics"
)

var (
	listShowArchived bool
	listPattern      string
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List drafts",
		Long: `List all drafts in the current project with a one-line summary each.

Examples:
  # List active drafts
  draftpad list

  # List archived drafts
  draftpad list --archived

  # List drafts matching a glob pattern
  draftpad list --pattern "essay-*"
  draftpad list --pattern "*draft*"`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runList,
	}

	cmd.Flags().BoolVar(&listShowArchived, "archived", false, "List archived drafts instead of active ones")
	cmd.Flags().StringVar(&listPattern, "pattern", "", "Only list drafts whose name matches this glob pattern")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	var names []string
	var err error

	if listShowArchived {
		names, err = files.ListArchivedDrafts()
	} else {
		names, err = files.ListDrafts()
	}
	if err != nil {
		return err
	}

	if listPattern != "" {
		if !doublestar.ValidatePattern(listPattern) {
			return fmt.Errorf("invalid pattern %q", listPattern)
		}
		filtered := names[:0]
		for _, name := range names {
			if ok, _ := doublestar.Match(listPattern, name); ok {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}

	if len(names) == 0 {
		fmt.Println("No drafts found.")
		return nil
	}

	for _, name := range names {
		summary := ""
		draft, readErr := readDraftMaybeArchived(name, listShowArchived)
		if readErr == nil {
			m := metrics.Compute(draft.Content)
			summary = fmt.Sprintf("  (%s words, %d%%)", metrics.FormatCount(m.Words), metrics.Progress(m.Length))
		}
		fmt.Fprintf(os.Stdout, "%s%s\n", name, summary)
	}

	fmt.Printf("\n%d %s\n", len(names), cli.Pluralize(len(names), "draft", "drafts"))
	return nil
}
