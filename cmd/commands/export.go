package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/internal/cli"
)

var exportToFile string

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <draft>",
		Short: "Export a draft to stdout or a file",
		Long: `Export a draft as a markdown document with its name as the title.

By default the content is written to stdout; use --file or shell
redirection to write it elsewhere.

Examples:
  # Export to stdout
  draftpad export my-essay

  # Export to a file
  draftpad export my-essay --file essay.md
  draftpad export my-essay > essay.md`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Export to file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	name := args[0]

	draft, err := readDraftMaybeArchived(name, false)
	if err != nil {
		return err
	}

	composed := composeDraft(name, draft.Content)

	if exportToFile == "" {
		fmt.Print(composed)
		return nil
	}

	if err := os.WriteFile(exportToFile, []byte(composed), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("✓ Exported %s to %s\n", name, exportToFile)
	return nil
}

// composeDraft prefixes the content with a title heading derived from
// the draft name, unless the draft already starts with one.
func composeDraft(name, content string) string {
	if strings.HasPrefix(strings.TrimSpace(content), "# ") {
		return content
	}

	title := strings.ReplaceAll(name, "-", " ")
	title = strings.ReplaceAll(title, "_", " ")

	words := strings.Fields(title)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return fmt.Sprintf("# %s\n\n%s", strings.Join(words, " "), content)
}
