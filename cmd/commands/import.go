package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/internal/cli"
	"github.com/draftpad/draftpad-cli/pkg/files"
	"github.com/draftpad/draftpad-cli/pkg/importer"
	"github.com/draftpad/draftpad-cli/pkg/metrics"
)

var importName string

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.html>",
		Short: "Import a saved web page as a draft",
		Long: `Import a locally saved HTML file as a new draft, stripping markup
down to plain text. The draft name is derived from the page title
unless --name is given.

Examples:
  # Import a saved article
  draftpad import ~/Downloads/article.html

  # Import under an explicit name
  draftpad import notes.html --name research-notes`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runImport,
	}

	cmd.Flags().StringVar(&importName, "name", "", "Name for the imported draft (default: slug of the page title)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	title, body, err := importer.ExtractText(f)
	if err != nil {
		return err
	}

	name := importName
	if name == "" {
		name = cli.SlugifyTitle(title)
	}
	if err := cli.ValidateDraftName(name); err != nil {
		return err
	}
	if _, statErr := os.Stat(files.DraftPath(name)); statErr == nil {
		return fmt.Errorf("draft %s already exists", name)
	}

	if err := files.WriteDraft(name, body); err != nil {
		return err
	}

	m := metrics.Compute(body)
	fmt.Printf("✓ Imported %s as draft %s (%s words, %d paragraphs)\n",
		path, name, metrics.FormatCount(m.Words), m.Paragraphs)
	return nil
}
