package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/cmd/commands"
	"github.com/draftpad/draftpad-cli/pkg/files"
	"github.com/draftpad/draftpad-cli/pkg/models"
	"github.com/draftpad/draftpad-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "draftpad",
	Short: "Terminal writing app with a built-in writing coach",
	Long:  `Draftpad is a terminal writing app. It stores drafts as plain Markdown files and pairs the editor with a writing coach sidebar that suggests next steps based on how the draft is developing.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Check if .draftpad directory exists
		if _, err := os.Stat(files.DraftpadDir); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: No .draftpad directory found in the current directory.\n")
			fmt.Fprintf(os.Stderr, "Please run 'draftpad init' first to initialize a new project.\n")
			os.Exit(1)
		}

		// Launch TUI
		app := tui.NewApp()
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Draftpad project",
	Long:  `Creates the .draftpad folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Draftpad project in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		if err := files.WriteSettings(models.DefaultSettings()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to write default settings: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("✓ Created .draftpad folder structure")
		fmt.Println("✓ You can now start writing!")
		fmt.Println("\nRun 'draftpad' to open the editor.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Draftpad",
	Long:  `Display the current version of the Draftpad CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Draftpad version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewCoachCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(commands.NewEditCommand())
	rootCmd.AddCommand(commands.NewImportCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewArchiveCommand())
	rootCmd.AddCommand(commands.NewRestoreCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
