package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/draftpad/draftpad-cli/internal/cli"
	"github.com/draftpad/draftpad-cli/pkg/coach"
	"github.com/draftpad/draftpad-cli/pkg/files"
	"github.com/draftpad/draftpad-cli/pkg/metrics"
)

// watchDebounce coalesces bursts of file events (editors often write a
// draft several times per save) into one report.
const watchDebounce = 500 * time.Millisecond

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch drafts and print coach suggestions on change",
		Long: `Watch the drafts directory and, whenever a draft changes, print its
updated statistics and coach suggestions. Useful alongside an external
editor.

Stop with ctrl+c.

Examples:
  # Coach in a second terminal while writing in vim
  draftpad watch`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runWatch,
	}

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	draftsDir := filepath.Join(files.DraftpadDir, files.DraftsDir)
	if err := watcher.Add(draftsDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", draftsDir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %s for changes (ctrl+c to stop)...\n", draftsDir)

	// Created stopped; armed on the first relevant event.
	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	changed := map[string]bool{}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(event.Name, files.DraftExt) {
				continue
			}

			name := strings.TrimSuffix(filepath.Base(event.Name), files.DraftExt)
			changed[name] = true
			timer.Reset(watchDebounce)

		case <-timer.C:
			reportChanged(changed)
			changed = map[string]bool{}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func reportChanged(changed map[string]bool) {
	names := make([]string, 0, len(changed))
	for name := range changed {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		draft, err := files.ReadDraft(name)
		if err != nil {
			// Deleted or renamed between the event and the report
			continue
		}

		m := metrics.Compute(draft.Content)
		suggestions := coach.Select(m.Length, m.Paragraphs)

		fmt.Printf("\n--- %s (%s chars, %d paragraphs, %d%%) ---\n",
			name, metrics.FormatCount(m.Length), m.Paragraphs, metrics.Progress(m.Length))
		fmt.Print(cli.FormatSuggestions(name, suggestions))
	}
}
