package cli

import (
	"fmt"
	"strings"

	"github.com/draftpad/draftpad-cli/pkg/coach"
	"github.com/draftpad/draftpad-cli/pkg/metrics"
)

// FormatStats renders a draft's metrics as an aligned block for the
// stats command.
func FormatStats(name string, m metrics.Metrics, grade int, ageRange string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Draft: %s\n\n", name)
	fmt.Fprintf(&b, "  Characters:   %d\n", m.Length)
	fmt.Fprintf(&b, "  Words:        %d\n", m.Words)
	fmt.Fprintf(&b, "  Paragraphs:   %d\n", m.Paragraphs)
	fmt.Fprintf(&b, "  Sentences:    %d\n", m.Sentences)
	fmt.Fprintf(&b, "  Reading time: %d min\n", metrics.ReadingTime(m))
	fmt.Fprintf(&b, "  Readability:  grade %d (ages %s)\n", grade, ageRange)
	fmt.Fprintf(&b, "  Progress:     %d%%\n", metrics.Progress(m.Length))

	return b.String()
}

// FormatSuggestions renders a suggestion batch as numbered cards for
// the coach command.
func FormatSuggestions(name string, suggestions []coach.Suggestion) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Coach suggestions for %s:\n\n", name)
	for i, s := range suggestions {
		priority := s.Priority
		if priority == "" {
			priority = coach.PriorityLow
		}
		fmt.Fprintf(&b, "  %d. %s [%s/%s]\n", i+1, s.Title, s.Tone, priority)
		fmt.Fprintf(&b, "     %s\n", s.Description)
		if i < len(suggestions)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Pluralize returns the singular or plural form based on count
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
