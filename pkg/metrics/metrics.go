package metrics

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ProgressTarget is the character count at which draft progress
// saturates at 100%.
const ProgressTarget = 1000

// wordsPerMinute is the reading speed used for the reading time estimate.
const wordsPerMinute = 200

// Metrics holds the derived statistics for a draft's plain text.
// All fields are recomputed wholesale on every change; nothing is
// updated incrementally.
type Metrics struct {
	Length     int // characters (runes)
	Paragraphs int // non-blank lines
	Words      int
	Sentences  int
}

// Compute derives Metrics from plain text. A paragraph is a
// newline-separated line containing at least one non-whitespace rune.
func Compute(text string) Metrics {
	m := Metrics{
		Length: utf8.RuneCountInString(text),
		Words:  len(strings.Fields(text)),
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			m.Paragraphs++
		}
	}

	m.Sentences = strings.Count(text, ".") +
		strings.Count(text, "!") +
		strings.Count(text, "?")

	return m
}

// Progress maps a character count onto an integer percentage in [0,100],
// saturating at ProgressTarget characters.
func Progress(length int) int {
	if length < 0 {
		length = 0
	}
	if length > ProgressTarget {
		length = ProgressTarget
	}
	return int(math.Round(float64(length) / ProgressTarget * 100))
}

// ReadingTime estimates how long the text takes to read, rounded up to
// a whole minute. Empty text reads in zero minutes.
func ReadingTime(m Metrics) int {
	if m.Words == 0 {
		return 0
	}
	minutes := (m.Words + wordsPerMinute - 1) / wordsPerMinute
	return minutes
}

// Readability computes the Automated Readability Index grade level for
// the text and the age range it corresponds to.
func Readability(text string) (grade int, ageRange string) {
	words := len(strings.Fields(text))
	sentences := strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?")
	if sentences == 0 {
		sentences = 1
	}

	chars := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			chars++
		}
	}
	if words == 0 {
		words = 1
	}

	ari := 4.71*(float64(chars)/float64(words)) + 0.5*(float64(words)/float64(sentences)) - 21.43
	grade = int(math.Ceil(ari))
	if grade < 1 {
		grade = 1
	}

	ageRange = "Adult"
	switch grade {
	case 1:
		ageRange = "5-6"
	case 2:
		ageRange = "6-7"
	case 3:
		ageRange = "7-9"
	case 4:
		ageRange = "9-10"
	case 5:
		ageRange = "10-11"
	case 6:
		ageRange = "11-12"
	case 7:
		ageRange = "12-13"
	case 8:
		ageRange = "13-14"
	case 9:
		ageRange = "14-15"
	case 10:
		ageRange = "15-16"
	case 11:
		ageRange = "16-17"
	case 12:
		ageRange = "17-18"
	}

	return grade, ageRange
}

// FormatCount formats a character or word count for display
func FormatCount(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	} else if n < 10000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.0fK", float64(n)/1000)
}
