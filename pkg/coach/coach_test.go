package coach

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_ShortDraft(t *testing.T) {
	got := Select(50, 0)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Contains(t, strings.ToLower(got[0].Title), "outline")
	assert.Contains(t, strings.ToLower(got[1].Title), "thesis")
	assert.Equal(t, PriorityHigh, got[0].Priority)
	assert.Equal(t, PriorityMid, got[1].Priority)
}

func TestSelect_MidDraft(t *testing.T) {
	got := Select(300, 1)

	require.Len(t, got, 2)
	assert.Equal(t, ToneStructure, got[0].Tone)
	assert.Equal(t, PriorityHigh, got[0].Priority)
	assert.Equal(t, ToneEvidence, got[1].Tone)
	assert.Equal(t, PriorityMid, got[1].Priority)
}

func TestSelect_LongDraftFewParagraphs(t *testing.T) {
	// paragraph rule wins over raw length once the draft is long
	got := Select(600, 1)

	require.Len(t, got, 2)
	assert.Equal(t, ToneStructure, got[0].Tone)
	assert.Equal(t, PriorityHigh, got[0].Priority)
	assert.Contains(t, strings.ToLower(got[0].Title), "paragraph")
	assert.Equal(t, ToneFlow, got[1].Tone)
}

func TestSelect_LongStructuredDraft(t *testing.T) {
	got := Select(600, 5)

	require.Len(t, got, 4)

	wantTones := []Tone{ToneFlow, ToneEvidence, ToneClarity, ToneStructure}
	wantPriorities := []Priority{PriorityMid, PriorityHigh, PriorityMid, PriorityHigh}
	for i, s := range got {
		assert.Equal(t, wantTones[i], s.Tone, "tone at %d", i)
		assert.Equal(t, wantPriorities[i], s.Priority, "priority at %d", i)
	}
}

func TestSelect_BucketBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		paragraphs int
		wantFirst  string // title substring of the first card
	}{
		{"just under short threshold", 99, 0, "outline"},
		{"exactly at short threshold", 100, 0, "summarize"},
		{"just under mid threshold", 499, 2, "summarize"},
		{"exactly at mid threshold", 500, 2, "split"},
		{"long with three paragraphs", 500, 3, "transitions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.length, tt.paragraphs)
			require.NotEmpty(t, got)
			assert.Contains(t, strings.ToLower(got[0].Title), tt.wantFirst)
		})
	}
}

func TestSelect_AlwaysBetweenTwoAndFour(t *testing.T) {
	for length := 0; length <= 1500; length += 37 {
		for paragraphs := 0; paragraphs <= 8; paragraphs++ {
			got := Select(length, paragraphs)
			assert.GreaterOrEqual(t, len(got), 2, "Select(%d, %d)", length, paragraphs)
			assert.LessOrEqual(t, len(got), 4, "Select(%d, %d)", length, paragraphs)
		}
	}
}

func TestSelect_IDsUniqueWithinBatch(t *testing.T) {
	got := Select(600, 5)

	seen := map[string]bool{}
	for _, s := range got {
		assert.False(t, seen[s.ID], "duplicate id %q", s.ID)
		seen[s.ID] = true
	}
}

func TestSelect_Deterministic(t *testing.T) {
	a := Select(300, 1)
	b := Select(300, 1)
	assert.Equal(t, a, b)
}

func TestSelect_ReturnsCopy(t *testing.T) {
	a := Select(50, 0)
	a[0].Title = "mutated"

	b := Select(50, 0)
	assert.NotEqual(t, "mutated", b[0].Title)
}
