package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_Paragraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "blank and whitespace-only lines excluded",
			text: "a\n\nb\n  \nc",
			want: 3,
		},
		{
			name: "empty text",
			text: "",
			want: 0,
		},
		{
			name: "single line",
			text: "hello world",
			want: 1,
		},
		{
			name: "trailing newline",
			text: "one\ntwo\n",
			want: 2,
		},
		{
			name: "only whitespace",
			text: "   \n\t\n  ",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.text)
			assert.Equal(t, tt.want, got.Paragraphs)
		})
	}
}

func TestCompute_Length(t *testing.T) {
	assert.Equal(t, 0, Compute("").Length)
	assert.Equal(t, 5, Compute("hello").Length)

	// Runes, not bytes
	assert.Equal(t, 2, Compute("목차").Length)
}

func TestCompute_Words(t *testing.T) {
	m := Compute("one two  three\nfour")
	assert.Equal(t, 4, m.Words)
}

func TestCompute_Sentences(t *testing.T) {
	m := Compute("First. Second! Third? Fourth")
	assert.Equal(t, 3, m.Sentences)
}

func TestProgress(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 0},
		{500, 50},
		{1000, 100},
		{5000, 100}, // saturates
		{-10, 0},
		{250, 25},
		{999, 100}, // rounds, does not truncate
		{994, 99},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Progress(tt.length), "Progress(%d)", tt.length)
	}
}

func TestProgress_Monotonic(t *testing.T) {
	prev := 0
	for length := 0; length <= 1200; length += 10 {
		p := Progress(length)
		assert.GreaterOrEqual(t, p, prev, "Progress(%d)", length)
		assert.LessOrEqual(t, p, 100)
		prev = p
	}
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 0, ReadingTime(Metrics{Words: 0}))
	assert.Equal(t, 1, ReadingTime(Metrics{Words: 1}))
	assert.Equal(t, 1, ReadingTime(Metrics{Words: 200}))
	assert.Equal(t, 2, ReadingTime(Metrics{Words: 201}))
}

func TestReadability(t *testing.T) {
	// Short simple words score at the bottom of the scale
	grade, age := Readability("I am a cat. I sat.")
	assert.Equal(t, 1, grade)
	assert.Equal(t, "5-6", age)

	// Long words and a single long sentence push the grade up
	grade, _ = Readability(strings.Repeat("incomprehensibility ", 30) + ".")
	assert.Greater(t, grade, 12)
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "950", FormatCount(950))
	assert.Equal(t, "1.5K", FormatCount(1500))
	assert.Equal(t, "25K", FormatCount(25000))
}
