// Package coach turns draft statistics into a short list of next-step
// writing suggestions. Selection is rule based: an ordered table of
// mutually exclusive buckets keyed on content length and paragraph
// count, first match wins.
package coach

// Tone categorizes what aspect of the writing a suggestion addresses.
type Tone string

const (
	ToneStructure Tone = "structure"
	ToneClarity   Tone = "clarity"
	ToneEvidence  Tone = "evidence"
	ToneFlow      Tone = "flow"
)

// Priority indicates how strongly a suggestion should be surfaced.
type Priority string

const (
	PriorityHigh Priority = "high"
	PriorityMid  Priority = "mid"
	PriorityLow  Priority = "low"
)

// Suggestion is a single coaching card. IDs are unique within one
// computed batch only; the rule table reuses ids like "1" and "2"
// across batches.
type Suggestion struct {
	ID          string
	Title       string
	Description string
	Tone        Tone
	Priority    Priority
}

// MaxSuggestions caps the number of cards returned per batch.
const MaxSuggestions = 4

// minSuggestions is the floor guaranteed by Select; a bucket that ever
// comes up short is padded with the fallback card.
const minSuggestions = 2

// bucketRule pairs a predicate over the two metrics with the literal
// cards that bucket produces, in display order.
type bucketRule struct {
	matches     func(length, paragraphs int) bool
	suggestions []Suggestion
}

// rules is evaluated top to bottom; the first matching bucket decides
// the whole batch. The final rule always matches.
var rules = []bucketRule{
	{
		matches: func(length, paragraphs int) bool { return length < 100 },
		suggestions: []Suggestion{
			{
				ID:          "1",
				Title:       "Lay out an outline first",
				Description: "Before writing more, sketch the sections you intend to cover so the draft has a skeleton to grow on.",
				Tone:        ToneStructure,
				Priority:    PriorityHigh,
			},
			{
				ID:          "2",
				Title:       "State the core thesis in one sentence",
				Description: "Write the single sentence the whole piece argues for. Everything else should serve it.",
				Tone:        ToneClarity,
				Priority:    PriorityMid,
			},
		},
	},
	{
		matches: func(length, paragraphs int) bool { return length < 500 },
		suggestions: []Suggestion{
			{
				ID:          "1",
				Title:       "Summarize each paragraph's point in one sentence",
				Description: "If a paragraph can't be summarized in a sentence, it is carrying more than one idea.",
				Tone:        ToneStructure,
				Priority:    PriorityHigh,
			},
			{
				ID:          "2",
				Title:       "Add a concrete example",
				Description: "Ground the argument with at least one specific, concrete example the reader can picture.",
				Tone:        ToneEvidence,
				Priority:    PriorityMid,
			},
		},
	},
	{
		matches: func(length, paragraphs int) bool { return paragraphs < 3 },
		suggestions: []Suggestion{
			{
				ID:          "1",
				Title:       "Split into more paragraphs",
				Description: "One claim per paragraph. Long unbroken text hides the structure of the argument.",
				Tone:        ToneStructure,
				Priority:    PriorityHigh,
			},
			{
				ID:          "2",
				Title:       "Define each paragraph's role",
				Description: "Decide whether each paragraph is intro, body, or conclusion, and make it read like one.",
				Tone:        ToneFlow,
				Priority:    PriorityMid,
			},
		},
	},
	{
		matches: func(length, paragraphs int) bool { return true },
		suggestions: []Suggestion{
			{
				ID:          "1",
				Title:       "Check transitions between paragraphs",
				Description: "Read the last sentence of each paragraph against the first sentence of the next.",
				Tone:        ToneFlow,
				Priority:    PriorityMid,
			},
			{
				ID:          "2",
				Title:       "Strengthen the evidence",
				Description: "Back the key claims with an example, a statistic, or a citation.",
				Tone:        ToneEvidence,
				Priority:    PriorityHigh,
			},
			{
				ID:          "3",
				Title:       "Address one counterargument preemptively",
				Description: "Pick the strongest objection a skeptical reader would raise and answer it in the text.",
				Tone:        ToneClarity,
				Priority:    PriorityMid,
			},
			{
				ID:          "4",
				Title:       "Strengthen the conclusion with a concrete next action",
				Description: "End on what the reader should do or think next, not on a restatement.",
				Tone:        ToneStructure,
				Priority:    PriorityHigh,
			},
		},
	},
}

// fallback pads a batch that comes up short. Not reachable through the
// table above, but Select guarantees the floor regardless.
var fallback = Suggestion{
	ID:          "fallback",
	Title:       "Check readability",
	Description: "Read the draft aloud once and smooth anything you stumble over.",
	Tone:        ToneClarity,
	Priority:    PriorityLow,
}

// Select returns the coaching cards for the given content length and
// paragraph count. The result preserves the matched bucket's order and
// always holds between 2 and 4 cards.
func Select(length, paragraphs int) []Suggestion {
	var picked []Suggestion
	for _, rule := range rules {
		if rule.matches(length, paragraphs) {
			picked = append([]Suggestion(nil), rule.suggestions...)
			break
		}
	}

	for len(picked) < minSuggestions {
		picked = append(picked, fallback)
	}
	if len(picked) > MaxSuggestions {
		picked = picked[:MaxSuggestions]
	}

	return picked
}
