package catalog

import "github.com/skadvisory/findna/internal/answers"

// Type is the input kind of a question.
type Type string

const (
	TypeSingle Type = "single"
	TypeText   Type = "text"
	TypeEmail  Type = "email"
	TypePhone  Type = "tel"
)

// Option is one choice of a single-select question. Value is what gets
// submitted and classified; Label and Description are for display.
type Option struct {
	Label       string
	Value       string
	Description string
	Emoji       string
}

// Question is an immutable quiz item definition.
type Question struct {
	// ID uniquely identifies the question (e.g. "q7_walletFeel").
	ID string

	// Phase groups questions for progress display and interstitials (1..5).
	Phase int

	// Type selects the input widget and validator family.
	Type Type

	Prompt      string
	Subtitle    string
	Placeholder string

	// Options is populated for TypeSingle only.
	Options []Option

	// Key is the answer key this question writes to. Unique per catalog.
	Key string

	// EntryID is the external form field identifier for submission.
	EntryID string

	// Optional questions may be skipped without a valid answer.
	Optional bool

	// ShowIf gates visibility on prior answers. Nil means always visible.
	ShowIf func(answers.Set) bool
}

// Catalog is an ordered, immutable list of questions.
type Catalog []Question

// Visible returns the ordered subsequence of questions whose ShowIf predicate
// passes against the current answer set. Must be recomputed whenever the set
// changes: a later question's visibility may depend on an earlier answer.
func (c Catalog) Visible(set answers.Set) []Question {
	out := make([]Question, 0, len(c))
	for _, q := range c {
		if q.ShowIf == nil || q.ShowIf(set) {
			out = append(out, q)
		}
	}
	return out
}

// ByKey returns the question writing to the given answer key.
func (c Catalog) ByKey(key string) (Question, bool) {
	for _, q := range c {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}

// FirstIndexOfPhase returns the index within the visible sequence of the
// first question in phase p, or -1 if the phase has no visible questions.
func FirstIndexOfPhase(visible []Question, p int) int {
	for i, q := range visible {
		if q.Phase == p {
			return i
		}
	}
	return -1
}

// PhaseBounds returns the 1-based first and last positions of phase p within
// the visible sequence, for the progress bar.
func PhaseBounds(visible []Question, p int) (start, end int) {
	start, end = -1, -1
	for i, q := range visible {
		if q.Phase != p {
			if start >= 0 {
				break
			}
			continue
		}
		if start < 0 {
			start = i + 1
		}
		end = i + 1
	}
	return start, end
}
