package answers

import "strings"

// Kind discriminates the two answer variants.
type Kind int

const (
	// KindText is a free-text answer (name, email, success definition, ...).
	KindText Kind = iota
	// KindSelected is a chosen option from a single-select question.
	KindSelected
)

// Answer is the value stored for a single question. It is either raw text
// or a selected option carrying both the display label and the submission
// value. The zero Answer is an empty text answer.
type Answer struct {
	kind  Kind
	text  string
	label string
	value string
}

// Text creates a free-text answer.
func Text(s string) Answer {
	return Answer{kind: KindText, text: s}
}

// Selected creates an answer from a chosen option.
func Selected(label, value string) Answer {
	return Answer{kind: KindSelected, label: label, value: value}
}

// Kind returns the answer variant.
func (a Answer) Kind() Kind {
	return a.kind
}

// Label returns the option label for selected answers, "" for text answers.
func (a Answer) Label() string {
	return a.label
}

// Display resolves the answer to the canonical string used for classification
// and submission: the option value if present, else the option label, else
// the raw text. The result is trimmed.
func (a Answer) Display() string {
	switch {
	case a.kind == KindSelected && a.value != "":
		return strings.TrimSpace(a.value)
	case a.kind == KindSelected:
		return strings.TrimSpace(a.label)
	default:
		return strings.TrimSpace(a.text)
	}
}

// Raw returns the unresolved text for text answers (untrimmed, as typed).
// Selected answers return their value.
func (a Answer) Raw() string {
	if a.kind == KindSelected {
		return a.value
	}
	return a.text
}

// IsEmpty reports whether the answer resolves to an empty string.
func (a Answer) IsEmpty() bool {
	return a.Display() == ""
}
