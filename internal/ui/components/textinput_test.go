package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func typeRune(t TextInput, r rune) TextInput {
	next, _ := t.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	return next
}

func TestDigitsOnlyFilter(t *testing.T) {
	in := NewTextInput("8 digits", "", true, 12)

	for _, r := range "9a1b2 3" {
		in = typeRune(in, r)
	}
	if got := in.Value(); got != "9123" {
		t.Errorf("Value() = %q, want %q", got, "9123")
	}
}

func TestDigitsOnlyAdmitsPlusPrefix(t *testing.T) {
	in := NewTextInput("8 digits", "", true, 12)

	for _, r := range "+6591234567" {
		in = typeRune(in, r)
	}
	if got := in.Value(); got != "+6591234567" {
		t.Errorf("Value() = %q, want %q", got, "+6591234567")
	}
}

func TestFreeTextPassesThrough(t *testing.T) {
	in := NewTextInput("name", "", false, 120)

	for _, r := range "Jo Tan" {
		in = typeRune(in, r)
	}
	if got := in.Value(); got != "Jo Tan" {
		t.Errorf("Value() = %q, want %q", got, "Jo Tan")
	}
}
