package cmd

import "testing"

func TestResolveVersionPrefersLinkerValue(t *testing.T) {
	old := version
	defer func() { version = old }()

	version = "1.2.3"
	if got := resolveVersion(); got != "1.2.3" {
		t.Errorf("resolveVersion() = %q, want %q", got, "1.2.3")
	}

	version = ""
	if got := resolveVersion(); got == "" {
		t.Error("resolveVersion() returned empty string")
	}
}
