package answers

import "testing"

func TestDisplay_SelectedPrefersValue(t *testing.T) {
	a := Selected("The Trader", "📊 The Trader: Active analysis/management.")
	if got := a.Display(); got != "📊 The Trader: Active analysis/management." {
		t.Errorf("got %q, want option value", got)
	}
}

func TestDisplay_SelectedFallsBackToLabel(t *testing.T) {
	a := Selected("Instagram", "")
	if got := a.Display(); got != "Instagram" {
		t.Errorf("got %q, want label fallback", got)
	}
}

func TestDisplay_TextTrims(t *testing.T) {
	a := Text("  freedom and time  ")
	if got := a.Display(); got != "freedom and time" {
		t.Errorf("got %q, want trimmed text", got)
	}
}

func TestDisplay_ZeroAnswer(t *testing.T) {
	var a Answer
	if got := a.Display(); got != "" {
		t.Errorf("zero answer displays %q, want empty", got)
	}
	if !a.IsEmpty() {
		t.Error("zero answer should be empty")
	}
}

func TestSet_MissingKeyIsEmptyString(t *testing.T) {
	s := NewSet()
	if got := s.Display("walletFeel"); got != "" {
		t.Errorf("missing key displays %q, want empty", got)
	}
	if _, ok := s.Get("walletFeel"); ok {
		t.Error("missing key should not exist")
	}
}

func TestSet_CloneIsIndependent(t *testing.T) {
	s := NewSet()
	s.Put("lifeStage", Selected("The Builder", "builder"))

	snap := s.Clone()
	s.Put("lifeStage", Selected("The Explorer", "explorer"))

	if got := snap.Display("lifeStage"); got != "builder" {
		t.Errorf("clone changed after mutation: got %q", got)
	}
}

func TestSet_OverwriteInPlace(t *testing.T) {
	s := NewSet()
	s.Put("howDiscovered", Selected("Instagram", "📸 Instagram"))
	s.Put("howDiscovered", Selected("Other", "🌐 Other"))
	if len(s) != 1 {
		t.Fatalf("got %d entries, want 1", len(s))
	}
	if got := s.Display("howDiscovered"); got != "🌐 Other" {
		t.Errorf("got %q after overwrite", got)
	}
}
