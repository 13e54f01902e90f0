package catalog

import (
	"testing"

	"github.com/skadvisory/findna/internal/answers"
)

func TestDefault_UniqueKeys(t *testing.T) {
	seen := make(map[string]string)
	for _, q := range Default() {
		if prev, ok := seen[q.Key]; ok {
			t.Errorf("key %q used by both %s and %s", q.Key, prev, q.ID)
		}
		seen[q.Key] = q.ID
	}
}

func TestDefault_PhasesOrderedAndInRange(t *testing.T) {
	last := 1
	for _, q := range Default() {
		if q.Phase < 1 || q.Phase > 5 {
			t.Errorf("%s: phase %d out of range", q.ID, q.Phase)
		}
		if q.Phase < last {
			t.Errorf("%s: phase %d after phase %d", q.ID, q.Phase, last)
		}
		last = q.Phase
	}
}

func TestDefault_SingleSelectHasOptions(t *testing.T) {
	for _, q := range Default() {
		switch q.Type {
		case TypeSingle:
			if len(q.Options) == 0 {
				t.Errorf("%s: single-select without options", q.ID)
			}
		default:
			if len(q.Options) != 0 {
				t.Errorf("%s: %s question carries options", q.ID, q.Type)
			}
		}
	}
}

func TestVisible_FriendNameGatedOnReferral(t *testing.T) {
	cat := Default()
	set := answers.NewSet()

	if containsKey(cat.Visible(set), "friendName") {
		t.Error("friendName visible with no answers")
	}

	set.Put("howDiscovered", answers.Selected("Instagram", "📸 Instagram"))
	if containsKey(cat.Visible(set), "friendName") {
		t.Error("friendName visible for Instagram")
	}

	set.Put("howDiscovered", answers.Selected("Word of Mouth (Friend/Referral)", WordOfMouthValue))
	if !containsKey(cat.Visible(set), "friendName") {
		t.Error("friendName hidden for word-of-mouth referral")
	}

	// Changing the gating answer away hides the question again.
	set.Put("howDiscovered", answers.Selected("Other", "🌐 Other"))
	if containsKey(cat.Visible(set), "friendName") {
		t.Error("friendName still visible after gate changed")
	}
}

func TestVisible_PreservesCatalogOrder(t *testing.T) {
	cat := Default()
	set := answers.NewSet()
	set.Put("howDiscovered", answers.Selected("Word of Mouth (Friend/Referral)", WordOfMouthValue))

	visible := cat.Visible(set)
	if len(visible) != len(cat) {
		t.Fatalf("got %d visible, want full catalog %d", len(visible), len(cat))
	}
	for i := range cat {
		if visible[i].ID != cat[i].ID {
			t.Errorf("position %d: got %s, want %s", i, visible[i].ID, cat[i].ID)
		}
	}
}

func TestFirstIndexOfPhase(t *testing.T) {
	visible := Default().Visible(answers.NewSet())

	if got := FirstIndexOfPhase(visible, 1); got != 0 {
		t.Errorf("phase 1 starts at %d, want 0", got)
	}
	if got := FirstIndexOfPhase(visible, 2); got != 4 {
		t.Errorf("phase 2 starts at %d, want 4", got)
	}
	if got := FirstIndexOfPhase(visible, 6); got != -1 {
		t.Errorf("phase 6: got %d, want -1", got)
	}
}

func TestPhaseBounds(t *testing.T) {
	visible := Default().Visible(answers.NewSet())

	start, end := PhaseBounds(visible, 3)
	if start != 9 || end != 13 {
		t.Errorf("phase 3 bounds (%d, %d), want (9, 13)", start, end)
	}
}

func containsKey(qs []Question, key string) bool {
	for _, q := range qs {
		if q.Key == key {
			return true
		}
	}
	return false
}
