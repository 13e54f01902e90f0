package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skadvisory/findna/internal/screen"
)

// fakeScreen is a minimal screen for exercising the stack.
type fakeScreen struct {
	title   string
	initRan bool
}

func (s *fakeScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *fakeScreen) View(int, int) string                    { return s.title }
func (s *fakeScreen) Title() string                           { return s.title }

func TestPushAndActive(t *testing.T) {
	r := New(&fakeScreen{title: "welcome"})

	top := &fakeScreen{title: "quiz"}
	r.Push(top)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
	if !top.initRan {
		t.Error("Init() did not run on pushed screen")
	}
}

func TestPopRestoresPrevious(t *testing.T) {
	r := New(&fakeScreen{title: "welcome"})
	r.Push(&fakeScreen{title: "quiz"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "welcome" {
		t.Errorf("active = %q, want welcome", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&fakeScreen{title: "welcome"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at bottom, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{title: "welcome"})
	r.Push(&fakeScreen{title: "quiz"})

	next := &fakeScreen{title: "confirm"}
	r.Replace(next)

	if r.Depth() != 2 {
		t.Errorf("depth = %d after replace, want 2", r.Depth())
	}
	if r.Active().Title() != "confirm" {
		t.Errorf("active = %q, want confirm", r.Active().Title())
	}
	if !next.initRan {
		t.Error("Init() did not run on replacement screen")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{title: "welcome"})

	pushed := &fakeScreen{title: "quiz"}
	r.Update(PushScreenMsg{Screen: pushed})
	if r.Active().Title() != "quiz" {
		t.Fatalf("active after push msg = %q, want quiz", r.Active().Title())
	}

	replaced := &fakeScreen{title: "confirm"}
	r.Update(ReplaceScreenMsg{Screen: replaced})
	if r.Active().Title() != "confirm" || r.Depth() != 2 {
		t.Fatalf("after replace msg: active %q depth %d, want confirm at depth 2",
			r.Active().Title(), r.Depth())
	}
	if !replaced.initRan {
		t.Error("Init() did not run via ReplaceScreenMsg")
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "welcome" {
		t.Fatalf("active after pop msg = %q, want welcome", r.Active().Title())
	}
}
