package flow

import (
	"errors"
	"testing"

	"github.com/skadvisory/findna/internal/answers"
	"github.com/skadvisory/findna/internal/catalog"
)

// fill stores a canned valid answer for the current question.
func fill(t *testing.T, c *Controller) {
	t.Helper()
	q, ok := c.Current()
	if !ok {
		t.Fatalf("fill called outside answering stage: %+v", c.State())
	}
	switch {
	case q.Type == catalog.TypeSingle:
		opt := q.Options[0]
		c.Answer(answers.Selected(opt.Label, opt.Value))
	case q.Type == catalog.TypeEmail:
		c.Answer(answers.Text("jo@example.com"))
	case q.Type == catalog.TypePhone:
		c.Answer(answers.Text("91234567"))
	default:
		c.Answer(answers.Text("Jo Tan"))
	}
	if ok, msg := c.CanAdvance(); !ok {
		t.Fatalf("canned answer for %s rejected: %q", q.ID, msg)
	}
}

// step drives the controller one operation forward regardless of stage.
func step(t *testing.T, c *Controller) {
	t.Helper()
	switch c.State().Stage {
	case StageIntro:
		c.Start()
	case StageTransition:
		c.AcknowledgeTransition()
	case StageAnswering:
		fill(t, c)
		c.Next()
	case StageReaction:
		c.AcknowledgeReaction()
	default:
		t.Fatalf("cannot step from stage %v", c.State().Stage)
	}
}

// driveToIndex advances a fresh controller until it is answering the given
// visible index.
func driveToIndex(t *testing.T, c *Controller, idx int) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if s := c.State(); s.Stage == StageAnswering && s.Index == idx {
			return
		}
		step(t, c)
	}
	t.Fatalf("never reached index %d, stuck at %+v", idx, c.State())
}

func TestController_StartSequence(t *testing.T) {
	c := NewController(catalog.Default())

	if got := c.State(); got.Stage != StageIntro {
		t.Fatalf("fresh controller stage = %v, want intro", got.Stage)
	}

	c.Start()
	if got := c.State(); got.Stage != StageTransition || got.Phase != 1 {
		t.Fatalf("after Start: %+v, want transition into phase 1", got)
	}

	c.AcknowledgeTransition()
	if got := c.State(); got.Stage != StageAnswering || got.Index != 0 {
		t.Fatalf("after AcknowledgeTransition: %+v, want answering index 0", got)
	}
}

func TestController_SamePhaseAdvance(t *testing.T) {
	c := NewController(catalog.Default())
	driveToIndex(t, c, 0)

	fill(t, c)
	c.Next()
	if got := c.State(); got.Stage != StageAnswering || got.Index != 1 {
		t.Fatalf("after Next: %+v, want answering index 1", got)
	}
}

func TestController_PhaseBoundaryShowsTransition(t *testing.T) {
	c := NewController(catalog.Default())
	driveToIndex(t, c, 3) // last phase-1 question

	fill(t, c)
	c.Next()
	if got := c.State(); got.Stage != StageTransition || got.Phase != 2 {
		t.Fatalf("after phase-1 boundary: %+v, want transition into phase 2", got)
	}

	c.AcknowledgeTransition()
	if got := c.State(); got.Stage != StageAnswering || got.Index != 4 {
		t.Fatalf("entering phase 2: %+v, want answering index 4", got)
	}
}

func TestController_MidwayReaction(t *testing.T) {
	c := NewController(catalog.Default())
	driveToIndex(t, c, 12) // last phase-3 question

	fill(t, c)
	c.Next()
	got := c.State()
	if got.Stage != StageReaction || got.Reaction != ReactionMidway {
		t.Fatalf("after phase-3 boundary: %+v, want midway reaction", got)
	}

	c.AcknowledgeReaction()
	if got := c.State(); got.Stage != StageTransition || got.Phase != 4 {
		t.Fatalf("after midway reaction: %+v, want transition into phase 4", got)
	}
}

func TestController_FinalReactionAndSubmission(t *testing.T) {
	c := NewController(catalog.Default())
	last := len(c.Visible()) - 1
	driveToIndex(t, c, last)

	fill(t, c)
	c.Next()
	if got := c.State(); got.Stage != StageReaction || got.Reaction != ReactionFinal {
		t.Fatalf("after last question: %+v, want final reaction", got)
	}

	c.AcknowledgeReaction()
	if got := c.State(); got.Stage != StageSubmitting {
		t.Fatalf("after final reaction: %+v, want submitting", got)
	}

	submitErr := errors.New("form endpoint unreachable")
	c.FinishSubmission(submitErr)
	if got := c.State(); got.Stage != StageSubmitted {
		t.Fatalf("after failed submission: %+v, want submitted", got)
	}
	if !errors.Is(c.SubmissionError(), submitErr) {
		t.Fatalf("SubmissionError = %v, want %v", c.SubmissionError(), submitErr)
	}
}

func TestController_BackAtFirstQuestionIsNoop(t *testing.T) {
	c := NewController(catalog.Default())
	driveToIndex(t, c, 0)

	c.Back()
	if got := c.State(); got.Stage != StageAnswering || got.Index != 0 {
		t.Fatalf("Back at index 0 moved: %+v", got)
	}
}

func TestController_BackCrossesPhaseBoundaryDirectly(t *testing.T) {
	c := NewController(catalog.Default())
	driveToIndex(t, c, 4) // first phase-2 question

	c.Back()
	if got := c.State(); got.Stage != StageAnswering || got.Index != 3 {
		t.Fatalf("Back across boundary: %+v, want answering index 3", got)
	}
}

func TestController_CanAdvanceGuards(t *testing.T) {
	c := NewController(catalog.Default())
	driveToIndex(t, c, 0)

	// Single-select with no choice yet.
	if ok, _ := c.CanAdvance(); ok {
		t.Fatal("unanswered single-select should not advance")
	}
	fill(t, c)
	if ok, _ := c.CanAdvance(); !ok {
		t.Fatal("answered single-select should advance")
	}
}

func TestController_CanAdvanceEmailValidation(t *testing.T) {
	c := NewController(catalog.Default())
	for {
		if q, ok := c.Current(); ok && q.Key == "clientEmail" {
			break
		}
		step(t, c)
	}

	c.Answer(answers.Text("not-an-email"))
	ok, msg := c.CanAdvance()
	if ok {
		t.Fatal("invalid email should not advance")
	}
	if msg != "Please enter a valid email address." {
		t.Fatalf("message = %q", msg)
	}

	c.Answer(answers.Text("jo@example.com"))
	if ok, msg := c.CanAdvance(); !ok {
		t.Fatalf("valid email rejected: %q", msg)
	}
}

func TestController_OptionalQuestionAlwaysAdvances(t *testing.T) {
	cat := catalog.Catalog{
		{ID: "q1", Phase: 1, Type: catalog.TypeText, Prompt: "Anything?", Key: "anything", Optional: true},
	}
	c := NewController(cat)
	c.Start()
	c.AcknowledgeTransition()

	if ok, _ := c.CanAdvance(); !ok {
		t.Fatal("optional question with no answer should advance")
	}
}

func TestController_ReferralGatingChangesSequence(t *testing.T) {
	c := NewController(catalog.Default())
	if got := len(c.Visible()); got != 21 {
		t.Fatalf("initial visible count = %d, want 21 (referral question hidden)", got)
	}

	for {
		if q, ok := c.Current(); ok && q.Key == "howDiscovered" {
			break
		}
		step(t, c)
	}

	c.Answer(answers.Selected("Word of Mouth", catalog.WordOfMouthValue))
	if got := len(c.Visible()); got != 22 {
		t.Fatalf("visible count after referral answer = %d, want 22", got)
	}
	c.Next()
	q, ok := c.Current()
	if !ok || q.Key != "friendName" {
		t.Fatalf("after referral answer, current = %+v (%v), want friendName", q.Key, ok)
	}

	// Stepping back and switching the gate re-hides the follow-up without
	// deleting its answer.
	c.Answer(answers.Text("Alex"))
	c.Back()
	c.Answer(answers.Selected("Instagram", "📸 Instagram"))
	if got := len(c.Visible()); got != 21 {
		t.Fatalf("visible count after gate change = %d, want 21", got)
	}
	if got := c.Answers().Display("friendName"); got != "Alex" {
		t.Fatalf("gated answer lost: %q", got)
	}
	c.Next()
	if q, _ := c.Current(); q.Key != "clientName" {
		t.Fatalf("after gate change, next question = %s, want clientName", q.Key)
	}
}

func TestController_ProgressAndBounds(t *testing.T) {
	c := NewController(catalog.Default())
	if pos, total := c.Progress(); pos != 0 || total != 0 {
		t.Fatalf("progress outside answering = %d/%d, want 0/0", pos, total)
	}

	driveToIndex(t, c, 8) // first phase-3 question
	pos, total := c.Progress()
	if pos != 9 || total != 21 {
		t.Fatalf("progress = %d/%d, want 9/21", pos, total)
	}
	start, end := c.PhaseBounds()
	if start != 9 || end != 13 {
		t.Fatalf("phase bounds = %d..%d, want 9..13", start, end)
	}
}

func TestController_OperationsOutsideStageAreNoops(t *testing.T) {
	c := NewController(catalog.Default())

	// None of these should move a controller still at the intro.
	c.Next()
	c.Back()
	c.AcknowledgeTransition()
	c.AcknowledgeReaction()
	c.Answer(answers.Text("ignored"))
	c.FinishSubmission(nil)

	if got := c.State(); got.Stage != StageIntro {
		t.Fatalf("stage after stray operations = %v, want intro", got.Stage)
	}
	if got := len(c.Answers()); got != 0 {
		t.Fatalf("answers recorded outside answering stage: %d", got)
	}
}
