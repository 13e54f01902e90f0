package flow

import (
	"github.com/skadvisory/findna/internal/answers"
	"github.com/skadvisory/findna/internal/catalog"
	"github.com/skadvisory/findna/internal/validate"
)

// midwayAfterPhase marks the phase boundary that shows the halfway reaction
// instead of a plain phase transition.
const midwayAfterPhase = 3

// Controller owns the answer set and the current position in the question
// sequence. The visible sequence is recomputed from the live answer set on
// every operation, so gating answers take effect immediately: changing a
// gate away hides the gated question but keeps its stored answer.
type Controller struct {
	catalog catalog.Catalog
	set     answers.Set
	state   State

	submitErr error
}

// NewController starts a fresh run at the intro stage.
func NewController(cat catalog.Catalog) *Controller {
	return &Controller{
		catalog: cat,
		set:     answers.NewSet(),
		state:   State{Stage: StageIntro},
	}
}

// State returns the current position.
func (c *Controller) State() State {
	return c.state
}

// Answers returns the live answer set. Pass Clone() of it to the classifier
// and submitter so later edits cannot leak into a snapshot.
func (c *Controller) Answers() answers.Set {
	return c.set
}

// Visible returns the question sequence under the current answer set.
func (c *Controller) Visible() []catalog.Question {
	return c.catalog.Visible(c.set)
}

// Current returns the question at the answering index. ok is false outside
// the answering stage.
func (c *Controller) Current() (catalog.Question, bool) {
	if c.state.Stage != StageAnswering {
		return catalog.Question{}, false
	}
	visible := c.Visible()
	if c.state.Index < 0 || c.state.Index >= len(visible) {
		return catalog.Question{}, false
	}
	return visible[c.state.Index], true
}

// Start leaves the intro for the first phase's interstitial.
func (c *Controller) Start() {
	if c.state.Stage != StageIntro {
		return
	}
	c.state = State{Stage: StageTransition, Phase: 1}
}

// AcknowledgeTransition enters the first visible question of the pending
// phase.
func (c *Controller) AcknowledgeTransition() {
	if c.state.Stage != StageTransition {
		return
	}
	idx := catalog.FirstIndexOfPhase(c.Visible(), c.state.Phase)
	if idx < 0 {
		idx = 0
	}
	c.state = State{Stage: StageAnswering, Index: idx}
}

// Answer records a value for the current question's key.
func (c *Controller) Answer(a answers.Answer) {
	q, ok := c.Current()
	if !ok {
		return
	}
	c.set.Put(q.Key, a)
}

// CanAdvance reports whether the current answer permits moving on, and the
// validation message to show inline when it does not. Optional questions
// always pass; single-selects require a choice; free-text runs its
// validator when one applies.
func (c *Controller) CanAdvance() (bool, string) {
	q, ok := c.Current()
	if !ok {
		return false, ""
	}
	if q.Optional {
		return true, ""
	}
	a, _ := c.set.Get(q.Key)
	if q.Type == catalog.TypeSingle {
		if a.IsEmpty() {
			return false, ""
		}
		return true, ""
	}
	if fn := validate.For(q); fn != nil {
		res := fn(a.Raw())
		return res.Valid, res.Message
	}
	return !a.IsEmpty(), ""
}

// Next advances past the current question: to the next question in the same
// phase, to a phase interstitial at a boundary (the halfway boundary shows
// the midway reaction instead), or to the final reaction after the last
// visible question. Callers check CanAdvance first; Next itself does not
// re-validate.
func (c *Controller) Next() {
	q, ok := c.Current()
	if !ok {
		return
	}
	visible := c.Visible()

	if c.state.Index >= len(visible)-1 {
		c.state = State{Stage: StageReaction, Reaction: ReactionFinal}
		return
	}

	next := visible[c.state.Index+1]
	if next.Phase == q.Phase {
		c.state = State{Stage: StageAnswering, Index: c.state.Index + 1}
		return
	}
	if q.Phase == midwayAfterPhase {
		c.state = State{Stage: StageReaction, Reaction: ReactionMidway, Phase: next.Phase}
		return
	}
	c.state = State{Stage: StageTransition, Phase: next.Phase}
}

// AcknowledgeReaction leaves an interstitial: midway continues into the next
// phase's transition, final moves to submission.
func (c *Controller) AcknowledgeReaction() {
	if c.state.Stage != StageReaction {
		return
	}
	if c.state.Reaction == ReactionMidway {
		c.state = State{Stage: StageTransition, Phase: c.state.Phase}
		return
	}
	c.state = State{Stage: StageSubmitting}
}

// Back steps to the previous visible question. No-op on the first question;
// crossing a phase boundary backwards goes straight to the question, without
// replaying the interstitial.
func (c *Controller) Back() {
	if c.state.Stage != StageAnswering || c.state.Index == 0 {
		return
	}
	c.state.Index--
}

// FinishSubmission records the submission outcome and moves to the terminal
// stage. Submission is best effort: failure still completes the run.
func (c *Controller) FinishSubmission(err error) {
	if c.state.Stage != StageSubmitting {
		return
	}
	c.submitErr = err
	c.state = State{Stage: StageSubmitted}
}

// SubmissionError returns the error recorded by FinishSubmission, if any.
func (c *Controller) SubmissionError() error {
	return c.submitErr
}

// Progress returns the 1-based position and total of the visible sequence
// for the progress bar. Zeroes outside the answering stage.
func (c *Controller) Progress() (pos, total int) {
	if c.state.Stage != StageAnswering {
		return 0, 0
	}
	return c.state.Index + 1, len(c.Visible())
}

// PhaseBounds returns the 1-based first and last visible positions of the
// current question's phase.
func (c *Controller) PhaseBounds() (start, end int) {
	q, ok := c.Current()
	if !ok {
		return -1, -1
	}
	return catalog.PhaseBounds(c.Visible(), q.Phase)
}
