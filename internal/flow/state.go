// Package flow implements the quiz progression state machine. It is pure
// state: no rendering, no I/O. Screens drive it with the operations on
// Controller and render whatever State it reports.
package flow

// Stage identifies where in the quiz the respondent is.
type Stage int

const (
	// StageIntro is the opening monologue before any question.
	StageIntro Stage = iota
	// StageTransition is the interstitial shown on entering a phase.
	StageTransition
	// StageAnswering is an active question.
	StageAnswering
	// StageReaction is an advisor interstitial (midway or final).
	StageReaction
	// StageSubmitting means the final reaction was acknowledged and the
	// submission is in flight.
	StageSubmitting
	// StageSubmitted is terminal. Reached regardless of submission outcome.
	StageSubmitted
)

func (s Stage) String() string {
	switch s {
	case StageIntro:
		return "intro"
	case StageTransition:
		return "transition"
	case StageAnswering:
		return "answering"
	case StageReaction:
		return "reaction"
	case StageSubmitting:
		return "submitting"
	case StageSubmitted:
		return "submitted"
	}
	return "unknown"
}

// ReactionKey selects which advisor interstitial to show.
type ReactionKey string

const (
	ReactionMidway ReactionKey = "midway"
	ReactionFinal  ReactionKey = "final"
)

// State is the controller's externally visible position.
type State struct {
	Stage Stage
	// Index into the visible question sequence. Meaningful only while
	// answering.
	Index int
	// Phase being entered. Meaningful only during a transition.
	Phase int
	// Reaction to show. Meaningful only during a reaction.
	Reaction ReactionKey
}
