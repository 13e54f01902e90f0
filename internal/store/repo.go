package store

import (
	"context"
)

// ResponseEventData captures a single recorded answer.
type ResponseEventData struct {
	SessionID  string
	QuestionID string
	AnswerKey  string
	Value      string
	Phase      int
}

// ProfileEventData captures a computed classification, denormalized to
// plain labels so the log stays readable without the classifier.
type ProfileEventData struct {
	SessionID           string
	Archetype           string
	SituationalOverride string
	RiskAppetite        string
	Structure           string
	EmotionalDriver     string
	NarrativeKey        string
	CognitiveGap        string
	Fragility           string
	PivotKey            string
	OriginKey           string
	RiskScore           int
	StructureScore      int
}

// SubmissionEventData captures a form submission attempt.
type SubmissionEventData struct {
	SessionID string
	OK        bool
	Error     string
	Fields    int
}

// SessionCompleteData captures the summary recorded when a run finishes.
type SessionCompleteData struct {
	SessionID       string
	AnswersRecorded int
	DurationSecs    int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendSessionStart records the beginning of a quiz run.
	AppendSessionStart(ctx context.Context, sessionID string) error

	// AppendSessionComplete records that a run reached the terminal stage.
	AppendSessionComplete(ctx context.Context, data SessionCompleteData) error

	// AppendResponse records an answer. Revisits append, never update.
	AppendResponse(ctx context.Context, data ResponseEventData) error

	// AppendProfile records the classification computed for a run.
	AppendProfile(ctx context.Context, data ProfileEventData) error

	// AppendSubmission records a form submission attempt and outcome.
	AppendSubmission(ctx context.Context, data SubmissionEventData) error

	// ArchetypeCounts returns how many recorded profiles landed on each
	// archetype.
	ArchetypeCounts(ctx context.Context) (map[string]int, error)

	// CompletionCounts returns how many runs started and how many completed.
	CompletionCounts(ctx context.Context) (started, completed int, err error)
}
