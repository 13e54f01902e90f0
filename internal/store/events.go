package store

import (
	"context"
	"fmt"

	"github.com/skadvisory/findna/ent"
	"github.com/skadvisory/findna/ent/profileevent"
	"github.com/skadvisory/findna/ent/sessionevent"
)

const (
	actionStart    = "start"
	actionComplete = "complete"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionStart(ctx context.Context, sessionID string) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(sessionID).
		SetAction(actionStart).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session start: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionComplete(ctx context.Context, data SessionCompleteData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(actionComplete).
		SetAnswersRecorded(data.AnswersRecorded).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session complete: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendResponse(ctx context.Context, data ResponseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetAnswerKey(data.AnswerKey).
		SetValue(data.Value).
		SetPhase(data.Phase).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendProfile(ctx context.Context, data ProfileEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ProfileEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetArchetype(data.Archetype).
		SetSituationalOverride(data.SituationalOverride).
		SetRiskAppetite(data.RiskAppetite).
		SetStructure(data.Structure).
		SetEmotionalDriver(data.EmotionalDriver).
		SetNarrativeKey(data.NarrativeKey).
		SetCognitiveGap(data.CognitiveGap).
		SetFragility(data.Fragility).
		SetPivotKey(data.PivotKey).
		SetOriginKey(data.OriginKey).
		SetRiskScore(data.RiskScore).
		SetStructureScore(data.StructureScore).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save profile event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSubmission(ctx context.Context, data SubmissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SubmissionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetOk(data.OK).
		SetError(data.Error).
		SetFields(data.Fields).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}

func (r *eventRepo) ArchetypeCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Archetype string `json:"archetype"`
		Count     int    `json:"count"`
	}
	err := r.client.ProfileEvent.Query().
		GroupBy(profileevent.FieldArchetype).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query archetype counts: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Archetype] = row.Count
	}
	return counts, nil
}

func (r *eventRepo) CompletionCounts(ctx context.Context) (started, completed int, err error) {
	started, err = r.client.SessionEvent.Query().
		Where(sessionevent.Action(actionStart)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count started runs: %w", err)
	}

	completed, err = r.client.SessionEvent.Query().
		Where(sessionevent.Action(actionComplete)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count completed runs: %w", err)
	}
	return started, completed, nil
}
