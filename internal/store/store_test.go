package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases, so WAL
		// is only observable against a file-backed DB.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceIsGlobalAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionStart(ctx, "run-1"); err != nil {
		t.Fatalf("append session start: %v", err)
	}
	if err := repo.AppendResponse(ctx, ResponseEventData{
		SessionID: "run-1", QuestionID: "q1_lifeStage",
		AnswerKey: "lifeStage", Value: "The Builder", Phase: 1,
	}); err != nil {
		t.Fatalf("append response: %v", err)
	}
	if err := repo.AppendSubmission(ctx, SubmissionEventData{
		SessionID: "run-1", OK: false, Error: "HTTP 502", Fields: 1,
	}); err != nil {
		t.Fatalf("append submission: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	re, err := s.Client().ResponseEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query response event: %v", err)
	}
	sub, err := s.Client().SubmissionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query submission event: %v", err)
	}

	if !(se.Sequence < re.Sequence && re.Sequence < sub.Sequence) {
		t.Fatalf("sequence not monotonic across tables: %d, %d, %d",
			se.Sequence, re.Sequence, sub.Sequence)
	}
}

func TestResponseRevisitsAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, v := range []string{"The Builder", "The Preserver"} {
		err := repo.AppendResponse(ctx, ResponseEventData{
			SessionID: "run-1", QuestionID: "q1_lifeStage",
			AnswerKey: "lifeStage", Value: v, Phase: 1,
		})
		if err != nil {
			t.Fatalf("append response %q: %v", v, err)
		}
	}

	n, err := s.Client().ResponseEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count responses: %v", err)
	}
	if n != 2 {
		t.Fatalf("revisit should append a second event, got %d", n)
	}
}

func TestArchetypeCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	profiles := []ProfileEventData{
		{SessionID: "run-1", Archetype: "Architect", RiskAppetite: "High", Structure: "High", EmotionalDriver: "Guardian", NarrativeKey: "A", CognitiveGap: "Lifestyle Creep", Fragility: "Capital Inefficient", PivotKey: "Architect", OriginKey: "Documentary", RiskScore: 75, StructureScore: 75},
		{SessionID: "run-2", Archetype: "Architect", RiskAppetite: "High", Structure: "High", EmotionalDriver: "Guardian", NarrativeKey: "A", CognitiveGap: "Lifestyle Creep", Fragility: "Capital Inefficient", PivotKey: "Architect", OriginKey: "Documentary", RiskScore: 75, StructureScore: 75},
		{SessionID: "run-3", Archetype: "Sleeper", RiskAppetite: "Low", Structure: "Low", EmotionalDriver: "Guardian", NarrativeKey: "A", CognitiveGap: "Lifestyle Creep", Fragility: "Capital Inefficient", PivotKey: "Sleeper", OriginKey: "Documentary", RiskScore: 25, StructureScore: 25},
	}
	for _, p := range profiles {
		if err := repo.AppendProfile(ctx, p); err != nil {
			t.Fatalf("append profile: %v", err)
		}
	}

	counts, err := repo.ArchetypeCounts(ctx)
	if err != nil {
		t.Fatalf("archetype counts: %v", err)
	}
	if counts["Architect"] != 2 || counts["Sleeper"] != 1 {
		t.Fatalf("counts = %v, want Architect:2 Sleeper:1", counts)
	}
}

func TestCompletionCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"run-1", "run-2", "run-3"} {
		if err := repo.AppendSessionStart(ctx, id); err != nil {
			t.Fatalf("append start: %v", err)
		}
	}
	err := repo.AppendSessionComplete(ctx, SessionCompleteData{
		SessionID: "run-1", AnswersRecorded: 21, DurationSecs: 180,
	})
	if err != nil {
		t.Fatalf("append complete: %v", err)
	}

	started, completed, err := repo.CompletionCounts(ctx)
	if err != nil {
		t.Fatalf("completion counts: %v", err)
	}
	if started != 3 || completed != 1 {
		t.Fatalf("counts = %d started, %d completed; want 3, 1", started, completed)
	}
}
