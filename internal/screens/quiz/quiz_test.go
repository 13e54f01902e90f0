package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skadvisory/findna/internal/catalog"
	"github.com/skadvisory/findna/internal/flow"
	"github.com/skadvisory/findna/internal/store"
	"github.com/skadvisory/findna/internal/submit"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	starts      []string
	completes   []store.SessionCompleteData
	responses   []store.ResponseEventData
	profiles    []store.ProfileEventData
	submissions []store.SubmissionEventData
}

func (m *mockEventRepo) AppendSessionStart(_ context.Context, sessionID string) error {
	m.starts = append(m.starts, sessionID)
	return nil
}
func (m *mockEventRepo) AppendSessionComplete(_ context.Context, data store.SessionCompleteData) error {
	m.completes = append(m.completes, data)
	return nil
}
func (m *mockEventRepo) AppendResponse(_ context.Context, data store.ResponseEventData) error {
	m.responses = append(m.responses, data)
	return nil
}
func (m *mockEventRepo) AppendProfile(_ context.Context, data store.ProfileEventData) error {
	m.profiles = append(m.profiles, data)
	return nil
}
func (m *mockEventRepo) AppendSubmission(_ context.Context, data store.SubmissionEventData) error {
	m.submissions = append(m.submissions, data)
	return nil
}
func (m *mockEventRepo) ArchetypeCounts(_ context.Context) (map[string]int, error) {
	return nil, nil
}
func (m *mockEventRepo) CompletionCounts(_ context.Context) (started, completed int, err error) {
	return 0, 0, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func backKeyPress() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
}

func testQuizScreen() (*QuizScreen, *mockEventRepo) {
	repo := &mockEventRepo{}
	s := New(catalog.Default(), repo, submit.NewClient("", nil), nil)
	return s, repo
}

// runCmds executes a command tree and returns the produced messages,
// skipping timer ticks.
func runCmds(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmds(c)...)
		}
		return out
	}
	if _, ok := msg.(tickMsg); ok {
		return nil
	}
	return []tea.Msg{msg}
}

// dismissInterstitial ticks past the keypress delay and presses a key.
func dismissInterstitial(t *testing.T, s *QuizScreen) {
	t.Helper()
	for i := 0; i < 10; i++ {
		s.Update(tickMsg{})
	}
	scr, cmd := s.Update(keyPress(' '))
	if scr.(*QuizScreen) != s {
		t.Fatal("quiz screen should update in place")
	}
	feedback(t, s, cmd)
}

// feedback runs cmd and feeds any resulting quiz messages back into the
// screen, as the runtime would.
func feedback(t *testing.T, s *QuizScreen, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range runCmds(cmd) {
		switch msg.(type) {
		case submitDoneMsg, recordedMsg:
			_, next := s.Update(msg)
			feedback(t, s, next)
		}
	}
}

// answerCurrent answers the active question with a canned valid input.
func answerCurrent(t *testing.T, s *QuizScreen) {
	t.Helper()
	q, ok := s.ctrl.Current()
	if !ok {
		t.Fatalf("not answering: %+v", s.ctrl.State())
	}

	if q.Type != catalog.TypeSingle {
		text := "Jo Tan"
		switch q.Type {
		case catalog.TypeEmail:
			text = "jo@example.com"
		case catalog.TypePhone:
			text = "91234567"
		}
		for _, r := range text {
			_, cmd := s.Update(keyPress(r))
			feedback(t, s, cmd)
		}
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	feedback(t, s, cmd)
}

func TestInitEntersFirstTransition(t *testing.T) {
	s, repo := testQuizScreen()
	feedback(t, s, s.Init())

	st := s.ctrl.State()
	if st.Stage != flow.StageTransition || st.Phase != 1 {
		t.Fatalf("after Init: %+v, want transition into phase 1", st)
	}
	if len(repo.starts) != 1 {
		t.Fatalf("session start events = %d, want 1", len(repo.starts))
	}
}

func TestInterstitialIgnoresEarlyKeypress(t *testing.T) {
	s, _ := testQuizScreen()
	feedback(t, s, s.Init())

	s.Update(keyPress(' '))
	if st := s.ctrl.State(); st.Stage != flow.StageTransition {
		t.Fatalf("keypress before delay dismissed interstitial: %+v", st)
	}

	dismissInterstitial(t, s)
	if st := s.ctrl.State(); st.Stage != flow.StageAnswering || st.Index != 0 {
		t.Fatalf("after dismissal: %+v, want answering index 0", st)
	}
}

func TestSingleSelectRecordsAndAdvances(t *testing.T) {
	s, repo := testQuizScreen()
	feedback(t, s, s.Init())
	dismissInterstitial(t, s)

	_, cmd := s.Update(specialKey(tea.KeyDown))
	feedback(t, s, cmd)
	answerCurrent(t, s)

	if st := s.ctrl.State(); st.Stage != flow.StageAnswering || st.Index != 1 {
		t.Fatalf("after answering: %+v, want answering index 1", st)
	}
	if len(repo.responses) != 1 {
		t.Fatalf("response events = %d, want 1", len(repo.responses))
	}
	got := repo.responses[0]
	if got.AnswerKey != "lifeStage" || got.Phase != 1 || got.Value == "" {
		t.Fatalf("unexpected response event: %+v", got)
	}
}

func TestBackRestoresPreviousQuestion(t *testing.T) {
	s, _ := testQuizScreen()
	feedback(t, s, s.Init())
	dismissInterstitial(t, s)
	answerCurrent(t, s)

	_, cmd := s.Update(backKeyPress())
	feedback(t, s, cmd)
	st := s.ctrl.State()
	if st.Stage != flow.StageAnswering || st.Index != 0 {
		t.Fatalf("after back: %+v, want answering index 0", st)
	}
	// The earlier choice is restored in the option list.
	if !s.list.HasChoice() {
		t.Fatal("revisited question lost its recorded choice")
	}
}

func TestInvalidTextShowsInlineError(t *testing.T) {
	s, _ := testQuizScreen()
	feedback(t, s, s.Init())

	for s.ctrl.State().Stage != flow.StageAnswering || !isEmailQuestion(s) {
		stepRun(t, s)
	}

	for _, r := range "not-an-email" {
		_, cmd := s.Update(keyPress(r))
		feedback(t, s, cmd)
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	feedback(t, s, cmd)

	if s.input.Err() != "Please enter a valid email address." {
		t.Fatalf("inline error = %q", s.input.Err())
	}
	if q, _ := s.ctrl.Current(); q.Key != "clientEmail" {
		t.Fatalf("invalid input advanced past email question to %s", q.Key)
	}
}

func isEmailQuestion(s *QuizScreen) bool {
	q, ok := s.ctrl.Current()
	return ok && q.Key == "clientEmail"
}

func TestPhoneCountryCodeReachesValidator(t *testing.T) {
	s, _ := testQuizScreen()
	feedback(t, s, s.Init())

	for s.ctrl.State().Stage != flow.StageAnswering || !isMobileQuestion(s) {
		stepRun(t, s)
	}

	for _, r := range "+6591234567" {
		_, cmd := s.Update(keyPress(r))
		feedback(t, s, cmd)
	}
	if got := s.input.Value(); got != "+6591234567" {
		t.Fatalf("typed value = %q, want the full +65 form", got)
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	feedback(t, s, cmd)

	if s.input.Err() != "Please enter 8 digits only, without +65." {
		t.Fatalf("inline error = %q", s.input.Err())
	}
	if q, _ := s.ctrl.Current(); q.Key != "clientMobile" {
		t.Fatalf("invalid input advanced past mobile question to %s", q.Key)
	}
}

func isMobileQuestion(s *QuizScreen) bool {
	q, ok := s.ctrl.Current()
	return ok && q.Key == "clientMobile"
}

// stepRun advances the screen one interaction, whatever the stage.
func stepRun(t *testing.T, s *QuizScreen) {
	t.Helper()
	switch s.ctrl.State().Stage {
	case flow.StageTransition, flow.StageReaction:
		dismissInterstitial(t, s)
	case flow.StageAnswering:
		answerCurrent(t, s)
	default:
		t.Fatalf("cannot step from %+v", s.ctrl.State())
	}
}

func TestFullRunReachesResults(t *testing.T) {
	s, repo := testQuizScreen()
	feedback(t, s, s.Init())

	for i := 0; i < 100 && s.ctrl.State().Stage != flow.StageSubmitted; i++ {
		stepRun(t, s)
	}

	if st := s.ctrl.State(); st.Stage != flow.StageSubmitted {
		t.Fatalf("run never finished: %+v", st)
	}
	if !s.hasResult {
		t.Fatal("no profile computed")
	}

	if len(repo.profiles) != 1 {
		t.Fatalf("profile events = %d, want 1", len(repo.profiles))
	}
	if repo.profiles[0].Archetype == "" {
		t.Fatal("profile event missing archetype")
	}
	if len(repo.submissions) != 1 || !repo.submissions[0].OK {
		t.Fatalf("submission events = %+v, want one successful", repo.submissions)
	}
	if len(repo.completes) != 1 {
		t.Fatalf("session complete events = %d, want 1", len(repo.completes))
	}
	if got := repo.completes[0].AnswersRecorded; got != 21 {
		t.Fatalf("answers recorded = %d, want 21", got)
	}

	// Results render the archetype card.
	view := s.View(100, 40)
	if view == "" {
		t.Fatal("results view is empty")
	}
}
