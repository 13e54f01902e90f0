// Package quiz implements the main quiz screen. One screen drives the whole
// run; the flow controller decides which stage view to show (phase
// interstitials, questions, advisor reactions, the final results card).
package quiz

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skadvisory/findna/internal/answers"
	"github.com/skadvisory/findna/internal/catalog"
	"github.com/skadvisory/findna/internal/flow"
	"github.com/skadvisory/findna/internal/profile"
	"github.com/skadvisory/findna/internal/screen"
	"github.com/skadvisory/findna/internal/store"
	"github.com/skadvisory/findna/internal/submit"
	"github.com/skadvisory/findna/internal/ui/components"
	"github.com/skadvisory/findna/internal/ui/layout"
)

const (
	// interstitialDelay is how long a transition or reaction must be on
	// screen before a keypress dismisses it.
	interstitialDelay = 800 * time.Millisecond

	tickInterval  = 100 * time.Millisecond
	submitTimeout = 15 * time.Second
)

// backKey steps to the previous question. Shift+tab so plain keys stay
// free for the text inputs.
const backKey = "shift+tab"

// QuizScreen implements screen.Screen for a quiz run.
type QuizScreen struct {
	ctrl      *flow.Controller
	cat       catalog.Catalog
	eventRepo store.EventRepo
	client    *submit.Client
	logger    *zap.Logger

	sessionID string
	startedAt time.Time

	// Widgets, rebuilt whenever the current question changes.
	list      components.OptionList
	input     components.TextInput
	widgetKey string

	interstitialFor time.Duration

	result    profile.Profile
	hasResult bool
	finish    components.Button
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. eventRepo may be nil to run without
// persistence; logger may be nil for silence.
func New(cat catalog.Catalog, eventRepo store.EventRepo, client *submit.Client, logger *zap.Logger) *QuizScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizScreen{
		ctrl:      flow.NewController(cat),
		cat:       cat,
		eventRepo: eventRepo,
		client:    client,
		logger:    logger,
		sessionID: uuid.NewString(),
		startedAt: time.Now(),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.ctrl.Start()
	return tea.Batch(s.recordStart(), s.tick())
}

func (s *QuizScreen) Title() string {
	switch st := s.ctrl.State(); st.Stage {
	case flow.StageAnswering:
		pos, total := s.ctrl.Progress()
		return fmt.Sprintf("Question %d of %d", pos, total)
	case flow.StageTransition:
		if p, ok := catalog.Phases[st.Phase]; ok {
			return p.Title
		}
	case flow.StageSubmitting, flow.StageSubmitted:
		return "Your Results"
	}
	return ""
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch st := s.ctrl.State(); st.Stage {
	case flow.StageAnswering:
		hints := []layout.KeyHint{}
		if q, ok := s.ctrl.Current(); ok && q.Type == catalog.TypeSingle {
			hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Choose"})
		}
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next"})
		if st.Index > 0 {
			hints = append(hints, layout.KeyHint{Key: "Shift+Tab", Description: "Back"})
		}
		return hints
	case flow.StageTransition, flow.StageReaction:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case flow.StageSubmitted:
		return []layout.KeyHint{{Key: "Enter", Description: "Finish"}}
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick()

	case submitDoneMsg:
		return s.handleSubmitDone(msg)

	case recordedMsg:
		if msg.err != nil {
			s.logger.Warn("event append failed", zap.Error(msg.err))
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s.updateWidgets(msg)
}

func (s *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	switch s.ctrl.State().Stage {
	case flow.StageTransition, flow.StageReaction, flow.StageSubmitting:
		s.interstitialFor += tickInterval
		return s, s.tick()
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch st := s.ctrl.State(); st.Stage {
	case flow.StageTransition:
		if s.interstitialFor < interstitialDelay {
			return s, nil
		}
		s.ctrl.AcknowledgeTransition()
		s.syncWidgets()
		return s, nil

	case flow.StageReaction:
		if s.interstitialFor < interstitialDelay {
			return s, nil
		}
		isFinal := st.Reaction == flow.ReactionFinal
		s.ctrl.AcknowledgeReaction()
		if isFinal {
			return s, s.beginSubmission()
		}
		s.interstitialFor = 0
		return s, s.tick()

	case flow.StageAnswering:
		return s.handleAnswerKey(msg)

	case flow.StageSubmitted:
		var cmd tea.Cmd
		s.finish, cmd = s.finish.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleAnswerKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	q, ok := s.ctrl.Current()
	if !ok {
		return s, nil
	}

	if msg.String() == backKey {
		s.ctrl.Back()
		s.syncWidgets()
		return s, nil
	}

	if q.Type == catalog.TypeSingle {
		var cmd tea.Cmd
		s.list, cmd = s.list.Update(msg)
		if msg.String() == "enter" && s.list.HasChoice() {
			opt := q.Options[s.list.Chosen]
			s.ctrl.Answer(answers.Selected(opt.Label, opt.Value))
			return s.advance(q)
		}
		return s, cmd
	}

	if msg.String() == "enter" {
		s.ctrl.Answer(answers.Text(s.input.Value()))
		if ok, errMsg := s.ctrl.CanAdvance(); !ok {
			s.input.SetError(errMsg)
			return s, nil
		}
		return s.advance(q)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.input.SetError("")
	return s, cmd
}

// advance records the answer just given and moves the controller forward.
func (s *QuizScreen) advance(q catalog.Question) (screen.Screen, tea.Cmd) {
	record := s.recordResponse(q)

	s.ctrl.Next()
	switch s.ctrl.State().Stage {
	case flow.StageAnswering:
		s.syncWidgets()
		return s, record
	case flow.StageTransition, flow.StageReaction:
		s.interstitialFor = 0
		return s, tea.Batch(record, s.tick())
	}
	return s, record
}

// syncWidgets rebuilds the input widgets for the current question,
// restoring any earlier answer so revisits do not lose state.
func (s *QuizScreen) syncWidgets() {
	q, ok := s.ctrl.Current()
	if !ok || q.Key == s.widgetKey {
		return
	}
	s.widgetKey = q.Key

	stored, _ := s.ctrl.Answers().Get(q.Key)
	if q.Type == catalog.TypeSingle {
		preselect := -1
		for i, opt := range q.Options {
			if opt.Label == stored.Label() {
				preselect = i
				break
			}
		}
		opts := make([]components.Option, len(q.Options))
		for i, o := range q.Options {
			opts[i] = components.Option{Label: o.Label, Description: o.Description, Emoji: o.Emoji}
		}
		s.list = components.NewOptionList(opts, preselect)
		return
	}

	limit := 120
	digitsOnly := q.Type == catalog.TypePhone
	if digitsOnly {
		// Room for a full "+65" prefix so the validator can name it.
		limit = 12
	}
	s.input = components.NewTextInput(q.Placeholder, stored.Raw(), digitsOnly, limit)
}

func (s *QuizScreen) updateWidgets(msg tea.Msg) (screen.Screen, tea.Cmd) {
	q, ok := s.ctrl.Current()
	if !ok {
		return s, nil
	}
	var cmd tea.Cmd
	if q.Type == catalog.TypeSingle {
		s.list, cmd = s.list.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

// beginSubmission classifies the finished answer set, records the profile,
// and fires the form submission.
func (s *QuizScreen) beginSubmission() tea.Cmd {
	set := s.ctrl.Answers().Clone()
	s.result = profile.Classify(set)
	s.hasResult = true
	s.interstitialFor = 0

	return tea.Batch(s.recordProfile(), s.submitCmd(set), s.tick())
}

func (s *QuizScreen) submitCmd(set answers.Set) tea.Cmd {
	return func() tea.Msg {
		if s.client == nil {
			return submitDoneMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		return submitDoneMsg{err: s.client.Submit(ctx, s.cat, set)}
	}
}

func (s *QuizScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		// Best effort. The respondent still gets their results.
		s.logger.Warn("form submission failed", zap.Error(msg.err))
	}
	record := s.recordSubmission(msg.err)
	s.ctrl.FinishSubmission(msg.err)
	s.finish = components.NewButton("Finish", true, func() tea.Cmd { return tea.Quit })
	return s, tea.Batch(record, s.recordComplete())
}

func (s *QuizScreen) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Event log appends, all fire-and-forget.

func (s *QuizScreen) recordStart() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	return func() tea.Msg {
		return recordedMsg{err: s.eventRepo.AppendSessionStart(context.Background(), s.sessionID)}
	}
}

func (s *QuizScreen) recordResponse(q catalog.Question) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	value := s.ctrl.Answers().Display(q.Key)
	return func() tea.Msg {
		return recordedMsg{err: s.eventRepo.AppendResponse(context.Background(), store.ResponseEventData{
			SessionID:  s.sessionID,
			QuestionID: q.ID,
			AnswerKey:  q.Key,
			Value:      value,
			Phase:      q.Phase,
		})}
	}
}

func (s *QuizScreen) recordProfile() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	p := s.result
	return func() tea.Msg {
		return recordedMsg{err: s.eventRepo.AppendProfile(context.Background(), store.ProfileEventData{
			SessionID:           s.sessionID,
			Archetype:           string(p.Archetype),
			SituationalOverride: string(p.SituationalOverride),
			RiskAppetite:        string(p.RiskAppetite),
			Structure:           string(p.Structure),
			EmotionalDriver:     string(p.EmotionalDriver),
			NarrativeKey:        string(p.NarrativeKey),
			CognitiveGap:        string(p.CognitiveGap),
			Fragility:           string(p.Fragility),
			PivotKey:            p.PivotKey,
			OriginKey:           string(p.OriginKey),
			RiskScore:           p.RiskScore,
			StructureScore:      p.StructureScore,
		})}
	}
}

func (s *QuizScreen) recordSubmission(submitErr error) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	data := store.SubmissionEventData{
		SessionID: s.sessionID,
		OK:        submitErr == nil,
		Fields:    len(submit.Payload(s.cat, s.ctrl.Answers())),
	}
	if submitErr != nil {
		data.Error = submitErr.Error()
	}
	return func() tea.Msg {
		return recordedMsg{err: s.eventRepo.AppendSubmission(context.Background(), data)}
	}
}

func (s *QuizScreen) recordComplete() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	data := store.SessionCompleteData{
		SessionID:       s.sessionID,
		AnswersRecorded: len(s.ctrl.Answers()),
		DurationSecs:    int(time.Since(s.startedAt).Seconds()),
	}
	return func() tea.Msg {
		return recordedMsg{err: s.eventRepo.AppendSessionComplete(context.Background(), data)}
	}
}
