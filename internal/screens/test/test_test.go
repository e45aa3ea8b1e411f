package test

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/boussole-app/boussole/internal/orientation"
	"github.com/boussole-app/boussole/internal/router"
	"github.com/boussole-app/boussole/internal/store"
)

// fakeSource implements orientation.QuestionSource.
type fakeSource struct {
	questions []orientation.Question
	err       error
}

func (f *fakeSource) ListQuestions(_ context.Context) ([]orientation.Question, error) {
	return f.questions, f.err
}

// fakeStore implements orientation.SessionStore.
type fakeStore struct {
	sessions  []orientation.SessionSummary
	answers   map[int64]orientation.Value
	upsertErr error
	completed bool
}

func (f *fakeStore) ListSessions(_ context.Context) ([]orientation.SessionSummary, error) {
	return f.sessions, nil
}

func (f *fakeStore) CreateSession(_ context.Context) (orientation.Session, error) {
	return orientation.Session{ID: 11, StartedAt: time.Now()}, nil
}

func (f *fakeStore) RecordedAnswers(_ context.Context, _ int64) ([]orientation.Answer, error) {
	var out []orientation.Answer
	for qid, v := range f.answers {
		out = append(out, orientation.Answer{QuestionID: qid, Value: v})
	}
	return out, nil
}

func (f *fakeStore) UpsertAnswer(_ context.Context, _, questionID int64, value orientation.Value) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if f.answers == nil {
		f.answers = make(map[int64]orientation.Value)
	}
	f.answers[questionID] = value
	return nil
}

func (f *fakeStore) CompleteSession(_ context.Context, sessionID int64) (orientation.Session, error) {
	f.completed = true
	now := time.Now()
	return orientation.Session{
		ID:          sessionID,
		Completed:   true,
		CompletedAt: &now,
		Recommendation: &orientation.Recommendation{
			FieldIDs:      []int64{1},
			Justification: "test",
		},
	}, nil
}

func (f *fakeStore) SessionResult(_ context.Context, sessionID int64) (orientation.Session, error) {
	return orientation.Session{ID: sessionID, Completed: true}, nil
}

// fakeEvents implements store.EventRepo.
type fakeEvents struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
	resultEvents  []store.ResultEventData
}

func (f *fakeEvents) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	f.sessionEvents = append(f.sessionEvents, data)
	return nil
}

func (f *fakeEvents) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	f.answerEvents = append(f.answerEvents, data)
	return nil
}

func (f *fakeEvents) AppendResultEvent(_ context.Context, data store.ResultEventData) error {
	f.resultEvents = append(f.resultEvents, data)
	return nil
}

func (f *fakeEvents) SessionHistory(_ context.Context, _ int) ([]store.SessionHistoryRecord, error) {
	return nil, nil
}

func (f *fakeEvents) CachedResult(_ context.Context, _ int64) (*store.ResultRecord, error) {
	return nil, nil
}

func twoQuestions() []orientation.Question {
	return []orientation.Question{
		{ID: 1, Text: "Pick one", Category: "interests", Type: orientation.TypeSingleChoice, Options: []string{"A", "B"}},
		{ID: 2, Text: "Rate this", Category: "values", Type: orientation.TypeRatingScale},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// loadedScreen builds a TestScreen with the load step already done.
func loadedScreen(t *testing.T, st *fakeStore, events *fakeEvents) *TestScreen {
	t.Helper()
	s := New(&fakeSource{questions: twoQuestions()}, st, events, "run-1", 0)
	if err := s.controller.Load(context.Background(), 0); err != nil {
		t.Fatalf("load: %v", err)
	}
	var scr router.Screen
	scr, _ = s.Update(loadedMsg{})
	return scr.(*TestScreen)
}

func TestTestScreen_Title(t *testing.T) {
	s := New(&fakeSource{}, &fakeStore{}, nil, "run-1", 0)
	if s.Title() != "Orientation Test" {
		t.Errorf("Title = %q, want %q", s.Title(), "Orientation Test")
	}
}

func TestTestScreen_LoadJournalsStart(t *testing.T) {
	events := &fakeEvents{}
	s := loadedScreen(t, &fakeStore{}, events)

	if !s.loaded {
		t.Fatal("expected screen to be loaded")
	}
	if len(events.sessionEvents) != 1 {
		t.Fatalf("got %d session events, want 1", len(events.sessionEvents))
	}
	if events.sessionEvents[0].Action != "start" {
		t.Errorf("action = %q, want %q", events.sessionEvents[0].Action, "start")
	}
	if events.sessionEvents[0].Total != 2 {
		t.Errorf("total = %d, want 2", events.sessionEvents[0].Total)
	}
}

func TestTestScreen_ResumeJournalsResume(t *testing.T) {
	st := &fakeStore{
		sessions: []orientation.SessionSummary{
			{ID: 5, Completed: false, StartedAt: time.Now()},
		},
		answers: map[int64]orientation.Value{1: "A"},
	}
	events := &fakeEvents{}
	s := loadedScreen(t, st, events)

	if !s.controller.Resuming() {
		t.Fatal("expected a resumed session")
	}
	if events.sessionEvents[0].Action != "resume" {
		t.Errorf("action = %q, want %q", events.sessionEvents[0].Action, "resume")
	}
	if events.sessionEvents[0].Answered != 1 {
		t.Errorf("answered = %d, want 1", events.sessionEvents[0].Answered)
	}
}

func TestTestScreen_EnterSubmits(t *testing.T) {
	s := loadedScreen(t, &fakeStore{}, &fakeEvents{})

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a submit command on Enter")
	}
}

func TestTestScreen_AdvanceDoneJournalsAnswer(t *testing.T) {
	events := &fakeEvents{}
	st := &fakeStore{}
	s := loadedScreen(t, st, events)

	q, _ := s.controller.CurrentQuestion()
	if err := s.controller.Advance(context.Background(), orientation.Choice("A")); err != nil {
		t.Fatalf("advance: %v", err)
	}
	s.Update(advanceDoneMsg{Question: q, ValueJSON: `"A"`, ElapsedMs: 1200})

	if len(events.answerEvents) != 1 {
		t.Fatalf("got %d answer events, want 1", len(events.answerEvents))
	}
	got := events.answerEvents[0]
	if got.QuestionID != 1 {
		t.Errorf("question id = %d, want 1", got.QuestionID)
	}
	if got.QuestionType != "mcq" {
		t.Errorf("question type = %q, want %q", got.QuestionType, "mcq")
	}
	if got.Value != `"A"` {
		t.Errorf("value = %q, want %q", got.Value, `"A"`)
	}
	if s.controller.Index() != 1 {
		t.Errorf("index = %d, want 1", s.controller.Index())
	}
}

func TestTestScreen_TransientErrorShowsRetryBanner(t *testing.T) {
	s := loadedScreen(t, &fakeStore{}, &fakeEvents{})

	q, _ := s.controller.CurrentQuestion()
	err := &orientation.SubmitError{
		Kind: orientation.SubmitTransient,
		Err:  &orientation.TransientError{},
	}
	s.Update(advanceDoneMsg{Question: q, Err: err})

	if s.banner == "" {
		t.Fatal("expected an error banner")
	}
	if !s.canRetry {
		t.Error("expected transient failure to be retryable")
	}
}

func TestTestScreen_InvalidErrorNotRetryable(t *testing.T) {
	s := loadedScreen(t, &fakeStore{}, &fakeEvents{})

	q, _ := s.controller.CurrentQuestion()
	err := &orientation.SubmitError{
		Kind: orientation.SubmitInvalid,
		Err:  &orientation.ValidationError{Detail: "bad value"},
	}
	s.Update(advanceDoneMsg{Question: q, Err: err})

	if s.banner == "" {
		t.Fatal("expected an error banner")
	}
	if s.canRetry {
		t.Error("invalid answers must not offer a retry")
	}
}

func TestTestScreen_FinishPushesResult(t *testing.T) {
	events := &fakeEvents{}
	st := &fakeStore{}
	s := loadedScreen(t, st, events)

	// Answer the first question and move to the last one.
	if err := s.controller.Advance(context.Background(), orientation.Choice("A")); err != nil {
		t.Fatalf("advance: %v", err)
	}
	q, _ := s.controller.CurrentQuestion()
	if err := s.controller.Finish(context.Background(), orientation.Rating(4)); err != nil {
		t.Fatalf("finish: %v", err)
	}

	_, cmd := s.Update(finishDoneMsg{Question: q, ValueJSON: `4`, Submitted: true})
	if cmd == nil {
		t.Fatal("expected a navigation command after finish")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen.Title() != "Result" {
		t.Errorf("pushed screen = %q, want %q", push.Screen.Title(), "Result")
	}

	var sawComplete bool
	for _, e := range events.sessionEvents {
		if e.Action == "complete" {
			sawComplete = true
		}
	}
	if !sawComplete {
		t.Error("expected a complete session event")
	}
	if len(events.answerEvents) != 1 {
		t.Errorf("got %d answer events, want 1 (the finishing answer)", len(events.answerEvents))
	}
}

func TestTestScreen_BackRebuildsInput(t *testing.T) {
	s := loadedScreen(t, &fakeStore{}, &fakeEvents{})

	if err := s.controller.Advance(context.Background(), orientation.Choice("B")); err != nil {
		t.Fatalf("advance: %v", err)
	}
	q, _ := s.controller.CurrentQuestion()
	s.Update(advanceDoneMsg{Question: q, ValueJSON: `"B"`})

	var scr router.Screen
	scr, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModShift})
	s = scr.(*TestScreen)

	if s.controller.Index() != 0 {
		t.Errorf("index = %d, want 0 after back", s.controller.Index())
	}
}

func TestTestScreen_ViewStates(t *testing.T) {
	s := New(&fakeSource{questions: twoQuestions()}, &fakeStore{}, nil, "run-1", 0)
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty loading view")
	}

	if err := s.controller.Load(context.Background(), 0); err != nil {
		t.Fatalf("load: %v", err)
	}
	var scr router.Screen
	scr, _ = s.Update(loadedMsg{})
	s = scr.(*TestScreen)
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty question view")
	}
}

func TestTestScreen_NumberKeySelectsOption(t *testing.T) {
	s := loadedScreen(t, &fakeStore{}, &fakeEvents{})

	var scr router.Screen
	scr, _ = s.Update(keyPress('2'))
	s = scr.(*TestScreen)

	if got := s.choice.Value(); got != "B" {
		t.Errorf("choice value = %q, want %q", got, "B")
	}
}
