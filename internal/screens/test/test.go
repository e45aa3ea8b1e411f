package test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/boussole-app/boussole/internal/orientation"
	"github.com/boussole-app/boussole/internal/router"
	"github.com/boussole-app/boussole/internal/screens/result"
	"github.com/boussole-app/boussole/internal/store"
	"github.com/boussole-app/boussole/internal/ui/components"
	"github.com/boussole-app/boussole/internal/ui/layout"
)

// TestScreen drives one assessment session: it resolves the session,
// walks the question sequence, and submits answers as the user confirms
// them. Answers are durable server-side, so quitting mid-test loses
// nothing.
type TestScreen struct {
	controller *orientation.Controller
	sessions   orientation.SessionStore
	events     store.EventRepo // nil when the local journal is unavailable
	runID      string
	explicitID int64

	choice  components.Choice
	scale   components.Scale
	ranking components.Ranking
	spin    components.Spinner

	loaded   bool
	shownAt  time.Time
	banner   string
	canRetry bool
}

var _ router.Screen = (*TestScreen)(nil)
var _ router.KeyHintProvider = (*TestScreen)(nil)
var _ router.StatusProvider = (*TestScreen)(nil)

// New creates a TestScreen. explicitID forces resumption of a specific
// session; zero lets the resolver decide.
func New(source orientation.QuestionSource, sessions orientation.SessionStore, events store.EventRepo, runID string, explicitID int64) *TestScreen {
	return &TestScreen{
		controller: orientation.NewController(source, sessions),
		sessions:   sessions,
		events:     events,
		runID:      runID,
		explicitID: explicitID,
		spin:       components.NewSpinner(),
	}
}

func (s *TestScreen) Init() tea.Cmd {
	return tea.Batch(
		s.spin.Init(),
		s.load(),
	)
}

func (s *TestScreen) Title() string {
	return "Orientation Test"
}

func (s *TestScreen) Status() string {
	if !s.loaded {
		return ""
	}
	return fmt.Sprintf("Session #%d  %d/%d",
		s.controller.SessionID(),
		s.controller.AnsweredCount(),
		s.controller.TotalQuestions())
}

func (s *TestScreen) KeyHints() []layout.KeyHint {
	state := s.controller.CurrentState()
	if state != orientation.StateReady {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}

	hints := []layout.KeyHint{}
	q, ok := s.controller.CurrentQuestion()
	if ok && q.Type == orientation.TypeRanking {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Grab"})
	}
	if s.controller.Index() == s.controller.TotalQuestions()-1 {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Finish"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
	}
	if s.controller.Index() > 0 {
		hints = append(hints, layout.KeyHint{Key: "Shift+←", Description: "Previous"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	return hints
}

func (s *TestScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return s.handleLoaded(msg)

	case advanceDoneMsg:
		return s.handleAdvanceDone(msg)

	case finishDoneMsg:
		return s.handleFinishDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.spin, cmd = s.spin.Update(msg)
	return s, cmd
}

// load resolves the session and fetches questions off the Update loop.
func (s *TestScreen) load() tea.Cmd {
	return func() tea.Msg {
		err := s.controller.Load(context.Background(), s.explicitID)
		return loadedMsg{Err: err}
	}
}

func (s *TestScreen) handleLoaded(msg loadedMsg) (router.Screen, tea.Cmd) {
	if msg.Err != nil {
		// FailureReason carries the typed error; the view renders it.
		return s, nil
	}

	s.loaded = true
	s.setupInput()
	s.shownAt = time.Now()

	if s.events != nil {
		action := "start"
		if s.controller.Resuming() {
			action = "resume"
		}
		_ = s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			RunID:     s.runID,
			SessionID: s.controller.SessionID(),
			Action:    action,
			Answered:  s.controller.AnsweredCount(),
			Total:     s.controller.TotalQuestions(),
		})
	}

	return s, nil
}

func (s *TestScreen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	state := s.controller.CurrentState()

	if state == orientation.StateFailed {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !s.loaded || state != orientation.StateReady {
		return s, nil
	}

	if s.banner != "" && msg.String() == "enter" && !s.canRetry {
		// Non-retryable banner: Enter just dismisses it.
		s.banner = ""
		return s, nil
	}
	if s.banner != "" && msg.String() != "enter" {
		s.banner = ""
		s.canRetry = false
	}

	switch msg.String() {
	case "enter":
		s.banner = ""
		if s.controller.Index() == s.controller.TotalQuestions()-1 {
			return s, s.finish()
		}
		return s, s.advance()
	// shift+left rather than plain left, which rating questions use.
	case "shift+left":
		s.controller.Back()
		s.setupInput()
		s.shownAt = time.Now()
		return s, nil
	}

	return s.forwardToInput(msg)
}

func (s *TestScreen) forwardToInput(msg tea.Msg) (router.Screen, tea.Cmd) {
	q, ok := s.controller.CurrentQuestion()
	if !ok {
		return s, nil
	}
	switch q.Type {
	case orientation.TypeSingleChoice:
		s.choice, _ = s.choice.Update(msg)
	case orientation.TypeRatingScale:
		s.scale, _ = s.scale.Update(msg)
	case orientation.TypeRanking:
		s.ranking, _ = s.ranking.Update(msg)
	}
	return s, nil
}

// setupInput rebuilds the input component for the current question.
// Previously submitted values are not tracked locally, so a revisited
// question starts from the component default.
func (s *TestScreen) setupInput() {
	q, ok := s.controller.CurrentQuestion()
	if !ok {
		return
	}
	switch q.Type {
	case orientation.TypeSingleChoice:
		s.choice = components.NewChoice(q.Options, "")
	case orientation.TypeRatingScale:
		s.scale = components.NewScale(orientation.RatingMin, orientation.RatingMax, 0)
	case orientation.TypeRanking:
		s.ranking = components.NewRanking(q.Options, nil)
	}
}

// currentValue reads the answer value from the active input component.
func (s *TestScreen) currentValue(q orientation.Question) orientation.Value {
	switch q.Type {
	case orientation.TypeSingleChoice:
		return orientation.Choice(s.choice.Value())
	case orientation.TypeRatingScale:
		return orientation.Rating(s.scale.Value())
	case orientation.TypeRanking:
		return orientation.Ranking(s.ranking.Value())
	}
	return nil
}

// advance submits the current answer and moves forward.
func (s *TestScreen) advance() tea.Cmd {
	q, ok := s.controller.CurrentQuestion()
	if !ok {
		return nil
	}
	v := s.currentValue(q)
	shownAt := s.shownAt

	return tea.Batch(s.spin.Init(), func() tea.Msg {
		err := s.controller.Advance(context.Background(), v)
		raw, _ := json.Marshal(v)
		return advanceDoneMsg{
			Question:  q,
			ValueJSON: string(raw),
			ElapsedMs: time.Since(shownAt).Milliseconds(),
			Err:       err,
		}
	})
}

// finish submits the last answer if needed and completes the session.
func (s *TestScreen) finish() tea.Cmd {
	q, ok := s.controller.CurrentQuestion()
	if !ok {
		return nil
	}
	v := s.currentValue(q)
	shownAt := s.shownAt
	submitted := !s.controller.IsAnswered(q.ID)

	return tea.Batch(s.spin.Init(), func() tea.Msg {
		err := s.controller.Finish(context.Background(), v)
		raw, _ := json.Marshal(v)
		return finishDoneMsg{
			Question:  q,
			ValueJSON: string(raw),
			ElapsedMs: time.Since(shownAt).Milliseconds(),
			Submitted: submitted,
			Err:       err,
		}
	})
}

func (s *TestScreen) handleAdvanceDone(msg advanceDoneMsg) (router.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, orientation.ErrAlreadyInProgress) {
			return s, nil
		}
		s.setBanner(msg.Err)
		return s, nil
	}

	s.journalAnswer(msg.Question, msg.ValueJSON, msg.ElapsedMs)
	s.setupInput()
	s.shownAt = time.Now()
	return s, nil
}

func (s *TestScreen) handleFinishDone(msg finishDoneMsg) (router.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, orientation.ErrAlreadyInProgress) {
			return s, nil
		}
		s.setBanner(msg.Err)
		return s, nil
	}

	if msg.Submitted {
		s.journalAnswer(msg.Question, msg.ValueJSON, msg.ElapsedMs)
	}

	completed := s.controller.CompletedSession()
	if s.events != nil {
		_ = s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			RunID:     s.runID,
			SessionID: completed.ID,
			Action:    "complete",
			Answered:  s.controller.AnsweredCount(),
			Total:     s.controller.TotalQuestions(),
		})
	}

	resultScreen := result.New(s.sessions, s.events, s.runID, completed.ID, &completed)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: resultScreen}
	}
}

func (s *TestScreen) journalAnswer(q orientation.Question, valueJSON string, elapsedMs int64) {
	if s.events == nil {
		return
	}
	_ = s.events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		RunID:        s.runID,
		SessionID:    s.controller.SessionID(),
		QuestionID:   q.ID,
		Category:     q.Category,
		QuestionType: string(q.Type),
		Value:        valueJSON,
		ElapsedMs:    elapsedMs,
	})
}

func (s *TestScreen) setBanner(err error) {
	var subErr *orientation.SubmitError
	if errors.As(err, &subErr) {
		if subErr.Retryable() {
			s.banner = "Connection problem. Press Enter to retry."
			s.canRetry = true
		} else {
			s.banner = "Answer rejected: " + subErr.Error()
			s.canRetry = false
		}
		return
	}

	var compErr *orientation.CompletionError
	if errors.As(err, &compErr) {
		s.banner = "Could not finish the test. Press Enter to retry."
		s.canRetry = true
		return
	}

	s.banner = err.Error()
	s.canRetry = false
}
