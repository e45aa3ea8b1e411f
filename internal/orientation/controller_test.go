package orientation

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeSource implements QuestionSource for testing.
type fakeSource struct {
	questions []Question
	err       error
}

func (f *fakeSource) ListQuestions(_ context.Context) ([]Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

type upsertCall struct {
	SessionID  int64
	QuestionID int64
	Value      Value
}

// fakeStore implements SessionStore with scriptable failures.
type fakeStore struct {
	sessions    []SessionSummary
	listErr     error
	created     Session
	createErr   error
	createCalls int
	recorded    []Answer
	recordedErr error

	upserts    []upsertCall
	upsertErrs []error // popped per call; nil entry = success

	completeCalls int
	completeErrs  []error
	completedSess Session

	// blockUpsert, when non-nil, is received from before UpsertAnswer returns.
	blockUpsert chan struct{}
}

func (f *fakeStore) ListSessions(_ context.Context) ([]SessionSummary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sessions, nil
}

func (f *fakeStore) CreateSession(_ context.Context) (Session, error) {
	f.createCalls++
	if f.createErr != nil {
		return Session{}, f.createErr
	}
	return f.created, nil
}

func (f *fakeStore) RecordedAnswers(_ context.Context, _ int64) ([]Answer, error) {
	if f.recordedErr != nil {
		return nil, f.recordedErr
	}
	return f.recorded, nil
}

func (f *fakeStore) UpsertAnswer(_ context.Context, sessionID, questionID int64, value Value) error {
	if f.blockUpsert != nil {
		<-f.blockUpsert
	}
	var err error
	if len(f.upsertErrs) > 0 {
		err = f.upsertErrs[0]
		f.upsertErrs = f.upsertErrs[1:]
	}
	if err != nil {
		return err
	}
	f.upserts = append(f.upserts, upsertCall{sessionID, questionID, value})
	return nil
}

func (f *fakeStore) CompleteSession(_ context.Context, sessionID int64) (Session, error) {
	f.completeCalls++
	var err error
	if len(f.completeErrs) > 0 {
		err = f.completeErrs[0]
		f.completeErrs = f.completeErrs[1:]
	}
	if err != nil {
		return Session{}, err
	}
	s := f.completedSess
	if s.ID == 0 {
		s = Session{ID: sessionID, Completed: true}
	}
	return s, nil
}

func (f *fakeStore) SessionResult(_ context.Context, sessionID int64) (Session, error) {
	return Session{ID: sessionID, Completed: true}, nil
}

// threeQuestions is the canonical small assessment used across tests.
func threeQuestions() []Question {
	return []Question{
		{ID: 1, Text: "Pick one", Category: "interests", Type: TypeSingleChoice, Options: []string{"A", "B"}},
		{ID: 2, Text: "Rate this", Category: "values", Type: TypeRatingScale},
		{ID: 3, Text: "Rank these", Category: "skills", Type: TypeRanking, Options: []string{"X", "Y", "Z"}},
	}
}

func newReadyController(t *testing.T, store *fakeStore) *Controller {
	t.Helper()
	c := NewController(&fakeSource{questions: threeQuestions()}, store)
	if err := c.Load(context.Background(), 0); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

func TestLoad_FreshStart(t *testing.T) {
	store := &fakeStore{created: Session{ID: 42}}
	c := newReadyController(t, store)

	if c.CurrentState() != StateReady {
		t.Errorf("state = %s, want ready", c.CurrentState())
	}
	if c.SessionID() != 42 {
		t.Errorf("SessionID = %d, want 42", c.SessionID())
	}
	if c.Resuming() {
		t.Error("fresh session reported as resuming")
	}
	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
	if c.ProgressFraction() != 0 {
		t.Errorf("ProgressFraction = %f, want 0", c.ProgressFraction())
	}
}

func TestLoad_ResumeStartsAtFirstUnanswered(t *testing.T) {
	store := &fakeStore{
		sessions: []SessionSummary{
			{ID: 7, Completed: true, StartedAt: time.Now().Add(-48 * time.Hour)},
			{ID: 9, Completed: false, StartedAt: time.Now().Add(-time.Hour)},
		},
		recorded: []Answer{{QuestionID: 1}, {QuestionID: 2}},
	}
	c := newReadyController(t, store)

	if !c.Resuming() {
		t.Error("expected resuming session")
	}
	if c.SessionID() != 9 {
		t.Errorf("SessionID = %d, want 9", c.SessionID())
	}
	if c.Index() != 2 {
		t.Errorf("Index = %d, want 2 (first unanswered)", c.Index())
	}
	want := 2.0 / 3.0
	if c.ProgressFraction() != want {
		t.Errorf("ProgressFraction = %f, want %f", c.ProgressFraction(), want)
	}
	if store.createCalls != 0 {
		t.Errorf("CreateSession called %d times while resuming", store.createCalls)
	}
}

func TestLoad_AllAnsweredStartsAtZeroAndFinishIsIdempotent(t *testing.T) {
	store := &fakeStore{
		sessions: []SessionSummary{{ID: 5, Completed: false, StartedAt: time.Now()}},
		recorded: []Answer{{QuestionID: 1}, {QuestionID: 2}, {QuestionID: 3}},
	}
	c := newReadyController(t, store)

	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
	if c.ProgressFraction() != 1.0 {
		t.Errorf("ProgressFraction = %f, want 1.0", c.ProgressFraction())
	}

	// Every answer is already durable: finish must not re-submit anything,
	// just complete the session.
	if err := c.Finish(context.Background(), nil); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(store.upserts) != 0 {
		t.Errorf("finish re-submitted %d answers, want 0", len(store.upserts))
	}
	if store.completeCalls != 1 {
		t.Errorf("CompleteSession called %d times, want 1", store.completeCalls)
	}
	if c.CurrentState() != StateCompleted {
		t.Errorf("state = %s, want completed", c.CurrentState())
	}
}

func TestLoad_EmptyQuestionSetFails(t *testing.T) {
	store := &fakeStore{created: Session{ID: 1}}
	c := NewController(&fakeSource{}, store)

	err := c.Load(context.Background(), 0)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load error = %v, want ConfigurationError", err)
	}
	if c.CurrentState() != StateFailed {
		t.Errorf("state = %s, want failed", c.CurrentState())
	}
}

func TestLoad_QuestionFetchFailureFails(t *testing.T) {
	store := &fakeStore{created: Session{ID: 1}}
	c := NewController(&fakeSource{err: &TransientError{Err: errors.New("timeout")}}, store)

	if err := c.Load(context.Background(), 0); err == nil {
		t.Fatal("Load succeeded with failing question source")
	}
	if c.CurrentState() != StateFailed {
		t.Errorf("state = %s, want failed", c.CurrentState())
	}
}

func TestLoad_ExplicitSessionSkipsLookup(t *testing.T) {
	store := &fakeStore{listErr: errors.New("must not be called")}
	c := NewController(&fakeSource{questions: threeQuestions()}, store)

	if err := c.Load(context.Background(), 33); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.SessionID() != 33 || !c.Resuming() {
		t.Errorf("got session %d resuming=%v, want 33 resuming", c.SessionID(), c.Resuming())
	}
}

func TestScenario_ThreeQuestionAssessment(t *testing.T) {
	store := &fakeStore{created: Session{ID: 11}, completedSess: Session{ID: 11, Completed: true}}
	c := newReadyController(t, store)

	if err := c.Advance(context.Background(), Choice("A")); err != nil {
		t.Fatalf("Advance Q1: %v", err)
	}
	if c.Index() != 1 {
		t.Errorf("Index after Q1 = %d, want 1", c.Index())
	}
	if want := 1.0 / 3.0; c.ProgressFraction() != want {
		t.Errorf("progress after Q1 = %f, want %f", c.ProgressFraction(), want)
	}

	if err := c.Advance(context.Background(), Rating(4)); err != nil {
		t.Fatalf("Advance Q2: %v", err)
	}
	if c.Index() != 2 {
		t.Errorf("Index after Q2 = %d, want 2", c.Index())
	}

	if err := c.Finish(context.Background(), Ranking([]string{"Y", "X", "Z"})); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if c.CurrentState() != StateCompleted {
		t.Errorf("state = %s, want completed", c.CurrentState())
	}
	if c.ProgressFraction() != 1.0 {
		t.Errorf("final progress = %f, want 1.0", c.ProgressFraction())
	}
	if len(store.upserts) != 3 {
		t.Fatalf("recorded %d answers, want 3", len(store.upserts))
	}
	first := store.upserts[0]
	if first.SessionID != 11 || first.QuestionID != 1 || first.Value != "A" {
		t.Errorf("first answer = %+v, want (11, 1, A)", first)
	}
	if store.completeCalls != 1 {
		t.Errorf("CompleteSession called %d times, want 1", store.completeCalls)
	}
	if c.CompletedSession().ID != 11 {
		t.Errorf("CompletedSession().ID = %d, want 11", c.CompletedSession().ID)
	}
}

func TestAdvance_TransientFailureLeavesStateAndRetryWorks(t *testing.T) {
	store := &fakeStore{
		created:    Session{ID: 1},
		upsertErrs: []error{&TransientError{Err: errors.New("connection reset")}},
	}
	c := newReadyController(t, store)

	err := c.Advance(context.Background(), Choice("A"))
	var serr *SubmitError
	if !errors.As(err, &serr) || !serr.Retryable() {
		t.Fatalf("Advance error = %v, want retryable SubmitError", err)
	}
	if c.Index() != 0 {
		t.Errorf("Index after failure = %d, want 0", c.Index())
	}
	if c.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount after failure = %d, want 0", c.AnsweredCount())
	}
	if c.CurrentState() != StateReady {
		t.Errorf("state after failure = %s, want ready", c.CurrentState())
	}

	// Same value, one retry, exactly one step forward.
	if err := c.Advance(context.Background(), Choice("A")); err != nil {
		t.Fatalf("retry Advance: %v", err)
	}
	if c.Index() != 1 {
		t.Errorf("Index after retry = %d, want 1", c.Index())
	}
	if c.AnsweredCount() != 1 {
		t.Errorf("AnsweredCount after retry = %d, want 1", c.AnsweredCount())
	}
}

func TestAdvance_InvalidValueNeverReachesStore(t *testing.T) {
	store := &fakeStore{created: Session{ID: 1}}
	c := newReadyController(t, store)

	err := c.Advance(context.Background(), Choice("not-an-option"))
	var serr *SubmitError
	if !errors.As(err, &serr) || serr.Kind != SubmitInvalid {
		t.Fatalf("Advance error = %v, want invalid SubmitError", err)
	}
	if len(store.upserts) != 0 {
		t.Errorf("invalid value reached the store: %d upserts", len(store.upserts))
	}
}

func TestBackThenAdvance_OverwritesExactlyOnce(t *testing.T) {
	store := &fakeStore{created: Session{ID: 1}}
	c := newReadyController(t, store)

	if err := c.Advance(context.Background(), Choice("A")); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	c.Back()
	if c.Index() != 0 {
		t.Fatalf("Index after Back = %d, want 0", c.Index())
	}

	if err := c.Advance(context.Background(), Choice("B")); err != nil {
		t.Fatalf("re-Advance: %v", err)
	}
	if len(store.upserts) != 2 {
		t.Fatalf("upserts = %d, want 2 (overwrite goes to the store)", len(store.upserts))
	}
	if store.upserts[1].QuestionID != 1 || store.upserts[1].Value != "B" {
		t.Errorf("overwrite = %+v, want question 1 value B", store.upserts[1])
	}
	if c.AnsweredCount() != 1 {
		t.Errorf("AnsweredCount = %d, want 1 (set must not grow on overwrite)", c.AnsweredCount())
	}
}

func TestBack_FloorsAtZero(t *testing.T) {
	store := &fakeStore{created: Session{ID: 1}}
	c := newReadyController(t, store)

	c.Back()
	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
}

func TestAdvance_ClampsAtLastIndex(t *testing.T) {
	store := &fakeStore{created: Session{ID: 1}}
	c := newReadyController(t, store)

	ctx := context.Background()
	if err := c.Advance(ctx, Choice("A")); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(ctx, Rating(3)); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(ctx, Ranking([]string{"X", "Y", "Z"})); err != nil {
		t.Fatal(err)
	}
	if c.Index() != 2 {
		t.Errorf("Index = %d, want clamped at 2", c.Index())
	}
}

func TestFinish_RejectedBeforeLastQuestion(t *testing.T) {
	store := &fakeStore{created: Session{ID: 1}}
	c := newReadyController(t, store)

	if err := c.Finish(context.Background(), Choice("A")); !errors.Is(err, ErrNotLastQuestion) {
		t.Errorf("Finish error = %v, want ErrNotLastQuestion", err)
	}
	if store.completeCalls != 0 {
		t.Errorf("CompleteSession called %d times, want 0", store.completeCalls)
	}
}

func TestFinish_CompletionFailureIsRetryableWithoutResubmit(t *testing.T) {
	store := &fakeStore{
		created:      Session{ID: 1},
		completeErrs: []error{&TransientError{Err: errors.New("gateway timeout")}},
	}
	c := newReadyController(t, store)

	ctx := context.Background()
	if err := c.Advance(ctx, Choice("A")); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(ctx, Rating(2)); err != nil {
		t.Fatal(err)
	}

	err := c.Finish(ctx, Ranking([]string{"Z", "Y", "X"}))
	var cerr *CompletionError
	if !errors.As(err, &cerr) {
		t.Fatalf("Finish error = %v, want CompletionError", err)
	}
	if c.CurrentState() != StateReady {
		t.Errorf("state after completion failure = %s, want ready", c.CurrentState())
	}
	if len(store.upserts) != 3 {
		t.Fatalf("upserts after failed finish = %d, want 3 (last answer recorded)", len(store.upserts))
	}

	// Retry: the last answer is already durable, so only the completion
	// call runs again.
	if err := c.Finish(ctx, nil); err != nil {
		t.Fatalf("retry Finish: %v", err)
	}
	if len(store.upserts) != 3 {
		t.Errorf("upserts after retry = %d, want still 3", len(store.upserts))
	}
	if store.completeCalls != 2 {
		t.Errorf("CompleteSession calls = %d, want 2", store.completeCalls)
	}
	if c.CurrentState() != StateCompleted {
		t.Errorf("state = %s, want completed", c.CurrentState())
	}
}

func TestAdvance_ConcurrentCallIsNoOp(t *testing.T) {
	store := &fakeStore{created: Session{ID: 1}, blockUpsert: make(chan struct{})}
	c := newReadyController(t, store)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- c.Advance(context.Background(), Choice("A"))
	}()

	// Wait for the first call to reach Submitting.
	for c.CurrentState() != StateSubmitting {
		time.Sleep(time.Millisecond)
	}

	if err := c.Advance(context.Background(), Choice("B")); !errors.Is(err, ErrAlreadyInProgress) {
		t.Errorf("second Advance error = %v, want ErrAlreadyInProgress", err)
	}

	close(store.blockUpsert)
	if err := <-firstDone; err != nil {
		t.Fatalf("first Advance: %v", err)
	}
	if len(store.upserts) != 1 {
		t.Errorf("upserts = %d, want 1", len(store.upserts))
	}
}

func TestSubscribe_EmitsTransitions(t *testing.T) {
	store := &fakeStore{created: Session{ID: 1}}
	c := NewController(&fakeSource{questions: threeQuestions()}, store)

	var seen []State
	c.Subscribe(func(s State) { seen = append(seen, s) })

	ctx := context.Background()
	if err := c.Load(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(ctx, Choice("A")); err != nil {
		t.Fatal(err)
	}

	want := []State{StateReady, StateSubmitting, StateReady}
	if len(seen) != len(want) {
		t.Fatalf("notifications = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("notification %d = %s, want %s", i, seen[i], want[i])
		}
	}
}
