package orientation

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// State is the controller's lifecycle state.
type State int

const (
	// StateLoading covers resolution and the initial fetches.
	StateLoading State = iota
	// StateReady means a question is displayed and accepting actions.
	StateReady
	// StateSubmitting means an advance submission is in flight.
	StateSubmitting
	// StateFinishing means the final submit/complete pair is in flight.
	StateFinishing
	// StateCompleted is terminal: the session was completed exactly once.
	StateCompleted
	// StateFailed is terminal: an unrecoverable error occurred.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateFinishing:
		return "finishing"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Controller is the test-taking state machine. It owns the session id, the
// ordered question list, the set of already-answered question ids, and the
// displayed question index. One caller-initiated action is processed at a
// time: the Submitting and Finishing states act as advisory locks that turn
// a second concurrent advance or finish into an ErrAlreadyInProgress no-op.
//
// The local answered set is a cache of which questions have a durable answer
// on the backend, used only for progress and resume position. It grows only
// after a successful submit acknowledgment.
type Controller struct {
	mu        sync.Mutex
	resolver  *Resolver
	source    QuestionSource
	submitter *Submitter
	store     SessionStore

	sessionID int64
	resuming  bool
	questions []Question
	answered  map[int64]bool
	index     int

	state     State
	failure   error
	completed Session

	listeners []func(State)
}

// NewController creates a controller in StateLoading. Call Load to drive it
// to Ready.
func NewController(source QuestionSource, store SessionStore) *Controller {
	return &Controller{
		resolver:  NewResolver(store),
		source:    source,
		submitter: NewSubmitter(store),
		store:     store,
		answered:  make(map[int64]bool),
		state:     StateLoading,
	}
}

// Subscribe registers a callback invoked synchronously after every state
// transition. Not safe to call after Load has started.
func (c *Controller) Subscribe(fn func(State)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) notify(s State) {
	for _, fn := range c.listeners {
		fn(s)
	}
}

// Load resolves the session and fetches the question set, plus the recorded
// answers when resuming. explicitID, when non-zero, short-circuits the
// resolver's lookup. On success the controller is Ready at the first
// unanswered question; on failure it is Failed and the returned error is the
// translated reason.
func (c *Controller) Load(ctx context.Context, explicitID int64) error {
	c.mu.Lock()
	if c.state != StateLoading {
		c.mu.Unlock()
		return fmt.Errorf("load called in state %s", c.state)
	}
	c.mu.Unlock()

	res, err := c.resolver.Resolve(ctx, explicitID)
	if err != nil {
		return c.fail(err)
	}

	questions, err := c.source.ListQuestions(ctx)
	if err != nil {
		return c.fail(err)
	}
	if len(questions) == 0 {
		return c.fail(&ConfigurationError{Msg: "no questions available for the assessment"})
	}

	answered := make(map[int64]bool)
	if res.Resuming {
		recorded, err := c.store.RecordedAnswers(ctx, res.SessionID)
		if err != nil {
			// Degrade to an empty set: already-recorded answers are simply
			// re-submitted as upserts while the person walks forward.
			fmt.Fprintln(os.Stderr, "warning: cannot load recorded answers:", err)
		}
		for _, a := range recorded {
			answered[a.QuestionID] = true
		}
	}

	// Start at the first question without a durable answer. All answered
	// means a previous finish recorded the last answer but failed to
	// complete; start from the top and let finish run idempotently.
	start := 0
	for i, q := range questions {
		if !answered[q.ID] {
			start = i
			break
		}
	}

	c.mu.Lock()
	c.sessionID = res.SessionID
	c.resuming = res.Resuming
	c.questions = questions
	c.answered = answered
	c.index = start
	c.state = StateReady
	c.mu.Unlock()
	c.notify(StateReady)
	return nil
}

// fail moves the controller to the terminal Failed state.
func (c *Controller) fail(reason error) error {
	c.mu.Lock()
	c.state = StateFailed
	c.failure = reason
	c.mu.Unlock()
	c.notify(StateFailed)
	return reason
}

// Advance submits the current question's value, records it as answered, and
// moves forward one question (clamped to the last index). On failure nothing
// local changes, so retrying with the same value is safe. Revisited
// questions are re-submitted; the store's upsert overwrites the prior value.
func (c *Controller) Advance(ctx context.Context, v Value) error {
	c.mu.Lock()
	if c.state == StateSubmitting || c.state == StateFinishing {
		c.mu.Unlock()
		return ErrAlreadyInProgress
	}
	if c.state != StateReady {
		c.mu.Unlock()
		return fmt.Errorf("advance called in state %s", c.state)
	}
	q := c.questions[c.index]
	sessionID := c.sessionID
	c.state = StateSubmitting
	c.mu.Unlock()
	c.notify(StateSubmitting)

	if err := c.submitter.Submit(ctx, sessionID, q, v); err != nil {
		c.mu.Lock()
		c.state = StateReady
		c.mu.Unlock()
		c.notify(StateReady)
		return err
	}

	c.mu.Lock()
	c.answered[q.ID] = true
	if c.index < len(c.questions)-1 {
		c.index++
	}
	c.state = StateReady
	c.mu.Unlock()
	c.notify(StateReady)
	return nil
}

// Back moves to the previous question, floored at zero. Nothing is
// submitted or un-submitted; recorded answers stay recorded.
func (c *Controller) Back() {
	c.mu.Lock()
	if c.state != StateReady {
		c.mu.Unlock()
		return
	}
	if c.index > 0 {
		c.index--
	}
	c.mu.Unlock()
	c.notify(StateReady)
}

// Finish submits the current question's answer if it has none recorded,
// then completes the session, exactly once. Callable from the last question,
// or from anywhere once every question has a recorded answer (the
// resume-after-partial-finish edge). On failure at either step the
// controller returns to Ready at the same index; a recorded answer from a
// failed completion is kept, so the retry skips straight to completing.
func (c *Controller) Finish(ctx context.Context, v Value) error {
	c.mu.Lock()
	if c.state == StateSubmitting || c.state == StateFinishing {
		c.mu.Unlock()
		return ErrAlreadyInProgress
	}
	if c.state != StateReady {
		c.mu.Unlock()
		return fmt.Errorf("finish called in state %s", c.state)
	}
	if c.index != len(c.questions)-1 && !c.allAnsweredLocked() {
		c.mu.Unlock()
		return ErrNotLastQuestion
	}
	q := c.questions[c.index]
	sessionID := c.sessionID
	needSubmit := !c.answered[q.ID]
	c.state = StateFinishing
	c.mu.Unlock()
	c.notify(StateFinishing)

	if needSubmit {
		if err := c.submitter.Submit(ctx, sessionID, q, v); err != nil {
			c.mu.Lock()
			c.state = StateReady
			c.mu.Unlock()
			c.notify(StateReady)
			return err
		}
		c.mu.Lock()
		c.answered[q.ID] = true
		c.mu.Unlock()
	}

	sess, err := c.store.CompleteSession(ctx, sessionID)
	if err != nil {
		c.mu.Lock()
		c.state = StateReady
		c.mu.Unlock()
		c.notify(StateReady)
		return &CompletionError{Err: err}
	}

	c.mu.Lock()
	c.completed = sess
	c.state = StateCompleted
	c.mu.Unlock()
	c.notify(StateCompleted)
	return nil
}

func (c *Controller) allAnsweredLocked() bool {
	for _, q := range c.questions {
		if !c.answered[q.ID] {
			return false
		}
	}
	return len(c.questions) > 0
}

// CurrentState returns the controller state.
func (c *Controller) CurrentState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentQuestion returns the displayed question. ok is false before
// loading completes.
func (c *Controller) CurrentQuestion() (Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.questions) == 0 || c.index >= len(c.questions) {
		return Question{}, false
	}
	return c.questions[c.index], true
}

// ProgressFraction returns recorded answers over total questions, in [0, 1].
// Derived from the answered set, not the index: moving back and forth over
// answered questions doesn't change how much is actually recorded.
func (c *Controller) ProgressFraction() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.questions) == 0 {
		return 0
	}
	p := float64(len(c.answered)) / float64(len(c.questions))
	if p > 1 {
		p = 1
	}
	return p
}

// Index returns the current question index.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// TotalQuestions returns the size of the question set.
func (c *Controller) TotalQuestions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.questions)
}

// AnsweredCount returns the number of questions with a recorded answer.
func (c *Controller) AnsweredCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.answered)
}

// IsAnswered reports whether the question has a recorded answer.
func (c *Controller) IsAnswered(questionID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.answered[questionID]
}

// SessionID returns the resolved session id, zero before Load succeeds.
func (c *Controller) SessionID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Resuming reports whether the session was resumed rather than created.
func (c *Controller) Resuming() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resuming
}

// FailureReason returns the error that moved the controller to Failed.
func (c *Controller) FailureReason() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failure
}

// CompletedSession returns the finished session for hand-off to the result
// view. Only meaningful in StateCompleted.
func (c *Controller) CompletedSession() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed
}
