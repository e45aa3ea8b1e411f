package orientation

import (
	"context"
	"time"
)

// QuestionType tags the shape of the answer a question expects.
// The values match the backend's question_type field.
type QuestionType string

const (
	// TypeSingleChoice expects one option label from Options.
	TypeSingleChoice QuestionType = "mcq"
	// TypeRatingScale expects an integer on a 1–5 agreement scale.
	TypeRatingScale QuestionType = "likert"
	// TypeRanking expects a permutation of Options, most preferred first.
	TypeRanking QuestionType = "ranking"
)

// Question is one item of the assessment. Questions are owned by the
// backend and immutable once fetched; the controller holds them in a
// fixed order for the lifetime of a session.
type Question struct {
	ID       int64
	Text     string
	Category string
	Type     QuestionType
	Options  []string // single-choice and ranking only
}

// SessionSummary is the lightweight session record returned by the
// session listing endpoint.
type SessionSummary struct {
	ID        int64
	Completed bool
	StartedAt time.Time
}

// Session is one person's attempt at the assessment. The backend assigns
// the ID on creation and enforces that at most one incomplete session
// exists per person.
type Session struct {
	ID             int64
	Completed      bool
	StartedAt      time.Time
	CompletedAt    *time.Time
	Recommendation *Recommendation
}

// Recommendation is the opaque result attached to a completed session.
// The client only displays it; computation happens server-side.
type Recommendation struct {
	FieldIDs      []int64
	Scores        map[string]float64
	Justification string
	GeneratedAt   time.Time
}

// Answer is a recorded (question, value) pair within a session.
type Answer struct {
	QuestionID int64
	Value      Value
}

// QuestionSource provides the fixed, ordered question set. The order is
// stable across calls for a given assessment.
type QuestionSource interface {
	ListQuestions(ctx context.Context) ([]Question, error)
}

// SessionStore is the remote, durable owner of sessions and answers.
//
// Implementations must translate transport failures before returning:
// CreateSession reports an existing active session as ErrActiveSessionExists,
// UpsertAnswer reports rejected values as *ValidationError, and anything
// retryable (network, timeout, 5xx) as *TransientError. UpsertAnswer is an
// upsert: writing the same (session, question) pair twice overwrites.
type SessionStore interface {
	ListSessions(ctx context.Context) ([]SessionSummary, error)
	CreateSession(ctx context.Context) (Session, error)
	RecordedAnswers(ctx context.Context, sessionID int64) ([]Answer, error)
	UpsertAnswer(ctx context.Context, sessionID, questionID int64, value Value) error
	CompleteSession(ctx context.Context, sessionID int64) (Session, error)
	SessionResult(ctx context.Context, sessionID int64) (Session, error)
}
