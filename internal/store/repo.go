package store

import (
	"context"
	"time"
)

// SessionEventData captures one session lifecycle event for the journal.
type SessionEventData struct {
	RunID     string
	SessionID int64
	Action    string // start, resume, or complete
	Answered  int
	Total     int
}

// AnswerEventData captures one acknowledged answer submission.
type AnswerEventData struct {
	RunID        string
	SessionID    int64
	QuestionID   int64
	Category     string
	QuestionType string
	Value        string // JSON-encoded
	ElapsedMs    int64
}

// ResultEventData captures the recommendation attached to a completed
// session.
type ResultEventData struct {
	RunID         string
	SessionID     int64
	FieldIDs      []int64
	TopScore      float64
	Justification string
}

// SessionHistoryRecord is one session's journal summary for the history
// view, assembled from its lifecycle events.
type SessionHistoryRecord struct {
	SessionID int64
	StartedAt time.Time
	LastSeen  time.Time
	Completed bool
	Answered  int
	Total     int
}

// ResultRecord is a locally cached recommendation.
type ResultRecord struct {
	SessionID     int64
	FieldIDs      []int64
	TopScore      float64
	Justification string
	RecordedAt    time.Time
}

// EventRepo provides append and query access to the activity journal.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendResultEvent(ctx context.Context, data ResultEventData) error

	// SessionHistory returns per-session summaries, most recent first.
	SessionHistory(ctx context.Context, limit int) ([]SessionHistoryRecord, error)

	// CachedResult returns the locally cached recommendation for a session,
	// or nil if none was recorded.
	CachedResult(ctx context.Context, sessionID int64) (*ResultRecord, error)
}
