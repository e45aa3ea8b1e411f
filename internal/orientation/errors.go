package orientation

import (
	"errors"
	"fmt"
)

// ErrActiveSessionExists is reported by SessionStore.CreateSession when the
// backend rejects creation because an incomplete session already exists.
var ErrActiveSessionExists = errors.New("an active session already exists")

// ErrAlreadyInProgress is returned when advance or finish is called while a
// previous submission is still in flight. It is a no-op signal for the
// presentation layer, not a user-facing failure.
var ErrAlreadyInProgress = errors.New("a submission is already in progress")

// ErrNotLastQuestion is returned when finish is called before the last
// question is reached with unanswered questions remaining.
var ErrNotLastQuestion = errors.New("finish called before the last question")

// ValidationError indicates the store rejected an answer value as malformed
// for the question's type. Never retried automatically.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("answer rejected: %s", e.Detail)
}

// TransientError wraps a network, timeout, or server-side failure that the
// caller may retry.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient store failure: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// LookupError indicates the resolver could not list the person's sessions.
// The resolver degrades by attempting creation directly, so this error only
// surfaces wrapped inside a later failure.
type LookupError struct {
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("session lookup failed: %v", e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// ConcurrentSessionError indicates session creation raced with another
// resolution (another tab or process created a session after our lookup).
// Fatal to this controller instance; the caller must re-resolve.
type ConcurrentSessionError struct {
	Err error
}

func (e *ConcurrentSessionError) Error() string {
	return fmt.Sprintf("concurrent session detected: %v", e.Err)
}

func (e *ConcurrentSessionError) Unwrap() error { return e.Err }

// SessionCreateError indicates session creation failed for a reason other
// than an active-session conflict. Fatal.
type SessionCreateError struct {
	Err error
}

func (e *SessionCreateError) Error() string {
	return fmt.Sprintf("cannot create session: %v", e.Err)
}

func (e *SessionCreateError) Unwrap() error { return e.Err }

// CompletionError indicates the completion call failed. The session stays
// resumable and finish may be retried.
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("cannot complete session: %v", e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// ConfigurationError indicates a fatal setup problem, such as an empty
// question set. Not retryable.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

// SubmitErrorKind classifies a failed answer submission.
type SubmitErrorKind int

const (
	// SubmitTransient means the caller may retry by re-invoking advance or
	// finish with the same value.
	SubmitTransient SubmitErrorKind = iota
	// SubmitInvalid means the value was rejected and different input is
	// required. Never retried automatically.
	SubmitInvalid
)

// SubmitError reports a failed answer submission with its retry class.
type SubmitError struct {
	Kind SubmitErrorKind
	Err  error
}

func (e *SubmitError) Error() string {
	if e.Kind == SubmitInvalid {
		return fmt.Sprintf("invalid answer: %v", e.Err)
	}
	return fmt.Sprintf("submission failed: %v", e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// Retryable reports whether re-invoking the failed operation with the same
// value is allowed.
func (e *SubmitError) Retryable() bool { return e.Kind == SubmitTransient }
