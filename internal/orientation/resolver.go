package orientation

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Resolution is the outcome of session resolution: the single live session
// id for this person and whether it is being resumed.
type Resolution struct {
	SessionID int64
	Resuming  bool
}

// Resolver decides, once at controller start, whether to resume an
// incomplete session or create a new one. Resumption is automatic: the
// person is never asked "continue or restart", and two simultaneously
// active sessions are never produced.
type Resolver struct {
	store SessionStore
}

// NewResolver creates a Resolver backed by the given store.
func NewResolver(store SessionStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve produces the session to drive. explicitID, when non-zero (e.g.
// from a deep link), is treated as authoritative and resumed without lookup.
//
// Otherwise the person's sessions are listed and the incomplete one with the
// most recent start is resumed. If the listing fails the resolver degrades
// to attempting creation directly; the store itself reports an unresolvable
// duplicate. A creation conflict means another resolution won the race and
// surfaces as *ConcurrentSessionError; the caller must re-resolve rather
// than guess a session id from stale state.
func (r *Resolver) Resolve(ctx context.Context, explicitID int64) (Resolution, error) {
	if explicitID != 0 {
		return Resolution{SessionID: explicitID, Resuming: true}, nil
	}

	sessions, err := r.store.ListSessions(ctx)
	if err != nil {
		// Best effort: fall through to creation.
		lookupErr := &LookupError{Err: err}
		fmt.Fprintln(os.Stderr, "warning:", lookupErr)
	} else if active, ok := latestIncomplete(sessions); ok {
		return Resolution{SessionID: active.ID, Resuming: true}, nil
	}

	created, err := r.store.CreateSession(ctx)
	if err != nil {
		if errors.Is(err, ErrActiveSessionExists) {
			return Resolution{}, &ConcurrentSessionError{Err: err}
		}
		return Resolution{}, &SessionCreateError{Err: err}
	}
	return Resolution{SessionID: created.ID, Resuming: false}, nil
}

// latestIncomplete picks the incomplete session with the most recent start.
func latestIncomplete(sessions []SessionSummary) (SessionSummary, bool) {
	var best SessionSummary
	found := false
	for _, s := range sessions {
		if s.Completed {
			continue
		}
		if !found || s.StartedAt.After(best.StartedAt) {
			best = s
			found = true
		}
	}
	return best, found
}
