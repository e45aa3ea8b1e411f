package orientation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestResolve_ExplicitIDIsAuthoritative(t *testing.T) {
	store := &fakeStore{listErr: errors.New("must not be called")}
	r := NewResolver(store)

	res, err := r.Resolve(context.Background(), 12)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.SessionID != 12 || !res.Resuming {
		t.Errorf("res = %+v, want session 12 resuming", res)
	}
	if store.createCalls != 0 {
		t.Errorf("CreateSession called %d times, want 0", store.createCalls)
	}
}

func TestResolve_PicksLatestIncomplete(t *testing.T) {
	now := time.Now()
	store := &fakeStore{
		sessions: []SessionSummary{
			{ID: 1, Completed: false, StartedAt: now.Add(-72 * time.Hour)},
			{ID: 2, Completed: true, StartedAt: now.Add(-time.Hour)},
			{ID: 3, Completed: false, StartedAt: now.Add(-2 * time.Hour)},
		},
	}
	r := NewResolver(store)

	res, err := r.Resolve(context.Background(), 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.SessionID != 3 || !res.Resuming {
		t.Errorf("res = %+v, want session 3 resuming", res)
	}
}

func TestResolve_AllCompletedCreatesNew(t *testing.T) {
	store := &fakeStore{
		sessions: []SessionSummary{{ID: 1, Completed: true, StartedAt: time.Now()}},
		created:  Session{ID: 8},
	}
	r := NewResolver(store)

	res, err := r.Resolve(context.Background(), 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.SessionID != 8 || res.Resuming {
		t.Errorf("res = %+v, want fresh session 8", res)
	}
}

func TestResolve_LookupFailureDegradesToCreate(t *testing.T) {
	store := &fakeStore{
		listErr: &TransientError{Err: errors.New("timeout")},
		created: Session{ID: 4},
	}
	r := NewResolver(store)

	res, err := r.Resolve(context.Background(), 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.SessionID != 4 || res.Resuming {
		t.Errorf("res = %+v, want fresh session 4", res)
	}
}

func TestResolve_CreateConflictSurfacesConcurrentSession(t *testing.T) {
	// The race: the listing showed no active session, yet creation hits the
	// backend's single-active-session invariant. The resolver must not
	// guess an id from stale state.
	store := &fakeStore{
		createErr: fmt.Errorf("start session: %w", ErrActiveSessionExists),
	}
	r := NewResolver(store)

	_, err := r.Resolve(context.Background(), 0)
	var conc *ConcurrentSessionError
	if !errors.As(err, &conc) {
		t.Fatalf("Resolve error = %v, want ConcurrentSessionError", err)
	}
}

func TestResolve_CreateFailureIsFatal(t *testing.T) {
	store := &fakeStore{createErr: &TransientError{Err: errors.New("boom")}}
	r := NewResolver(store)

	_, err := r.Resolve(context.Background(), 0)
	var fatal *SessionCreateError
	if !errors.As(err, &fatal) {
		t.Fatalf("Resolve error = %v, want SessionCreateError", err)
	}
}
