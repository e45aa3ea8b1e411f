package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Errorf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}

func TestSessionHistoryAssembly(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Session 1: started, partially answered, still in progress.
	events := []SessionEventData{
		{RunID: "run-a", SessionID: 1, Action: "start", Answered: 0, Total: 10},
		{RunID: "run-b", SessionID: 1, Action: "resume", Answered: 4, Total: 10},
		// Session 2: completed.
		{RunID: "run-b", SessionID: 2, Action: "start", Answered: 0, Total: 10},
		{RunID: "run-b", SessionID: 2, Action: "complete", Answered: 10, Total: 10},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %+v: %v", e, err)
		}
	}

	records, err := repo.SessionHistory(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	byID := make(map[int64]SessionHistoryRecord)
	for _, r := range records {
		byID[r.SessionID] = r
	}

	s1 := byID[1]
	if s1.Completed {
		t.Error("session 1 should not be completed")
	}
	if s1.Answered != 4 {
		t.Errorf("session 1 answered = %d, want 4", s1.Answered)
	}

	s2 := byID[2]
	if !s2.Completed {
		t.Error("session 2 should be completed")
	}
	if s2.Answered != 10 {
		t.Errorf("session 2 answered = %d, want 10", s2.Answered)
	}
}

func TestSessionHistoryLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			RunID: "run", SessionID: i, Action: "start", Total: 10,
		})
		if err != nil {
			t.Fatalf("append session %d: %v", i, err)
		}
	}

	records, err := repo.SessionHistory(ctx, 3)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestCachedResultRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Missing result returns nil without error.
	got, err := repo.CachedResult(ctx, 7)
	if err != nil {
		t.Fatalf("cached result (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil result when none recorded")
	}

	err = repo.AppendResultEvent(ctx, ResultEventData{
		RunID:         "run",
		SessionID:     7,
		FieldIDs:      []int64{3, 1},
		TopScore:      87.5,
		Justification: "strong affinity for engineering",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err = repo.CachedResult(ctx, 7)
	if err != nil {
		t.Fatalf("cached result: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached result")
	}
	if got.TopScore != 87.5 {
		t.Errorf("top score = %v, want 87.5", got.TopScore)
	}
	if len(got.FieldIDs) != 2 || got.FieldIDs[0] != 3 {
		t.Errorf("field ids = %v, want [3 1]", got.FieldIDs)
	}
}

func TestResultEventReplacesPrevious(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, score := range []float64{50, 75} {
		err := repo.AppendResultEvent(ctx, ResultEventData{
			RunID:     "run",
			SessionID: 9,
			FieldIDs:  []int64{1},
			TopScore:  score,
		})
		if err != nil {
			t.Fatalf("append score %v: %v", score, err)
		}
	}

	got, err := repo.CachedResult(ctx, 9)
	if err != nil {
		t.Fatalf("cached result: %v", err)
	}
	if got.TopScore != 75 {
		t.Errorf("top score = %v, want 75 (latest write wins)", got.TopScore)
	}
}
