package orientation

import (
	"context"
	"errors"
	"testing"
)

func TestSubmit_StoreValidationRejectionIsInvalid(t *testing.T) {
	store := &fakeStore{
		upsertErrs: []error{&ValidationError{Detail: "answer does not match question type"}},
	}
	s := NewSubmitter(store)
	q := Question{ID: 1, Type: TypeSingleChoice, Options: []string{"A", "B"}}

	err := s.Submit(context.Background(), 1, q, Choice("A"))
	var serr *SubmitError
	if !errors.As(err, &serr) {
		t.Fatalf("Submit error = %v, want SubmitError", err)
	}
	if serr.Kind != SubmitInvalid {
		t.Errorf("Kind = %v, want SubmitInvalid", serr.Kind)
	}
	if serr.Retryable() {
		t.Error("validation rejection reported as retryable")
	}
}

func TestSubmit_TransportFailureIsTransient(t *testing.T) {
	store := &fakeStore{
		upsertErrs: []error{&TransientError{Err: errors.New("connection refused")}},
	}
	s := NewSubmitter(store)
	q := Question{ID: 2, Type: TypeRatingScale}

	err := s.Submit(context.Background(), 1, q, Rating(3))
	var serr *SubmitError
	if !errors.As(err, &serr) || !serr.Retryable() {
		t.Fatalf("Submit error = %v, want retryable SubmitError", err)
	}
}

func TestSubmit_LocalShapeCheckShortCircuits(t *testing.T) {
	store := &fakeStore{}
	s := NewSubmitter(store)
	q := Question{ID: 3, Type: TypeRanking, Options: []string{"X", "Y"}}

	err := s.Submit(context.Background(), 1, q, Ranking([]string{"X"}))
	var serr *SubmitError
	if !errors.As(err, &serr) || serr.Kind != SubmitInvalid {
		t.Fatalf("Submit error = %v, want invalid SubmitError", err)
	}
	if len(store.upserts) != 0 {
		t.Errorf("malformed value reached the store")
	}
}
