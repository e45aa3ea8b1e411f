package orientation

import (
	"context"
	"errors"
)

// Submitter serializes one answer at a time to the session store. The
// controller's Submitting state guarantees a single in-flight call per
// instance; this type only classifies outcomes. The store upserts, so
// repeated submission of the same (session, question) pair is safe.
type Submitter struct {
	store SessionStore
}

// NewSubmitter creates a Submitter writing through the given store.
func NewSubmitter(store SessionStore) *Submitter {
	return &Submitter{store: store}
}

// Submit validates the value's shape locally, then upserts it. Failures are
// always a *SubmitError: Invalid for shape or store-side validation
// rejections, Transient for anything the caller may retry.
func (s *Submitter) Submit(ctx context.Context, sessionID int64, q Question, v Value) error {
	if err := ValidateValue(q, v); err != nil {
		return &SubmitError{Kind: SubmitInvalid, Err: err}
	}

	if err := s.store.UpsertAnswer(ctx, sessionID, q.ID, v); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return &SubmitError{Kind: SubmitInvalid, Err: verr}
		}
		return &SubmitError{Kind: SubmitTransient, Err: err}
	}
	return nil
}
