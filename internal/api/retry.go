package api

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/boussole-app/boussole/internal/orientation"
)

// RetryConfig configures backoff for retried reads.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns sensible backoff defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     5 * time.Second,
		Multiplier:  2.0,
	}
}

// RetryingClient decorates Client with retry on transient failures for the
// idempotent read calls only. Writes (start, submit, complete) pass through
// untouched: answer submission retry is the caller's decision, and the
// state machine reports transient submit failures for exactly that.
type RetryingClient struct {
	*Client
	cfg RetryConfig
}

var _ orientation.QuestionSource = (*RetryingClient)(nil)
var _ orientation.SessionStore = (*RetryingClient)(nil)

// WithRetry wraps a Client with read-side retry.
func WithRetry(c *Client, cfg RetryConfig) *RetryingClient {
	return &RetryingClient{Client: c, cfg: cfg}
}

func (r *RetryingClient) ListQuestions(ctx context.Context) ([]orientation.Question, error) {
	return retry(ctx, r.cfg, func() ([]orientation.Question, error) {
		return r.Client.ListQuestions(ctx)
	})
}

func (r *RetryingClient) ListSessions(ctx context.Context) ([]orientation.SessionSummary, error) {
	return retry(ctx, r.cfg, func() ([]orientation.SessionSummary, error) {
		return r.Client.ListSessions(ctx)
	})
}

func (r *RetryingClient) RecordedAnswers(ctx context.Context, sessionID int64) ([]orientation.Answer, error) {
	return retry(ctx, r.cfg, func() ([]orientation.Answer, error) {
		return r.Client.RecordedAnswers(ctx, sessionID)
	})
}

func (r *RetryingClient) SessionResult(ctx context.Context, sessionID int64) (orientation.Session, error) {
	return retry(ctx, r.cfg, func() (orientation.Session, error) {
		return r.Client.SessionResult(ctx, sessionID)
	})
}

// retry runs op, retrying transient failures with exponential backoff and
// jitter. Non-transient errors return immediately.
func retry[T any](ctx context.Context, cfg RetryConfig, op func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := range cfg.MaxAttempts {
		v, err := op()
		if err == nil {
			return v, nil
		}
		lastErr = err

		var transient *orientation.TransientError
		if !errors.As(err, &transient) {
			return zero, err
		}
		if attempt == cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, &orientation.TransientError{Err: ctx.Err()}
		case <-time.After(backoff(cfg, attempt)):
		}
	}

	return zero, lastErr
}

// backoff computes the wait before the next attempt, with ±20% jitter.
func backoff(cfg RetryConfig, attempt int) time.Duration {
	wait := float64(cfg.InitialWait) * math.Pow(cfg.Multiplier, float64(attempt))
	if wait > float64(cfg.MaxWait) {
		wait = float64(cfg.MaxWait)
	}
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
