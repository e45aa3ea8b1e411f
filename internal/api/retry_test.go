package api

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boussole-app/boussole/internal/orientation"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_TransientReadEventuallySucceeds(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/orientation/questions/", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"count":1,"next":null,"results":[{"id":1,"text":"q","category":"c","question_type":"likert"}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)
	rc := WithRetry(c, fastRetry())

	questions, err := rc.ListQuestions(t.Context())
	require.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/orientation/my-tests/", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)
	rc := WithRetry(c, fastRetry())

	_, err = rc.ListSessions(t.Context())
	var terr *orientation.TransientError
	assert.ErrorAs(t, err, &terr)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetry_NonTransientReturnsImmediately(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/orientation/tests/2/responses/", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"not your session"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)
	rc := WithRetry(c, fastRetry())

	_, err = rc.RecordedAnswers(t.Context(), 2)
	var verr *orientation.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetry_WritesAreNeverRetried(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/orientation/tests/1/submit-response/", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)
	rc := WithRetry(c, fastRetry())

	err = rc.UpsertAnswer(t.Context(), 1, 1, orientation.Choice("A"))
	var terr *orientation.TransientError
	assert.ErrorAs(t, err, &terr)
	assert.Equal(t, int32(1), calls.Load(), "writes must pass through without retry")
}
