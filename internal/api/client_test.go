package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boussole-app/boussole/internal/orientation"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, Token: "tok-123", Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c, srv
}

func TestListQuestions_FollowsPagination(t *testing.T) {
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/orientation/questions/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `{"count":3,"next":null,"previous":null,"results":[
				{"id":3,"text":"Rank these","category":"skills","question_type":"ranking","options":["X","Y","Z"]}]}`)
			return
		}
		fmt.Fprintf(w, `{"count":3,"next":"%s/orientation/questions/?page=2","previous":null,"results":[
			{"id":1,"text":"Pick one","category":"interests","question_type":"mcq","options":["A","B"]},
			{"id":2,"text":"Rate this","category":"values","question_type":"likert"}]}`, srv.URL)
	})
	c, s := newTestClient(t, mux)
	srv = s

	questions, err := c.ListQuestions(t.Context())
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, orientation.TypeSingleChoice, questions[0].Type)
	assert.Equal(t, []string{"A", "B"}, questions[0].Options)
	assert.Equal(t, orientation.TypeRatingScale, questions[1].Type)
	assert.Equal(t, int64(3), questions[2].ID)
}

func TestCreateSession_ConflictIsStructured(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"409 status", http.StatusConflict, `{"detail":"an active test already exists"}`},
		{"400 with code", http.StatusBadRequest, `{"detail":"an active test already exists","code":"active_session_exists"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/orientation/tests/start/", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			})
			c, _ := newTestClient(t, mux)

			_, err := c.CreateSession(t.Context())
			assert.ErrorIs(t, err, orientation.ErrActiveSessionExists)
		})
	}
}

func TestCreateSession_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orientation/tests/start/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		fmt.Fprint(w, `{"id":17,"is_completed":false,"started_at":"2026-03-01T10:00:00Z"}`)
	})
	c, _ := newTestClient(t, mux)

	sess, err := c.CreateSession(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(17), sess.ID)
	assert.False(t, sess.Completed)
}

func TestUpsertAnswer_SendsUpsertBody(t *testing.T) {
	var got map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/orientation/tests/17/submit-response/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"question":2,"answer":4}`)
	})
	c, _ := newTestClient(t, mux)

	err := c.UpsertAnswer(t.Context(), 17, 2, orientation.Rating(4))
	require.NoError(t, err)
	assert.Equal(t, float64(2), got["question_id"])
	assert.Equal(t, float64(4), got["answer"])
}

func TestUpsertAnswer_ErrorTranslation(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		body      string
		wantKind  string
	}{
		{"validation", http.StatusBadRequest, `{"detail":"answer does not match question type"}`, "validation"},
		{"server error", http.StatusBadGateway, ``, "transient"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/orientation/tests/1/submit-response/", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			})
			c, _ := newTestClient(t, mux)

			err := c.UpsertAnswer(t.Context(), 1, 1, orientation.Choice("A"))
			require.Error(t, err)

			var verr *orientation.ValidationError
			var terr *orientation.TransientError
			switch tc.wantKind {
			case "validation":
				assert.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Detail, "does not match")
			case "transient":
				assert.ErrorAs(t, err, &terr)
			}
		})
	}
}

func TestRecordedAnswers_ToleratesBareArray(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orientation/tests/9/responses/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"question":1,"answer":"A"},{"question":3,"answer":["Y","X","Z"]}]`)
	})
	c, _ := newTestClient(t, mux)

	answers, err := c.RecordedAnswers(t.Context(), 9)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, int64(1), answers[0].QuestionID)
	assert.Equal(t, "A", answers[0].Value)
	assert.Equal(t, int64(3), answers[1].QuestionID)
}

func TestSessionResult_MapsRecommendation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orientation/tests/5/result/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":5,"is_completed":true,"started_at":"2026-03-01T10:00:00Z",
			"completed_at":"2026-03-01T10:20:00Z",
			"recommendation":{"recommended_fields":[2,7],"compatibility_scores":{"2":0.91,"7":0.74},
			"justification":"strong fit for engineering","generated_at":"2026-03-01T10:20:01Z"}}`)
	})
	c, _ := newTestClient(t, mux)

	sess, err := c.SessionResult(t.Context(), 5)
	require.NoError(t, err)
	require.NotNil(t, sess.Recommendation)
	assert.Equal(t, []int64{2, 7}, sess.Recommendation.FieldIDs)
	assert.InDelta(t, 0.91, sess.Recommendation.Scores["2"], 0.001)
	assert.True(t, sess.Completed)
	require.NotNil(t, sess.CompletedAt)
}

func TestDo_NetworkFailureIsTransient(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.ListQuestions(t.Context())
	var terr *orientation.TransientError
	assert.True(t, errors.As(err, &terr), "error = %v, want TransientError", err)
}
