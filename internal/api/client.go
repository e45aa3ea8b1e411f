package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/boussole-app/boussole/internal/orientation"
)

// Client talks to the orientation backend over its REST surface. It
// implements orientation.QuestionSource and orientation.SessionStore,
// translating every transport outcome into the domain error taxonomy so
// the state machine never sees a raw HTTP error.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ orientation.QuestionSource = (*Client)(nil)
var _ orientation.SessionStore = (*Client)(nil)

// NewClient creates a Client for the given config.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Wire payloads, field names per the backend's serializers.

type questionPayload struct {
	ID           int64    `json:"id"`
	Text         string   `json:"text"`
	Category     string   `json:"category"`
	QuestionType string   `json:"question_type"`
	Options      []string `json:"options"`
}

type recommendationPayload struct {
	RecommendedFields   []int64            `json:"recommended_fields"`
	CompatibilityScores map[string]float64 `json:"compatibility_scores"`
	Justification       string             `json:"justification"`
	GeneratedAt         time.Time          `json:"generated_at"`
}

type sessionPayload struct {
	ID             int64                  `json:"id"`
	IsCompleted    bool                   `json:"is_completed"`
	StartedAt      time.Time              `json:"started_at"`
	CompletedAt    *time.Time             `json:"completed_at"`
	Recommendation *recommendationPayload `json:"recommendation"`
}

type responsePayload struct {
	Question int64           `json:"question"`
	Answer   json.RawMessage `json:"answer"`
}

// paginated is the backend's list envelope.
type paginated struct {
	Count   int             `json:"count"`
	Next    *string         `json:"next"`
	Results json.RawMessage `json:"results"`
}

type errorPayload struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// ListQuestions fetches the full ordered question set, following pagination
// links until exhausted. Order is preserved as served.
func (c *Client) ListQuestions(ctx context.Context) ([]orientation.Question, error) {
	var questions []orientation.Question
	url := c.baseURL + "/orientation/questions/"
	for url != "" {
		var batch []questionPayload
		next, err := c.getPage(ctx, url, &batch)
		if err != nil {
			return nil, err
		}
		for _, p := range batch {
			questions = append(questions, orientation.Question{
				ID:       p.ID,
				Text:     p.Text,
				Category: p.Category,
				Type:     orientation.QuestionType(p.QuestionType),
				Options:  p.Options,
			})
		}
		url = next
	}
	return questions, nil
}

// ListSessions fetches every session belonging to the authenticated person.
func (c *Client) ListSessions(ctx context.Context) ([]orientation.SessionSummary, error) {
	var summaries []orientation.SessionSummary
	url := c.baseURL + "/orientation/my-tests/"
	for url != "" {
		var batch []sessionPayload
		next, err := c.getPage(ctx, url, &batch)
		if err != nil {
			return nil, err
		}
		for _, p := range batch {
			summaries = append(summaries, orientation.SessionSummary{
				ID:        p.ID,
				Completed: p.IsCompleted,
				StartedAt: p.StartedAt,
			})
		}
		url = next
	}
	return summaries, nil
}

// CreateSession starts a new session. The backend's single-active-session
// invariant is reported as orientation.ErrActiveSessionExists.
func (c *Client) CreateSession(ctx context.Context) (orientation.Session, error) {
	var p sessionPayload
	if err := c.do(ctx, http.MethodPost, "/orientation/tests/start/", struct{}{}, &p); err != nil {
		return orientation.Session{}, err
	}
	return toSession(p), nil
}

// RecordedAnswers lists the answers already durable for a session.
func (c *Client) RecordedAnswers(ctx context.Context, sessionID int64) ([]orientation.Answer, error) {
	var batch []responsePayload
	url := fmt.Sprintf("%s/orientation/tests/%d/responses/", c.baseURL, sessionID)
	for url != "" {
		var page []responsePayload
		next, err := c.getPage(ctx, url, &page)
		if err != nil {
			return nil, err
		}
		batch = append(batch, page...)
		url = next
	}

	answers := make([]orientation.Answer, 0, len(batch))
	for _, p := range batch {
		var value any
		if err := json.Unmarshal(p.Answer, &value); err != nil {
			return nil, &orientation.TransientError{Err: fmt.Errorf("malformed recorded answer for question %d: %w", p.Question, err)}
		}
		answers = append(answers, orientation.Answer{QuestionID: p.Question, Value: value})
	}
	return answers, nil
}

// UpsertAnswer records one answer. The backend overwrites any prior answer
// for the same (session, question) pair.
func (c *Client) UpsertAnswer(ctx context.Context, sessionID, questionID int64, value orientation.Value) error {
	body := map[string]any{
		"question_id": questionID,
		"answer":      value,
	}
	path := fmt.Sprintf("/orientation/tests/%d/submit-response/", sessionID)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// CompleteSession marks the session complete and returns it with the
// recommendation attached once computed.
func (c *Client) CompleteSession(ctx context.Context, sessionID int64) (orientation.Session, error) {
	var p sessionPayload
	path := fmt.Sprintf("/orientation/tests/%d/complete/", sessionID)
	if err := c.do(ctx, http.MethodPost, path, struct{}{}, &p); err != nil {
		return orientation.Session{}, err
	}
	return toSession(p), nil
}

// SessionResult fetches a completed session with its recommendation.
func (c *Client) SessionResult(ctx context.Context, sessionID int64) (orientation.Session, error) {
	var p sessionPayload
	path := fmt.Sprintf("/orientation/tests/%d/result/", sessionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &p); err != nil {
		return orientation.Session{}, err
	}
	return toSession(p), nil
}

func toSession(p sessionPayload) orientation.Session {
	s := orientation.Session{
		ID:          p.ID,
		Completed:   p.IsCompleted,
		StartedAt:   p.StartedAt,
		CompletedAt: p.CompletedAt,
	}
	if p.Recommendation != nil {
		s.Recommendation = &orientation.Recommendation{
			FieldIDs:      p.Recommendation.RecommendedFields,
			Scores:        p.Recommendation.CompatibilityScores,
			Justification: p.Recommendation.Justification,
			GeneratedAt:   p.Recommendation.GeneratedAt,
		}
	}
	return s
}

// getPage fetches one page of a list endpoint into out and returns the next
// page URL, empty when exhausted. Tolerates both the paginated envelope and
// a bare JSON array.
func (c *Client) getPage(ctx context.Context, url string, out any) (string, error) {
	var raw json.RawMessage
	if err := c.doURL(ctx, http.MethodGet, url, nil, &raw); err != nil {
		return "", err
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(raw, out); err != nil {
			return "", &orientation.TransientError{Err: fmt.Errorf("decode list: %w", err)}
		}
		return "", nil
	}

	var env paginated
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", &orientation.TransientError{Err: fmt.Errorf("decode page: %w", err)}
	}
	if err := json.Unmarshal(env.Results, out); err != nil {
		return "", &orientation.TransientError{Err: fmt.Errorf("decode page results: %w", err)}
	}
	if env.Next != nil {
		return *env.Next, nil
	}
	return "", nil
}

// do issues a request against a path relative to the base URL.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	return c.doURL(ctx, method, c.baseURL+path, body, out)
}

// doURL issues a request and translates the outcome: transport failures and
// 5xx become TransientError, the active-session conflict becomes
// ErrActiveSessionExists, and other client errors become ValidationError.
func (c *Client) doURL(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &orientation.ValidationError{Detail: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return &orientation.TransientError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &orientation.TransientError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode/100 == 2 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return &orientation.TransientError{Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil
	}

	var apiErr errorPayload
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	_ = json.Unmarshal(raw, &apiErr)

	switch {
	case res.StatusCode == http.StatusConflict,
		apiErr.Code == "active_session_exists":
		return fmt.Errorf("%s: %w", res.Status, orientation.ErrActiveSessionExists)
	case res.StatusCode/100 == 4:
		detail := apiErr.Detail
		if detail == "" {
			detail = res.Status
		}
		return &orientation.ValidationError{Detail: detail}
	default:
		return &orientation.TransientError{Err: fmt.Errorf("%s %s: %s", method, url, res.Status)}
	}
}
