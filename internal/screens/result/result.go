package result

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boussole-app/boussole/internal/orientation"
	"github.com/boussole-app/boussole/internal/router"
	"github.com/boussole-app/boussole/internal/store"
	"github.com/boussole-app/boussole/internal/ui/components"
	"github.com/boussole-app/boussole/internal/ui/layout"
	"github.com/boussole-app/boussole/internal/ui/theme"
)

type resultLoadedMsg struct {
	Recommendation *orientation.Recommendation
	Cached         *store.ResultRecord // fallback when the backend is unreachable
	Err            error
}

// ResultScreen shows the recommendation attached to a completed session.
// The recommendation is computed server-side; this screen only fetches
// and displays it, caching a copy in the local journal.
type ResultScreen struct {
	sessions  orientation.SessionStore
	events    store.EventRepo
	runID     string
	sessionID int64
	preloaded *orientation.Session

	spin   components.Spinner
	rec    *orientation.Recommendation
	cached *store.ResultRecord
	loaded bool
	errMsg string
}

var _ router.Screen = (*ResultScreen)(nil)
var _ router.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. preloaded, when non-nil, is a session just
// returned by completion and may already carry the recommendation.
func New(sessions orientation.SessionStore, events store.EventRepo, runID string, sessionID int64, preloaded *orientation.Session) *ResultScreen {
	return &ResultScreen{
		sessions:  sessions,
		events:    events,
		runID:     runID,
		sessionID: sessionID,
		preloaded: preloaded,
		spin:      components.NewSpinner(),
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return tea.Batch(s.spin.Init(), s.fetch())
}

func (s *ResultScreen) Title() string {
	return "Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultScreen) fetch() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		if s.preloaded != nil && s.preloaded.Recommendation != nil {
			return resultLoadedMsg{Recommendation: s.preloaded.Recommendation}
		}

		session, err := s.sessions.SessionResult(ctx, s.sessionID)
		if err == nil && session.Recommendation != nil {
			return resultLoadedMsg{Recommendation: session.Recommendation}
		}

		// Backend unreachable or result not ready; try the local journal.
		if s.events != nil {
			cached, cacheErr := s.events.CachedResult(ctx, s.sessionID)
			if cacheErr == nil && cached != nil {
				return resultLoadedMsg{Cached: cached}
			}
		}

		if err != nil {
			return resultLoadedMsg{Err: err}
		}
		return resultLoadedMsg{Err: fmt.Errorf("no result available for session %d", s.sessionID)}
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.rec = msg.Recommendation
		s.cached = msg.Cached
		if s.rec != nil {
			s.journal(s.rec)
		}
		return s, nil

	case tea.KeyMsg:
		return s, nil
	}

	var cmd tea.Cmd
	s.spin, cmd = s.spin.Update(msg)
	return s, cmd
}

// journal caches the fetched recommendation so it survives offline runs.
func (s *ResultScreen) journal(rec *orientation.Recommendation) {
	if s.events == nil {
		return
	}
	var top float64
	for _, score := range rec.Scores {
		if score > top {
			top = score
		}
	}
	_ = s.events.AppendResultEvent(context.Background(), store.ResultEventData{
		RunID:         s.runID,
		SessionID:     s.sessionID,
		FieldIDs:      rec.FieldIDs,
		TopScore:      top,
		Justification: rec.Justification,
	})
}

func (s *ResultScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  " + s.spin.View() + " Fetching your result...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\nCould not fetch the result.\n\n%s",
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.errMsg)))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Your orientation result"))
	b.WriteString("\n\n")

	if s.rec != nil {
		b.WriteString(s.renderRecommendation(width, s.rec))
	} else if s.cached != nil {
		b.WriteString(s.renderCached(width, s.cached))
	}

	return b.String()
}

func (s *ResultScreen) renderRecommendation(width int, rec *orientation.Recommendation) string {
	var b strings.Builder

	if len(rec.FieldIDs) > 0 {
		ids := make([]string, len(rec.FieldIDs))
		for i, id := range rec.FieldIDs {
			ids[i] = fmt.Sprintf("#%d", id)
		}
		line := "Recommended fields: " + strings.Join(ids, ", ")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line)))
		b.WriteString("\n\n")
	}

	if len(rec.Scores) > 0 {
		type scored struct {
			name  string
			score float64
		}
		rows := make([]scored, 0, len(rec.Scores))
		for name, score := range rec.Scores {
			rows = append(rows, scored{name, score})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].score > rows[j].score })

		var table strings.Builder
		for _, row := range rows {
			bar := components.NewProgressBar(
				fmt.Sprintf("%-20s", row.name), row.score/100, false, 50)
			table.WriteString(bar.View())
			table.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %.0f", row.score)))
			table.WriteString("\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, table.String()))
		b.WriteString("\n")
	}

	if rec.Justification != "" {
		just := lipgloss.NewStyle().
			Width(minInt(width-8, 70)).
			Foreground(theme.Text).
			Render(rec.Justification)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, just))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *ResultScreen) renderCached(width int, cached *store.ResultRecord) string {
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("Showing a locally saved copy from %s",
			cached.RecordedAt.Format("Jan 02, 2006")))))
	b.WriteString("\n\n")

	if len(cached.FieldIDs) > 0 {
		ids := make([]string, len(cached.FieldIDs))
		for i, id := range cached.FieldIDs {
			ids[i] = fmt.Sprintf("#%d", id)
		}
		line := "Recommended fields: " + strings.Join(ids, ", ")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line)))
		b.WriteString("\n\n")
	}

	if cached.Justification != "" {
		just := lipgloss.NewStyle().
			Width(minInt(width-8, 70)).
			Foreground(theme.Text).
			Render(cached.Justification)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, just))
		b.WriteString("\n")
	}

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
