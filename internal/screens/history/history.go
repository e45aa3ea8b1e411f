package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boussole-app/boussole/internal/orientation"
	"github.com/boussole-app/boussole/internal/router"
	"github.com/boussole-app/boussole/internal/screens/result"
	"github.com/boussole-app/boussole/internal/screens/test"
	"github.com/boussole-app/boussole/internal/store"
	"github.com/boussole-app/boussole/internal/ui/layout"
	"github.com/boussole-app/boussole/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []store.SessionHistoryRecord
	Err     error
}

// HistoryScreen lists sessions seen by this client, from the local
// journal. Enter resumes an unfinished session or opens a finished one's
// result.
type HistoryScreen struct {
	source   orientation.QuestionSource
	sessions orientation.SessionStore
	events   store.EventRepo
	runID    string

	records  []store.SessionHistoryRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ router.Screen = (*HistoryScreen)(nil)
var _ router.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(source orientation.QuestionSource, sessions orientation.SessionStore, events store.EventRepo, runID string) *HistoryScreen {
	return &HistoryScreen{
		source:   source,
		sessions: sessions,
		events:   events,
		runID:    runID,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.events == nil {
			return historyLoadedMsg{Err: errors.New("local journal unavailable")}
		}
		records, err := s.events.SessionHistory(context.Background(), 50)
		return historyLoadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s.open()
		}
	}
	return s, nil
}

// open resumes an unfinished session or shows a finished one's result.
func (s *HistoryScreen) open() (router.Screen, tea.Cmd) {
	if s.selected < 0 || s.selected >= len(s.records) {
		return s, nil
	}
	rec := s.records[s.selected]

	if rec.Completed {
		screen := result.New(s.sessions, s.events, s.runID, rec.SessionID, nil)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: screen}
		}
	}

	screen := test.New(s.source, s.sessions, s.events, s.runID, rec.SessionID)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: screen}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Take the test!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		dateStr := rec.StartedAt.Format("Jan 02, 2006")

		status := "in progress"
		statusStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
		if rec.Completed {
			status = "completed"
			statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%sSession #%d  %s  %d/%d answered  ",
			prefix, rec.SessionID, dateStr, rec.Answered, rec.Total)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)+statusStyle.Render(status)))
		b.WriteString("\n")
	}

	return b.String()
}
