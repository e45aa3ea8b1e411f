package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boussole-app/boussole/internal/orientation"
	"github.com/boussole-app/boussole/internal/router"
	"github.com/boussole-app/boussole/internal/screens/history"
	"github.com/boussole-app/boussole/internal/screens/test"
	"github.com/boussole-app/boussole/internal/store"
	"github.com/boussole-app/boussole/internal/ui/components"
	"github.com/boussole-app/boussole/internal/ui/theme"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	menu       components.Menu
	unfinished bool
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(source orientation.QuestionSource, sessions orientation.SessionStore, events store.EventRepo, runID string) *HomeScreen {
	// Peek at the journal so the menu can hint at an unfinished session.
	// The resolver re-checks against the backend when the test starts.
	var unfinished bool
	if events != nil {
		if records, err := events.SessionHistory(context.Background(), 10); err == nil {
			for _, rec := range records {
				if !rec.Completed {
					unfinished = true
					break
				}
			}
		}
	}

	startLabel := "START TEST"
	if unfinished {
		startLabel = "CONTINUE TEST"
	}

	items := []components.MenuItem{
		{Label: startLabel, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: test.New(source, sessions, events, runID, 0),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: history.New(source, sessions, events, runID),
				}
			}
		}, Disabled: events == nil},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		unfinished: unfinished,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderBanner(width))

	subtitle := "Find the field of study that fits you"
	if h.unfinished {
		subtitle = "You have an unfinished test. Pick up where you left off."
	}
	sections = append(sections, theme.Subtitle.Width(width).Render(subtitle))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderBanner(width int) string {
	banner := strings.Join([]string{
		`  ____                                  _      `,
		` | __ )  ___  _   _ ___ ___  ___  _ __ | | ___ `,
		` |  _ \ / _ \| | | / __/ __|/ _ \| '_ \| |/ _ \`,
		` | |_) | (_) | |_| \__ \__ \ (_) | | | | |  __/`,
		` |____/ \___/ \__,_|___/___/\___/|_| |_|_|\___|`,
	}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(banner)
}
