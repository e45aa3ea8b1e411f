package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boussole-app/boussole/internal/ui/theme"
)

// Spinner wraps bubbles/spinner with Boussole styling.
type Spinner struct {
	Model spinner.Model
}

// NewSpinner creates a new styled spinner.
func NewSpinner() Spinner {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Spinner{Model: sp}
}

// Init returns the tick command that starts the animation.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update handles tick messages.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the spinner frame.
func (s Spinner) View() string {
	return s.Model.View()
}
