package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boussole-app/boussole/internal/ui/theme"
)

// Scale is a horizontal rating picker over a fixed integer range.
type Scale struct {
	Min      int
	Max      int
	Selected int
}

// NewScale creates a scale picker. recorded is the previously submitted
// rating, or 0 when the question is unanswered.
func NewScale(min, max, recorded int) Scale {
	selected := (min + max) / 2
	if recorded >= min && recorded <= max {
		selected = recorded
	}
	return Scale{
		Min:      min,
		Max:      max,
		Selected: selected,
	}
}

// Init returns nil.
func (s Scale) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Number keys jump directly.
func (s Scale) Update(msg tea.Msg) (Scale, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if s.Selected > s.Min {
			s.Selected--
		}
	case "right", "l":
		if s.Selected < s.Max {
			s.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			n := int(key[0] - '0')
			if n >= s.Min && n <= s.Max {
				s.Selected = n
			}
		}
	}

	return s, nil
}

// Value returns the currently highlighted rating.
func (s Scale) Value() int {
	return s.Selected
}

// View renders the scale with anchor labels.
func (s Scale) View() string {
	var cells []string
	for n := s.Min; n <= s.Max; n++ {
		cell := fmt.Sprintf(" %d ", n)
		if n == s.Selected {
			cells = append(cells, lipgloss.NewStyle().
				Background(theme.Primary).
				Foreground(theme.Text).
				Bold(true).
				Render(cell))
		} else {
			cells = append(cells, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(cell))
		}
	}

	row := strings.Join(cells, " ")

	anchors := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(fmt.Sprintf("%d = strongly disagree   %d = strongly agree", s.Min, s.Max))

	return row + "\n\n" + anchors
}
