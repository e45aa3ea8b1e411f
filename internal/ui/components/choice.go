package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boussole-app/boussole/internal/ui/theme"
)

// Choice is a single-choice option selector. There is no right answer to
// reveal, so a previously recorded pick is simply highlighted.
type Choice struct {
	Options  []string
	Selected int
}

// NewChoice creates a new choice selector. recorded is the previously
// submitted option, or empty when the question is unanswered.
func NewChoice(options []string, recorded string) Choice {
	selected := 0
	for i, opt := range options {
		if recorded != "" && opt == recorded {
			selected = i
			break
		}
	}
	return Choice{
		Options:  options,
		Selected: selected,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Number keys jump directly.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(c.Options) {
				c.Selected = idx
			}
		}
	}

	return c, nil
}

// Value returns the currently highlighted option.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the options list.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
