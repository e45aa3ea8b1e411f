package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boussole-app/boussole/internal/ui/theme"
)

// Ranking lets the user order a list of options. Space grabs the item
// under the cursor; while grabbed, up/down moves it instead of the cursor.
type Ranking struct {
	Order   []string
	Cursor  int
	Grabbed bool
}

// NewRanking creates a ranking component. recorded is a previously
// submitted ordering; it is used only when it is a permutation of options.
func NewRanking(options, recorded []string) Ranking {
	order := make([]string, len(options))
	copy(order, options)
	if isPermutation(options, recorded) {
		copy(order, recorded)
	}
	return Ranking{Order: order}
}

func isPermutation(options, candidate []string) bool {
	if len(candidate) != len(options) {
		return false
	}
	seen := make(map[string]int, len(options))
	for _, o := range options {
		seen[o]++
	}
	for _, c := range candidate {
		if seen[c] == 0 {
			return false
		}
		seen[c]--
	}
	return true
}

// Init returns nil.
func (r Ranking) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and item movement.
func (r Ranking) Update(msg tea.Msg) (Ranking, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.Grabbed {
			if r.Cursor > 0 {
				r.Order[r.Cursor], r.Order[r.Cursor-1] = r.Order[r.Cursor-1], r.Order[r.Cursor]
				r.Cursor--
			}
		} else if r.Cursor > 0 {
			r.Cursor--
		}
	case "down", "j":
		if r.Grabbed {
			if r.Cursor < len(r.Order)-1 {
				r.Order[r.Cursor], r.Order[r.Cursor+1] = r.Order[r.Cursor+1], r.Order[r.Cursor]
				r.Cursor++
			}
		} else if r.Cursor < len(r.Order)-1 {
			r.Cursor++
		}
	case "space":
		r.Grabbed = !r.Grabbed
	}

	return r, nil
}

// Value returns the current ordering, most preferred first.
func (r Ranking) Value() []string {
	out := make([]string, len(r.Order))
	copy(out, r.Order)
	return out
}

// View renders the ordered list.
func (r Ranking) View() string {
	var s string
	for i, opt := range r.Order {
		prefix := "  "
		if i == r.Cursor {
			if r.Grabbed {
				prefix = "◆ "
			} else {
				prefix = "▸ "
			}
		}
		line := fmt.Sprintf("%s%d. %s", prefix, i+1, opt)

		switch {
		case i == r.Cursor && r.Grabbed:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == r.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	s += "\n" + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("Space grabs an item, arrows move it")

	return s
}
