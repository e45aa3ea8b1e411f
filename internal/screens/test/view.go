package test

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/boussole-app/boussole/internal/orientation"
	"github.com/boussole-app/boussole/internal/ui/components"
	"github.com/boussole-app/boussole/internal/ui/theme"
)

func (s *TestScreen) View(width, height int) string {
	switch s.controller.CurrentState() {
	case orientation.StateLoading:
		return s.renderLoading(width, "Preparing your test...")
	case orientation.StateFailed:
		return renderFailure(width, s.controller.FailureReason())
	case orientation.StateSubmitting:
		return s.renderLoading(width, "Saving your answer...")
	case orientation.StateFinishing:
		return s.renderLoading(width, "Finishing the test...")
	case orientation.StateCompleted:
		return s.renderLoading(width, "Done!")
	}
	return s.renderQuestion(width)
}

func (s *TestScreen) renderLoading(width int, label string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  " + s.spin.View() + " " + label)
}

func (s *TestScreen) renderQuestion(width int) string {
	q, ok := s.controller.CurrentQuestion()
	if !ok {
		return ""
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", q.Category))

	answered := ""
	if s.controller.IsAnswered(q.ID) {
		answered = theme.Answered.Render("answered  ")
	}
	infoRight := answered + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.controller.Index()+1, s.controller.TotalQuestions()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", s.controller.ProgressFraction(), true, width-8)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if s.controller.Resuming() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Resuming where you left off"))
		b.WriteString("\n\n")
	}

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	var input string
	switch q.Type {
	case orientation.TypeSingleChoice:
		input = s.choice.View()
	case orientation.TypeRatingScale:
		input = s.scale.View()
	case orientation.TypeRanking:
		input = s.ranking.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, input))

	if s.banner != "" {
		style := theme.Warning
		if !s.canRetry {
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(s.banner)))
	}

	return b.String()
}

// renderFailure explains why the test could not start and what to do.
func renderFailure(width int, reason error) string {
	msg := "Something went wrong."
	detail := ""
	if reason != nil {
		detail = reason.Error()
	}

	var confErr *orientation.ConfigurationError
	var concErr *orientation.ConcurrentSessionError
	switch {
	case errors.As(reason, &confErr):
		msg = "The test is not available right now."
	case errors.As(reason, &concErr):
		msg = "Another device started a test at the same time. Try again to pick it up."
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n%s\n\n%s\n\nPress any key to go back.",
			msg,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
}
