package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/wordwise/internal/quiz"
	"github.com/abhisek/wordwise/internal/ui/components"
	"github.com/abhisek/wordwise/internal/ui/layout"
	"github.com/abhisek/wordwise/internal/ui/theme"
)

const maxCardWidth = 76

func (s *QuizScreen) View(width, height int) string {
	var body string
	switch s.session.Phase() {
	case qz.PhaseLoading:
		body = s.viewLoading()
	case qz.PhaseError:
		body = s.viewError(width)
	default:
		body = s.viewQuestion(width, height)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s *QuizScreen) viewLoading() string {
	spin := lipgloss.NewStyle().Foreground(theme.Primary).Render(s.spinner.View())
	return spin + " " + theme.Hint.Render("Fetching a new word...")
}

func (s *QuizScreen) viewError(width int) string {
	msg := theme.ErrorText.Width(cardWidth(width)).Render(s.session.ErrorMessage())
	btn := components.NewButton("Try again", "r", true).View()
	return lipgloss.JoinVertical(lipgloss.Center, msg, "", btn)
}

func (s *QuizScreen) viewQuestion(width, height int) string {
	q := s.session.Question()
	if q == nil {
		return ""
	}
	cw := cardWidth(width)
	compact := layout.IsCompactHeight(height)

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Which sentence uses the word correctly?"))
	b.WriteString("\n")
	if !compact {
		b.WriteString("\n")
	}
	b.WriteString(theme.Word.Render(q.Word))
	b.WriteString("\n\n")

	disabled := s.session.IsDisabled()
	for i := range q.Sentences {
		card := components.SentenceCard{
			Number:   i + 1,
			Text:     s.session.DisplaySentence(i),
			Status:   s.session.StatusOf(i),
			Disabled: disabled,
			Focused:  i == s.cursor,
			Width:    cw,
		}
		b.WriteString(card.View())
		b.WriteString("\n")
	}

	if fb := s.viewFeedback(cw); fb != "" {
		b.WriteString("\n")
		b.WriteString(fb)
		b.WriteString("\n")
	}

	if s.session.CanRestart() {
		b.WriteString("\n")
		b.WriteString(components.NewButton("Next word", "n", true).View())
	}

	return lipgloss.NewStyle().Width(cw).Render(b.String())
}

func (s *QuizScreen) viewFeedback(width int) string {
	text := s.session.FeedbackText()
	if text == "" {
		return ""
	}
	switch s.session.FeedbackKind() {
	case qz.FeedbackSolved:
		return theme.FeedbackSuccess.Width(width).Render(text)
	case qz.FeedbackRetry:
		return theme.FeedbackRetry.Width(width).Render(text)
	default:
		return theme.FeedbackReveal.Width(width).Render(text)
	}
}

func cardWidth(width int) int {
	w := width - 4
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}
