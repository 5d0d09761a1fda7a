package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordwise/internal/quiz"
	"github.com/abhisek/wordwise/internal/ui/theme"
)

// SentenceCard renders one candidate sentence. Status and Disabled are
// independent: a revealed card can be both correct and disabled.
type SentenceCard struct {
	Number   int
	Text     string
	Status   quiz.Status
	Disabled bool
	Focused  bool
	Width    int
}

// View renders the card.
func (c SentenceCard) View() string {
	style := cardStyle(c.Status)
	if c.Focused && !c.Disabled && c.Status == quiz.StatusDefault {
		style = theme.CardFocused
	}
	if c.Width > 0 {
		style = style.Width(c.Width)
	}

	prefix := "  "
	if c.Focused && !c.Disabled {
		prefix = "▸ "
	}

	label := fmt.Sprintf("%s%d.  %s%s", prefix, c.Number, c.Text, statusMark(c.Status))
	return style.Render(label)
}

func cardStyle(s quiz.Status) lipgloss.Style {
	switch s {
	case quiz.StatusSelected:
		return theme.CardSelected
	case quiz.StatusCorrect:
		return theme.CardCorrect
	case quiz.StatusIncorrect:
		return theme.CardIncorrect
	case quiz.StatusDisabled:
		return theme.CardDisabled
	default:
		return theme.CardDefault
	}
}

func statusMark(s quiz.Status) string {
	switch s {
	case quiz.StatusCorrect:
		return "  ✓"
	case quiz.StatusIncorrect, quiz.StatusSelected:
		return "  ✗"
	default:
		return ""
	}
}
