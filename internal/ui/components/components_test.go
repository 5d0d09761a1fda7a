package components

import (
	"strings"
	"testing"

	"github.com/abhisek/wordwise/internal/quiz"
)

func TestSentenceCardView(t *testing.T) {
	tests := []struct {
		name     string
		card     SentenceCard
		contains []string
		absent   []string
	}{
		{
			name:     "focused default",
			card:     SentenceCard{Number: 1, Text: "A _____ house.", Focused: true},
			contains: []string{"▸", "1.", "A _____ house."},
		},
		{
			name:     "disabled hides cursor",
			card:     SentenceCard{Number: 2, Text: "An eloquent speech.", Status: quiz.StatusCorrect, Disabled: true, Focused: true},
			contains: []string{"2.", "An eloquent speech.", "✓"},
			absent:   []string{"▸"},
		},
		{
			name:     "incorrect",
			card:     SentenceCard{Number: 3, Text: "He _____ ate.", Status: quiz.StatusIncorrect, Disabled: true},
			contains: []string{"✗"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.card.View()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("expected %q in %q", s, out)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(out, s) {
					t.Errorf("did not expect %q in %q", s, out)
				}
			}
		})
	}
}

func TestButtonView(t *testing.T) {
	out := NewButton("Next Word", "n", true).View()
	if !strings.Contains(out, "Next Word") || !strings.Contains(out, "(n)") {
		t.Fatalf("unexpected button: %q", out)
	}
}
