package quiz

import qz "github.com/abhisek/wordwise/internal/quiz"

// questionResolvedMsg carries the result of a fetch back to the screen.
type questionResolvedMsg struct {
	Outcome qz.Outcome
}
