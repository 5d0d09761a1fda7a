package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/wordwise/internal/vocab"
)

// MaxAttempts is the number of guesses allowed per question.
const MaxAttempts = 2

// noSelection marks that no sentence has been picked this round.
const noSelection = -1

// Round identifies one fetch-and-play cycle. Results carrying an older
// round are stale and are dropped.
type Round uint64

// Supplier is the question source a session plays from.
type Supplier interface {
	RequestQuestion(ctx context.Context) (*vocab.Question, error)
}

// Outcome is the result of a fetch issued for a given round.
type Outcome struct {
	Round    Round
	Question *vocab.Question
	Err      error
}

// Fetch asks sup for a question on behalf of round. It does not touch any
// session so it can run off the UI goroutine; pass the result to Apply.
func Fetch(ctx context.Context, sup Supplier, round Round) Outcome {
	q, err := sup.RequestQuestion(ctx)
	return Outcome{Round: round, Question: q, Err: err}
}

// Session is the state of one game. It is not safe for concurrent use;
// all mutation happens on the event loop that owns it.
type Session struct {
	phase        Phase
	question     *vocab.Question
	selected     int
	attemptsLeft int
	errMsg       string
	round        Round
}

// NewSession returns a session in the loading phase. Call Restart to obtain
// the round for the first fetch.
func NewSession() *Session {
	return &Session{phase: PhaseLoading, selected: noSelection}
}

// Restart clears all round state, enters the loading phase and returns the
// new round id that the caller must fetch for. It is valid from any phase;
// interfaces should offer it only when CanRestart is true so at most one
// fetch is outstanding.
func (s *Session) Restart() Round {
	s.round++
	s.phase = PhaseLoading
	s.question = nil
	s.selected = noSelection
	s.attemptsLeft = 0
	s.errMsg = ""
	log.Debug().Uint64("round", uint64(s.round)).Msg("round started")
	return s.round
}

// CanRestart reports whether the round has ended.
func (s *Session) CanRestart() bool {
	return s.phase == PhaseShowingResult || s.phase == PhaseError
}

// Apply moves a loading session to playing or error. Outcomes for any
// other round, or arriving outside the loading phase, are discarded and
// Apply returns false.
func (s *Session) Apply(o Outcome) bool {
	if o.Round != s.round || s.phase != PhaseLoading {
		log.Debug().
			Uint64("round", uint64(o.Round)).
			Uint64("current", uint64(s.round)).
			Msg("dropped stale question result")
		return false
	}

	if o.Err != nil || o.Question == nil {
		s.phase = PhaseError
		s.errMsg = errorText(o.Err)
		log.Warn().Err(o.Err).Uint64("round", uint64(s.round)).Msg("question supply failed")
		return true
	}

	s.phase = PhasePlaying
	s.question = o.Question
	s.attemptsLeft = MaxAttempts
	s.selected = noSelection
	log.Debug().Uint64("round", uint64(s.round)).Str("word", o.Question.Word).Msg("round playing")
	return true
}

// Select evaluates a guess. It is a no-op outside the playing phase or for
// an index that does not name a sentence.
func (s *Session) Select(i int) {
	if s.phase != PhasePlaying || s.question == nil {
		return
	}
	if i < 0 || i >= len(s.question.Sentences) {
		return
	}

	s.selected = i
	if i == s.question.CorrectIndex {
		s.phase = PhaseShowingResult
		return
	}

	s.attemptsLeft--
	if s.attemptsLeft <= 0 {
		s.attemptsLeft = 0
		s.phase = PhaseShowingResult
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Round returns the current round id.
func (s *Session) Round() Round { return s.round }

// Question returns the current question, or nil while loading or on error.
func (s *Session) Question() *vocab.Question { return s.question }

// AttemptsLeft returns the remaining guesses for the current question.
func (s *Session) AttemptsLeft() int { return s.attemptsLeft }

// Selected returns the last selected index and whether one exists.
func (s *Session) Selected() (int, bool) {
	return s.selected, s.selected != noSelection
}

// ErrorMessage returns the failure text in the error phase, else "".
func (s *Session) ErrorMessage() string { return s.errMsg }

// IsDisabled reports whether sentences accept selection. It is independent
// of StatusOf: a sentence can be both correct and disabled.
func (s *Session) IsDisabled() bool { return s.phase != PhasePlaying }

// StatusOf derives the display status of sentence i.
func (s *Session) StatusOf(i int) Status {
	if s.question == nil {
		return StatusDisabled
	}

	switch s.phase {
	case PhasePlaying:
		if i == s.selected && s.attemptsLeft < MaxAttempts {
			return StatusSelected
		}
		return StatusDefault
	case PhaseShowingResult:
		switch i {
		case s.question.CorrectIndex:
			return StatusCorrect
		case s.selected:
			return StatusIncorrect
		default:
			return StatusDisabled
		}
	default:
		return StatusDefault
	}
}

// DisplaySentence returns sentence i as it should be shown: the correct
// sentence has its placeholder filled in once the result is showing.
func (s *Session) DisplaySentence(i int) string {
	if s.question == nil || i < 0 || i >= len(s.question.Sentences) {
		return ""
	}
	sentence := s.question.Sentences[i]
	if s.phase == PhaseShowingResult && i == s.question.CorrectIndex {
		return strings.Replace(sentence, vocab.Placeholder, s.question.Word, 1)
	}
	return sentence
}

// FeedbackKind classifies the feedback for the current state.
func (s *Session) FeedbackKind() FeedbackKind {
	if s.question == nil || s.selected == noSelection {
		return FeedbackNone
	}
	switch s.phase {
	case PhasePlaying:
		return FeedbackRetry
	case PhaseShowingResult:
		if s.selected == s.question.CorrectIndex {
			return FeedbackSolved
		}
		return FeedbackRevealed
	default:
		return FeedbackNone
	}
}

// FeedbackText returns the feedback message for the current state, or "".
func (s *Session) FeedbackText() string {
	switch s.FeedbackKind() {
	case FeedbackRetry:
		return "Not quite! That doesn't seem right. Try one more time."
	case FeedbackSolved:
		return fmt.Sprintf("Correct! %q is the right fit. %s", s.question.Word, s.question.Explanation)
	case FeedbackRevealed:
		return fmt.Sprintf("Oops! The correct answer was sentence #%d. The word %q means: %s",
			s.question.CorrectIndex+1, s.question.Word, s.question.Explanation)
	default:
		return ""
	}
}

func errorText(err error) string {
	if err == nil {
		return "No question was returned."
	}
	return err.Error()
}
