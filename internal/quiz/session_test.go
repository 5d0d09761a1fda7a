package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordwise/internal/vocab"
)

func eloquent() *vocab.Question {
	return &vocab.Question{
		Word:         "eloquent",
		Sentences:    []string{"A _____ house.", "An _____ speech.", "He _____ ate."},
		CorrectIndex: 1,
		Explanation:  "Eloquent means fluent or persuasive in speaking or writing.",
	}
}

// playing returns a session that has loaded q.
func playing(t *testing.T, q *vocab.Question) *Session {
	t.Helper()
	s := NewSession()
	round := s.Restart()
	require.True(t, s.Apply(Outcome{Round: round, Question: q}))
	require.Equal(t, PhasePlaying, s.Phase())
	return s
}

type stubSupplier struct {
	q   *vocab.Question
	err error
}

func (s stubSupplier) RequestQuestion(context.Context) (*vocab.Question, error) {
	return s.q, s.err
}

func TestNewSession(t *testing.T) {
	s := NewSession()
	assert.Equal(t, PhaseLoading, s.Phase())
	assert.Nil(t, s.Question())
	assert.True(t, s.IsDisabled())
	assert.False(t, s.CanRestart())
	for i := 0; i < 3; i++ {
		assert.Equal(t, StatusDisabled, s.StatusOf(i))
	}
}

func TestFetchAndApply(t *testing.T) {
	s := NewSession()
	round := s.Restart()

	out := Fetch(context.Background(), stubSupplier{q: eloquent()}, round)
	assert.Equal(t, round, out.Round)
	assert.Equal(t, PhaseLoading, s.Phase(), "Fetch must not mutate the session")

	require.True(t, s.Apply(out))
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, MaxAttempts, s.AttemptsLeft())
	assert.False(t, s.IsDisabled())
	assert.Empty(t, s.FeedbackText())
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestApplyFailure(t *testing.T) {
	s := NewSession()
	round := s.Restart()

	err := &vocab.SupplyError{Kind: vocab.KindTransportFailure, Message: "Failed to fetch a question: timeout"}
	require.True(t, s.Apply(Fetch(context.Background(), stubSupplier{err: err}, round)))

	assert.Equal(t, PhaseError, s.Phase())
	assert.Equal(t, "Failed to fetch a question: timeout", s.ErrorMessage())
	assert.Nil(t, s.Question())
	assert.True(t, s.CanRestart())
	assert.True(t, s.IsDisabled())
}

func TestApplyNilQuestionIsError(t *testing.T) {
	s := NewSession()
	round := s.Restart()

	require.True(t, s.Apply(Outcome{Round: round}))
	assert.Equal(t, PhaseError, s.Phase())
	assert.NotEmpty(t, s.ErrorMessage())
}

func TestStaleOutcomeDiscarded(t *testing.T) {
	s := NewSession()
	first := s.Restart()
	second := s.Restart()

	assert.False(t, s.Apply(Outcome{Round: first, Err: errors.New("late failure")}))
	assert.Equal(t, PhaseLoading, s.Phase())

	require.True(t, s.Apply(Outcome{Round: second, Question: eloquent()}))
	assert.Equal(t, PhasePlaying, s.Phase())

	assert.False(t, s.Apply(Outcome{Round: first, Question: eloquent()}))
	assert.False(t, s.Apply(Outcome{Round: second, Err: errors.New("duplicate")}), "outcome after loading must be ignored")
	assert.Equal(t, PhasePlaying, s.Phase())
}

func TestCorrectFirstGuess(t *testing.T) {
	s := playing(t, eloquent())
	s.Select(1)

	assert.Equal(t, PhaseShowingResult, s.Phase())
	assert.Equal(t, MaxAttempts, s.AttemptsLeft())
	assert.Equal(t, FeedbackSolved, s.FeedbackKind())
	assert.Equal(t, `Correct! "eloquent" is the right fit. Eloquent means fluent or persuasive in speaking or writing.`, s.FeedbackText())
	assert.Equal(t, StatusDisabled, s.StatusOf(0))
	assert.Equal(t, StatusCorrect, s.StatusOf(1))
	assert.Equal(t, StatusDisabled, s.StatusOf(2))
	assert.True(t, s.IsDisabled())
	assert.True(t, s.CanRestart())
}

func TestEloquentScenario(t *testing.T) {
	s := playing(t, eloquent())

	s.Select(0)
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 1, s.AttemptsLeft())
	assert.Equal(t, FeedbackRetry, s.FeedbackKind())
	assert.Equal(t, "Not quite! That doesn't seem right. Try one more time.", s.FeedbackText())
	assert.Equal(t, StatusSelected, s.StatusOf(0))
	assert.Equal(t, StatusDefault, s.StatusOf(1))
	assert.Equal(t, StatusDefault, s.StatusOf(2))
	assert.False(t, s.CanRestart())

	s.Select(2)
	assert.Equal(t, PhaseShowingResult, s.Phase())
	assert.Equal(t, 0, s.AttemptsLeft())
	assert.Equal(t, FeedbackRevealed, s.FeedbackKind())
	assert.Contains(t, s.FeedbackText(), "sentence #2")
	assert.Contains(t, s.FeedbackText(), "Eloquent means fluent or persuasive")
	assert.Equal(t, StatusDisabled, s.StatusOf(0))
	assert.Equal(t, StatusCorrect, s.StatusOf(1))
	assert.Equal(t, StatusIncorrect, s.StatusOf(2))
}

func TestSameWrongSentenceTwice(t *testing.T) {
	s := playing(t, eloquent())
	s.Select(2)
	s.Select(2)

	assert.Equal(t, PhaseShowingResult, s.Phase())
	assert.Equal(t, 0, s.AttemptsLeft())
	assert.Equal(t, StatusIncorrect, s.StatusOf(2))
	assert.Equal(t, StatusDisabled, s.StatusOf(0))
}

func TestSelectIgnoredOutsidePlaying(t *testing.T) {
	s := NewSession()
	s.Restart()
	s.Select(0)
	assert.Equal(t, PhaseLoading, s.Phase())
	_, ok := s.Selected()
	assert.False(t, ok)

	s = playing(t, eloquent())
	s.Select(1)
	s.Select(0)
	assert.Equal(t, PhaseShowingResult, s.Phase())
	sel, _ := s.Selected()
	assert.Equal(t, 1, sel)
	assert.Equal(t, MaxAttempts, s.AttemptsLeft())
}

func TestSelectOutOfRange(t *testing.T) {
	s := playing(t, eloquent())
	s.Select(-1)
	s.Select(3)
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, MaxAttempts, s.AttemptsLeft())
	assert.Equal(t, FeedbackNone, s.FeedbackKind())
}

func TestDisplaySentence(t *testing.T) {
	s := playing(t, eloquent())
	assert.Equal(t, "An _____ speech.", s.DisplaySentence(1))

	s.Select(0)
	assert.Equal(t, "An _____ speech.", s.DisplaySentence(1), "placeholder stays while playing")

	s.Select(2)
	assert.Equal(t, "A _____ house.", s.DisplaySentence(0))
	assert.Equal(t, "An eloquent speech.", s.DisplaySentence(1))
	assert.Equal(t, "He _____ ate.", s.DisplaySentence(2))
	assert.Empty(t, s.DisplaySentence(5))
}

func TestRestartClearsState(t *testing.T) {
	for _, tc := range []struct {
		name  string
		setup func(t *testing.T) *Session
	}{
		{"from result", func(t *testing.T) *Session {
			s := playing(t, eloquent())
			s.Select(0)
			s.Select(2)
			return s
		}},
		{"from error", func(t *testing.T) *Session {
			s := NewSession()
			s.Apply(Outcome{Round: s.Restart(), Err: errors.New("boom")})
			return s
		}},
		{"from playing", func(t *testing.T) *Session {
			s := playing(t, eloquent())
			s.Select(0)
			return s
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.setup(t)
			before := s.Round()

			round := s.Restart()
			assert.Equal(t, before+1, round)
			assert.Equal(t, PhaseLoading, s.Phase())
			assert.Nil(t, s.Question())
			assert.Empty(t, s.FeedbackText())
			assert.Empty(t, s.ErrorMessage())
			_, ok := s.Selected()
			assert.False(t, ok)
		})
	}
}

func TestAttemptsNeverIncreaseWithinRound(t *testing.T) {
	// Every sequence of three guesses over three sentences.
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				s := playing(t, eloquent())
				last := s.AttemptsLeft()
				for _, guess := range []int{a, b, c} {
					wasPlaying := s.Phase() == PhasePlaying
					s.Select(guess)
					now := s.AttemptsLeft()
					assert.GreaterOrEqual(t, now, 0)
					assert.LessOrEqual(t, now, last)
					if now < last {
						assert.True(t, wasPlaying)
						assert.NotEqual(t, eloquent().CorrectIndex, guess)
					}
					last = now
				}
				if s.Phase() == PhaseShowingResult {
					assert.Equal(t, StatusCorrect, s.StatusOf(1))
					sel, _ := s.Selected()
					for i := 0; i < 3; i++ {
						if i != sel && i != 1 {
							assert.Equal(t, StatusDisabled, s.StatusOf(i))
						}
					}
				}
			}
		}
	}
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "showing-result", PhaseShowingResult.String())
	assert.Equal(t, "incorrect", StatusIncorrect.String())
}
