package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/wordwise/internal/quiz"
	"github.com/abhisek/wordwise/internal/router"
	"github.com/abhisek/wordwise/internal/vocab"
)

type stubSupplier struct {
	q   *vocab.Question
	err error
}

func (s stubSupplier) RequestQuestion(context.Context) (*vocab.Question, error) {
	return s.q, s.err
}

func eloquent() *vocab.Question {
	return &vocab.Question{
		Word: "eloquent",
		Sentences: []string{
			"She gave an _____ speech that moved the audience.",
			"The _____ rock sat at the bottom of the lake.",
			"He ate an _____ sandwich for lunch.",
		},
		CorrectIndex: 0,
		Explanation:  "Fluent or persuasive in speaking or writing.",
	}
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// resolve runs the pending fetch for the current round synchronously.
func resolve(t *testing.T, s *QuizScreen) {
	t.Helper()
	msg := s.fetch(s.session.Round())()
	s.Update(msg)
}

func newPlaying(t *testing.T) *QuizScreen {
	t.Helper()
	s := New(context.Background(), stubSupplier{q: eloquent()})
	if cmd := s.Init(); cmd == nil {
		t.Fatal("expected init command")
	}
	resolve(t, s)
	if s.session.Phase() != qz.PhasePlaying {
		t.Fatalf("expected playing, got %s", s.session.Phase())
	}
	return s
}

func TestInitStartsLoading(t *testing.T) {
	s := New(context.Background(), stubSupplier{q: eloquent()})
	s.Init()

	if s.session.Phase() != qz.PhaseLoading {
		t.Fatalf("expected loading, got %s", s.session.Phase())
	}
	if s.session.Round() != 1 {
		t.Errorf("expected round 1, got %d", s.session.Round())
	}
	if !strings.Contains(s.View(80, 24), "Fetching") {
		t.Error("expected loading view")
	}
}

func TestSpinnerTicksOnlyWhileLoading(t *testing.T) {
	s := New(context.Background(), stubSupplier{q: eloquent()})
	s.Init()

	_, cmd := s.Update(spinner.TickMsg{})
	if cmd == nil {
		t.Fatal("expected spinner to keep ticking while loading")
	}

	resolve(t, s)
	_, cmd = s.Update(spinner.TickMsg{})
	if cmd != nil {
		t.Fatal("expected spinner to stop once playing")
	}
}

func TestEloquentRound(t *testing.T) {
	s := newPlaying(t)

	if !strings.Contains(s.View(100, 30), "eloquent") {
		t.Error("expected word in view")
	}

	s.Update(press('2'))
	if s.session.Phase() != qz.PhasePlaying {
		t.Fatalf("expected playing after first miss, got %s", s.session.Phase())
	}
	if s.session.AttemptsLeft() != 1 {
		t.Errorf("expected 1 attempt left, got %d", s.session.AttemptsLeft())
	}
	if s.Status() != "Attempts ●○" {
		t.Errorf("unexpected status %q", s.Status())
	}

	s.Update(press('3'))
	if s.session.Phase() != qz.PhaseShowingResult {
		t.Fatalf("expected result, got %s", s.session.Phase())
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "She gave an eloquent speech") {
		t.Error("expected correct sentence to be filled in")
	}
	if !strings.Contains(view, "sentence #1") {
		t.Error("expected reveal feedback")
	}
}

func TestCursorAndEnter(t *testing.T) {
	s := newPlaying(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", s.cursor)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.session.Phase() != qz.PhaseShowingResult {
		t.Fatalf("expected result, got %s", s.session.Phase())
	}
	if !strings.Contains(s.session.FeedbackText(), "Correct!") {
		t.Errorf("unexpected feedback %q", s.session.FeedbackText())
	}
}

func TestNextWordRestarts(t *testing.T) {
	s := newPlaying(t)

	_, cmd := s.Update(press('n'))
	if cmd != nil {
		t.Fatal("expected next to be ignored while playing")
	}

	s.Update(press('1'))
	_, cmd = s.Update(press('n'))
	if cmd == nil {
		t.Fatal("expected restart command")
	}
	if s.session.Phase() != qz.PhaseLoading || s.session.Round() != 2 {
		t.Fatalf("expected loading round 2, got %s round %d", s.session.Phase(), s.session.Round())
	}
	if s.Status() != "" {
		t.Errorf("expected empty status while loading, got %q", s.Status())
	}
}

func TestStaleResultIgnored(t *testing.T) {
	s := newPlaying(t)
	s.Update(press('1'))

	stale := s.fetch(s.session.Round())
	s.Update(press('n'))
	s.Update(stale())

	if s.session.Phase() != qz.PhaseLoading {
		t.Fatalf("expected stale result to be dropped, got %s", s.session.Phase())
	}
}

func TestErrorAndRetry(t *testing.T) {
	s := New(context.Background(), stubSupplier{err: errors.New("Failed to fetch a question: boom")})
	s.Init()
	resolve(t, s)

	if s.session.Phase() != qz.PhaseError {
		t.Fatalf("expected error, got %s", s.session.Phase())
	}
	if !strings.Contains(s.View(80, 24), "boom") {
		t.Error("expected error message in view")
	}

	_, cmd := s.Update(press('r'))
	if cmd == nil {
		t.Fatal("expected retry command")
	}
	if s.session.Phase() != qz.PhaseLoading {
		t.Fatalf("expected loading, got %s", s.session.Phase())
	}
}

func TestHelpKeyPushesScreen(t *testing.T) {
	s := newPlaying(t)

	_, cmd := s.Update(press('?'))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen.Title() != "Help" {
		t.Errorf("expected help screen, got %q", push.Screen.Title())
	}
}

func TestKeyHintsFollowPhase(t *testing.T) {
	s := newPlaying(t)
	if len(s.KeyHints()) != 5 {
		t.Errorf("expected 5 playing hints, got %d", len(s.KeyHints()))
	}

	s.Update(press('1'))
	if s.KeyHints()[0].Key != "n" {
		t.Errorf("expected next hint first, got %q", s.KeyHints()[0].Key)
	}
}
