// Package quiz is the TUI screen that plays quiz rounds.
package quiz

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/wordwise/internal/quiz"
	"github.com/abhisek/wordwise/internal/router"
	"github.com/abhisek/wordwise/internal/screen"
	"github.com/abhisek/wordwise/internal/screens/help"
	"github.com/abhisek/wordwise/internal/ui/layout"
)

// QuizScreen implements screen.Screen for the vocabulary quiz.
type QuizScreen struct {
	ctx      context.Context
	supplier qz.Supplier
	session  *qz.Session
	spinner  spinner.Model
	keys     keyMap
	cursor   int
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
	_ screen.StatusProvider  = (*QuizScreen)(nil)
)

// New creates a QuizScreen. ctx is passed to every fetch and typically
// carries the run's session id.
func New(ctx context.Context, supplier qz.Supplier) *QuizScreen {
	return &QuizScreen{
		ctx:      ctx,
		supplier: supplier,
		session:  qz.NewSession(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:     defaultKeyMap(),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.restart()
}

func (s *QuizScreen) Title() string {
	return "Vocabulary Quiz"
}

// Status shows the remaining attempts while a question is in play.
func (s *QuizScreen) Status() string {
	if s.session.Question() == nil {
		return ""
	}
	left := s.session.AttemptsLeft()
	return fmt.Sprintf("Attempts %s%s",
		strings.Repeat("●", left),
		strings.Repeat("○", qz.MaxAttempts-left))
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case qz.PhasePlaying:
		return []layout.KeyHint{
			{Key: "1-3", Description: "Pick"},
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Choose"},
			{Key: "?", Description: "Help"},
			{Key: "q", Description: "Quit"},
		}
	case qz.PhaseShowingResult:
		return []layout.KeyHint{
			{Key: "n", Description: "Next word"},
			{Key: "?", Description: "Help"},
			{Key: "q", Description: "Quit"},
		}
	case qz.PhaseError:
		return []layout.KeyHint{
			{Key: "r", Description: "Try again"},
			{Key: "q", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "q", Description: "Quit"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionResolvedMsg:
		if s.session.Apply(msg.Outcome) {
			s.cursor = 0
		}
		return s, nil

	case spinner.TickMsg:
		if s.session.Phase() != qz.PhaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if key.Matches(msg, s.keys.Help) {
		h := help.New(s.keys.bindings())
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: h} }
	}

	switch s.session.Phase() {
	case qz.PhasePlaying:
		for i, b := range s.keys.Pick {
			if key.Matches(msg, b) {
				s.cursor = i
				s.session.Select(i)
				return s, nil
			}
		}
		switch {
		case key.Matches(msg, s.keys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, s.keys.Down):
			if q := s.session.Question(); q != nil && s.cursor < len(q.Sentences)-1 {
				s.cursor++
			}
		case key.Matches(msg, s.keys.Choose):
			s.session.Select(s.cursor)
		}
		return s, nil

	case qz.PhaseShowingResult:
		if key.Matches(msg, s.keys.Next, s.keys.Choose) {
			return s, s.restart()
		}

	case qz.PhaseError:
		if key.Matches(msg, s.keys.Retry, s.keys.Choose) {
			return s, s.restart()
		}
	}

	return s, nil
}

// restart begins a new round and returns the commands that fetch its
// question and animate the spinner meanwhile.
func (s *QuizScreen) restart() tea.Cmd {
	round := s.session.Restart()
	s.cursor = 0
	return tea.Batch(s.spinner.Tick, s.fetch(round))
}

func (s *QuizScreen) fetch(round qz.Round) tea.Cmd {
	ctx, sup := s.ctx, s.supplier
	return func() tea.Msg {
		return questionResolvedMsg{Outcome: qz.Fetch(ctx, sup, round)}
	}
}
