package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordwise/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	msgs    []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.msgs = append(s.msgs, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

type pingMsg struct{}

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "quiz"})

	s2 := &stubScreen{title: "help"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "help" {
		t.Errorf("expected active 'help', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPushPopMessages(t *testing.T) {
	r := New(&stubScreen{title: "quiz"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "help"}})
	if r.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "quiz"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestKeysGoToActiveOnly(t *testing.T) {
	bottom := &stubScreen{title: "quiz"}
	top := &stubScreen{title: "help"}
	r := New(bottom)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: '1', Text: "1"})

	if len(top.msgs) != 1 {
		t.Errorf("expected active screen to get the key, got %d messages", len(top.msgs))
	}
	if len(bottom.msgs) != 0 {
		t.Errorf("expected covered screen to get no keys, got %d messages", len(bottom.msgs))
	}
}

func TestOtherMessagesReachCoveredScreens(t *testing.T) {
	bottom := &stubScreen{title: "quiz"}
	top := &stubScreen{title: "help"}
	r := New(bottom)
	r.Push(top)

	r.Update(pingMsg{})

	if len(bottom.msgs) != 1 || len(top.msgs) != 1 {
		t.Errorf("expected both screens to get the message, got %d and %d", len(bottom.msgs), len(top.msgs))
	}
}

func TestView(t *testing.T) {
	r := New(&stubScreen{title: "quiz"})
	if got := r.View(80, 24); got != "quiz" {
		t.Errorf("expected 'quiz', got %q", got)
	}
}
