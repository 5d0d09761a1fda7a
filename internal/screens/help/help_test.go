package help

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordwise/internal/router"
)

func TestHelpListsBindings(t *testing.T) {
	h := New([]key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next word")),
		key.NewBinding(key.WithKeys("x")),
	})

	lines := h.lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !strings.Contains(h.View(80, 20), "next word") {
		t.Error("expected view to contain binding help")
	}
}

func TestHelpClosesOnEsc(t *testing.T) {
	h := New(nil)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}

func TestHelpIgnoresOtherKeys(t *testing.T) {
	h := New(nil)
	_, cmd := h.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Fatal("expected no command")
	}
}
