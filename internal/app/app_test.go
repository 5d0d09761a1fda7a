package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordwise/internal/router"
	"github.com/abhisek/wordwise/internal/screen"
	"github.com/abhisek/wordwise/internal/ui/layout"
)

type fakeScreen struct {
	title string
	hints []layout.KeyHint
	keys  int
}

func (f *fakeScreen) Init() tea.Cmd { return nil }
func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		f.keys++
	}
	return f, nil
}
func (f *fakeScreen) View(width, height int) string { return f.title }
func (f *fakeScreen) Title() string                 { return f.title }
func (f *fakeScreen) KeyHints() []layout.KeyHint    { return f.hints }

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestQuitKeys(t *testing.T) {
	m := newAppModel(&fakeScreen{title: "Quiz"})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if !isQuit(cmd) {
		t.Error("expected ctrl+c to quit")
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if !isQuit(cmd) {
		t.Error("expected q to quit at the bottom screen")
	}
}

func TestQuitKeyGoesToOverlay(t *testing.T) {
	overlay := &fakeScreen{title: "Help"}
	m := newAppModel(&fakeScreen{title: "Quiz"})
	m.router.Push(overlay)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if isQuit(cmd) {
		t.Fatal("expected q not to quit while an overlay is open")
	}
	if overlay.keys != 1 {
		t.Errorf("expected overlay to receive the key, got %d", overlay.keys)
	}
}

func TestEscPops(t *testing.T) {
	m := newAppModel(&fakeScreen{title: "Quiz"})
	m.router.Push(&fakeScreen{title: "Help"})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}

func TestFooterHintsFromScreen(t *testing.T) {
	s := &fakeScreen{title: "Quiz", hints: []layout.KeyHint{{Key: "n", Description: "Next"}}}
	m := newAppModel(s)

	hints := m.footerHints(s)
	if len(hints) != 1 || hints[0].Key != "n" {
		t.Errorf("unexpected hints %v", hints)
	}
}
