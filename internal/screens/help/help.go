// Package help shows the key bindings of the screen beneath it.
package help

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordwise/internal/router"
	"github.com/abhisek/wordwise/internal/screen"
	"github.com/abhisek/wordwise/internal/ui/layout"
	"github.com/abhisek/wordwise/internal/ui/theme"
)

var closeKeys = key.NewBinding(key.WithKeys("?", "esc", "q"), key.WithHelp("esc", "close"))

// HelpScreen is an overlay listing key bindings.
type HelpScreen struct {
	bindings []key.Binding
}

var (
	_ screen.Screen          = (*HelpScreen)(nil)
	_ screen.KeyHintProvider = (*HelpScreen)(nil)
)

// New creates a HelpScreen for the given bindings. Disabled bindings and
// bindings without help text are skipped.
func New(bindings []key.Binding) *HelpScreen {
	return &HelpScreen{bindings: bindings}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, closeKeys) {
		return h, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Width(10)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Keys"))
	b.WriteString("\n\n")
	for _, line := range h.lines() {
		fmt.Fprintf(&b, "%s%s\n", keyStyle.Render(line.Key), theme.Body.Render(line.Description))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (h *HelpScreen) Title() string {
	return "Help"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (h *HelpScreen) lines() []layout.KeyHint {
	var out []layout.KeyHint
	for _, b := range h.bindings {
		if !b.Enabled() {
			continue
		}
		hb := b.Help()
		if hb.Key == "" {
			continue
		}
		out = append(out, layout.KeyHint{Key: hb.Key, Description: hb.Desc})
	}
	return out
}
