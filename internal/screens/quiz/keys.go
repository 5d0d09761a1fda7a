package quiz

import "charm.land/bubbles/v2/key"

// keyMap holds the quiz screen bindings.
type keyMap struct {
	Pick   []key.Binding
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Next   key.Binding
	Retry  key.Binding
	Help   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pick: []key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "pick sentence 1")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "pick sentence 2")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "pick sentence 3")),
		},
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Choose: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "choose")),
		Next:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next word")),
		Retry:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "try again")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "show keys")),
	}
}

// bindings lists every binding in display order.
func (k keyMap) bindings() []key.Binding {
	out := append([]key.Binding{}, k.Pick...)
	return append(out, k.Up, k.Down, k.Choose, k.Next, k.Retry, k.Help)
}
