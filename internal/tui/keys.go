package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add       key.Binding
	Remove    key.Binding
	Previous  key.Binding
	Next      key.Binding
	Left      key.Binding
	Right     key.Binding
	FarLeft   key.Binding
	FarRight  key.Binding
	Color     key.Binding
	Escape    key.Binding
	FocusNext key.Binding
	Apply     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:       key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add stop")),
		Remove:    key.NewBinding(key.WithKeys("d", "-", "delete"), key.WithHelp("d", "remove stop")),
		Previous:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous stop")),
		Next:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next stop")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move right")),
		FarLeft:   key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "move left x10")),
		FarRight:  key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "move right x10")),
		Color:     key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "color picker")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close picker")),
		FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Apply:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply color")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Previous, k.Next, k.Color, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Remove, k.Previous, k.Next},
		{k.Left, k.Right, k.FarLeft, k.FarRight},
		{k.Color, k.FocusNext, k.Apply, k.Escape},
		{k.Help, k.Quit},
	}
}
