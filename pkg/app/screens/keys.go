package screens

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Favourite key.Binding
	Another   key.Binding
	Up        key.Binding
	Down      key.Binding
	Remove    key.Binding
	Save      key.Binding
	Suspend   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Favourite: key.NewBinding(
			key.WithKeys("f", " "),
			key.WithHelp("f/space", "favourite"),
		),
		Another: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n/enter", "another one"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove favourite"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Favourite, k.Another, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Favourite, k.Another},
		{k.Up, k.Down, k.Remove},
		{k.Save, k.Suspend, k.Quit},
	}
}
