package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	New      key.Binding
	Check    key.Binding
	Play     key.Binding
	Faster   key.Binding
	Slower   key.Binding
	DebugPad key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		New: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new"),
		),
		Check: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "check"),
		),
		Play: key.NewBinding(
			key.WithKeys("ctrl+p", "tab"),
			key.WithHelp("tab", "play"),
		),
		Faster: key.NewBinding(
			key.WithKeys("ctrl+right", "]"),
			key.WithHelp("]", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("ctrl+left", "["),
			key.WithHelp("[", "slower"),
		),
		DebugPad: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "symbol pad"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Check, k.Play, k.New, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Check, k.Play, k.New},
		{k.Faster, k.Slower},
		{k.DebugPad, k.Help, k.Quit},
	}
}
