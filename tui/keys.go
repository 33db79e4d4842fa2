package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Translate  key.Binding
	Speak      key.Binding
	SpeakInput key.Binding
	Focus      key.Binding
	Prev       key.Binding
	Next       key.Binding
	Dismiss    key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Translate: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "translate"),
		),
		Speak: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "speak translation"),
		),
		SpeakInput: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "speak input"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "up"),
			key.WithHelp("←/→", "change language"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "down"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Translate, k.Speak, k.SpeakInput, k.Focus, k.Prev, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Translate, k.Speak, k.SpeakInput},
		{k.Focus, k.Prev, k.Dismiss, k.Quit},
	}
}
