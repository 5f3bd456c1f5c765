package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts for all screens.
type KeyMap struct {
	Advance   key.Binding
	Back      key.Binding
	Begin     key.Binding
	Clear     key.Binding
	EndEarly  key.Binding
	Favorite  key.Binding
	ForceQuit key.Binding
	Hint      key.Binding
	History   key.Binding
	NewSetup  key.Binding
	Quit      key.Binding
	Repeat    key.Binding
	Skip      key.Binding
}

// NewKeyMap creates the default key map
func NewKeyMap() KeyMap {
	return KeyMap{
		Advance: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "next question"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Begin: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "begin"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all data"),
		),
		EndEarly: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end session"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Hint: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hint"),
		),
		History: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "history"),
		),
		NewSetup: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new session"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Repeat: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "same settings again"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
	}
}
