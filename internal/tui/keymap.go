package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the demo's keyboard shortcuts.
type KeyMap struct {
	New        key.Binding
	Close      key.Binding
	Minimize   key.Binding
	Maximize   key.Binding
	CycleNext  key.Binding
	CyclePrev  key.Binding
	SendToBack key.Binding
	Cancel     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings.
var DefaultKeyMap = KeyMap{
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new window"),
	),
	Close: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close"),
	),
	Minimize: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "minimize"),
	),
	Maximize: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "maximize"),
	),
	CycleNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "cycle focus"),
	),
	CyclePrev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "cycle back"),
	),
	SendToBack: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "send to back"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel gesture"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
