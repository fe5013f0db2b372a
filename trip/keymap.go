package trip

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	cancel     key.Binding
	quit       key.Binding
	enter      key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("p", "pause/resume"),
	),
	cancel: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cancel journey"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "step off (resume later)"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "done"),
	),
}
