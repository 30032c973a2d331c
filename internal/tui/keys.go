package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter key.Binding
	esc   key.Binding
	quit  key.Binding
	up    key.Binding
	down  key.Binding
}

var keys = keyMap{
	enter: key.NewBinding(key.WithKeys("enter")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	quit:  key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d")),
	up:    key.NewBinding(key.WithKeys("pgup")),
	down:  key.NewBinding(key.WithKeys("pgdown")),
}
