package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	toggle  key.Binding
	search  key.Binding
	compose key.Binding
	preview key.Binding
	create  key.Binding
	open    key.Binding
	back    key.Binding
	restart key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle genre")),
		search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search artists")),
		compose: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "compose")),
		preview: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "preview")),
		create:  key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "create playlist")),
		open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in browser")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.toggle, k.search, k.compose},
		{k.preview, k.create, k.open},
		{k.back, k.restart, k.quit},
	}
}
