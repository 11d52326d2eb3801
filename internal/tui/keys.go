package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists the shell's global bindings. Single-letter bindings are
// suspended while a form field has focus.
type keyMap struct {
	Quit    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Select  key.Binding
	Back    key.Binding
	Forward key.Binding
	Page    key.Binding
	Goto    key.Binding
	Theme   key.Binding
	Menu    key.Binding
	Resume  key.Binding
	Submit  key.Binding
	Blur    key.Binding
	Help    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next item"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous item"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "forward"),
		),
		Page: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "go to page"),
		),
		Goto: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to path"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Resume: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "download resume"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send message"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave field"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Page, k.Next, k.Select, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Page, k.Goto, k.Back, k.Forward, k.Menu},
		{k.Next, k.Prev, k.Select, k.Blur},
		{k.Theme, k.Resume, k.Submit},
		{k.Help, k.Quit},
	}
}

// formKeys is the reduced help shown while typing.
type formKeys struct{ keyMap }

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Blur}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
