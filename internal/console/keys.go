package console

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Click   key.Binding
	Open    key.Binding
	Flag    key.Binding
	Chord   key.Binding
	Restart key.Binding
	Command key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
	Left:    key.NewBinding(key.WithKeys("left", "h", "a"), key.WithHelp("←/h", "left")),
	Right:   key.NewBinding(key.WithKeys("right", "l", "d"), key.WithHelp("→/l", "right")),
	Click:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "click")),
	Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
	Flag:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flag")),
	Chord:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chord")),
	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Command: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Flag, k.Chord, k.Restart, k.Command, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Click, k.Open, k.Flag, k.Chord},
		{k.Restart, k.Command, k.Help, k.Quit},
	}
}
