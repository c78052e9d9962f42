package live

import (
	"github.com/charmbracelet/bubbles/key"

	"quizapp/internal/question"
)

// keyMap lists every binding the quiz screen understands.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	True    key.Binding
	False   key.Binding
	Select  key.Binding
	Toggle  key.Binding
	Next    key.Binding
	Restart key.Binding
	Quit    key.Binding
	Abort   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		True: key.NewBinding(
			key.WithKeys("t", "y", "left"),
			key.WithHelp("t", "true"),
		),
		False: key.NewBinding(
			key.WithKeys("f", "n", "right"),
			key.WithHelp("f", "false"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Abort: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// contextKeys adapts the bindings relevant to one screen to help.KeyMap.
type contextKeys []key.Binding

func (k contextKeys) ShortHelp() []key.Binding  { return k }
func (k contextKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

// bindingsFor returns the help bindings for a question kind, or for the
// completion screen when complete is true.
func (k keyMap) bindingsFor(kind question.Kind, complete bool) contextKeys {
	if complete {
		return contextKeys{k.Restart, k.Quit}
	}
	switch kind {
	case question.KindTrueFalse:
		return contextKeys{k.True, k.False, k.Next, k.Quit}
	case question.KindSingleChoice:
		return contextKeys{k.Up, k.Down, k.Select, k.Next, k.Quit}
	case question.KindMultiChoice:
		return contextKeys{k.Up, k.Down, k.Toggle, k.Next, k.Quit}
	default:
		return contextKeys{k.Next, k.Abort}
	}
}
