package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	// input focused
	Submit     key.Binding
	LeaveInput key.Binding

	// list focused
	Up         key.Binding
	Down       key.Binding
	Edit       key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	FocusInput key.Binding
	Help       key.Binding
	Quit       key.Binding

	// row editing
	Commit key.Binding
	Cancel key.Binding

	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		LeaveInput: key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "list")),

		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "c"), key.WithHelp("space", "complete")),
		Delete:     key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		FocusInput: key.NewBinding(key.WithKeys("a", "i", "tab"), key.WithHelp("a", "new task")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// bindings implements help.KeyMap for whatever is focused right now.
type bindings struct {
	short []key.Binding
	full  [][]key.Binding
}

func (b bindings) ShortHelp() []key.Binding  { return b.short }
func (b bindings) FullHelp() [][]key.Binding { return b.full }
