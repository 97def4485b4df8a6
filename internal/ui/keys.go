package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings handled by the screen itself. Navigation,
// filtering and help belong to the list component.
type keyMap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	CycleTheme key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle theme"),
		),
	}
}

// ShortHelp returns the bindings appended to the list's short help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleTheme, k.Quit}
}

// FullHelp returns the bindings appended to the list's full help.
func (k keyMap) FullHelp() []key.Binding {
	return []key.Binding{k.CycleTheme, k.Quit, k.ForceQuit}
}
